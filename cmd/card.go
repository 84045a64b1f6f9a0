// Package cmd provides command-line interface for memory card processing.
// This file contains the list, saves and extract commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hansbonini/mcdtools/pkg/common"
	"github.com/hansbonini/mcdtools/pkg/psx"
)

// cardCmd represents the parent command for all memory card operations.
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Inspect PlayStation memory card images",
	Long: `Inspect PlayStation memory card images.

Commands:
  list      Show the directory entry of every data block
  saves     Show one row per save chain
  extract   Write the payload of a save to a file

Examples:
  mcdtools card list memory.mcd
  mcdtools card saves memory.gme
  mcdtools card extract memory.mcd 3`,
}

// cardListCmd prints the status and metadata of blocks 1 to 15.
var cardListCmd = &cobra.Command{
	Use:   "list [image]",
	Short: "List the directory entry of every data block",
	Long: `List the directory entry of every data block of a memory card image.

For each block 1 to 15 this prints its status, the save title (first blocks
only), save length, region, product code, playthrough identifier and the
derived file name. Fields that do not apply are shown as '-'.

Arguments:
  image    Memory card image (.mcd, .mcr or .gme)

Flags:
  -v, --verbose     Enable verbose output (show debug messages)
      --strict      Treat directory frame checksum mismatches as errors
      --yaml        Also write the listing as YAML to the given file

Examples:
  mcdtools card list memory.mcd
  mcdtools card list --yaml listing.yaml memory.gme`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath := args[0]

		processor, err := newProcessorFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		yamlPath, err := cmd.Flags().GetString(flagYAML)
		if err != nil {
			return fmt.Errorf("error getting yaml flag: %w", err)
		}

		card, err := processor.LoadCard(imagePath)
		if err != nil {
			return err
		}

		if err := processor.WriteListing(card, cmd.OutOrStdout()); err != nil {
			return err
		}

		if yamlPath != "" {
			if err := processor.ExportYAMLFile(card, imagePath, yamlPath); err != nil {
				return err
			}
		}
		return nil
	},
}

// cardSavesCmd prints one row per save chain.
var cardSavesCmd = &cobra.Command{
	Use:   "saves [image]",
	Short: "List the saves stored on a memory card image",
	Long: `List the saves stored on a memory card image.

Each row shows the starting block, its status (first or deleted), the blocks
of the chain, the payload size, product code and title.

Examples:
  mcdtools card saves memory.mcd
  mcdtools card saves -v memory.gme`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		processor, err := newProcessorFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		card, err := processor.LoadCard(args[0])
		if err != nil {
			return err
		}
		return processor.WriteSaves(card, cmd.OutOrStdout())
	},
}

// cardExtractCmd writes the payload of one save to a file.
var cardExtractCmd = &cobra.Command{
	Use:   "extract [image] [block]",
	Short: "Extract the save starting at a block",
	Long: `Extract the save starting at a block of a memory card image.

The block must hold a first or deleted save. The 512-byte save header of the
first block is skipped and the linked blocks that follow it are appended.

Arguments:
  image    Memory card image (.mcd, .mcr or .gme)
  block    Starting block number (1-15)

Flags:
  -o, --output      Output file (default '<image>.block_<n>.bin')

Examples:
  mcdtools card extract memory.mcd 3
  mcdtools card extract -o save.bin memory.gme 3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath := args[0]

		block, err := common.ParseBlockNumber(args[1], psx.FirstDataBlock, psx.LastDataBlock)
		if err != nil {
			return err
		}

		processor, err := newProcessorFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		outputPath, err := cmd.Flags().GetString(flagOutput)
		if err != nil {
			return fmt.Errorf("error getting output flag: %w", err)
		}
		if outputPath == "" {
			outputPath = common.DefaultExtractPath(imagePath, block)
		}

		card, err := processor.LoadCard(imagePath)
		if err != nil {
			return err
		}

		written, err := processor.ExtractSave(card, block, outputPath)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", written, outputPath)
		return nil
	},
}

// init registers the card command and its subcommands.
func init() {
	rootCmd.AddCommand(cardCmd)

	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardSavesCmd)
	cardCmd.AddCommand(cardExtractCmd)

	addCardFlags(cardListCmd.Flags())
	addCardFlags(cardSavesCmd.Flags())
	addCardFlags(cardExtractCmd.Flags())

	cardListCmd.Flags().String(flagYAML, "", "Also write the listing as YAML to the given file")
	cardExtractCmd.Flags().StringP(flagOutput, "o", "", "Output file (default '<image>.block_<n>.bin')")
}
