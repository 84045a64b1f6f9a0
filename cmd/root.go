// Package cmd provides command-line interface functionality for MCDTools.
// MCDTools inspects PlayStation memory card images (raw .mcd/.mcr and
// DexDrive .gme) and extracts the saves stored on them.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mcdtools",
	Short: "Tools for inspecting PlayStation memory card images",
	Long: `MCDTools - A collection of utilities for analysing PlayStation
memory card images.

Currently supports:
  - Raw memory card images (.mcd, .mcr)
  - DexDrive images (.gme)

Examples:
  mcdtools card list memory.mcd
  mcdtools card list --yaml listing.yaml memory.gme
  mcdtools card saves memory.mcd
  mcdtools card extract memory.mcd 3
  mcdtools card extract -o save.bin memory.gme 3

Use 'mcdtools [command] --help' for more information about a command.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
