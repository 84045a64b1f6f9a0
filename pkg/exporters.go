package pkg

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hansbonini/mcdtools/pkg/common"
	"github.com/hansbonini/mcdtools/pkg/psx"
)

// MemoryCardExporter renders parsed memory cards as text or YAML
type MemoryCardExporter struct{}

// NewMemoryCardExporter creates a new exporter instance
func NewMemoryCardExporter() *MemoryCardExporter {
	return &MemoryCardExporter{}
}

// WriteListing writes one record per block in the classic analyser layout:
//
//	Block 3:
//	Status: First block
//	Title: 'GRAN TURISMO'
//	...
func (e *MemoryCardExporter) WriteListing(card *psx.MemoryCard, writer io.Writer) error {
	for _, s := range card.List() {
		_, err := fmt.Fprintf(writer,
			"\nBlock %d:\nStatus: %s\nTitle: '%s'\nSave length: %s\n"+
				"Country code: %s\nProduct code: %s\n"+
				"Game playthrough identifier: %s\n'File name': %s\n",
			s.Block, s.Status, s.Title, s.SaveLength,
			s.Country, common.PrintableASCII([]byte(s.ProductCode)),
			common.PrintableASCII([]byte(s.Playthrough)),
			common.PrintableASCII([]byte(s.Filename)))
		if err != nil {
			return common.FormatError(common.ErrFailedToWriteListing, err)
		}
	}
	return nil
}

// WriteSaves writes a table with one row per save chain
func (e *MemoryCardExporter) WriteSaves(card *psx.MemoryCard, writer io.Writer) error {
	saves := card.Saves()
	if len(saves) == 0 {
		_, err := fmt.Fprintln(writer, "No saves found.")
		return err
	}

	if _, err := fmt.Fprintf(writer, "Blk | Status        | Blocks      | Size   | Product    | Title\n"+
		"----|---------------|-------------|--------|------------|--------------------------------\n"); err != nil {
		return common.FormatError(common.ErrFailedToWriteListing, err)
	}

	for _, s := range saves {
		product := psx.Unavailable
		if s.Metadata != nil {
			product = common.PrintableASCII(s.Metadata.ProductCode[:])
		}
		title := s.Title
		if title == "" {
			title = psx.Unavailable
		}

		_, err := fmt.Fprintf(writer, "%3d | %-13s | %-11s | %6d | %-10s | %s\n",
			s.Start, s.Status, formatChain(s), s.PayloadSize, product, title)
		if err != nil {
			return common.FormatError(common.ErrFailedToWriteListing, err)
		}
		if !s.Complete() {
			common.LogInfo(common.InfoIncompleteChain, s.Start, s.DeclaredBlocks, len(s.Blocks))
		}
	}
	return nil
}

func formatChain(s psx.Save) string {
	if len(s.Blocks) == 1 {
		return fmt.Sprintf("%d", s.Blocks[0])
	}
	return fmt.Sprintf("%d-%d (%d/%d)", s.Blocks[0], s.Blocks[len(s.Blocks)-1], len(s.Blocks), s.DeclaredBlocks)
}

// BuildListing converts a parsed card into its YAML document structure
func (e *MemoryCardExporter) BuildListing(card *psx.MemoryCard, source string) CardListingYAML {
	listing := CardListingYAML{
		Source:     source,
		Format:     card.Format().String(),
		Size:       card.Size(),
		DataOffset: card.DataOffset(),
		Blocks:     make([]BlockEntry, 0, psx.LastDataBlock),
		Saves:      make([]SaveEntry, 0),
	}

	blocks := card.Blocks()
	for i, s := range card.List() {
		listing.Blocks = append(listing.Blocks, BlockEntry{
			Block:         s.Block,
			Status:        s.Status.String(),
			StatusCode:    fmt.Sprintf("0x%02X", byte(s.Status)),
			ChecksumValid: blocks[i].ChecksumValid,
			Title:         s.Title,
			SaveLength:    s.SaveLength,
			Country:       s.Country,
			ProductCode:   s.ProductCode,
			Playthrough:   s.Playthrough,
			Filename:      s.Filename,
		})
	}

	for _, s := range card.Saves() {
		listing.Saves = append(listing.Saves, SaveEntry{
			Start:          s.Start,
			Status:         s.Status.String(),
			Title:          s.Title,
			Blocks:         s.Blocks,
			DeclaredBlocks: s.DeclaredBlocks,
			PayloadSize:    s.PayloadSize,
			Complete:       s.Complete(),
		})
	}

	for _, w := range card.Warnings() {
		listing.Warnings = append(listing.Warnings, w.String())
	}

	return listing
}

// ExportYAML encodes the card listing as a YAML document
func (e *MemoryCardExporter) ExportYAML(card *psx.MemoryCard, source string, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(e.BuildListing(card, source)); err != nil {
		return common.FormatError(common.ErrFailedToEncodeYAML, err)
	}
	return encoder.Close()
}
