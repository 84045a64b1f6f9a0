package pkg

import (
	"io"

	"github.com/hansbonini/mcdtools/pkg/psx"
)

// CardListingYAML is the document written by 'card list --yaml'
type CardListingYAML struct {
	Source     string       `yaml:"source"`
	Format     string       `yaml:"format"`
	Size       int          `yaml:"size"`
	DataOffset int          `yaml:"data_offset"`
	Blocks     []BlockEntry `yaml:"blocks"`
	Saves      []SaveEntry  `yaml:"saves"`
	Warnings   []string     `yaml:"warnings,omitempty"`
}

// BlockEntry is one block of the listing; unavailable fields hold "-"
type BlockEntry struct {
	Block         int    `yaml:"block"`
	Status        string `yaml:"status"`
	StatusCode    string `yaml:"status_code"`
	ChecksumValid bool   `yaml:"checksum_valid"`
	Title         string `yaml:"title"`
	SaveLength    string `yaml:"save_length"`
	Country       string `yaml:"country"`
	ProductCode   string `yaml:"product_code"`
	Playthrough   string `yaml:"playthrough"`
	Filename      string `yaml:"filename"`
}

// SaveEntry is one save chain of the listing
type SaveEntry struct {
	Start          int    `yaml:"start"`
	Status         string `yaml:"status"`
	Title          string `yaml:"title"`
	Blocks         []int  `yaml:"blocks,flow"`
	DeclaredBlocks int    `yaml:"declared_blocks"`
	PayloadSize    int    `yaml:"payload_size"`
	Complete       bool   `yaml:"complete"`
}

// CardLoader reads and parses memory card images
type CardLoader interface {
	LoadCard(path string) (*psx.MemoryCard, error)
}

// CardExporter renders parsed memory cards
type CardExporter interface {
	WriteListing(card *psx.MemoryCard, writer io.Writer) error
	WriteSaves(card *psx.MemoryCard, writer io.Writer) error
	ExportYAML(card *psx.MemoryCard, source string, writer io.Writer) error
}

// CardProcessor combines loading, exporting and save extraction
type CardProcessor interface {
	CardLoader
	CardExporter
	ExtractSave(card *psx.MemoryCard, block int, outputPath string) (int64, error)
}
