package psx

import (
	"fmt"
	"strings"
)

// Unavailable marks a listing field that the block's status does not report on
const Unavailable = "-"

// Block is one 8192-byte data block together with its directory entry
type Block struct {
	Number        int
	Status        BlockStatus
	Metadata      *BlockMetadata // nil unless the status carries metadata
	ChecksumValid bool
	Title         string
	HasTitle      bool // Only First blocks starting with the "SC" magic carry a title

	data []byte
}

// Data returns a copy of the block's raw bytes
func (b Block) Data() []byte {
	return append([]byte(nil), b.data...)
}

// BlockSummary is the per-block record produced by MemoryCard.List
type BlockSummary struct {
	Block       int
	Status      BlockStatus
	Available   bool // false when every metadata field is Unavailable
	Title       string
	SaveLength  string
	SaveBlocks  int
	Country     string
	ProductCode string
	Playthrough string
	Filename    string
}

// Save describes one save chain anchored at a First or Deleted block
type Save struct {
	Start          int
	Status         BlockStatus
	Title          string
	Metadata       *BlockMetadata
	Blocks         []int
	DeclaredBlocks int
	PayloadSize    int
}

// Complete reports whether the positional chain matches the save length recorded in the directory
func (s Save) Complete() bool {
	return len(s.Blocks) == s.DeclaredBlocks
}

// MemoryCard is a parsed, read-only memory card image
type MemoryCard struct {
	image      []byte
	format     ContainerFormat
	dataOffset int
	blocks     [BlockCount]Block
	warnings   []Warning
}

// Load validates a memory card image and builds its block records.
// The image is copied; no partial card is returned on error.
func Load(image []byte, opts Options) (*MemoryCard, error) {
	format, offset, err := DetectFormat(image)
	if err != nil {
		return nil, err
	}

	card := &MemoryCard{
		image:      append([]byte(nil), image...),
		format:     format,
		dataOffset: offset,
	}

	entries, warnings, err := ParseControlBlock(card.image[offset:offset+BlockSize], opts)
	if err != nil {
		return nil, err
	}
	card.warnings = warnings

	for n := FirstDataBlock; n <= LastDataBlock; n++ {
		start := BlockOffset(offset, n)
		block := Block{
			Number:        n,
			Status:        entries[n].Status,
			Metadata:      entries[n].Metadata,
			ChecksumValid: entries[n].ChecksumValid,
			data:          card.image[start : start+BlockSize],
		}
		if block.Status == StatusFirst && HasSaveHeader(block.data) {
			block.Title = DecodeTitle(block.data[TitleOffset : TitleOffset+TitleLength])
			block.HasTitle = true
		}
		card.blocks[n] = block
	}

	return card, nil
}

// Format returns the container format of the image
func (c *MemoryCard) Format() ContainerFormat { return c.format }

// DataOffset returns the offset of block 0 within the image
func (c *MemoryCard) DataOffset() int { return c.dataOffset }

// Size returns the full image length including any container header
func (c *MemoryCard) Size() int { return len(c.image) }

// Warnings returns the non-fatal findings from parsing, in block order
func (c *MemoryCard) Warnings() []Warning {
	return append([]Warning(nil), c.warnings...)
}

// Block returns the block with the given number (1-15)
func (c *MemoryCard) Block(n int) (Block, error) {
	if n < FirstDataBlock || n > LastDataBlock {
		return Block{}, &IndexOutOfRangeError{Block: n}
	}
	return c.blocks[n], nil
}

// Blocks returns all 15 data blocks in order
func (c *MemoryCard) Blocks() []Block {
	return append([]Block(nil), c.blocks[FirstDataBlock:]...)
}

// List returns one summary per data block
func (c *MemoryCard) List() []BlockSummary {
	summaries := make([]BlockSummary, 0, LastDataBlock)
	for _, b := range c.blocks[FirstDataBlock:] {
		summaries = append(summaries, summarize(b))
	}
	return summaries
}

func summarize(b Block) BlockSummary {
	s := BlockSummary{
		Block:       b.Number,
		Status:      b.Status,
		Title:       Unavailable,
		SaveLength:  Unavailable,
		Country:     Unavailable,
		ProductCode: Unavailable,
		Playthrough: Unavailable,
		Filename:    Unavailable,
	}
	if b.HasTitle {
		s.Title = b.Title
	}
	if b.Metadata == nil {
		return s
	}

	m := b.Metadata
	s.Available = true
	s.SaveBlocks = m.SaveLength
	s.SaveLength = FormatSaveLength(m.SaveLength)
	s.Country = fmt.Sprintf("%s (%s)", m.Region, m.CountryCode[:])
	s.ProductCode = string(m.ProductCode[:])
	s.Playthrough = string(m.Playthrough)
	s.Filename = m.Filename()
	return s
}

// FormatSaveLength renders a block count the way the directory listing shows it
func FormatSaveLength(blocks int) string {
	if blocks == 1 {
		return "1 block"
	}
	return fmt.Sprintf("%d blocks", blocks)
}

// ExtractRanges returns the ordered image ranges holding the save that starts at block start
func (c *MemoryCard) ExtractRanges(start int) ([]Range, error) {
	var statuses [BlockCount]BlockStatus
	for n := FirstDataBlock; n <= LastDataBlock; n++ {
		statuses[n] = c.blocks[n].Status
	}
	return WalkSaveChain(statuses, start, c.dataOffset)
}

// ReadRanges concatenates the image bytes covered by ranges
func (c *MemoryCard) ReadRanges(ranges []Range) ([]byte, error) {
	total := 0
	for _, r := range ranges {
		if r.Start < 0 || r.End > len(c.image) || r.Start > r.End {
			return nil, fmt.Errorf("range %s outside image of %d bytes", r, len(c.image))
		}
		total += r.Len()
	}

	out := make([]byte, 0, total)
	for _, r := range ranges {
		out = append(out, c.image[r.Start:r.End]...)
	}
	return out, nil
}

// Extract returns the save payload, headers excluded, for the chain starting at block start
func (c *MemoryCard) Extract(start int) ([]byte, error) {
	ranges, err := c.ExtractRanges(start)
	if err != nil {
		return nil, err
	}
	return c.ReadRanges(ranges)
}

// Saves returns every save chain anchored at a First or Deleted block
func (c *MemoryCard) Saves() []Save {
	var saves []Save
	for _, b := range c.blocks[FirstDataBlock:] {
		if !b.Status.IsExtractable() {
			continue
		}
		// ExtractRanges only rejects starts excluded by the guard above.
		ranges, _ := c.ExtractRanges(b.Number)

		save := Save{
			Start:    b.Number,
			Status:   b.Status,
			Title:    b.Title,
			Metadata: b.Metadata,
			Blocks:   ChainBlocks(ranges, c.dataOffset),
		}
		if b.Metadata != nil {
			save.DeclaredBlocks = b.Metadata.SaveLength
		}
		for _, r := range ranges {
			save.PayloadSize += r.Len()
		}
		saves = append(saves, save)
	}
	return saves
}

// String renders a one-line description of the save
func (s Save) String() string {
	blocks := make([]string, len(s.Blocks))
	for i, n := range s.Blocks {
		blocks[i] = fmt.Sprint(n)
	}
	title := s.Title
	if title == "" {
		title = Unavailable
	}
	return fmt.Sprintf("block %d [%s] %q blocks %s (%d bytes)",
		s.Start, s.Status, title, strings.Join(blocks, ","), s.PayloadSize)
}
