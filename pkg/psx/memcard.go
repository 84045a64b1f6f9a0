// Package psx provides PlayStation-specific structures and functionality.
// This file contains the memory card layout constants, the block status table
// and the literal lookup tables used by the directory frames.
package psx

import "fmt"

// Memory card image layout
const (
	CardSize        = 131072 // Card payload size, excluding any container header
	FrameSize       = 128    // Directory frame size
	FramesPerBlock  = 64     // Frames in a single block
	BlockSize       = FrameSize * FramesPerBlock
	BlockCount      = 16 // Block 0 is the control block
	FirstDataBlock  = 1
	LastDataBlock   = BlockCount - 1
	SaveHeaderSize  = 4 * FrameSize // Title, icon and palette frames of a first block
	TitleOffset     = 4
	TitleLength     = 64
	GMEHeaderSize   = 3904
	MCDHeaderSize   = 0
	ControlChecksum = 'M' ^ 'C'
)

// Directory frame field offsets
const (
	frameStatusOffset      = 0
	frameSaveLengthOffset  = 4
	frameNextBlockOffset   = 8
	frameCountryOffset     = 10
	frameProductOffset     = 12
	framePlaythroughOffset = 22
	framePlaythroughEnd    = 31
	frameChecksumOffset    = FrameSize - 1
)

var (
	gmeMagic          = []byte("123-456-STD")
	mcdMagic          = []byte("MC")
	normalBlockMagic  = []byte("SC")
	controlBlockMagic = append([]byte("MC"), make([]byte, FrameSize-3)...)
)

// ContainerFormat identifies the file container wrapping the card payload
type ContainerFormat int

const (
	FormatUnknown ContainerFormat = iota
	FormatMCD                     // Raw image, no header
	FormatGME                     // DexDrive image, 3904-byte header
)

func (f ContainerFormat) String() string {
	switch f {
	case FormatMCD:
		return "mcd"
	case FormatGME:
		return "gme"
	default:
		return "unknown"
	}
}

// HeaderSize returns the container header length preceding the card payload
func (f ContainerFormat) HeaderSize() int {
	if f == FormatGME {
		return GMEHeaderSize
	}
	return MCDHeaderSize
}

// BlockStatus is the allocation state byte stored at offset 0 of a directory frame
type BlockStatus byte

const (
	StatusFirst    BlockStatus = 0x51
	StatusMiddle   BlockStatus = 0x52
	StatusLast     BlockStatus = 0x53
	StatusUnused   BlockStatus = 0xA0
	StatusDeleted  BlockStatus = 0xA1
	StatusUnusable BlockStatus = 0xFF
)

type statusInfo struct {
	label           string
	carriesMetadata bool
	continuation    bool
}

// statusTable is the single source of truth for what each status permits.
// First and Deleted are the only states whose directory frame is reported on;
// a deleted block may still anchor a recoverable save.
var statusTable = map[BlockStatus]statusInfo{
	StatusFirst:    {label: "First block", carriesMetadata: true},
	StatusMiddle:   {label: "Middle block", continuation: true},
	StatusLast:     {label: "Last block", continuation: true},
	StatusUnused:   {label: "Unused block"},
	StatusDeleted:  {label: "Deleted block", carriesMetadata: true, continuation: true},
	StatusUnusable: {label: "Unusable block"},
}

// ParseBlockStatus maps a raw status byte onto a known BlockStatus
func ParseBlockStatus(b byte) (BlockStatus, bool) {
	s := BlockStatus(b)
	_, ok := statusTable[s]
	return s, ok
}

// HasMetadata reports whether the directory frame fields are meaningful for this status
func (s BlockStatus) HasMetadata() bool {
	return statusTable[s].carriesMetadata
}

// IsContinuation reports whether a block with this status may continue a save chain
func (s BlockStatus) IsContinuation() bool {
	return statusTable[s].continuation
}

// IsExtractable reports whether a save chain may start at a block with this status
func (s BlockStatus) IsExtractable() bool {
	return s == StatusFirst || s == StatusDeleted
}

func (s BlockStatus) String() string {
	if info, ok := statusTable[s]; ok {
		return info.label
	}
	return fmt.Sprintf("Invalid status 0x%02X", byte(s))
}

// Region is the country code stored in a directory frame
type Region string

const (
	RegionJapan   Region = "Japan"
	RegionAmerica Region = "America"
	RegionEurope  Region = "Europe"
)

// Some titles (Road Rash) write the country code in lower case
var countryCodes = map[[2]byte]Region{
	{'B', 'I'}: RegionJapan,
	{'b', 'i'}: RegionJapan,
	{'B', 'A'}: RegionAmerica,
	{'b', 'a'}: RegionAmerica,
	{'B', 'E'}: RegionEurope,
	{'b', 'e'}: RegionEurope,
}

// saveLengths maps the 3-byte save size field onto a block count.
// The field is the save size in bytes (blocks * 0x2000), little-endian.
var saveLengths = map[[3]byte]int{
	{0x00, 0x20, 0x00}: 1,
	{0x00, 0x40, 0x00}: 2,
	{0x00, 0x60, 0x00}: 3,
	{0x00, 0x80, 0x00}: 4,
	{0x00, 0xA0, 0x00}: 5,
	{0x00, 0xC0, 0x00}: 6,
	{0x00, 0xE0, 0x00}: 7,
	{0x00, 0x00, 0x01}: 8,
	{0x00, 0x20, 0x01}: 9,
	{0x00, 0x40, 0x01}: 10,
	{0x00, 0x60, 0x01}: 11,
	{0x00, 0x80, 0x01}: 12,
	{0x00, 0xA0, 0x01}: 13,
	{0x00, 0xC0, 0x01}: 14,
	{0x00, 0xE0, 0x01}: 15,
}

// LookupRegion resolves a 2-byte country code
func LookupRegion(code [2]byte) (Region, bool) {
	r, ok := countryCodes[code]
	return r, ok
}

// LookupSaveLength resolves a 3-byte save length code into a block count
func LookupSaveLength(code [3]byte) (int, bool) {
	n, ok := saveLengths[code]
	return n, ok
}

// SaveLengthCode returns the literal save length code for a block count
func SaveLengthCode(blocks int) ([3]byte, error) {
	if blocks < 1 || blocks > LastDataBlock {
		return [3]byte{}, fmt.Errorf("save length %d out of range (1-%d)", blocks, LastDataBlock)
	}
	size := blocks * BlockSize
	return [3]byte{byte(size), byte(size >> 8), byte(size >> 16)}, nil
}

// BlockOffset returns the image offset of the given block for a payload starting at dataOffset
func BlockOffset(dataOffset, block int) int {
	return dataOffset + block*BlockSize
}
