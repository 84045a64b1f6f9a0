package psx

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// BlockMetadata holds the directory frame fields of a First or Deleted block
type BlockMetadata struct {
	SaveLengthCode [3]byte
	SaveLength     int // Save size in blocks (1-15)
	NextBlock      uint16
	CountryCode    [2]byte
	Region         Region
	ProductCode    [10]byte
	Playthrough    []byte // Trailing NUL bytes stripped
}

// Filename returns the identifier the console builds from country, product and playthrough codes
func (m *BlockMetadata) Filename() string {
	return string(m.CountryCode[:]) + string(m.ProductCode[:]) + string(m.Playthrough)
}

// DirectoryEntry is the parsed control block frame describing one data block
type DirectoryEntry struct {
	Block         int
	Status        BlockStatus
	Metadata      *BlockMetadata // nil when the status carries no reportable data
	ChecksumValid bool
}

// WarningKind classifies non-fatal parser findings
type WarningKind int

const (
	WarnChecksum WarningKind = iota + 1
	WarnUnusable
)

// Warning is a non-fatal finding; parsing continues and the data is still trusted
type Warning struct {
	Kind       WarningKind
	Block      int
	Calculated byte // checksum warnings only
	Recorded   byte // checksum warnings only
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnChecksum:
		return fmt.Sprintf("block 0 frame %d (describing block %d) has an invalid checksum: calculated 0x%02X, recorded 0x%02X",
			w.Block, w.Block, w.Calculated, w.Recorded)
	case WarnUnusable:
		return fmt.Sprintf("block %d is flagged as unusable", w.Block)
	default:
		return fmt.Sprintf("block %d: unknown warning", w.Block)
	}
}

// WarningSink receives warnings as they are produced, in block-number order
type WarningSink interface {
	Warn(w Warning)
}

// WarningSinkFunc adapts a plain function to WarningSink
type WarningSinkFunc func(w Warning)

func (f WarningSinkFunc) Warn(w Warning) { f(w) }

// Options controls parser policy
type Options struct {
	// StrictChecksums makes a directory frame checksum mismatch fatal.
	// Several commercial saves (Gran Turismo, Tomb Raider - The Last Revelation)
	// fail the check yet load on hardware, so the default is to warn.
	StrictChecksums bool

	// Sink, when set, receives every warning as it is produced
	Sink WarningSink
}

func (o Options) warn(w Warning) {
	if o.Sink != nil {
		o.Sink.Warn(w)
	}
}

// ParseControlBlock validates block 0 and decodes the 15 directory frames it holds.
// The returned array is indexed by block number; index 0 is left zero.
func ParseControlBlock(block0 []byte, opts Options) ([BlockCount]DirectoryEntry, []Warning, error) {
	var entries [BlockCount]DirectoryEntry
	var warnings []Warning

	if len(block0) < BlockSize {
		return entries, nil, fmt.Errorf("%w: %d bytes, want %d", ErrCorruptControlBlock, len(block0), BlockSize)
	}
	if !bytes.Equal(block0[:frameChecksumOffset], controlBlockMagic) || block0[frameChecksumOffset] != ControlChecksum {
		return entries, nil, ErrCorruptControlBlock
	}

	for n := FirstDataBlock; n <= LastDataBlock; n++ {
		frame := block0[n*FrameSize : (n+1)*FrameSize]

		entry, frameWarnings, err := parseDirectoryFrame(n, frame, opts)
		if err != nil {
			return entries, nil, err
		}
		for _, w := range frameWarnings {
			opts.warn(w)
		}
		warnings = append(warnings, frameWarnings...)
		entries[n] = entry
	}

	return entries, warnings, nil
}

func parseDirectoryFrame(block int, frame []byte, opts Options) (DirectoryEntry, []Warning, error) {
	var warnings []Warning
	entry := DirectoryEntry{Block: block, ChecksumValid: true}

	if calculated := FrameChecksum(frame); calculated != frame[frameChecksumOffset] {
		if opts.StrictChecksums {
			return entry, nil, &ChecksumError{Block: block, Calculated: calculated, Recorded: frame[frameChecksumOffset]}
		}
		entry.ChecksumValid = false
		warnings = append(warnings, Warning{
			Kind:       WarnChecksum,
			Block:      block,
			Calculated: calculated,
			Recorded:   frame[frameChecksumOffset],
		})
	}

	status, ok := ParseBlockStatus(frame[frameStatusOffset])
	if !ok {
		return entry, nil, &InvalidBlockStatusError{Block: block, Value: frame[frameStatusOffset]}
	}
	entry.Status = status

	switch {
	case status.HasMetadata():
		meta, err := decodeMetadata(block, frame)
		if err != nil {
			return entry, nil, err
		}
		entry.Metadata = meta
	case status == StatusUnusable:
		warnings = append(warnings, Warning{Kind: WarnUnusable, Block: block})
	}

	return entry, warnings, nil
}

func decodeMetadata(block int, frame []byte) (*BlockMetadata, error) {
	meta := &BlockMetadata{}

	copy(meta.SaveLengthCode[:], frame[frameSaveLengthOffset:frameSaveLengthOffset+3])
	length, ok := LookupSaveLength(meta.SaveLengthCode)
	if !ok {
		return nil, &UnrecognizedFieldError{Block: block, Field: "save length", Value: meta.SaveLengthCode[:]}
	}
	meta.SaveLength = length

	meta.NextBlock = binary.LittleEndian.Uint16(frame[frameNextBlockOffset : frameNextBlockOffset+2])

	copy(meta.CountryCode[:], frame[frameCountryOffset:frameCountryOffset+2])
	region, ok := LookupRegion(meta.CountryCode)
	if !ok {
		return nil, &UnrecognizedFieldError{Block: block, Field: "country code", Value: meta.CountryCode[:]}
	}
	meta.Region = region

	copy(meta.ProductCode[:], frame[frameProductOffset:framePlaythroughOffset])
	meta.Playthrough = bytes.TrimRight(
		append([]byte(nil), frame[framePlaythroughOffset:framePlaythroughEnd]...), "\x00")

	return meta, nil
}
