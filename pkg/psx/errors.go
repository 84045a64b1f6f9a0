package psx

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural failures that carry no extra context
var (
	ErrUnknownFormat       = errors.New("unknown memory card image format")
	ErrCorruptImage        = errors.New("memory card image has the wrong size")
	ErrCorruptControlBlock = errors.New("invalid control block (block 0)")
	ErrInvalidBlockStatus  = errors.New("invalid block status")
	ErrUnrecognizedField   = errors.New("unrecognized directory field value")
	ErrChecksumMismatch    = errors.New("directory frame checksum mismatch")
	ErrInvalidBlockNumber  = errors.New("invalid block number")
	ErrNotExtractable      = errors.New("block does not start a save")
)

// CorruptImageError reports an image whose length does not match its container format
type CorruptImageError struct {
	Format   ContainerFormat
	Actual   int
	Expected int
}

func (e *CorruptImageError) Error() string {
	return fmt.Sprintf("%s format image is %dB rather than %dB and therefore corrupt",
		e.Format, e.Actual, e.Expected)
}

func (e *CorruptImageError) Unwrap() error { return ErrCorruptImage }

// InvalidBlockStatusError reports an unknown status byte in a directory frame
type InvalidBlockStatusError struct {
	Block int
	Value byte
}

func (e *InvalidBlockStatusError) Error() string {
	return fmt.Sprintf("block %d has an invalid status 0x%02X (block 0 frame %d)", e.Block, e.Value, e.Block)
}

func (e *InvalidBlockStatusError) Unwrap() error { return ErrInvalidBlockStatus }

// UnrecognizedFieldError reports a directory field whose literal value is not in its lookup table
type UnrecognizedFieldError struct {
	Block int
	Field string
	Value []byte
}

func (e *UnrecognizedFieldError) Error() string {
	return fmt.Sprintf("block %d has an unrecognized %s % X", e.Block, e.Field, e.Value)
}

func (e *UnrecognizedFieldError) Unwrap() error { return ErrUnrecognizedField }

// ChecksumError reports a directory frame whose stored XOR does not match its contents
type ChecksumError struct {
	Block      int
	Calculated byte
	Recorded   byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("block 0 frame %d (describing block %d) has checksum 0x%02X, recorded 0x%02X",
		e.Block, e.Block, e.Calculated, e.Recorded)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }

// IndexOutOfRangeError reports a block number outside 1-15
type IndexOutOfRangeError struct {
	Block int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("block number %d out of range (%d-%d)", e.Block, FirstDataBlock, LastDataBlock)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrInvalidBlockNumber }

// NotExtractableError reports an extraction request on a block that is not a First or Deleted block
type NotExtractableError struct {
	Block  int
	Status BlockStatus
}

func (e *NotExtractableError) Error() string {
	return fmt.Sprintf("block %d is neither the first block of a save nor a deleted block (%s)", e.Block, e.Status)
}

func (e *NotExtractableError) Unwrap() error { return ErrNotExtractable }
