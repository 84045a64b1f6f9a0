package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBlockNumber parses a command-line block number within [lo, hi]
func ParseBlockNumber(arg string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", ErrInvalidBlockArgument, arg)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%s: %d is not between %d and %d", ErrInvalidBlockArgument, n, lo, hi)
	}
	return n, nil
}

// DefaultExtractPath returns the output path used when none is given: '<image>.block_<n>.bin'
func DefaultExtractPath(imagePath string, block int) string {
	return fmt.Sprintf("%s.block_%d.bin", imagePath, block)
}

// PrintableASCII replaces anything outside printable ASCII with '.'
func PrintableASCII(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b >= 0x20 && b < 0x7F {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
