package psx

import (
	"bytes"
	"unicode"

	"golang.org/x/text/encoding/japanese"
)

// HasSaveHeader reports whether a data block begins with the "SC" magic of a first block
func HasSaveHeader(block []byte) bool {
	return bytes.HasPrefix(block, normalBlockMagic)
}

// DecodeTitle decodes a 64-byte Shift-JIS save title.
// Invalid sequences become U+FFFD and everything from the first control
// character onwards is dropped, since many saves leave junk after the title.
func DecodeTitle(raw []byte) string {
	// The decoder substitutes U+FFFD for invalid input and never fails.
	decoded, _ := japanese.ShiftJIS.NewDecoder().Bytes(raw)

	title := []rune(string(decoded))
	for i, r := range title {
		// A lone 0x80 decodes to U+0080, which is not a Shift-JIS character.
		if r == 0x80 {
			title[i] = unicode.ReplacementChar
			continue
		}
		if unicode.IsControl(r) {
			return string(title[:i])
		}
	}
	return string(title)
}
