package psx

import "bytes"

// DetectFormat identifies the container format from its magic and validates the total image length.
// It returns the format and the offset at which the 131072-byte card payload begins.
func DetectFormat(image []byte) (ContainerFormat, int, error) {
	var format ContainerFormat
	switch {
	case bytes.HasPrefix(image, gmeMagic):
		format = FormatGME
	case bytes.HasPrefix(image, mcdMagic):
		format = FormatMCD
	default:
		return FormatUnknown, 0, ErrUnknownFormat
	}

	expected := format.HeaderSize() + CardSize
	if len(image) != expected {
		return format, 0, &CorruptImageError{Format: format, Actual: len(image), Expected: expected}
	}

	return format, format.HeaderSize(), nil
}

// FrameChecksum returns the XOR of the first 127 bytes of a directory frame
func FrameChecksum(frame []byte) byte {
	var acc byte
	for _, b := range frame[:frameChecksumOffset] {
		acc ^= b
	}
	return acc
}

// ValidFrame reports whether the stored checksum in byte 127 matches the frame contents
func ValidFrame(frame []byte) bool {
	return FrameChecksum(frame) == frame[frameChecksumOffset]
}
