package psx

import (
	"bytes"
	"testing"
)

func TestParseBlockStatus(t *testing.T) {
	tests := []struct {
		value        byte
		valid        bool
		metadata     bool
		continuation bool
		extractable  bool
	}{
		{0x51, true, true, false, true},
		{0x52, true, false, true, false},
		{0x53, true, false, true, false},
		{0xA0, true, false, false, false},
		{0xA1, true, true, true, true},
		{0xFF, true, false, false, false},
		{0x00, false, false, false, false},
		{0x99, false, false, false, false},
	}

	for _, tt := range tests {
		status, ok := ParseBlockStatus(tt.value)
		if ok != tt.valid {
			t.Errorf("ParseBlockStatus(0x%02X) ok = %v, want %v", tt.value, ok, tt.valid)
			continue
		}
		if got := status.HasMetadata(); got != tt.metadata {
			t.Errorf("BlockStatus(0x%02X).HasMetadata() = %v, want %v", tt.value, got, tt.metadata)
		}
		if got := status.IsContinuation(); got != tt.continuation {
			t.Errorf("BlockStatus(0x%02X).IsContinuation() = %v, want %v", tt.value, got, tt.continuation)
		}
		if got := status.IsExtractable(); got != tt.extractable {
			t.Errorf("BlockStatus(0x%02X).IsExtractable() = %v, want %v", tt.value, got, tt.extractable)
		}
	}
}

func TestBlockStatus_String(t *testing.T) {
	if got := StatusDeleted.String(); got != "Deleted block" {
		t.Errorf("StatusDeleted.String() = %q, want %q", got, "Deleted block")
	}
	if got := BlockStatus(0x42).String(); got != "Invalid status 0x42" {
		t.Errorf("BlockStatus(0x42).String() = %q", got)
	}
}

func TestLookupRegion(t *testing.T) {
	tests := []struct {
		code string
		want Region
		ok   bool
	}{
		{"BI", RegionJapan, true},
		{"bi", RegionJapan, true},
		{"BA", RegionAmerica, true},
		{"ba", RegionAmerica, true},
		{"BE", RegionEurope, true},
		{"be", RegionEurope, true},
		{"Be", "", false},
		{"XX", "", false},
	}

	for _, tt := range tests {
		got, ok := LookupRegion([2]byte{tt.code[0], tt.code[1]})
		if ok != tt.ok || got != tt.want {
			t.Errorf("LookupRegion(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSaveLengthTable(t *testing.T) {
	for blocks := 1; blocks <= LastDataBlock; blocks++ {
		code, err := SaveLengthCode(blocks)
		if err != nil {
			t.Fatalf("SaveLengthCode(%d) error: %v", blocks, err)
		}
		got, ok := LookupSaveLength(code)
		if !ok || got != blocks {
			t.Errorf("LookupSaveLength(% X) = (%d, %v), want (%d, true)", code, got, ok, blocks)
		}
	}

	if code, _ := SaveLengthCode(2); !bytes.Equal(code[:], []byte{0x00, 0x40, 0x00}) {
		t.Errorf("SaveLengthCode(2) = % X, want 00 40 00", code)
	}
	if code, _ := SaveLengthCode(8); !bytes.Equal(code[:], []byte{0x00, 0x00, 0x01}) {
		t.Errorf("SaveLengthCode(8) = % X, want 00 00 01", code)
	}

	for _, blocks := range []int{0, 16, -1} {
		if _, err := SaveLengthCode(blocks); err == nil {
			t.Errorf("SaveLengthCode(%d) should fail", blocks)
		}
	}

	if _, ok := LookupSaveLength([3]byte{0x00, 0x10, 0x00}); ok {
		t.Error("LookupSaveLength(00 10 00) should not resolve")
	}
}

func TestContainerFormat(t *testing.T) {
	if FormatGME.HeaderSize() != 3904 || FormatMCD.HeaderSize() != 0 {
		t.Errorf("header sizes = %d/%d, want 3904/0", FormatGME.HeaderSize(), FormatMCD.HeaderSize())
	}
	if FormatGME.String() != "gme" || FormatMCD.String() != "mcd" || FormatUnknown.String() != "unknown" {
		t.Error("unexpected ContainerFormat names")
	}
}
