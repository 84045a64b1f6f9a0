package psx

import "testing"

func TestDecodeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"ascii", []byte("GRAN TURISMO\x00garbage"), "GRAN TURISMO"},
		{"fullwidth", append(append([]byte(nil), sjis...), 0x00, 0x41), "ＡＢＣ"},
		{"halfwidth katakana", []byte{0xB6, 0xC0, 0x00}, "ｶﾀ"},
		{"invalid trail byte", []byte{'A', 0x82, 0x20, 'B', 0x00}, "A� B"},
		{"lone 0x80", []byte{'A', 0x80, 'B', 0x00}, "A\uFFFDB"},
		{"invalid single bytes", []byte{'A', 0x80, 'B', 0xA0, 'C', 0xFD, 0x00}, "A\uFFFDB\uFFFDC\uFFFD"},
		{"control before text", []byte{0x0A, 'A', 'B'}, ""},
		{"no terminator", []byte("SAVE"), "SAVE"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeTitle(tt.raw); got != tt.want {
				t.Errorf("DecodeTitle(% X) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHasSaveHeader(t *testing.T) {
	if !HasSaveHeader([]byte("SC\x11\x01")) {
		t.Error("HasSaveHeader should accept blocks starting with SC")
	}
	if HasSaveHeader([]byte("sc\x11\x01")) || HasSaveHeader([]byte("S")) || HasSaveHeader(nil) {
		t.Error("HasSaveHeader should reject blocks without the SC magic")
	}
}
