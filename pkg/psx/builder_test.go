package psx

import "testing"

// cardBuilder assembles synthetic memory card images for tests
type cardBuilder struct {
	t      *testing.T
	image  []byte
	offset int
}

func newCardBuilder(t *testing.T, format ContainerFormat) *cardBuilder {
	t.Helper()
	b := &cardBuilder{
		t:      t,
		image:  make([]byte, format.HeaderSize()+CardSize),
		offset: format.HeaderSize(),
	}
	if format == FormatGME {
		copy(b.image, gmeMagic)
	}

	control := b.image[b.offset:]
	copy(control, "MC")
	control[FrameSize-1] = ControlChecksum

	for n := FirstDataBlock; n <= LastDataBlock; n++ {
		b.frame(n)[frameStatusOffset] = byte(StatusUnused)
	}
	return b.seal()
}

func (b *cardBuilder) frame(n int) []byte {
	start := b.offset + n*FrameSize
	return b.image[start : start+FrameSize]
}

func (b *cardBuilder) block(n int) []byte {
	start := BlockOffset(b.offset, n)
	return b.image[start : start+BlockSize]
}

func (b *cardBuilder) status(n int, s BlockStatus) *cardBuilder {
	b.frame(n)[frameStatusOffset] = byte(s)
	return b
}

// save writes a First block directory frame followed by Middle/Last frames for a multi-block save
func (b *cardBuilder) save(n, blocks int, country, product, playthrough string) *cardBuilder {
	b.t.Helper()
	b.metadata(n, StatusFirst, blocks, country, product, playthrough)
	for i := 1; i < blocks; i++ {
		s := StatusMiddle
		if i == blocks-1 {
			s = StatusLast
		}
		b.status(n+i, s)
	}
	return b
}

func (b *cardBuilder) metadata(n int, s BlockStatus, blocks int, country, product, playthrough string) *cardBuilder {
	b.t.Helper()
	code, err := SaveLengthCode(blocks)
	if err != nil {
		b.t.Fatalf("SaveLengthCode(%d): %v", blocks, err)
	}

	f := b.frame(n)
	f[frameStatusOffset] = byte(s)
	copy(f[frameSaveLengthOffset:], code[:])
	copy(f[frameCountryOffset:frameCountryOffset+2], country)
	copy(f[frameProductOffset:framePlaythroughOffset], product)
	copy(f[framePlaythroughOffset:framePlaythroughEnd], playthrough)
	return b
}

// title writes the "SC" magic and a raw Shift-JIS title into a data block
func (b *cardBuilder) title(n int, raw []byte) *cardBuilder {
	data := b.block(n)
	copy(data, normalBlockMagic)
	copy(data[TitleOffset:TitleOffset+TitleLength], raw)
	return b
}

// fill sets every payload byte of a data block to v
func (b *cardBuilder) fill(n int, v byte) *cardBuilder {
	data := b.block(n)
	for i := range data {
		data[i] = v
	}
	return b
}

// seal recomputes the checksum of every directory frame
func (b *cardBuilder) seal() *cardBuilder {
	for n := FirstDataBlock; n <= LastDataBlock; n++ {
		f := b.frame(n)
		f[frameChecksumOffset] = FrameChecksum(f)
	}
	return b
}

func (b *cardBuilder) bytes() []byte {
	return b.image
}

// sjis is a fullwidth "ＡＢＣ" encoded in Shift-JIS
var sjis = []byte{0x82, 0x60, 0x82, 0x61, 0x82, 0x62}
