package psx

import "fmt"

// Range is a half-open byte range [Start, End) within the card image
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range
func (r Range) Len() int { return r.End - r.Start }

func (r Range) String() string {
	return fmt.Sprintf("0x%05X-0x%05X", r.Start, r.End)
}

// WalkSaveChain returns the image ranges backing the save that starts at block start.
// statuses is indexed by block number. The chain is positional: it continues
// through the following Middle, Last or Deleted blocks regardless of the
// next-block pointer. Only the first block carries the 512-byte title/icon header.
func WalkSaveChain(statuses [BlockCount]BlockStatus, start, dataOffset int) ([]Range, error) {
	if start < FirstDataBlock || start > LastDataBlock {
		return nil, &IndexOutOfRangeError{Block: start}
	}
	if !statuses[start].IsExtractable() {
		return nil, &NotExtractableError{Block: start, Status: statuses[start]}
	}

	first := BlockOffset(dataOffset, start)
	ranges := []Range{{Start: first + SaveHeaderSize, End: first + BlockSize}}

	for n := start + 1; n <= LastDataBlock && statuses[n].IsContinuation(); n++ {
		offset := BlockOffset(dataOffset, n)
		ranges = append(ranges, Range{Start: offset, End: offset + BlockSize})
	}

	return ranges, nil
}

// ChainBlocks returns the block numbers covered by a chain produced by WalkSaveChain
func ChainBlocks(ranges []Range, dataOffset int) []int {
	blocks := make([]int, 0, len(ranges))
	for _, r := range ranges {
		blocks = append(blocks, (r.Start-dataOffset)/BlockSize)
	}
	return blocks
}
