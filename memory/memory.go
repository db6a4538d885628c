package memory

import (
	"fmt"
	"sort"
)

// Block is a contiguous run of bytes starting at an absolute address.
type Block struct {
	// Address is the absolute start address of the block
	Address uint32

	// Data holds the block contents
	Data []byte
}

// End returns the address immediately after the last byte in the block.
func (b *Block) End() uint32 {
	return b.Address + uint32(len(b.Data))
}

// Image is sparse byte storage keyed by absolute address. Blocks are kept
// sorted by address and never overlap. Image is for single-writer use; it
// performs no internal locking.
type Image struct {
	blocks []*Block
}

// NewImage creates an empty memory image.
func NewImage() *Image {
	return &Image{
		blocks: make([]*Block, 0),
	}
}

// Blocks returns the stored blocks in ascending address order.
func (img *Image) Blocks() []*Block {
	return img.blocks
}

// Size returns the total number of stored bytes across all blocks.
func (img *Image) Size() int {
	total := 0
	for _, b := range img.blocks {
		total += len(b.Data)
	}
	return total
}

// Write stores data at the given absolute address. When merge is true,
// writes that are address-contiguous with an existing block are coalesced
// into it; otherwise each write remains a separate block even if adjacent.
// A write that overlaps an existing block, or that wraps past the end of the
// 32-bit address space, is an error.
func (img *Image) Write(addr uint32, data []byte, merge bool) error {
	if len(data) == 0 {
		return nil
	}

	end := addr + uint32(len(data))
	if end < addr {
		return fmt.Errorf("write of %d bytes at 0x%08X wraps the address space", len(data), addr)
	}

	// First block starting at or after addr
	i := sort.Search(len(img.blocks), func(i int) bool {
		return img.blocks[i].Address >= addr
	})

	if i > 0 {
		if prev := img.blocks[i-1]; prev.End() > addr {
			return fmt.Errorf("write at 0x%08X overlaps block 0x%08X-0x%08X",
				addr, prev.Address, prev.End()-1)
		}
	}
	if i < len(img.blocks) {
		if next := img.blocks[i]; end > next.Address {
			return fmt.Errorf("write at 0x%08X overlaps block 0x%08X-0x%08X",
				addr, next.Address, next.End()-1)
		}
	}

	if merge {
		prevAdjacent := i > 0 && img.blocks[i-1].End() == addr
		nextAdjacent := i < len(img.blocks) && img.blocks[i].Address == end

		switch {
		case prevAdjacent && nextAdjacent:
			// Bridge the gap between two existing blocks
			prev, next := img.blocks[i-1], img.blocks[i]
			prev.Data = append(prev.Data, data...)
			prev.Data = append(prev.Data, next.Data...)
			img.blocks = append(img.blocks[:i], img.blocks[i+1:]...)
			return nil

		case prevAdjacent:
			prev := img.blocks[i-1]
			prev.Data = append(prev.Data, data...)
			return nil

		case nextAdjacent:
			next := img.blocks[i]
			merged := make([]byte, 0, len(data)+len(next.Data))
			merged = append(merged, data...)
			merged = append(merged, next.Data...)
			next.Address = addr
			next.Data = merged
			return nil
		}
	}

	block := &Block{
		Address: addr,
		Data:    append([]byte(nil), data...),
	}
	img.blocks = append(img.blocks, nil)
	copy(img.blocks[i+1:], img.blocks[i:])
	img.blocks[i] = block

	return nil
}

// Extract flattens the image into a contiguous byte slice of the given
// length starting at start. Addresses with no stored data are set to fill.
func (img *Image) Extract(start uint32, length int, fill byte) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = fill
	}

	for _, b := range img.blocks {
		if b.End() <= start {
			continue
		}
		if uint64(b.Address) >= uint64(start)+uint64(length) {
			break
		}

		var srcOff, dstOff uint32
		if b.Address < start {
			srcOff = start - b.Address
		} else {
			dstOff = b.Address - start
		}
		copy(out[dstOff:], b.Data[srcOff:])
	}

	return out
}
