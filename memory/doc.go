// Package memory provides a sparse memory image built from firmware decode
// output.
//
// An Image holds non-overlapping blocks of bytes keyed by absolute address.
// Writes that are address-contiguous with existing blocks can optionally be
// merged, so a file of sequential data records decodes into one block per
// contiguous region rather than one block per record.
//
// Example:
//
//	img := memory.NewImage()
//	_ = img.Write(0x0000, []byte{0x01, 0x02}, true)
//	_ = img.Write(0x0002, []byte{0x03, 0x04}, true)
//	// img now holds a single block 0x0000-0x0003
//
//	bin := img.Extract(0x0000, 16, 0xFF)
package memory
