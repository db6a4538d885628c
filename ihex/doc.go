// Package ihex provides decoding of Intel HEX firmware images.
//
// # Intel HEX Format
//
// An Intel HEX file is a textual encoding of sparse binary data. Each line
// is one record, hex-encoded and checksum-protected:
//
//	:BBAAAATT<data...>CC
//
// Example record:
//
//	:0400000001020304F2
//	  : = record start sentinel
//	  04 = byte count (4 data bytes)
//	  0000 = 16-bit address
//	  00 = record type (Data)
//	  01020304 = data
//	  F2 = checksum (2's complement of the sum of all preceding fields)
//
// Record types:
//
//	00 Data
//	01 End Of File
//	02 Extended Segment Address
//	03 Start Segment Address
//	04 Extended Linear Address
//	05 Start Linear Address
//
// A record's absolute address is its raw 16-bit address plus the currently
// active extensions. An Extended Linear Address record supplies the upper
// 16 bits of a 32-bit address; an Extended Segment Address record supplies a
// segment offset shifted into bits 4-19. Each new extension record replaces
// the previous value of its kind. Start Segment/Linear Address records carry
// the execution entry point and do not affect memory content.
//
// # Usage
//
// Decode a .hex file from disk:
//
//	img, err := ihex.Parse("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, block := range img.Blocks() {
//	    fmt.Printf("0x%08X: %d bytes\n", block.Address, len(block.Data))
//	}
//
// Decode from an io.Reader:
//
//	img, err := ihex.ParseReader(strings.NewReader(hexContent))
//
// By default data records that are address-contiguous are merged into a
// single block; pass WithNoBlockMerging to keep each record separate.
//
// # Error Handling
//
// All decode failures are returned as a *ParseError carrying the 1-based
// line number and the specific reason:
//   - Truncated records and wrong record length
//   - Missing ':' start sentinel
//   - Invalid hex encoding in any field
//   - Unsupported record type codes
//   - Checksum mismatches (computed and declared values reported)
//   - Records appearing after the End Of File record
//
// The first error aborts the decode; there is no partial result.
package ihex
