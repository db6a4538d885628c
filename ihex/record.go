package ihex

import "fmt"

// RecordType identifies the kind of an Intel HEX record, decoded from the
// 2-hex-digit type code field. Only the six codes below are legal; any other
// code is a parse error.
type RecordType byte

const (
	// RecordData carries memory content at the record's address
	RecordData RecordType = 0x00

	// RecordEOF terminates the file; no records may follow it
	RecordEOF RecordType = 0x01

	// RecordExtendedSegmentAddress replaces the segment address extension
	RecordExtendedSegmentAddress RecordType = 0x02

	// RecordStartSegmentAddress carries the CS:IP entry point (ignored)
	RecordStartSegmentAddress RecordType = 0x03

	// RecordExtendedLinearAddress replaces the linear address extension
	RecordExtendedLinearAddress RecordType = 0x04

	// RecordStartLinearAddress carries the EIP entry point (ignored)
	RecordStartLinearAddress RecordType = 0x05
)

// String returns a human-readable name for the record type.
func (t RecordType) String() string {
	switch t {
	case RecordData:
		return "Data"
	case RecordEOF:
		return "End Of File"
	case RecordExtendedSegmentAddress:
		return "Extended Segment Address"
	case RecordStartSegmentAddress:
		return "Start Segment Address"
	case RecordExtendedLinearAddress:
		return "Extended Linear Address"
	case RecordStartLinearAddress:
		return "Start Linear Address"
	default:
		return fmt.Sprintf("unknown record type 0x%02X", byte(t))
	}
}

// Record represents a single decoded line of an Intel HEX file.
type Record struct {
	// Type is the record kind decoded from the type code field
	Type RecordType

	// Address is the raw 16-bit address as read from the line,
	// before any segment or linear extension is applied
	Address uint16

	// Data is the record payload (0..255 bytes)
	Data []byte

	// Checksum is the record checksum (for validation)
	Checksum byte
}
