package ihex

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moffa90/go-ihex/memory"
)

// Constants for Intel HEX record parsing.
const (
	// RecordStart is the record start sentinel
	RecordStart = ':'

	// HeaderChars is the width of the fixed header in characters:
	// ':' + byte count (2) + address (4) + type code (2)
	HeaderChars = 9

	// ChecksumChars is the width of the trailing checksum field
	ChecksumChars = 2

	// MinimumRecordChars is the minimum length of a record line
	MinimumRecordChars = HeaderChars + ChecksumChars

	// ExtensionDataBytes is the required payload length of an
	// Extended Segment/Linear Address record
	ExtensionDataBytes = 2
)

// Parse decodes an Intel HEX file from the given file path.
// Returns the populated memory image or an error if decoding fails.
//
// Example:
//
//	img, err := ihex.Parse("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Blocks: %d\n", len(img.Blocks()))
func Parse(path string, opts ...Option) (*memory.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f, opts...)
}

// decodeState holds the per-session state of the stream decode loop.
// Extension values are replaced wholesale by each Extended* record and are
// both added to a data record's raw address to form the absolute address.
type decodeState struct {
	// linear is the upper 16 bits of the absolute address (bits 16-31)
	linear uint32

	// segment is the segment-shifted address offset (bits 4-19)
	segment uint32

	// eofSeen is set once an End Of File record has been decoded;
	// any further non-blank line is an error
	eofSeen bool
}

// ParseReader decodes an Intel HEX stream from any io.Reader.
// Lines are consumed one at a time until the stream is exhausted; trailing
// whitespace is stripped and blank lines are skipped. The decode is strictly
// sequential: data records depend on the extension state set by earlier
// Extended Address records.
//
// A stream that ends without an End Of File record is accepted. Records
// after an End Of File record are not.
//
// Example:
//
//	img, err := ihex.ParseReader(strings.NewReader(hexContent))
func ParseReader(r io.Reader, opts ...Option) (*memory.Image, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	img := memory.NewImage()
	state := decodeState{}
	scanner := bufio.NewScanner(r)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), " \t\r")

		// Skip blank lines
		if line == "" {
			continue
		}

		if state.eofSeen {
			return nil, &ParseError{Line: lineNum, Err: errors.New("record found after EOF record")}
		}

		record, err := DecodeRecord(line)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Err: err}
		}

		if err := state.apply(record, img, &cfg); err != nil {
			return nil, &ParseError{Line: lineNum, Err: err}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: lineNum, Err: fmt.Errorf("failed to read stream: %w", err)}
	}

	cfg.logger.Info("decode complete",
		"blocks", len(img.Blocks()),
		"bytes", img.Size(),
	)

	return img, nil
}

// apply dispatches a decoded record, updating the session state or writing
// to the memory image.
func (s *decodeState) apply(record *Record, img *memory.Image, cfg *config) error {
	switch record.Type {
	case RecordData:
		addr := uint32(record.Address) + s.linear + s.segment
		return img.Write(addr, record.Data, !cfg.noBlockMerging)

	case RecordEOF:
		s.eofSeen = true

	case RecordExtendedLinearAddress:
		if len(record.Data) != ExtensionDataBytes {
			return fmt.Errorf("invalid data length for Extended Linear Address record: got %d bytes, expected %d",
				len(record.Data), ExtensionDataBytes)
		}
		s.linear = uint32(record.Data[0])<<24 | uint32(record.Data[1])<<16
		cfg.logger.Debug("linear address extension", "value", fmt.Sprintf("0x%08X", s.linear))

	case RecordExtendedSegmentAddress:
		if len(record.Data) != ExtensionDataBytes {
			return fmt.Errorf("invalid data length for Extended Segment Address record: got %d bytes, expected %d",
				len(record.Data), ExtensionDataBytes)
		}
		s.segment = uint32(record.Data[0])<<12 | uint32(record.Data[1])<<4
		cfg.logger.Debug("segment address extension", "value", fmt.Sprintf("0x%08X", s.segment))

	case RecordStartSegmentAddress, RecordStartLinearAddress:
		// Execution entry point metadata, not memory content
	}

	return nil
}

// DecodeRecord decodes a single Intel HEX line into a Record.
//
// Record format:
//
//	:BBAAAATT<data...>CC
//
// All fields are hex-encoded and positional: BB is the byte count, AAAA the
// 16-bit address (big-endian), TT the record type code, then BB data bytes
// and the checksum CC.
//
// Example: ":0400000001020304F2"
//
//	ByteCount: 0x04
//	Address:   0x0000
//	Type:      0x00 (Data)
//	Data:      [0x01, 0x02, 0x03, 0x04]
//	Checksum:  0xF2
//
// The line must already be stripped of trailing whitespace and non-empty.
// Structural checks run before content checks, which run before the checksum:
// a checksum is only meaningful once the record is structurally sound.
func DecodeRecord(line string) (*Record, error) {
	if len(line) < MinimumRecordChars {
		return nil, fmt.Errorf("truncated record: got %d characters, minimum is %d",
			len(line), MinimumRecordChars)
	}

	if line[0] != RecordStart {
		return nil, fmt.Errorf("expected record start '%c', got %q (0x%02X)",
			RecordStart, line[0], line[0])
	}

	header, err := hexField(line[1:HeaderChars], "record header")
	if err != nil {
		return nil, err
	}

	count := header[0]
	address := uint16(header[1])<<8 | uint16(header[2])
	code := header[3]

	expectedLen := MinimumRecordChars + 2*int(count)
	if len(line) != expectedLen {
		return nil, fmt.Errorf("invalid record length: got %d characters, expected %d for %d data bytes",
			len(line), expectedLen, count)
	}

	typ, err := recordTypeFromCode(code)
	if err != nil {
		return nil, err
	}

	data, err := hexField(line[HeaderChars:len(line)-ChecksumChars], "data field")
	if err != nil {
		return nil, err
	}

	declared, err := hexField(line[len(line)-ChecksumChars:], "checksum field")
	if err != nil {
		return nil, err
	}

	if computed := checksum(count, address, typ, data); computed != declared[0] {
		return nil, fmt.Errorf("invalid checksum: computed 0x%02X, declared 0x%02X",
			computed, declared[0])
	}

	return &Record{
		Type:     typ,
		Address:  address,
		Data:     data,
		Checksum: declared[0],
	}, nil
}

// hexField decodes a positional hex window, naming the field on failure.
func hexField(s, field string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hexadecimal value %q in %s", s, field)
	}
	return b, nil
}

// recordTypeFromCode maps a type code to a RecordType. The legal code range
// is fully known at decode time; anything else is an error, not a default.
func recordTypeFromCode(code byte) (RecordType, error) {
	switch t := RecordType(code); t {
	case RecordData, RecordEOF,
		RecordExtendedSegmentAddress, RecordStartSegmentAddress,
		RecordExtendedLinearAddress, RecordStartLinearAddress:
		return t, nil
	default:
		return 0, fmt.Errorf("unsupported record type: 0x%02X", code)
	}
}
