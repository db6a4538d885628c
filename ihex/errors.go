package ihex

import (
	"errors"
	"fmt"
)

// ParseError reports a decode failure at a specific line of the input.
// The line decoder itself returns untagged errors; the stream decode loop is
// the only place that attaches line numbers.
type ParseError struct {
	// Line is the 1-based line number at which decoding failed
	Line int

	// Err is the underlying reason
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
