package serialization

import (
	"errors"
	"fmt"
)

// ErrPersistence is matched by every failure to read or write a model.
var ErrPersistence = errors.New("serialization: persistence failure")

// ParseError reports a malformed model file.
type ParseError struct {
	Line    int    // 1-based line number, 0 when the whole file is at fault
	Details string // What was wrong
	Err     error  // Underlying cause, may be nil
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := "serialization: " + e.Details
	if e.Line > 0 {
		msg = fmt.Sprintf("serialization: line %d: %s", e.Line, e.Details)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both ErrPersistence and the underlying cause to errors.Is.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}

func parseErr(line int, err error, format string, args ...any) error {
	return &ParseError{Line: line, Details: fmt.Sprintf(format, args...), Err: err}
}

// ioErr marks an I/O failure as a persistence error while keeping the cause.
func ioErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, err, ErrPersistence)
}
