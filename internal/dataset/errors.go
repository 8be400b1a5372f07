package dataset

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFormat is matched by every malformed data file.
var ErrFormat = errors.New("dataset: malformed data")

// LineError reports a malformed line of a data file.
type LineError struct {
	Line    int // 1-based line number, 0 when the whole input is at fault
	Details string
	Err     error // may be nil
}

func (e *LineError) Error() string {
	msg := "dataset: " + e.Details
	if e.Line > 0 {
		msg = fmt.Sprintf("dataset: line %d: %s", e.Line, e.Details)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrFormat and the underlying cause.
func (e *LineError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}

func lineErr(line int, err error, format string, args ...any) error {
	return &LineError{Line: line, Details: fmt.Sprintf(format, args...), Err: err}
}
