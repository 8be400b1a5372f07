package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; every failing
// operation wraps one of these with the shapes involved.
var (
	// ErrShape is returned when operand shapes are incompatible or a
	// requested shape does not fit the supplied values.
	ErrShape = errors.New("matrix: shape mismatch")

	// ErrOutOfRange is returned by At/Set for indices outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSyntax is returned when a textual matrix cannot be parsed.
	ErrSyntax = errors.New("matrix: invalid syntax")
)

// SyntaxError describes why a textual matrix could not be decoded.
type SyntaxError struct {
	Token   string // Offending token, if any
	Details string // What was expected
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%v: %s (token %q)", ErrSyntax, e.Details, e.Token)
	}
	return fmt.Sprintf("%v: %s", ErrSyntax, e.Details)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func shapeErr(op string, a, b *Matrix) error {
	return fmt.Errorf("%s: %dx%d and %dx%d: %w", op, a.rows, a.cols, b.rows, b.cols, ErrShape)
}
