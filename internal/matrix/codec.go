package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// The textual form of a matrix is
//
//	<rows> <cols> <v0> <v1> ... <vN-1>
//
// separated by single spaces, values in row-major order and formatted with
// the shortest representation that parses back to the identical float64.

// MarshalText implements encoding.TextMarshaler.
func (m *Matrix) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// String returns the textual form of m.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.rows))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(m.cols))
	for _, v := range m.data {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return sb.String()
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// On error m is left unchanged.
func (m *Matrix) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// Parse decodes the textual form produced by String.
//
// Returns a *SyntaxError (matching ErrSyntax) for malformed text and
// ErrShape when the value count does not match the declared dimensions.
func Parse(s string) (*Matrix, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil, &SyntaxError{Token: s, Details: "expected rows and columns"}
	}

	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, &SyntaxError{Token: fields[0], Details: "row count is not an integer"}
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, &SyntaxError{Token: fields[1], Details: "column count is not an integer"}
	}
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	values := make([]float64, len(fields)-2)
	for i, tok := range fields[2:] {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &SyntaxError{Token: tok, Details: fmt.Sprintf("value %d is not a number", i)}
		}
		values[i] = v
	}

	m, err := New(values, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return m, nil
}
