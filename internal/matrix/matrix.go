// Package matrix implements the dense float64 matrix engine used by the
// network trainer.
//
// A Matrix owns a single row-major buffer plus its row and column counts.
// The shape is fixed at construction: operations that change the shape
// (Transpose, Mul) allocate a new Matrix, and every binary operation checks
// shapes before touching any buffer. Matrices are treated as values: all
// operations return fresh matrices except AddInPlace, which exists for the
// weight update in the training loop.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a dense rows x cols matrix of float64 values stored in row-major order.
type Matrix struct {
	data []float64
	rows int
	cols int
}

// New creates a matrix from values laid out in row-major order.
//
// The values are copied. Returns ErrShape if rows or cols is not positive
// or len(values) != rows*cols.
//
// Example:
//
//	m, err := matrix.New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func New(values []float64, rows, cols int) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("new %dx%d requires %d values, got %d: %w",
			rows, cols, rows*cols, len(values), ErrShape)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Matrix{data: data, rows: rows, cols: cols}, nil
}

// FromVector lifts a flat vector into a column vector of shape (len(values), 1).
func FromVector(values []float64) (*Matrix, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("from vector: empty input: %w", ErrShape)
	}
	return New(values, len(values), 1)
}

// newUnchecked wraps data without copying; callers guarantee the invariant.
func newUnchecked(data []float64, rows, cols int) *Matrix {
	return &Matrix{data: data, rows: rows, cols: cols}
}

func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("dimensions %dx%d must be positive: %w", rows, cols, ErrShape)
	}
	if rows > math.MaxInt/cols {
		return fmt.Errorf("dimensions %dx%d overflow the element count: %w", rows, cols, ErrShape)
	}
	return nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.rows, m.cols }

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// index is the single place where (row, col) maps to a buffer offset.
func (m *Matrix) index(i, j int) int {
	return i*m.cols + j
}

func (m *Matrix) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) (float64, error) {
	if !m.inBounds(i, j) {
		return 0, fmt.Errorf("at (%d,%d) of %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	return m.data[m.index(i, j)], nil
}

// Set assigns v to the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) error {
	if !m.inBounds(i, j) {
		return fmt.Errorf("set (%d,%d) of %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	m.data[m.index(i, j)] = v
	return nil
}

// Data returns a copy of the row-major values.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// RawData returns the underlying buffer without copying.
// Writes through the returned slice modify the matrix.
func (m *Matrix) RawData() []float64 {
	return m.data
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return newUnchecked(m.Data(), m.rows, m.cols)
}

// Equal reports whether m and other have the same shape and identical values.
// NaN is never equal to anything, so a matrix holding NaN is not Equal to
// itself; use SameValues to compare such matrices.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.SameShape(other) && floats.Equal(m.data, other.data)
}

// SameValues is like Equal but treats NaN as equal to NaN.
func (m *Matrix) SameValues(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		w := other.data[i]
		if v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
			return false
		}
	}
	return true
}

// EqualApprox reports whether m and other have the same shape and all values
// agree within tol (absolute or relative).
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.SameShape(other) && floats.EqualApprox(m.data, other.data, tol)
}
