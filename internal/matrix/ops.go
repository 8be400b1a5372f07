package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Add returns a + b element-wise.
func Add(a, b *Matrix) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, shapeErr("add", a, b)
	}
	out := make([]float64, len(a.data))
	floats.AddTo(out, a.data, b.data)
	return newUnchecked(out, a.rows, a.cols), nil
}

// Sub returns a - b element-wise.
func Sub(a, b *Matrix) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, shapeErr("sub", a, b)
	}
	out := make([]float64, len(a.data))
	floats.SubTo(out, a.data, b.data)
	return newUnchecked(out, a.rows, a.cols), nil
}

// Hadamard returns the element-wise product of a and b.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	if !a.SameShape(b) {
		return nil, shapeErr("hadamard", a, b)
	}
	out := make([]float64, len(a.data))
	floats.MulTo(out, a.data, b.data)
	return newUnchecked(out, a.rows, a.cols), nil
}

// Mul returns the matrix product a·b with shape (a.Rows(), b.Cols()).
//
// Returns ErrShape unless a.Cols() == b.Rows().
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("mul: inner dimensions %d and %d differ (%dx%d · %dx%d): %w",
			a.cols, b.rows, a.rows, a.cols, b.rows, b.cols, ErrShape)
	}

	m, k, n := a.rows, a.cols, b.cols
	out := newUnchecked(make([]float64, m*n), m, n)

	// C[i,j] = sum_k A[i,k] * B[k,j]
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a.data[a.index(i, kIdx)] * b.data[b.index(kIdx, j)]
			}
			out.data[out.index(i, j)] = sum
		}
	}
	return out, nil
}

// Transpose returns a new (cols x rows) matrix with result[c][r] = m[r][c].
func Transpose(m *Matrix) *Matrix {
	out := newUnchecked(make([]float64, len(m.data)), m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[out.index(c, r)] = m.data[m.index(r, c)]
		}
	}
	return out
}

// Map returns a new matrix with f applied to every element. m is not modified.
func Map(m *Matrix, f func(float64) float64) *Matrix {
	out := make([]float64, len(m.data))
	for i, v := range m.data {
		out[i] = f(v)
	}
	return newUnchecked(out, m.rows, m.cols)
}

// Scale returns s·m.
func Scale(m *Matrix, s float64) *Matrix {
	out := make([]float64, len(m.data))
	floats.ScaleTo(out, s, m.data)
	return newUnchecked(out, m.rows, m.cols)
}

// AddInPlace accumulates other into m.
//
// The shapes are checked first; on ErrShape m is left untouched.
func (m *Matrix) AddInPlace(other *Matrix) error {
	if !m.SameShape(other) {
		return shapeErr("add in place", m, other)
	}
	floats.Add(m.data, other.data)
	return nil
}
