// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/hnn/internal/matrix"
)

// Matrix is a dense row-major matrix with at least one row and one column.
type Matrix = matrix.Matrix

// SyntaxError describes malformed matrix text.
type SyntaxError = matrix.SyntaxError

// Errors

var (
	// ErrShape is returned when operand dimensions are incompatible.
	ErrShape = matrix.ErrShape

	// ErrOutOfRange is returned by At and Set for an index outside the matrix.
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrSyntax is matched by every SyntaxError.
	ErrSyntax = matrix.ErrSyntax
)

// Creation

// New creates a rows x cols matrix from values in row-major order.
// The slice is copied.
//
// Example:
//
//	m, err := matrix.New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func New(values []float64, rows, cols int) (*Matrix, error) {
	return matrix.New(values, rows, cols)
}

// FromVector creates a column vector from values.
func FromVector(values []float64) (*Matrix, error) {
	return matrix.FromVector(values)
}

// Zeros creates a rows x cols matrix of zeros.
func Zeros(rows, cols int) (*Matrix, error) {
	return matrix.Zeros(rows, cols)
}

// Random creates a rows x cols matrix of independent uniform draws in
// [0, 1). A nil rng uses the package-level math/rand source.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	m, err := matrix.Random(3, 2, rng)
func Random(rows, cols int, rng *rand.Rand) (*Matrix, error) {
	return matrix.Random(rows, cols, rng)
}

// Arithmetic

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	return matrix.Add(a, b)
}

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) {
	return matrix.Sub(a, b)
}

// Hadamard returns the element-wise product of a and b.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	return matrix.Hadamard(a, b)
}

// Mul returns the matrix product a·b. It requires a.Cols() == b.Rows().
func Mul(a, b *Matrix) (*Matrix, error) {
	return matrix.Mul(a, b)
}

// Transpose returns the transpose of m.
func Transpose(m *Matrix) *Matrix {
	return matrix.Transpose(m)
}

// Map returns a new matrix with f applied to every element of m.
func Map(m *Matrix, f func(float64) float64) *Matrix {
	return matrix.Map(m, f)
}

// Scale returns s·m.
func Scale(m *Matrix, s float64) *Matrix {
	return matrix.Scale(m, s)
}

// Text form

// Parse reads a matrix from its text form.
func Parse(s string) (*Matrix, error) {
	return matrix.Parse(s)
}

// FromDense copies a gonum matrix.
func FromDense(d mat.Matrix) (*Matrix, error) {
	return matrix.FromDense(d)
}
