// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a dense, row-major matrix of float64 values.
//
// Every operation returns a new Matrix except AddInPlace and Set. Shape
// violations are reported as errors matching ErrShape, and a failed
// operation leaves its operands unchanged.
//
// Example:
//
//	a, _ := matrix.New([]float64{1, 2, 3, 4}, 2, 2)
//	b, _ := matrix.FromVector([]float64{1, 1})
//	c, err := matrix.Mul(a, b) // 2x1: [3 7]
//
// # Text Form
//
// A matrix serializes as its dimensions followed by its values in row-major
// order, separated by single spaces:
//
//	2 2 1 2 3 4
//
// Values use the shortest representation that parses back to the same
// float64, so Parse(m.String()) is equal to m. Matrix implements
// encoding.TextMarshaler and encoding.TextUnmarshaler.
//
// # Gonum Interop
//
// ToDense and FromDense convert to and from gonum's mat.Dense for code that
// needs factorizations or other routines outside this package.
package matrix
