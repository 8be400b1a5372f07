package matrix

import (
	"math/rand"
)

// Zeros creates a rows x cols matrix filled with zeros.
func Zeros(rows, cols int) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, err
	}
	return newUnchecked(make([]float64, rows*cols), rows, cols), nil
}

// Random creates a rows x cols matrix with independent values drawn
// uniformly from [0, 1).
//
// A nil rng draws from the package-level math/rand source. Pass a seeded
// *rand.Rand for reproducible initialization.
func Random(rows, cols int, rng *rand.Rand) (*Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		if rng != nil {
			m.data[i] = rng.Float64()
		} else {
			m.data[i] = rand.Float64() //nolint:gosec // G404: weight initialization is not security-critical
		}
	}
	return m, nil
}
