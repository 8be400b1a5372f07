package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToDense copies m into a gonum *mat.Dense.
func (m *Matrix) ToDense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.Data())
}

// FromDense copies any gonum matrix into a new Matrix.
func FromDense(d mat.Matrix) (*Matrix, error) {
	rows, cols := d.Dims()
	out, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[out.index(i, j)] = d.At(i, j)
		}
	}
	return out, nil
}
