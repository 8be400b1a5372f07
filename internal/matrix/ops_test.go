package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randomMatrix(t *testing.T, rng *rand.Rand, rows, cols int) *Matrix {
	t.Helper()
	m, err := Random(rows, cols, rng)
	require.NoError(t, err)
	return m
}

func TestAdd(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustNew(t, []float64{10, 20, 30, 40}, 2, 2)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Data())
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data(), "operand must not change")
}

func TestAdd_Commutative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, s := range [][2]int{{1, 1}, {3, 2}, {5, 7}} {
		a := randomMatrix(t, rng, s[0], s[1])
		b := randomMatrix(t, rng, s[0], s[1])

		ab, err := Add(a, b)
		require.NoError(t, err)
		ba, err := Add(b, a)
		require.NoError(t, err)
		assert.True(t, ab.Equal(ba))
	}
}

func TestSub_AntiCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, s := range [][2]int{{1, 1}, {4, 3}, {2, 9}} {
		a := randomMatrix(t, rng, s[0], s[1])
		b := randomMatrix(t, rng, s[0], s[1])

		ab, err := Sub(a, b)
		require.NoError(t, err)
		ba, err := Sub(b, a)
		require.NoError(t, err)

		negated := Map(ba, func(v float64) float64 { return -v })
		assert.True(t, ab.Equal(negated))
	}
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 3, 2)

	ops := map[string]func(a, b *Matrix) (*Matrix, error){
		"add":      Add,
		"sub":      Sub,
		"hadamard": Hadamard,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			out, err := op(a, b)
			require.ErrorIs(t, err, ErrShape)
			assert.Nil(t, out)
			assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())
			assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, b.Data())
		})
	}
}

func TestHadamard(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustNew(t, []float64{2, 0.5, -1, 0}, 2, 2)

	out, err := Hadamard(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, -3, 0}, out.Data())
}

func TestMul(t *testing.T) {
	// [1 2 3]   [7  8 ]   [58  64 ]
	// [4 5 6] · [9  10] = [139 154]
	//           [11 12]
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustNew(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2)

	out, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Rows())
	assert.Equal(t, 2, out.Cols())
	assert.Equal(t, []float64{58, 64, 139, 154}, out.Data())
}

func TestMul_InnerDimensionMismatch(t *testing.T) {
	a, err := Zeros(2, 3)
	require.NoError(t, err)
	b, err := Zeros(2, 3)
	require.NoError(t, err)

	out, err := Mul(a, b)
	require.ErrorIs(t, err, ErrShape)
	assert.Nil(t, out)
}

func TestMul_ShapeAndOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cases := [][3]int{{1, 1, 1}, {2, 3, 4}, {5, 1, 5}, {1, 6, 1}, {4, 4, 4}}

	for _, c := range cases {
		a := randomMatrix(t, rng, c[0], c[1])
		b := randomMatrix(t, rng, c[1], c[2])

		out, err := Mul(a, b)
		require.NoError(t, err)
		assert.Equal(t, c[0], out.Rows())
		assert.Equal(t, c[2], out.Cols())

		var want mat.Dense
		want.Mul(a.ToDense(), b.ToDense())
		assert.True(t, mat.EqualApprox(out.ToDense(), &want, 1e-12))
	}
}

func TestMul_OuterProduct(t *testing.T) {
	col := mustNew(t, []float64{1, 2, 3}, 3, 1)
	row := mustNew(t, []float64{4, 5}, 1, 2)

	out, err := Mul(col, row)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 8, 10, 12, 15}, out.Data())
}

func TestTranspose(t *testing.T) {
	m := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	tr := Transpose(m)

	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())
	assert.True(t, mat.Equal(tr.ToDense(), m.ToDense().T()))
}

func TestTranspose_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, s := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 7}} {
		m := randomMatrix(t, rng, s[0], s[1])
		assert.True(t, Transpose(Transpose(m)).Equal(m))
	}
}

func TestMap_DoesNotMutate(t *testing.T) {
	m := mustNew(t, []float64{1, 2, 3}, 3, 1)
	doubled := Map(m, func(v float64) float64 { return 2 * v })

	assert.Equal(t, []float64{2, 4, 6}, doubled.Data())
	assert.Equal(t, []float64{1, 2, 3}, m.Data())
}

func TestScale(t *testing.T) {
	m := mustNew(t, []float64{1, -2, 4}, 1, 3)
	assert.Equal(t, []float64{0.5, -1, 2}, Scale(m, 0.5).Data())
	assert.Equal(t, []float64{1, -2, 4}, m.Data())
}

func TestAddInPlace(t *testing.T) {
	m := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, m.AddInPlace(mustNew(t, []float64{1, 1, 1, 1}, 2, 2)))
	assert.Equal(t, []float64{2, 3, 4, 5}, m.Data())

	err := m.AddInPlace(mustNew(t, []float64{1, 1, 1, 1}, 4, 1))
	require.ErrorIs(t, err, ErrShape)
	assert.Equal(t, []float64{2, 3, 4, 5}, m.Data(), "failed update must not mutate")
}

func TestDenseRoundTrip(t *testing.T) {
	m := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 3, 2)
	back, err := FromDense(m.ToDense())
	require.NoError(t, err)
	assert.True(t, back.Equal(m))

	tr, err := FromDense(m.ToDense().T())
	require.NoError(t, err)
	assert.True(t, tr.Equal(Transpose(m)))
}
