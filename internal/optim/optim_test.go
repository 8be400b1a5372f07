package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/hnn/internal/matrix"
	"github.com/born-ml/hnn/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSGD_InvalidLR(t *testing.T) {
	for _, lr := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err := optim.NewSGD(optim.Config{LR: lr})
		require.ErrorIs(t, err, optim.ErrLearningRate, "lr=%v", lr)
	}
}

// TestSGD_SimpleUpdate checks param += lr * grad.
func TestSGD_SimpleUpdate(t *testing.T) {
	sgd, err := optim.NewSGD(optim.Config{LR: 0.1})
	require.NoError(t, err)
	assert.Equal(t, 0.1, sgd.LR())

	param, err := matrix.New([]float64{2.0, -1.0}, 2, 1)
	require.NoError(t, err)
	grad, err := matrix.New([]float64{1.0, 3.0}, 2, 1)
	require.NoError(t, err)

	delta := sgd.Scale(grad)
	assert.InDeltaSlice(t, []float64{0.1, 0.3}, delta.Data(), 1e-12)
	assert.Equal(t, []float64{1.0, 3.0}, grad.Data(), "gradient must not change")

	require.NoError(t, sgd.Step(param, delta))
	assert.InDeltaSlice(t, []float64{2.1, -0.7}, param.Data(), 1e-12)
}

func TestSGD_StepShapeMismatch(t *testing.T) {
	sgd, err := optim.NewSGD(optim.Config{LR: 0.5})
	require.NoError(t, err)

	param, err := matrix.New([]float64{1, 2}, 2, 1)
	require.NoError(t, err)
	delta, err := matrix.New([]float64{1, 2}, 1, 2)
	require.NoError(t, err)

	require.ErrorIs(t, sgd.Step(param, delta), matrix.ErrShape)
	assert.Equal(t, []float64{1, 2}, param.Data())
}

var _ optim.Optimizer = (*optim.SGD)(nil)
