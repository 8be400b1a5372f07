package nn

import (
	"bytes"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/hnn/internal/activation"
	"github.com/born-ml/hnn/internal/serialization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameParameters(t *testing.T, want, got *Network) {
	t.Helper()
	assert.Equal(t, want.Layers(), got.Layers())
	require.Len(t, got.Weights(), len(want.Weights()))
	for i := range want.Weights() {
		assert.True(t, want.Weights()[i].Equal(got.Weights()[i]), "weights[%d]", i)
		assert.True(t, want.Biases()[i].Equal(got.Biases()[i]), "biases[%d]", i)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, layers := range [][]int{{2, 1}, {2, 3, 1}, {4, 6, 5, 3}} {
		n, err := New(layers, activation.Tanh{}, 0.05, WithRand(rand.New(rand.NewSource(11))))
		require.NoError(t, err)
		require.NoError(t, n.Train([][]float64{make([]float64, layers[0])},
			[][]float64{make([]float64, layers[len(layers)-1])}, 3))

		var buf bytes.Buffer
		require.NoError(t, n.Save(&buf))

		loaded, err := Load(&buf, activation.Sigmoid{}, 0.9)
		require.NoError(t, err)
		assertSameParameters(t, n, loaded)

		// The stored activation and learning rate take precedence.
		assert.Equal(t, activation.Tanh{}, loaded.Activation())
		assert.Equal(t, 0.05, loaded.LearningRate())
	}
}

func TestLoad_ThreeLineModelUsesDefaults(t *testing.T) {
	n := fixedNetwork(t)
	m := n.Model()
	m.Activation = ""

	var buf bytes.Buffer
	require.NoError(t, serialization.Write(&buf, m))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))

	loaded, err := Load(&buf, activation.ReLU{}, 0.25)
	require.NoError(t, err)
	assertSameParameters(t, n, loaded)
	assert.Equal(t, activation.ReLU{}, loaded.Activation())
	assert.Equal(t, 0.25, loaded.LearningRate())
}

func TestLoad_PredictionsSurvive(t *testing.T) {
	n := fixedNetwork(t)
	var buf bytes.Buffer
	require.NoError(t, n.Save(&buf))

	loaded, err := Load(&buf, activation.Identity{}, 1)
	require.NoError(t, err)

	for _, in := range xorInputs {
		want, err := n.Predict(in)
		require.NoError(t, err)
		got, err := loaded.Predict(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

type halfSigmoid struct{}

func (halfSigmoid) Name() string                 { return "half-sigmoid" }
func (halfSigmoid) Apply(x float64) float64      { return 0.5 / (1 + math.Exp(-x)) }
func (halfSigmoid) Derivative(y float64) float64 { return y * (1 - 2*y) }

func TestSave_CustomActivationOmitsMeta(t *testing.T) {
	n, err := New([]int{2, 1}, halfSigmoid{}, 0.3, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.False(t, n.Model().HasMeta())

	var buf bytes.Buffer
	require.NoError(t, n.Save(&buf))
	loaded, err := Load(&buf, halfSigmoid{}, 0.3)
	require.NoError(t, err)
	assert.Equal(t, halfSigmoid{}, loaded.Activation())
}

func TestLoad_Errors(t *testing.T) {
	inputs := []string{
		"",
		"2, 1\n",
		"2, 1\n1 2 0.1 0.2\n1 1 x\n",
		"2, 1\n1 2 0.1 0.2\n1 1 0.3\nsoftmax, 0.5\n",
	}
	for _, in := range inputs {
		n, err := Load(strings.NewReader(in), activation.Sigmoid{}, 0.5)
		require.ErrorIs(t, err, ErrPersistence, "input %q", in)
		assert.Nil(t, n)
	}

	_, err := Load(strings.NewReader("2, 1\n1 2 0.1 0.2\n1 1 0.3\nsoftmax, 0.5\n"), activation.Sigmoid{}, 0.5)
	assert.ErrorIs(t, err, activation.ErrUnknown)
}

func TestLoad_InvalidDefaults(t *testing.T) {
	text := "2, 1\n1 2 0.1 0.2\n1 1 0.3\n"

	_, err := Load(strings.NewReader(text), nil, 0.5)
	require.ErrorIs(t, err, ErrTopology)

	_, err = Load(strings.NewReader(text), activation.Sigmoid{}, 0)
	require.ErrorIs(t, err, ErrLearningRate)
}

func TestSaveFile_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xor.hnn")
	n := fixedNetwork(t)

	require.NoError(t, n.SaveFile(path))
	loaded, err := LoadFile(path, activation.Identity{}, 1)
	require.NoError(t, err)
	assertSameParameters(t, n, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.hnn"), activation.Sigmoid{}, 0.5)
	require.ErrorIs(t, err, ErrPersistence)
}

func TestFromModel_DoesNotAlias(t *testing.T) {
	n := fixedNetwork(t)
	m := n.Model()

	loaded, err := FromModel(m, activation.Sigmoid{}, 0.5)
	require.NoError(t, err)
	require.NoError(t, m.Weights[0].Set(0, 0, 123))

	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, loaded.Weights()[0].Data())
}
