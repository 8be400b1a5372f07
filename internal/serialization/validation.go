package serialization

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/hnn/internal/matrix"
)

// Validation limits for resource protection.
const (
	MaxModelSize = 256 * 1024 * 1024 // Maximum model file size in bytes
)

// Validate checks that the model is internally consistent: at least two
// positive layer sizes, one weight and one bias matrix per layer transition
// with matching shapes, and well-formed metadata.
func Validate(m Model) error {
	if len(m.Layers) < 2 {
		return parseErr(lineLayers, nil, "need at least 2 layers, got %d", len(m.Layers))
	}
	for i, size := range m.Layers {
		if size <= 0 {
			return parseErr(lineLayers, nil, "layer %d has non-positive size %d", i, size)
		}
	}

	transitions := len(m.Layers) - 1
	if len(m.Weights) != transitions {
		return parseErr(lineWeights, nil, "expected %d weight matrices, got %d", transitions, len(m.Weights))
	}
	if len(m.Biases) != transitions {
		return parseErr(lineBiases, nil, "expected %d bias matrices, got %d", transitions, len(m.Biases))
	}

	for n := 0; n < transitions; n++ {
		w, b := m.Weights[n], m.Biases[n]
		if w == nil || w.Rows() != m.Layers[n+1] || w.Cols() != m.Layers[n] {
			return parseErr(lineWeights, nil, "weight matrix %d: want %dx%d, got %s",
				n, m.Layers[n+1], m.Layers[n], dims(w))
		}
		if b == nil || b.Rows() != m.Layers[n+1] || b.Cols() != 1 {
			return parseErr(lineBiases, nil, "bias matrix %d: want %dx1, got %s",
				n, m.Layers[n+1], dims(b))
		}
	}

	if m.HasMeta() {
		if strings.ContainsAny(m.Activation, ",\n") || strings.TrimSpace(m.Activation) != m.Activation {
			return parseErr(lineMeta, nil, "invalid activation name %q", m.Activation)
		}
		if !(m.LearningRate > 0) || math.IsInf(m.LearningRate, 1) {
			return parseErr(lineMeta, nil, "learning rate must be positive, got %v", m.LearningRate)
		}
	}
	return nil
}

func dims(m *matrix.Matrix) string {
	if m == nil {
		return "nil"
	}
	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}
