package serialization

import (
	"os"

	"github.com/born-ml/hnn/internal/matrix"
)

// FileMode is the permission WriteFile gives a saved model.
const FileMode os.FileMode = 0o644

// Format constants.
const (
	LayerSeparator  = ", " // Joins layer sizes on line 1
	MatrixSeparator = " | " // Joins matrices on lines 2 and 3
	MetaSeparator   = ", " // Joins activation name and learning rate on line 4

	RequiredLines = 3 // Layers, weights, biases
	MaxLines      = 4 // Plus the optional metadata line
)

// Line numbers, 1-based.
const (
	lineLayers = iota + 1
	lineWeights
	lineBiases
	lineMeta
)

// Model is the persisted state of a network.
//
// Activation and LearningRate are optional: an empty Activation means the
// file had no metadata line.
type Model struct {
	Layers       []int            // Neurons per layer, input first
	Weights      []*matrix.Matrix // Weights[n] has shape (Layers[n+1], Layers[n])
	Biases       []*matrix.Matrix // Biases[n] has shape (Layers[n+1], 1)
	Activation   string           // Activation name, "" if not stored
	LearningRate float64          // Learning rate, meaningful only with Activation
}

// HasMeta reports whether the model carries an activation and learning rate.
func (m Model) HasMeta() bool {
	return m.Activation != ""
}
