package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/hnn/internal/matrix"
)

// validateLayers checks that there are at least two layers and every size
// is positive.
func validateLayers(layers []int) error {
	if len(layers) < 2 {
		return fmt.Errorf("new network: need at least 2 layers, got %d: %w", len(layers), ErrTopology)
	}
	for i, size := range layers {
		if size <= 0 {
			return fmt.Errorf("new network: layer %d has size %d: %w", i, size, ErrTopology)
		}
	}
	return nil
}

// randomParameters allocates one weight and one bias matrix per layer
// transition, uniformly drawn from [0, 1).
//
// weights[n] has shape (layers[n+1], layers[n]), biases[n] has shape (layers[n+1], 1).
func randomParameters(layers []int, rng *rand.Rand) (weights, biases []*matrix.Matrix, err error) {
	weights = make([]*matrix.Matrix, len(layers)-1)
	biases = make([]*matrix.Matrix, len(layers)-1)
	for n := 0; n < len(layers)-1; n++ {
		if weights[n], err = matrix.Random(layers[n+1], layers[n], rng); err != nil {
			return nil, nil, fmt.Errorf("init weights %d: %w", n, err)
		}
		if biases[n], err = matrix.Random(layers[n+1], 1, rng); err != nil {
			return nil, nil, fmt.Errorf("init biases %d: %w", n, err)
		}
	}
	return weights, biases, nil
}
