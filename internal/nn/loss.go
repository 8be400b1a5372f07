package nn

import (
	"fmt"

	"github.com/born-ml/hnn/internal/matrix"
)

// MSE returns mean((output - target)²) over all elements.
func MSE(output, target *matrix.Matrix) (float64, error) {
	diff, err := matrix.Sub(output, target)
	if err != nil {
		return 0, fmt.Errorf("mse: %w", err)
	}
	var sum float64
	for _, v := range diff.RawData() {
		sum += v * v
	}
	return sum / float64(len(diff.RawData())), nil
}

// Loss returns the mean squared error of the network over a sample set,
// averaged over samples.
//
// Returns ErrDataShape if the samples do not fit the network.
func (n *Network) Loss(inputs, targets [][]float64) (float64, error) {
	if err := n.validateSamples(inputs, targets); err != nil {
		return 0, err
	}
	var total float64
	for i := range inputs {
		l, err := n.sampleLoss(inputs[i], targets[i])
		if err != nil {
			return 0, err
		}
		total += l
	}
	return total / float64(len(inputs)), nil
}

func (n *Network) sampleLoss(input, target []float64) (float64, error) {
	out, err := n.Predict(input)
	if err != nil {
		return 0, err
	}
	outM, err := matrix.FromVector(out)
	if err != nil {
		return 0, err
	}
	targetM, err := matrix.FromVector(target)
	if err != nil {
		return 0, err
	}
	return MSE(outM, targetM)
}
