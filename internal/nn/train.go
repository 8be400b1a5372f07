package nn

import (
	"fmt"

	"github.com/born-ml/hnn/internal/matrix"
)

// Train runs exactly epochs passes over the samples in the order given.
// Each sample triggers one FeedForward and one BackPropagate call.
//
// All samples are validated before any weight changes: inputs and targets
// must have the same non-zero length, every input row must have layers[0]
// values and every target row layers[last] values. Violations return
// ErrDataShape. An epoch count of zero trains nothing.
//
// Example:
//
//	err := net.Train(inputs, targets, 20000,
//	    nn.WithProgress(func(epoch int, loss float64) {
//	        logger.Info("epoch", "n", epoch, "loss", loss)
//	    }),
//	    nn.WithProgressEvery(1000),
//	)
func (n *Network) Train(inputs, targets [][]float64, epochs int, opts ...TrainOption) error {
	if epochs < 0 {
		return fmt.Errorf("train: negative epoch count %d: %w", epochs, ErrDataShape)
	}
	if err := n.validateSamples(inputs, targets); err != nil {
		return err
	}
	o := gatherTrainOptions(opts)

	// Lift every row once; the matrices are never mutated by training.
	in := make([]*matrix.Matrix, len(inputs))
	out := make([]*matrix.Matrix, len(targets))
	for i := range inputs {
		var err error
		if in[i], err = matrix.FromVector(inputs[i]); err != nil {
			return fmt.Errorf("train: input %d: %w: %w", i, err, ErrDataShape)
		}
		if out[i], err = matrix.FromVector(targets[i]); err != nil {
			return fmt.Errorf("train: target %d: %w: %w", i, err, ErrDataShape)
		}
	}

	for epoch := 1; epoch <= epochs; epoch++ {
		for i := range in {
			output, err := n.FeedForward(in[i])
			if err != nil {
				return fmt.Errorf("epoch %d sample %d: %w", epoch, i, err)
			}
			if err := n.BackPropagate(output, out[i]); err != nil {
				return fmt.Errorf("epoch %d sample %d: %w", epoch, i, err)
			}
		}

		if o.progress != nil && (epoch%o.every == 0 || epoch == epochs) {
			loss, err := n.Loss(inputs, targets)
			if err != nil {
				return fmt.Errorf("epoch %d: %w", epoch, err)
			}
			o.progress(epoch, loss)
		}
	}
	return nil
}

func (n *Network) validateSamples(inputs, targets [][]float64) error {
	if len(inputs) == 0 {
		return fmt.Errorf("samples: none given: %w", ErrDataShape)
	}
	if len(inputs) != len(targets) {
		return fmt.Errorf("samples: %d inputs but %d targets: %w", len(inputs), len(targets), ErrDataShape)
	}
	for i := range inputs {
		if len(inputs[i]) != n.inputSize() {
			return fmt.Errorf("samples: input %d has %d values, want %d: %w",
				i, len(inputs[i]), n.inputSize(), ErrDataShape)
		}
		if len(targets[i]) != n.outputSize() {
			return fmt.Errorf("samples: target %d has %d values, want %d: %w",
				i, len(targets[i]), n.outputSize(), ErrDataShape)
		}
	}
	return nil
}
