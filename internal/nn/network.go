// Package nn implements a fully connected feedforward network trained with
// plain stochastic gradient descent.
//
// A Network is described by its layer sizes. Adjacent layers n and n+1 are
// connected by a weight matrix of shape (layers[n+1], layers[n]) and a bias
// column of shape (layers[n+1], 1). Every layer output is
//
//	activation(weights[n] · previous + biases[n])
//
// Training runs one forward and one backward pass per sample, updating the
// weights in place after every sample.
//
// A Network is not safe for concurrent use.
package nn

import (
	"fmt"

	"github.com/born-ml/hnn/internal/activation"
	"github.com/born-ml/hnn/internal/matrix"
	"github.com/born-ml/hnn/internal/optim"
)

// Network is a feedforward neural network.
type Network struct {
	layers     []int
	weights    []*matrix.Matrix
	biases     []*matrix.Matrix
	data       []*matrix.Matrix // Layer outputs of the latest forward pass, data[0] is the input
	activation activation.Activation
	optimizer  optim.Optimizer
}

// New creates a network with the given layer sizes, activation and
// learning rate. Weights and biases are drawn uniformly from [0, 1).
//
// Returns ErrTopology for fewer than two layers, a non-positive layer size
// or a nil activation, and ErrLearningRate for a learning rate that is not
// positive.
//
// Example:
//
//	net, err := nn.New([]int{2, 4, 1}, activation.Sigmoid{}, 0.5)
func New(layers []int, act activation.Activation, learningRate float64, opts ...Option) (*Network, error) {
	if err := validateLayers(layers); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	weights, biases, err := randomParameters(layers, o.rng)
	if err != nil {
		return nil, err
	}
	return assemble(layers, weights, biases, act, learningRate)
}

// assemble builds a Network around existing parameters. The slices are
// owned by the returned network.
func assemble(layers []int, weights, biases []*matrix.Matrix, act activation.Activation, learningRate float64) (*Network, error) {
	if act == nil {
		return nil, fmt.Errorf("new network: nil activation: %w", ErrTopology)
	}
	sgd, err := optim.NewSGD(optim.Config{LR: learningRate})
	if err != nil {
		return nil, fmt.Errorf("new network: %w", err)
	}

	ls := make([]int, len(layers))
	copy(ls, layers)

	return &Network{
		layers:     ls,
		weights:    weights,
		biases:     biases,
		activation: act,
		optimizer:  sgd,
	}, nil
}

// Layers returns a copy of the layer sizes.
func (n *Network) Layers() []int {
	out := make([]int, len(n.layers))
	copy(out, n.layers)
	return out
}

// Weights returns deep copies of the weight matrices in ascending layer order.
func (n *Network) Weights() []*matrix.Matrix {
	return cloneAll(n.weights)
}

// Biases returns deep copies of the bias columns in ascending layer order.
func (n *Network) Biases() []*matrix.Matrix {
	return cloneAll(n.biases)
}

// Activations returns copies of the layer outputs recorded by the latest
// forward pass, input first. It returns nil before the first pass.
func (n *Network) Activations() []*matrix.Matrix {
	return cloneAll(n.data)
}

// Activation returns the activation shared by all layers.
func (n *Network) Activation() activation.Activation {
	return n.activation
}

// LearningRate returns the learning rate.
func (n *Network) LearningRate() float64 {
	return n.optimizer.LR()
}

func cloneAll(ms []*matrix.Matrix) []*matrix.Matrix {
	if ms == nil {
		return nil
	}
	out := make([]*matrix.Matrix, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}

func (n *Network) inputSize() int  { return n.layers[0] }
func (n *Network) outputSize() int { return n.layers[len(n.layers)-1] }

// FeedForward propagates a (layers[0], 1) column vector through the network
// and returns the output column.
//
// The outputs of every layer are recorded for the next BackPropagate call.
// On error the previously recorded outputs are kept.
func (n *Network) FeedForward(input *matrix.Matrix) (*matrix.Matrix, error) {
	if input == nil {
		return nil, fmt.Errorf("feed forward: nil input: %w", ErrShape)
	}
	if input.Rows() != n.inputSize() || input.Cols() != 1 {
		return nil, fmt.Errorf("feed forward: input is %dx%d, want %dx1: %w",
			input.Rows(), input.Cols(), n.inputSize(), ErrShape)
	}

	current := input.Clone()
	data := make([]*matrix.Matrix, 0, len(n.layers))
	data = append(data, current)

	for i := range n.weights {
		z, err := matrix.Mul(n.weights[i], current)
		if err != nil {
			return nil, fmt.Errorf("feed forward layer %d: %w", i, err)
		}
		z, err = matrix.Add(z, n.biases[i])
		if err != nil {
			return nil, fmt.Errorf("feed forward layer %d: %w", i, err)
		}
		current = matrix.Map(z, n.activation.Apply)
		data = append(data, current)
	}

	n.data = data
	return current.Clone(), nil
}

// Predict runs a forward pass on a plain input vector and returns the
// output values.
func (n *Network) Predict(input []float64) ([]float64, error) {
	if len(input) != n.inputSize() {
		return nil, fmt.Errorf("predict: got %d inputs, want %d: %w", len(input), n.inputSize(), ErrShape)
	}
	col, err := matrix.FromVector(input)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	out, err := n.FeedForward(col)
	if err != nil {
		return nil, err
	}
	return out.RawData(), nil
}

// BackPropagate updates the weights and biases from the output of the
// latest FeedForward call and the expected target.
//
// Starting from the output layer, each layer's gradient is the activation
// derivative of its output times its error, scaled by the learning rate.
// The error of the previous layer is the transposed weights times the
// current error, computed with the weights as they were before this update.
//
// Returns ErrShape if no forward pass has been recorded, or if output or
// target is not an (outputs, 1) column. Nothing is updated on error.
func (n *Network) BackPropagate(output, target *matrix.Matrix) error {
	if n.data == nil {
		return fmt.Errorf("back propagate: no forward pass recorded: %w", ErrShape)
	}
	if output == nil || target == nil {
		return fmt.Errorf("back propagate: nil output or target: %w", ErrShape)
	}
	last := n.data[len(n.data)-1]
	if !output.SameShape(last) {
		return fmt.Errorf("back propagate: output is %dx%d, want %dx%d: %w",
			output.Rows(), output.Cols(), last.Rows(), last.Cols(), ErrShape)
	}

	errs, err := matrix.Sub(target, output)
	if err != nil {
		return fmt.Errorf("back propagate: target: %w", err)
	}
	gradients := matrix.Map(output, n.activation.Derivative)

	for i := len(n.weights) - 1; i >= 0; i-- {
		g, err := matrix.Hadamard(gradients, errs)
		if err != nil {
			return fmt.Errorf("back propagate layer %d: %w", i, err)
		}
		g = n.optimizer.Scale(g)

		deltaW, err := matrix.Mul(g, matrix.Transpose(n.data[i]))
		if err != nil {
			return fmt.Errorf("back propagate layer %d: %w", i, err)
		}

		var prevErrs *matrix.Matrix
		if i > 0 {
			if prevErrs, err = matrix.Mul(matrix.Transpose(n.weights[i]), errs); err != nil {
				return fmt.Errorf("back propagate layer %d: %w", i, err)
			}
		}

		if err := n.optimizer.Step(n.weights[i], deltaW); err != nil {
			return fmt.Errorf("back propagate layer %d: %w", i, err)
		}
		if err := n.optimizer.Step(n.biases[i], g); err != nil {
			return fmt.Errorf("back propagate layer %d: %w", i, err)
		}

		if i > 0 {
			errs = prevErrs
			gradients = matrix.Map(n.data[i], n.activation.Derivative)
		}
	}
	return nil
}
