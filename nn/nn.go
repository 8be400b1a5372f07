// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"
	"math/rand"

	"github.com/born-ml/hnn/internal/activation"
	"github.com/born-ml/hnn/internal/nn"
	"github.com/born-ml/hnn/internal/serialization"
)

// Network is a fully connected feedforward neural network.
type Network = nn.Network

// Model is the persisted form of a Network.
type Model = serialization.Model

// Option configures a Network at construction.
type Option = nn.Option

// TrainOption configures a single Train call.
type TrainOption = nn.TrainOption

// ProgressFunc receives the training loss after an epoch.
type ProgressFunc = nn.ProgressFunc

// Errors

var (
	// ErrTopology is returned for fewer than two layers, a non-positive
	// layer size or a nil activation.
	ErrTopology = nn.ErrTopology

	// ErrDataShape is returned by Train when the samples do not fit the
	// network.
	ErrDataShape = nn.ErrDataShape

	// ErrShape is returned when a matrix has the wrong shape.
	ErrShape = nn.ErrShape

	// ErrLearningRate is returned for a learning rate that is not positive.
	ErrLearningRate = nn.ErrLearningRate

	// ErrPersistence is matched by every failure to save or load a model.
	ErrPersistence = nn.ErrPersistence

	// ErrUnknownActivation is returned by LookupActivation for an
	// unregistered name.
	ErrUnknownActivation = activation.ErrUnknown
)

// New creates a network with the given layer sizes, input layer first.
// Weights and biases are drawn uniformly from [0, 1).
//
// Example:
//
//	net, err := nn.New([]int{2, 4, 1}, nn.Sigmoid{}, 0.5,
//	    nn.WithRand(rand.New(rand.NewSource(1))))
func New(layers []int, act Activation, learningRate float64, opts ...Option) (*Network, error) {
	return nn.New(layers, act, learningRate, opts...)
}

// WithRand draws the initial parameters from rng.
func WithRand(rng *rand.Rand) Option {
	return nn.WithRand(rng)
}

// WithProgress reports the training loss through fn.
func WithProgress(fn ProgressFunc) TrainOption {
	return nn.WithProgress(fn)
}

// WithProgressEvery reports only every k-th epoch, plus the final one.
func WithProgressEvery(k int) TrainOption {
	return nn.WithProgressEvery(k)
}

// Persistence

// Load reads a network from r. Models without a stored activation use act
// and learningRate.
func Load(r io.Reader, act Activation, learningRate float64) (*Network, error) {
	return nn.Load(r, act, learningRate)
}

// LoadFile reads a network from path. See Load.
func LoadFile(path string, act Activation, learningRate float64) (*Network, error) {
	return nn.LoadFile(path, act, learningRate)
}

// Activations

// Activation is an element-wise transfer function with its derivative
// expressed in terms of the function's output.
type Activation = activation.Activation

// Sigmoid is the logistic function.
type Sigmoid = activation.Sigmoid

// Tanh is the hyperbolic tangent.
type Tanh = activation.Tanh

// ReLU is the rectified linear unit.
type ReLU = activation.ReLU

// Identity passes values through unchanged.
type Identity = activation.Identity

// LookupActivation returns the registered activation with the given name.
func LookupActivation(name string) (Activation, error) {
	return activation.Lookup(name)
}

// ActivationNames returns the registered activation names in sorted order.
func ActivationNames() []string {
	return activation.Names()
}
