// Package optim implements the parameter update rule used during training.
//
// Only plain stochastic gradient descent is provided: every training sample
// produces one update, scaled by a fixed learning rate. There is no momentum
// and no batching.
//
// Example usage:
//
//	sgd, err := optim.NewSGD(optim.Config{LR: 0.5})
//	if err != nil {
//	    return err
//	}
//	delta := sgd.Scale(gradient)
//	if err := sgd.Step(weights, delta); err != nil {
//	    return err
//	}
package optim

import (
	"errors"

	"github.com/born-ml/hnn/internal/matrix"
)

// ErrLearningRate is returned for a learning rate that is not strictly positive.
var ErrLearningRate = errors.New("optim: learning rate must be positive")

// Optimizer applies gradient updates to parameters in place.
type Optimizer interface {
	// Scale turns a raw gradient into the update to add to a parameter.
	Scale(grad *matrix.Matrix) *matrix.Matrix

	// Step adds delta to param in place.
	Step(param, delta *matrix.Matrix) error

	// LR returns the learning rate.
	LR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate, conventionally in (0, 1]
}
