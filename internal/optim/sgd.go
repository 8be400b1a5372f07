package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/hnn/internal/matrix"
)

// SGD implements stochastic gradient descent without momentum.
//
// Update rule, with the gradient already pointing towards the target:
//
//	param = param + lr * gradient
type SGD struct {
	lr float64
}

// NewSGD creates an SGD optimizer.
//
// Returns ErrLearningRate if config.LR is not a positive finite number.
func NewSGD(config Config) (*SGD, error) {
	if !(config.LR > 0) || math.IsInf(config.LR, 1) {
		return nil, fmt.Errorf("new sgd: got %v: %w", config.LR, ErrLearningRate)
	}
	return &SGD{lr: config.LR}, nil
}

// Scale returns lr * grad as a new matrix.
func (s *SGD) Scale(grad *matrix.Matrix) *matrix.Matrix {
	return matrix.Scale(grad, s.lr)
}

// Step adds delta to param in place. On a shape mismatch param is unchanged.
func (s *SGD) Step(param, delta *matrix.Matrix) error {
	if err := param.AddInPlace(delta); err != nil {
		return fmt.Errorf("sgd step: %w", err)
	}
	return nil
}

// LR returns the learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}
