// Package activation provides the scalar transforms applied after every
// layer of a network.
//
// Each Activation pairs a function with its derivative. The derivative is
// evaluated on the function's output rather than its input, so the sigmoid
// derivative is y*(1-y). Variants are identified by a stable name, which is
// what gets persisted alongside a model.
package activation

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknown is returned by Lookup for an unregistered name.
var ErrUnknown = errors.New("activation: unknown activation")

// Activation is a scalar transform with a paired derivative.
type Activation interface {
	// Name returns the identifier used when persisting a model.
	Name() string

	// Apply evaluates the function at x.
	Apply(x float64) float64

	// Derivative evaluates the derivative given the activated output y = Apply(x).
	Derivative(y float64) float64
}

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
type Sigmoid struct{}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Apply returns σ(x).
func (Sigmoid) Apply(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Derivative returns y(1-y).
func (Sigmoid) Derivative(y float64) float64 { return y * (1 - y) }

// Tanh is the hyperbolic tangent.
type Tanh struct{}

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// Apply returns tanh(x).
func (Tanh) Apply(x float64) float64 { return math.Tanh(x) }

// Derivative returns 1 - y².
func (Tanh) Derivative(y float64) float64 { return 1 - y*y }

// ReLU is max(0, x).
type ReLU struct{}

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Apply returns max(0, x).
func (ReLU) Apply(x float64) float64 { return math.Max(0, x) }

// Derivative returns 1 for positive outputs and 0 otherwise.
func (ReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

// Identity passes values through unchanged.
type Identity struct{}

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// Apply returns x.
func (Identity) Apply(x float64) float64 { return x }

// Derivative returns 1.
func (Identity) Derivative(float64) float64 { return 1 }

var registry = map[string]Activation{
	Sigmoid{}.Name():  Sigmoid{},
	Tanh{}.Name():     Tanh{},
	ReLU{}.Name():     ReLU{},
	Identity{}.Name(): Identity{},
}

// Lookup returns the activation registered under name.
func Lookup(name string) (Activation, error) {
	act, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrUnknown)
	}
	return act, nil
}

// Names returns the registered activation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
