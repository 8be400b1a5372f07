package nn

import (
	"fmt"
	"io"

	"github.com/born-ml/hnn/internal/activation"
	"github.com/born-ml/hnn/internal/serialization"
)

// Model returns the persisted form of the network.
//
// The activation name and learning rate are included only when the
// activation is one of the registered variants; a custom activation cannot
// be restored by name, so its models are written without that line.
func (n *Network) Model() serialization.Model {
	m := serialization.Model{
		Layers:  n.Layers(),
		Weights: n.Weights(),
		Biases:  n.Biases(),
	}
	if registered, err := activation.Lookup(n.activation.Name()); err == nil && registered == n.activation {
		m.Activation = registered.Name()
		m.LearningRate = n.LearningRate()
	}
	return m
}

// Save writes the network to w in the model text format.
func (n *Network) Save(w io.Writer) error {
	if err := serialization.Write(w, n.Model()); err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	return nil
}

// SaveFile writes the network to path, replacing any existing file
// only once the new model is completely written.
func (n *Network) SaveFile(path string) error {
	if err := serialization.WriteFile(path, n.Model()); err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	return nil
}

// Load reads a network from r.
//
// Layers, weights and biases are restored exactly. Models that carry an
// activation name and learning rate use them; models without that line fall
// back to act and learningRate. Every failure matches ErrPersistence, so
// callers can fall back to a fresh network.
func Load(r io.Reader, act activation.Activation, learningRate float64) (*Network, error) {
	m, err := serialization.Read(r)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	return FromModel(m, act, learningRate)
}

// LoadFile reads a network from path. See Load.
func LoadFile(path string, act activation.Activation, learningRate float64) (*Network, error) {
	m, err := serialization.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	return FromModel(m, act, learningRate)
}

// FromModel builds a network from persisted state. The stored activation and
// learning rate, when present, take precedence over act and learningRate.
func FromModel(m serialization.Model, act activation.Activation, learningRate float64) (*Network, error) {
	if err := serialization.Validate(m); err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	if m.HasMeta() {
		stored, err := activation.Lookup(m.Activation)
		if err != nil {
			return nil, fmt.Errorf("load network: %w: %w", err, ErrPersistence)
		}
		act, learningRate = stored, m.LearningRate
	}

	n, err := assemble(m.Layers, cloneAll(m.Weights), cloneAll(m.Biases), act, learningRate)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	return n, nil
}
