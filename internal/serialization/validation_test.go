package serialization

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Model)
		wantErr bool
	}{
		{"valid", func(*Model) {}, false},
		{"valid with meta", func(m *Model) { m.Activation, m.LearningRate = "relu", 0.01 }, false},
		{"one layer", func(m *Model) { m.Layers = m.Layers[:1] }, true},
		{"negative layer", func(m *Model) { m.Layers[1] = -3 }, true},
		{"nil weight", func(m *Model) { m.Weights[0] = nil }, true},
		{"nil bias", func(m *Model) { m.Biases[1] = nil }, true},
		{"swapped weight", func(m *Model) { m.Weights[0], m.Weights[1] = m.Weights[1], m.Weights[0] }, true},
		{"comma in name", func(m *Model) { m.Activation, m.LearningRate = "a,b", 0.1 }, true},
		{"padded name", func(m *Model) { m.Activation, m.LearningRate = " relu", 0.1 }, true},
		{"zero rate", func(m *Model) { m.Activation, m.LearningRate = "relu", 0 }, true},
		{"nan rate", func(m *Model) { m.Activation, m.LearningRate = "relu", math.NaN() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleModel(t)
			tt.mutate(&m)

			err := Validate(m)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrPersistence)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
