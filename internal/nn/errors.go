package nn

import (
	"errors"

	"github.com/born-ml/hnn/internal/matrix"
	"github.com/born-ml/hnn/internal/optim"
	"github.com/born-ml/hnn/internal/serialization"
)

// Errors returned by Network operations. Match them with errors.Is.
var (
	// ErrTopology is returned for fewer than two layers, a non-positive
	// layer size or a missing activation.
	ErrTopology = errors.New("nn: invalid topology")

	// ErrDataShape is returned by Train when the sample set does not fit
	// the network: mismatched input/target counts, an empty set, rows of the
	// wrong width or a negative epoch count.
	ErrDataShape = errors.New("nn: invalid training data shape")

	// ErrShape is returned when a matrix has the wrong shape for the
	// current topology.
	ErrShape = matrix.ErrShape

	// ErrLearningRate is returned for a learning rate that is not positive.
	ErrLearningRate = optim.ErrLearningRate

	// ErrPersistence is returned when a model cannot be saved or loaded.
	ErrPersistence = serialization.ErrPersistence
)
