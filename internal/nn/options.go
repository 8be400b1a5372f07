package nn

import (
	"math/rand"
)

// Option configures a Network at construction.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand draws the initial weights and biases from rng instead of the
// package-level math/rand source. Use a seeded source for reproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// TrainOption configures a single Train call.
type TrainOption func(*trainOptions)

// ProgressFunc receives the mean squared error over the training set after
// an epoch completes. Epochs are numbered from 1.
type ProgressFunc func(epoch int, loss float64)

type trainOptions struct {
	progress ProgressFunc
	every    int
}

// DefaultProgressEvery is the reporting interval used when WithProgress is
// set without WithProgressEvery.
const DefaultProgressEvery = 1

// WithProgress reports the training loss through fn. Computing the loss
// costs one extra forward pass per sample on reporting epochs.
func WithProgress(fn ProgressFunc) TrainOption {
	return func(o *trainOptions) {
		o.progress = fn
	}
}

// WithProgressEvery reports only every k-th epoch, plus the final one.
// Values below 1 fall back to DefaultProgressEvery.
func WithProgressEvery(k int) TrainOption {
	return func(o *trainOptions) {
		o.every = k
	}
}

func gatherTrainOptions(opts []TrainOption) trainOptions {
	o := trainOptions{every: DefaultProgressEvery}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.every < 1 {
		o.every = DefaultProgressEvery
	}
	return o
}
