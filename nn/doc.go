// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feedforward neural network trained
// with per-sample backpropagation.
//
// # Overview
//
// This package contains:
//   - Network: layers, weights, biases and the training loop
//   - Activations: Sigmoid, Tanh, ReLU, Identity
//   - Persistence: Save, Load and their file variants
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/hnn/nn"
//	)
//
//	func main() {
//	    net, err := nn.New([]int{2, 4, 1}, nn.Sigmoid{}, 0.5)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    inputs := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
//	    targets := [][]float64{{0}, {1}, {1}, {0}}
//	    if err := net.Train(inputs, targets, 20000); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Predict([]float64{1, 0})
//	}
//
// # Training
//
// Train visits every sample in order, once per epoch. Each sample runs a
// forward pass followed by one gradient step on every layer, from the
// output layer back to the input layer. Pass WithProgress to observe the
// mean squared error as training proceeds:
//
//	err := net.Train(inputs, targets, 20000,
//	    nn.WithProgress(func(epoch int, loss float64) {
//	        slog.Info("training", "epoch", epoch, "loss", loss)
//	    }),
//	    nn.WithProgressEvery(1000),
//	)
//
// # Persistence
//
// Networks are stored as plain text. The first three lines hold the layer
// sizes, the weight matrices and the bias matrices; an optional fourth line
// holds the activation name and learning rate:
//
//	2, 1
//	1 2 0.1 0.2
//	1 1 0.3
//	sigmoid, 0.5
//
// Load uses the stored activation and learning rate when the fourth line is
// present and the supplied defaults otherwise.
//
//	net, err := nn.LoadFile("xor.hnn", nn.Sigmoid{}, 0.5)
//	if errors.Is(err, nn.ErrPersistence) {
//	    // train a fresh network instead
//	}
package nn
