package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/born-ml/hnn/internal/activation"
	"github.com/born-ml/hnn/internal/dataset"
	"github.com/born-ml/hnn/internal/nn"
)

// trainFlags are shared by train and by predict's fallback training.
type trainFlags struct {
	data       string
	layers     string
	lr         float64
	epochs     int
	activation string
	model      string
	seed       int64
	every      int
	verbose    bool
}

func (f *trainFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.data, "data", "", "Training data file (.td pairs or tab/comma grid)")
	fs.StringVar(&f.layers, "layers", "2,3,1", "Comma-separated layer sizes, input layer first")
	fs.Float64Var(&f.lr, "lr", 0.5, "Learning rate")
	fs.IntVar(&f.epochs, "epochs", 1000, "Number of training epochs")
	fs.StringVar(&f.activation, "activation", "sigmoid",
		"Activation function ("+strings.Join(activation.Names(), ", ")+")")
	fs.StringVar(&f.model, "model", "model.hnn", "Model file")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed for initial weights (0 = time based)")
	fs.IntVar(&f.every, "log-every", 100, "Log the training loss every N epochs")
	fs.BoolVar(&f.verbose, "v", false, "Verbose logging")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runTrain(args []string, stdout, stderr io.Writer) error {
	var f trainFlags
	fs := newFlagSet("train", stderr)
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if f.data == "" {
		fs.Usage()
		return fmt.Errorf("%w: -data is required", errUsage)
	}

	logger := newLogger(stderr, f.verbose)
	net, err := train(f, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "saved %v network to %s\n", net.Layers(), f.model)
	return nil
}

func runPredict(args []string, stdout, stderr io.Writer) error {
	var f trainFlags
	fs := newFlagSet("predict", stderr)
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	logger := newLogger(stderr, f.verbose)

	act, err := activation.Lookup(f.activation)
	if err != nil {
		return err
	}
	net, err := nn.LoadFile(f.model, act, f.lr)
	switch {
	case errors.Is(err, nn.ErrPersistence) && f.data != "":
		logger.Warn("model unavailable, training a new one", "model", f.model, "err", err)
		if net, err = train(f, logger); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		logger.Debug("model loaded", "model", f.model, "layers", net.Layers(),
			"activation", net.Activation().Name(), "lr", net.LearningRate())
	}

	input, err := parseFloats(fs.Args())
	if err != nil {
		return fmt.Errorf("%w: input: %w", errUsage, err)
	}
	out, err := net.Predict(input)
	if err != nil {
		return err
	}
	logger.Debug("prediction", "input", input, "output", out)

	fields := make([]string, len(out))
	for i, v := range out {
		fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	fmt.Fprintln(stdout, strings.Join(fields, " "))
	return nil
}

// train builds a network from the flags, trains it on f.data and saves it
// to f.model.
func train(f trainFlags, logger *slog.Logger) (*nn.Network, error) {
	layers, err := parseLayers(f.layers)
	if err != nil {
		return nil, fmt.Errorf("%w: -layers: %w", errUsage, err)
	}
	act, err := activation.Lookup(f.activation)
	if err != nil {
		return nil, err
	}

	inputs, targets, err := dataset.Load(f.data)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded training data", "path", f.data, "samples", len(inputs))

	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	net, err := nn.New(layers, act, f.lr, nn.WithRand(rand.New(rand.NewSource(seed)))) //nolint:gosec // weight init, not crypto
	if err != nil {
		return nil, err
	}
	logger.Debug("network created", "layers", layers, "activation", act.Name(), "lr", f.lr, "seed", seed)

	start := time.Now()
	err = net.Train(inputs, targets, f.epochs,
		nn.WithProgress(func(epoch int, loss float64) {
			logger.Info("training", "epoch", epoch, "loss", loss)
		}),
		nn.WithProgressEvery(f.every),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("training finished", "epochs", f.epochs, "elapsed", time.Since(start))

	if err := net.SaveFile(f.model); err != nil {
		return nil, err
	}
	logger.Info("model saved", "path", f.model)
	return net, nil
}

func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	layers := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		layers[i] = n
	}
	return layers, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
