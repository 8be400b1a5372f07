// Package main provides the hnn command line tool.
//
// Usage:
//
//	hnn version
//	hnn train   -data xor.td -layers 2,4,1 -epochs 20000 -model xor.hnn
//	hnn predict -model xor.hnn 1 0
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code. Errors are
// printed to stderr except the bare errUsage, whose usage text has already
// been written.
func execute(args []string, stdout, stderr io.Writer) int {
	err := run(args, stdout, stderr)
	if err == nil {
		return 0
	}
	if err != errUsage { //nolint:errorlint // only the bare sentinel is silent
		fmt.Fprintln(stderr, "hnn:", err)
	}
	return 1
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "hnn %s\n", version)
		return nil
	case "train":
		return runTrain(args[1:], stdout, stderr)
	case "predict":
		return runPredict(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "hnn - feedforward neural network trainer")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train a network on a data file and save it")
	fmt.Fprintln(w, "  predict    Load a network and print its output for x1 x2 ...")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'hnn <command> -h' for command flags.")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
