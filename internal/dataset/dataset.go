// Package dataset reads training samples from text files.
//
// Two layouts are understood. A pairs file (extension .td) holds one sample
// per line, inputs and targets separated by a bar:
//
//	0, 1 | 1
//	1, 1 | 0
//
// A grid file holds a table of numbers separated by tabs or commas. Each
// cell becomes one sample mapping its (row, column) position to its value,
// see GridSamples.
package dataset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PairsExt is the file extension Load treats as a pairs file.
const PairsExt = ".td"

const (
	pairSeparator  = "|"
	valueSeparator = ","
	maxLineSize    = 1 << 20
)

// ReadPairs reads a pairs file. Blank lines are skipped; every sample must
// have the same input and target widths as the first one.
func ReadPairs(r io.Reader) (inputs, targets [][]float64, err error) {
	err = scanLines(r, func(lineNo int, line string) error {
		left, right, ok := strings.Cut(line, pairSeparator)
		if !ok {
			return lineErr(lineNo, nil, "missing %q between inputs and targets", pairSeparator)
		}
		in, err := parseValues(lineNo, left, valueSeparator)
		if err != nil {
			return err
		}
		out, err := parseValues(lineNo, right, valueSeparator)
		if err != nil {
			return err
		}
		if len(inputs) > 0 {
			if len(in) != len(inputs[0]) {
				return lineErr(lineNo, nil, "%d inputs, want %d", len(in), len(inputs[0]))
			}
			if len(out) != len(targets[0]) {
				return lineErr(lineNo, nil, "%d targets, want %d", len(out), len(targets[0]))
			}
		}
		inputs = append(inputs, in)
		targets = append(targets, out)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(inputs) == 0 {
		return nil, nil, lineErr(0, nil, "no samples")
	}
	return inputs, targets, nil
}

// ReadGrid reads a numeric table. A line containing a tab is split on tabs,
// any other line on commas. Rows may differ in length.
func ReadGrid(r io.Reader) ([][]float64, error) {
	var grid [][]float64
	err := scanLines(r, func(lineNo int, line string) error {
		sep := valueSeparator
		if strings.Contains(line, "\t") {
			sep = "\t"
		}
		row, err := parseValues(lineNo, line, sep)
		if err != nil {
			return err
		}
		grid = append(grid, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return nil, lineErr(0, nil, "empty grid")
	}
	return grid, nil
}

// GridSamples expands a grid into one sample per cell: the input is the
// cell's {row, column} position and the target its value.
func GridSamples(grid [][]float64) (inputs, targets [][]float64) {
	for r, row := range grid {
		for c, v := range row {
			inputs = append(inputs, []float64{float64(r), float64(c)})
			targets = append(targets, []float64{v})
		}
	}
	return inputs, targets
}

// Load reads the samples stored at path. Files ending in PairsExt are read
// with ReadPairs; anything else is read as a grid and expanded with
// GridSamples.
func Load(path string) (inputs, targets [][]float64, err error) {
	f, err := os.Open(path) //nolint:gosec // G304: data path is supplied by the caller
	if err != nil {
		return nil, nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), PairsExt) {
		inputs, targets, err = ReadPairs(f)
	} else {
		var grid [][]float64
		if grid, err = ReadGrid(f); err == nil {
			inputs, targets = GridSamples(grid)
		}
	}
	if err != nil {
		return nil, nil, errors.WithMessage(err, path)
	}
	return inputs, targets, nil
}

func scanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "dataset: read")
	}
	return nil
}

func parseValues(lineNo int, s, sep string) ([]float64, error) {
	fields := strings.Split(s, sep)
	out := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, lineErr(lineNo, nil, "empty value at position %d", i)
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, lineErr(lineNo, err, "value %q", f)
		}
		out[i] = v
	}
	return out, nil
}
