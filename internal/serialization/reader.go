package serialization

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/hnn/internal/matrix"
)

// Read decodes a model from r.
//
// Every failure matches ErrPersistence; malformed content is reported as a
// *ParseError carrying the offending line.
func Read(r io.Reader) (Model, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxModelSize+1))
	if err != nil {
		return Model{}, ioErr("read model", err)
	}
	if len(raw) > MaxModelSize {
		return Model{}, parseErr(0, nil, "model exceeds %d bytes", MaxModelSize)
	}

	lines := splitLines(string(raw))
	if len(lines) < RequiredLines || len(lines) > MaxLines {
		return Model{}, parseErr(0, nil, "expected %d or %d lines, got %d", RequiredLines, MaxLines, len(lines))
	}

	var m Model
	if m.Layers, err = parseLayers(lines[lineLayers-1]); err != nil {
		return Model{}, err
	}
	if m.Weights, err = parseMatrices(lineWeights, lines[lineWeights-1]); err != nil {
		return Model{}, err
	}
	if m.Biases, err = parseMatrices(lineBiases, lines[lineBiases-1]); err != nil {
		return Model{}, err
	}
	if len(lines) == MaxLines {
		if m.Activation, m.LearningRate, err = parseMeta(lines[lineMeta-1]); err != nil {
			return Model{}, err
		}
	}

	if err := Validate(m); err != nil {
		return Model{}, err
	}
	return m, nil
}

// ReadFile loads a model from path.
func ReadFile(path string) (Model, error) {
	//nolint:gosec // G304: model path is supplied by the caller
	f, err := os.Open(path)
	if err != nil {
		return Model{}, ioErr("open model", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// splitLines splits on '\n', strips a trailing '\r' from every line and
// drops a single trailing empty line left by a final newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func parseLayers(line string) ([]int, error) {
	tokens := strings.Split(line, ",")
	layers := make([]int, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		size, err := strconv.Atoi(tok)
		if err != nil {
			return nil, parseErr(lineLayers, err, "layer %d: %q is not an integer", i, tok)
		}
		layers[i] = size
	}
	return layers, nil
}

func parseMatrices(lineNo int, line string) ([]*matrix.Matrix, error) {
	parts := strings.Split(line, "|")
	out := make([]*matrix.Matrix, len(parts))
	for i, part := range parts {
		m, err := matrix.Parse(part)
		if err != nil {
			return nil, parseErr(lineNo, err, "matrix %d", i)
		}
		out[i] = m
	}
	return out, nil
}

func parseMeta(line string) (string, float64, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return "", 0, parseErr(lineMeta, nil, "expected \"<activation>, <learning rate>\", got %q", line)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", 0, parseErr(lineMeta, nil, "empty activation name")
	}
	lr, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", 0, parseErr(lineMeta, err, "learning rate %q is not a number", strings.TrimSpace(parts[1]))
	}
	return name, lr, nil
}
