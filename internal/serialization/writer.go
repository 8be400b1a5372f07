package serialization

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/born-ml/hnn/internal/matrix"
)

// Write encodes m to w in the model text format.
//
// The model is validated first; nothing is written for an invalid model.
func Write(w io.Writer, m Model) error {
	if err := Validate(m); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	layers := make([]string, len(m.Layers))
	for i, size := range m.Layers {
		layers[i] = strconv.Itoa(size)
	}
	writeLine(bw, strings.Join(layers, LayerSeparator))
	writeLine(bw, joinMatrices(m.Weights))
	writeLine(bw, joinMatrices(m.Biases))
	if m.HasMeta() {
		writeLine(bw, m.Activation+MetaSeparator+strconv.FormatFloat(m.LearningRate, 'g', -1, 64))
	}

	// bufio.Writer keeps the first error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return ioErr("write model", err)
	}
	return nil
}

func writeLine(bw *bufio.Writer, line string) {
	_, _ = bw.WriteString(line)
	_ = bw.WriteByte('\n')
}

func joinMatrices(ms []*matrix.Matrix) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, MatrixSeparator)
}

// WriteFile saves m to path.
//
// The model is written to a temporary file in the destination directory and
// renamed over path once complete, so a failed save never leaves a truncated
// model behind. Missing parent directories are created.
func WriteFile(path string, m Model) (err error) {
	if err := Validate(m); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioErr("create directory "+dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return ioErr("create temporary file", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name()) // Best effort cleanup
		}
	}()

	if err := Write(tmp, m); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(FileMode); err != nil {
		_ = tmp.Close()
		return ioErr("chmod "+tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return ioErr("sync "+tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return ioErr("close "+tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return ioErr("rename to "+path, err)
	}
	return nil
}
