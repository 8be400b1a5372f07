package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/hnn/internal/nn"
)

const xorData = "0, 0 | 0\n1, 0 | 1\n0, 1 | 1\n1, 1 | 0\n"

func writeData(t *testing.T) (dir, data string) {
	t.Helper()
	dir = t.TempDir()
	data = filepath.Join(dir, "xor.td")
	require.NoError(t, os.WriteFile(data, []byte(xorData), 0o600))
	return dir, data
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"version"}, &stdout, &stderr))
	assert.Equal(t, "hnn "+version+"\n", stdout.String())
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.ErrorIs(t, run(nil, &stdout, &stderr), errUsage)
	assert.Contains(t, stderr.String(), "Commands:")

	require.ErrorIs(t, run([]string{"serve"}, &stdout, &stderr), errUsage)
	require.ErrorIs(t, run([]string{"train"}, &stdout, &stderr), errUsage)
	require.ErrorIs(t, run([]string{"train", "-data", "x.td", "-layers", "2,a"}, &stdout, &stderr), errUsage)
}

func TestExecute_ReportsErrors(t *testing.T) {
	dir, data := writeData(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad predict input", []string{"predict", "-model", filepath.Join(dir, "m.hnn"), "-data", data,
			"-epochs", "1", "1", "abc"}, `parsing "abc"`},
		{"bad layers", []string{"train", "-data", data, "-layers", "2,x,1"}, `parsing "x"`},
		{"missing data", []string{"train"}, "-data is required"},
		{"unknown command", []string{"serve"}, `unknown command "serve"`},
		{"missing model", []string{"predict", "-model", filepath.Join(dir, "none.hnn"), "1", "0"}, "load network"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 1, execute(tt.args, &stdout, &stderr))
			assert.Contains(t, stderr.String(), "hnn: ")
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestExecute_BareUsageIsSilent(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, execute(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Commands:")
	assert.NotContains(t, stderr.String(), "hnn: ")

	stderr.Reset()
	assert.Equal(t, 0, execute([]string{"version"}, &stdout, &stderr))
	assert.Empty(t, stderr.String())
}

func TestRun_TrainThenPredict(t *testing.T) {
	dir, data := writeData(t)
	model := filepath.Join(dir, "xor.hnn")

	var stdout, stderr bytes.Buffer
	err := run([]string{"train", "-data", data, "-layers", "2,4,1", "-epochs", "50",
		"-seed", "7", "-log-every", "10", "-model", model}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), model)
	assert.Contains(t, stderr.String(), "epoch=50")

	net, err := nn.LoadFile(model, nil, 1)
	require.NoError(t, err)
	want, err := net.Predict([]float64{1, 0})
	require.NoError(t, err)

	stdout.Reset()
	require.NoError(t, run([]string{"predict", "-model", model, "1", "0"}, &stdout, &stderr))
	require.Len(t, want, 1)
	assert.Equal(t, strconv.FormatFloat(want[0], 'g', -1, 64), strings.TrimSpace(stdout.String()))
}

func TestRun_PredictTrainsWhenModelMissing(t *testing.T) {
	dir, data := writeData(t)
	model := filepath.Join(dir, "fallback.hnn")

	var stdout, stderr bytes.Buffer
	err := run([]string{"predict", "-model", model, "-data", data, "-epochs", "5", "-seed", "1", "0", "1"},
		&stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "training a new one")
	assert.FileExists(t, model)
}

func TestRun_PredictWithoutModelOrData(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"predict", "-model", filepath.Join(t.TempDir(), "none.hnn"), "1", "0"}, &stdout, &stderr)
	require.ErrorIs(t, err, nn.ErrPersistence)
}

func TestParseLayers(t *testing.T) {
	layers, err := parseLayers("2, 4,1")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1}, layers)

	_, err = parseLayers("2,,1")
	require.Error(t, err)
}
