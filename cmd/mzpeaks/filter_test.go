package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFilterFlags restores filter flag state after a test.
func resetFilterFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		filterMZ = nil
		filterSelection = ""
		filterInput = "tsv"
		filterFormat = "tsv"
		filterColor = "auto"
		filterSort = false
		filterReindex = false
		quiet = false
	})
}

func writePeakFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peaks.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const samplePeaks = `150.05	100
204.07	5000
450.21	250
800.93	42
`

func TestRunFilterMZWindow(t *testing.T) {
	resetFilterFlags(t)
	filterMZ = []string{"200:500"}
	filterInput = "tsv"
	filterFormat = "tsv"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runFilter(cmd, []string{writePeakFile(t, samplePeaks)})
	require.NoError(t, err)

	assert.Equal(t, "204.07\t5000\n450.21\t250\n", buf.String())
}

func TestRunFilterUnionOfWindows(t *testing.T) {
	resetFilterFlags(t)
	filterMZ = []string{":160", "800:"}

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runFilter(cmd, []string{writePeakFile(t, samplePeaks)})
	require.NoError(t, err)

	assert.Equal(t, "150.05\t100\n800.93\t42\n", buf.String())
}

func TestRunFilterNoWindowsPassesThrough(t *testing.T) {
	resetFilterFlags(t)
	filterSort = true
	filterReindex = true
	filterFormat = "jsonl"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runFilter(cmd, []string{writePeakFile(t, "204.07\t5000\n150.05\t100\n")})
	require.NoError(t, err)

	assert.Equal(t,
		"{\"mz\":150.05,\"intensity\":100,\"index\":0}\n{\"mz\":204.07,\"intensity\":5000,\"index\":1}\n",
		buf.String())
}

func TestRunFilterSelectionFile(t *testing.T) {
	resetFilterFlags(t)

	dir := t.TempDir()
	selPath := filepath.Join(dir, "windows.yml")
	require.NoError(t, os.WriteFile(selPath, []byte(`
windows:
  - name: mid
    dimension: mz
    range: "200:500"
  - name: elution
    dimension: time
    range: "10:"
`), 0o644))
	filterSelection = selPath

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := runFilter(cmd, []string{writePeakFile(t, samplePeaks)})
	require.NoError(t, err)

	assert.Equal(t, "204.07\t5000\n450.21\t250\n", out.String())
	// The time window cannot apply to a centroid list and is reported.
	assert.Contains(t, errOut.String(), `skipping window "elution"`)
}

func TestRunFilterHumanFormat(t *testing.T) {
	resetFilterFlags(t)
	filterFormat = "human"
	filterColor = "never"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runFilter(cmd, []string{writePeakFile(t, "204.07\t5000\n")})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "m/z")
	assert.Contains(t, output, "204.0700")
	assert.Contains(t, output, "1 peaks")
}

func TestRunFilterBadWindow(t *testing.T) {
	resetFilterFlags(t)
	filterMZ = []string{"x:20"}

	cmd := &cobra.Command{}
	err := runFilter(cmd, []string{writePeakFile(t, samplePeaks)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --mz window "x:20"`)
}

func TestRunFilterMissingFile(t *testing.T) {
	resetFilterFlags(t)

	cmd := &cobra.Command{}
	err := runFilter(cmd, []string{filepath.Join(t.TempDir(), "missing.tsv")})
	require.Error(t, err)
}
