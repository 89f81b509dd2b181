package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunText(t *testing.T) {
	input := writeInput(t, "3,4\nA1 B1 +,\n1 0 /,17 4 /\n")
	outPath := filepath.Join(t.TempDir(), "output.csv")

	stdout, _, err := execute(t, input, "-o", outPath)
	require.NoError(t, err)

	// The trailing empty field of row two is dropped on input.
	want := "3, 4\n7\n#ERR, 4.3\n"
	assert.Equal(t, want, stdout)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, want, string(written))
}

func TestRunQuietJSON(t *testing.T) {
	input := writeInput(t, "1 2 +\n")
	outPath := filepath.Join(t.TempDir(), "out.json")

	stdout, _, err := execute(t, input, "-q", "--format", "json", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded struct {
		Source string `json:"source"`
		Rows   []struct {
			Cells []struct {
				Text string `json:"text"`
			} `json:"cells"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "input.csv", decoded.Source)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, "3", decoded.Rows[0].Cells[0].Text)
}

func TestRunXLSX(t *testing.T) {
	input := writeInput(t, "2,A1 A1 *\n")
	outPath := filepath.Join(t.TempDir(), "out.xlsx")

	_, _, err := execute(t, input, "-q", "--format", "xlsx", "-o", outPath)
	require.NoError(t, err)

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Sheet1", "B1")
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

func TestRunConfigFile(t *testing.T) {
	input := writeInput(t, "1;2 /;x\n")
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.txt")
	configPath := filepath.Join(dir, "rpnsheet.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("delimiter: \";\"\nerror-marker: N/A\noutput: ignored.txt\n"), 0644))

	stdout, _, err := execute(t, input, "--config", configPath, "-o", outPath)
	require.NoError(t, err)
	assert.Equal(t, "1, N/A, N/A\n", stdout)

	// -o on the command line wins over the file.
	_, err = os.Stat(outPath)
	assert.NoError(t, err)
}

func TestRunConfigUnknownKey(t *testing.T) {
	input := writeInput(t, "1\n")
	configPath := filepath.Join(t.TempDir(), "rpnsheet.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("colour: red\n"), 0644))

	_, _, err := execute(t, input, "--config", configPath, "-q", "-o", filepath.Join(t.TempDir(), "o.csv"))
	assert.ErrorContains(t, err, "unknown setting")
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "file not found")

	input := writeInput(t, "1\n")
	_, _, err = execute(t, input, "--format", "toml")
	assert.ErrorContains(t, err, "invalid format")
}
