package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runConvert(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)
	t.Cleanup(func() {
		outFile, outDir = "", ""
		dryRun, watch = false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"convert"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(in, []byte("# Hello\n"), 0o644))

	stdout, err := runConvert(t, in)
	require.NoError(t, err)

	out := filepath.Join(dir, "doc.html")
	assert.Contains(t, stdout, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Hello</h1>")
}

func TestConvertCommand_OutDir(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(in, []byte("hi\n"), 0o644))

	_, err := runConvert(t, in, "--out-dir", filepath.Join(dir, "public"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "public", "doc.html"))
}

func TestConvertCommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(in, []byte("hi\n"), 0o644))

	stdout, err := runConvert(t, in, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, stdout, "doc.md")
	assert.Contains(t, stdout, "doc.html")
	assert.NoFileExists(t, filepath.Join(dir, "doc.html"))
}

func TestConvertCommand_MissingInput(t *testing.T) {
	_, err := runConvert(t, filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}

func TestConvertCommand_ConflictingOutputFlags(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(in, []byte("hi\n"), 0o644))

	_, err := runConvert(t, in, "-o", "a.html", "--out-dir", "b")
	assert.Error(t, err)
}
