package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewhowdencom/mdpress/internal/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConverter_File(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	writeFile(t, in, "---\ntitle: A Doc\n---\n# Hello\n\nSome **text**.\n")

	c, err := New(Options{})
	require.NoError(t, err)

	out, err := c.File(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "doc.html"), out)

	doc, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<!DOCTYPE html>")
	assert.Contains(t, string(doc), "<title>A Doc</title>")
	assert.Contains(t, string(doc), "<h1>Hello</h1>")
	assert.Contains(t, string(doc), "<p>Some <strong>text</strong>.</p>")
}

func TestConverter_File_OutFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	writeFile(t, in, "# Hi\n")
	target := filepath.Join(dir, "custom", "index.html")

	c, err := New(Options{OutFile: target})
	require.NoError(t, err)

	out, err := c.File(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, target, out)
	assert.FileExists(t, target)
}

func TestConverter_File_MissingInput(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	_, err = c.File(context.Background(), filepath.Join(t.TempDir(), "absent.md"))
	assert.ErrorIs(t, err, files.ErrNotFound)
}

func TestConverter_File_CustomTemplate(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.md")
	writeFile(t, in, "body\n")
	tmpl := filepath.Join(dir, "shell.tmpl")
	writeFile(t, tmpl, "<main data-title=\"{{ .Title }}\">{{ .Content }}</main>")

	c, err := New(Options{TemplatePath: tmpl})
	require.NoError(t, err)

	out, err := c.File(context.Background(), in)
	require.NoError(t, err)

	doc, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `<main data-title="doc"><p>body</p></main>`, string(doc))
}

func TestConverter_Tree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# A\n")
	writeFile(t, filepath.Join(dir, "sub", "b.md"), "# B\n")
	writeFile(t, filepath.Join(dir, "ignore.txt"), "x\n")

	outDir := filepath.Join(dir, "public")
	c, err := New(Options{OutDir: outDir})
	require.NoError(t, err)

	written, err := c.Tree(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, written, 2)
	assert.FileExists(t, filepath.Join(outDir, "a.html"))
	assert.FileExists(t, filepath.Join(outDir, "b.html"))
}

func TestDiscover(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "a.md")
		writeFile(t, in, "# A\n")

		inputs, err := Discover(in)
		require.NoError(t, err)
		assert.Equal(t, []string{in}, inputs)
	})

	t.Run("directory tree", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.md"), "# A\n")
		writeFile(t, filepath.Join(dir, "b.MD"), "# B\n")
		writeFile(t, filepath.Join(dir, "sub", "c.md"), "# C\n")
		writeFile(t, filepath.Join(dir, "skip.txt"), "x\n")

		inputs, err := Discover(dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "a.md"),
			filepath.Join(dir, "b.MD"),
			filepath.Join(dir, "sub", "c.md"),
		}, inputs)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "absent"))
		assert.ErrorIs(t, err, files.ErrNotFound)
	})
}
