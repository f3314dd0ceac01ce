package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		outDir string
		want   string
	}{
		{"replaces md extension", "doc.md", "", "doc.html"},
		{"extension match is case insensitive", "README.MD", "", "README.html"},
		{"mixed case extension", "notes.Md", "", "notes.html"},
		{"appends when no md extension", "notes.txt", "", "notes.txt.html"},
		{"appends when no extension at all", "notes", "", "notes.html"},
		{"keeps the directory", filepath.Join("docs", "guide.md"), "", filepath.Join("docs", "guide.html")},
		{"out dir relocates without renaming", filepath.Join("docs", "guide.md"), "public", filepath.Join("public", "guide.html")},
		{"out dir with non md input", "raw.txt", "public", filepath.Join("public", "raw.txt.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.input, tt.outDir))
		})
	}
}
