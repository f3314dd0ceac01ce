// Package output derives output file paths from input paths.
package output

import (
	"path/filepath"
	"strings"
)

// Derive maps an input path to its HTML output path: a trailing .md
// extension (any case) is replaced with .html, and any other name gets
// .html appended. A non-empty outDir relocates the derived file into that
// directory without renaming it.
func Derive(input, outDir string) string {
	derived := input
	if ext := filepath.Ext(input); strings.EqualFold(ext, ".md") {
		derived = strings.TrimSuffix(input, ext)
	}
	derived += ".html"

	if outDir != "" {
		derived = filepath.Join(outDir, filepath.Base(derived))
	}
	return derived
}
