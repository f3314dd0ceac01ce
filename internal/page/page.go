// Package page splits a Markdown source file into its front matter
// metadata and body.
package page

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Page is one source document, ready for conversion.
type Page struct {
	Title string
	Body  string
}

type meta struct {
	Title string `yaml:"title"`
}

// Parse splits optional YAML front matter from src. The front matter may
// supply the document title; otherwise the title falls back to the file
// name without its extension.
func Parse(path string, src []byte) (*Page, error) {
	var m meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &m)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter of %s: %w", path, err)
	}

	title := m.Title
	if title == "" {
		name := filepath.Base(path)
		title = strings.TrimSuffix(name, filepath.Ext(name))
	}

	return &Page{Title: title, Body: string(body)}, nil
}
