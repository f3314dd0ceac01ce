// Package document wraps HTML fragments into complete HTML5 documents.
package document

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/Masterminds/sprig/v3"
)

const defaultShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title }}</title>
</head>
<body>
{{ .Content }}
</body>
</html>
`

// Wrapper renders an HTML fragment into a full document shell.
type Wrapper struct {
	tmpl *template.Template
}

// New returns a Wrapper using the built-in minimal HTML5 shell.
func New() *Wrapper {
	return &Wrapper{tmpl: template.Must(template.New("shell").Parse(defaultShell))}
}

// NewFromFile returns a Wrapper rendering a user-supplied shell template.
// The template receives .Title and .Content and may use the sprig function
// library.
func NewFromFile(path string) (*Wrapper, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := template.New("shell").Funcs(sprig.HtmlFuncMap()).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", path, err)
	}
	return &Wrapper{tmpl: tmpl}, nil
}

// Wrap renders fragment into the document shell under the given title. The
// fragment is inserted verbatim; the title is escaped by the template
// engine.
func (w *Wrapper) Wrap(fragment, title string) (string, error) {
	var b strings.Builder
	err := w.tmpl.Execute(&b, struct {
		Title   string
		Content template.HTML
	}{
		Title:   title,
		Content: template.HTML(fragment),
	})
	if err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return b.String(), nil
}
