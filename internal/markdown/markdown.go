// Package markdown converts a constrained subset of Markdown into HTML
// fragments.
//
// The subset covers ATX headings (levels 1-6), paragraphs, fenced code
// blocks with an optional language tag, inline code spans, links, bold and
// italic. Anything else renders literally; malformed syntax is never
// rejected. The conversion is a fixed sequence of text rewrites: fenced
// code blocks are lifted out behind opaque placeholder tokens, the
// remaining text is split into blocks, inline rewrites run inside heading
// and paragraph content, and the code blocks are substituted back at the
// end.
package markdown

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput reports that the input is not valid text. No partial
// output is produced.
var ErrInvalidInput = errors.New("markdown: input is not valid text")

// ToHTML converts Markdown text to an HTML fragment: block-level elements
// joined by newlines, without any document wrapper. Blank input converts to
// the empty string.
//
// The conversion holds no state between calls and is safe for concurrent
// use.
func ToHTML(text string) (string, error) {
	// NUL can never appear in textual input, and admitting it would let
	// the document forge placeholder tokens.
	if !utf8.ValidString(text) || strings.ContainsRune(text, 0) {
		return "", ErrInvalidInput
	}

	text = normalizeLineEndings(text)
	text, blocks := extractCodeBlocks(text)
	out := strings.Join(renderBlocks(text), "\n")
	return restoreCodeBlocks(out, blocks), nil
}

func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
