package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder tokens are built around NUL, which valid textual input can
// never contain (ToHTML rejects it up front), so document content cannot
// forge or collide with a token.
const (
	placeholderPrefix = "\x00CODEBLOCK"
	placeholderSuffix = "\x00"
)

var (
	// A fence opens at the start of a line, optionally carries a language
	// tag (letters, digits, hyphen), and runs non-greedily to the first
	// closing triple backtick. Unterminated fences simply never match and
	// stay literal text.
	fencedBlockRe = regexp.MustCompile("(?ms)^```([A-Za-z0-9-]*)\n(.*?)```")

	placeholderRe = regexp.MustCompile(placeholderPrefix + `(\d+)` + placeholderSuffix)
)

func placeholder(i int) string {
	return fmt.Sprintf("%s%d%s", placeholderPrefix, i, placeholderSuffix)
}

// extractCodeBlocks renders every fenced code block to HTML and replaces it
// in the text with a placeholder token whose index is the block's position
// in the returned list (zero-based, left-to-right scan order). Later stages
// treat the tokens as opaque, so nothing can corrupt the rendered code.
func extractCodeBlocks(text string) (string, []string) {
	var blocks []string
	out := fencedBlockRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := fencedBlockRe.FindStringSubmatch(match)
		lang := sub[1]
		// Drop the newline that precedes the closing fence so the
		// rendered block does not end in a blank line.
		body := strings.TrimSuffix(sub[2], "\n")

		var b strings.Builder
		if lang != "" {
			b.WriteString(`<pre><code class="language-`)
			b.WriteString(escapeHTML(lang))
			b.WriteString(`">`)
		} else {
			b.WriteString("<pre><code>")
		}
		b.WriteString(escapeHTML(body))
		b.WriteString("</code></pre>")

		blocks = append(blocks, b.String())
		return placeholder(len(blocks) - 1)
	})
	return out, blocks
}

// restoreCodeBlocks substitutes every placeholder token with the rendered
// HTML at its embedded index, byte for byte. Extraction guarantees each
// index is in range.
func restoreCodeBlocks(text string, blocks []string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		i, _ := strconv.Atoi(placeholderRe.FindStringSubmatch(match)[1])
		return blocks[i]
	})
}
