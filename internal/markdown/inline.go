package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// Inline rewriting runs in a fixed order: code spans, then links, then bold,
// then italic. Code spans and rendered anchors are lifted out into opaque
// chunks before the emphasis passes run, so literal asterisks in code and
// underscores in URLs can never be re-parsed as emphasis.
var (
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
	linkRe     = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)

	boldStarRe  = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderRe = regexp.MustCompile(`__(.+?)__`)

	italicStarRe  = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderRe = regexp.MustCompile(`_([^_]+)_`)

	chunkRe = regexp.MustCompile("\x00INLINE(\\d+)\x00")
)

// Doubled markers left over from unpaired bold syntax are hidden before the
// italic pass, the lookaround-free equivalent of "a lone * must not be half
// of a surviving **".
const (
	hiddenStars  = "\x00DBLSTAR\x00"
	hiddenUnders = "\x00DBLUNDER\x00"
	chunkPrefix  = "\x00INLINE"
	chunkSuffix  = "\x00"
)

// renderInline converts the content of a single heading or paragraph to
// HTML. The input is raw Markdown text; every piece of it is HTML-escaped
// exactly once on its way into the output.
func renderInline(text string) string {
	var chunks []string
	protect := func(rendered string) string {
		chunks = append(chunks, rendered)
		return chunkPrefix + strconv.Itoa(len(chunks)-1) + chunkSuffix
	}

	// Code spans first: their content renders literally.
	text = codeSpanRe.ReplaceAllStringFunc(text, func(match string) string {
		content := codeSpanRe.FindStringSubmatch(match)[1]
		return protect("<code>" + escapeHTML(content) + "</code>")
	})

	// Links next, before the emphasis passes can eat their delimiters.
	// Link text recurses into bold/italic only; nested links and code
	// spans inside link text are out of scope and render literally.
	text = linkRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := linkRe.FindStringSubmatch(match)
		label, url := sub[1], sub[2]
		return protect(`<a href="` + escapeHTML(url) + `">` + emphasize(escapeHTML(label)) + `</a>`)
	})

	text = emphasize(escapeHTML(text))

	// Put the protected chunks back. A chunk can itself contain an
	// earlier chunk (a code span lifted out of link text), so substitute
	// until no tokens remain; chunks only ever reference lower indices,
	// which bounds the loop.
	for chunkRe.MatchString(text) {
		text = chunkRe.ReplaceAllStringFunc(text, func(match string) string {
			i, _ := strconv.Atoi(chunkRe.FindStringSubmatch(match)[1])
			return chunks[i]
		})
	}
	return text
}

// emphasize applies the bold and italic rewrites to already-escaped text.
// Bold runs first so ** is never read as two adjacent italic markers.
func emphasize(text string) string {
	text = boldStarRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = boldUnderRe.ReplaceAllString(text, "<strong>$1</strong>")

	// Any ** or __ still present is an unpaired bold marker; hide it so
	// the italic pass cannot consume half of it.
	text = strings.ReplaceAll(text, "**", hiddenStars)
	text = strings.ReplaceAll(text, "__", hiddenUnders)

	text = italicStarRe.ReplaceAllString(text, "<em>$1</em>")
	text = italicUnderRe.ReplaceAllString(text, "<em>$1</em>")

	text = strings.ReplaceAll(text, hiddenStars, "**")
	text = strings.ReplaceAll(text, hiddenUnders, "__")
	return text
}
