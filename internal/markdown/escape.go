package markdown

import "strings"

// escaper rewrites the five HTML-significant characters into entities. The
// replacer substitutes in a single pass, so the entities it emits are never
// themselves re-escaped; the ampersand pair is listed first to make that
// priority explicit.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes a raw string for insertion into an HTML text node or
// attribute value. It must be applied exactly once per insertion point:
// re-escaping an already-escaped string double-encodes the ampersands of its
// entities.
func escapeHTML(s string) string {
	return escaper.Replace(s)
}
