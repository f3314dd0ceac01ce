package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// 1-6 hashes, at least one whitespace character, then content. Seven
	// or more hashes cannot match: no split of the run leaves a hash
	// followed by whitespace.
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

	placeholderLineRe = regexp.MustCompile(`^` + placeholderPrefix + `\d+` + placeholderSuffix + `$`)
)

// renderBlocks walks the text line by line and produces the ordered HTML
// block elements: headings, paragraphs, and pass-through placeholder lines.
// A paragraph is the maximal run of contiguous lines that are not blank,
// not headings and not placeholders; its lines are joined with single
// spaces before inline transformation.
func renderBlocks(text string) []string {
	var blocks []string
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, "<p>"+renderInline(strings.Join(para, " "))+"</p>")
		para = para[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case placeholderLineRe.MatchString(line):
			flush()
			blocks = append(blocks, line)
		case strings.TrimSpace(line) == "":
			flush()
		default:
			if m := headingRe.FindStringSubmatch(line); m != nil {
				if content := strings.TrimSpace(m[2]); content != "" {
					flush()
					level := len(m[1])
					blocks = append(blocks, fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(content), level))
					continue
				}
			}
			para = append(para, line)
		}
	}
	flush()

	return blocks
}
