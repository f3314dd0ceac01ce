package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no special characters", "plain text 123", "plain text 123"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<div>", "&lt;div&gt;"},
		{"quotes", `"double" 'single'`, "&quot;double&quot; &#39;single&#39;"},
		{"all five", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{"re-escaping double encodes the ampersand", "&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeHTML(tt.input))
		})
	}
}
