package processor

import (
	"github.com/andrewhowdencom/mdpress/internal/markdown"
)

// MarkdownProcessor converts Markdown content to an HTML fragment.
type MarkdownProcessor struct{}

// NewMarkdownProcessor creates a new MarkdownProcessor.
func NewMarkdownProcessor() *MarkdownProcessor {
	return &MarkdownProcessor{}
}

// Process converts Markdown content to an HTML fragment.
func (p *MarkdownProcessor) Process(content string, _ map[string]interface{}) (string, error) {
	return markdown.ToHTML(content)
}
