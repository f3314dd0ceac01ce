package processor

import (
	"github.com/andrewhowdencom/mdpress/internal/document"
)

// DocumentProcessor wraps an HTML fragment into a full document shell,
// taking the title from the data map.
type DocumentProcessor struct {
	wrapper *document.Wrapper
}

// NewDocumentProcessor creates a new DocumentProcessor.
func NewDocumentProcessor(wrapper *document.Wrapper) *DocumentProcessor {
	return &DocumentProcessor{wrapper: wrapper}
}

// Process wraps content into the document shell.
func (p *DocumentProcessor) Process(content string, data map[string]interface{}) (string, error) {
	title, _ := data["Title"].(string)
	return p.wrapper.Wrap(content, title)
}
