package processor

import (
	"testing"

	"github.com/andrewhowdencom/mdpress/internal/document"
	"github.com/andrewhowdencom/mdpress/internal/markdown"
	"github.com/stretchr/testify/assert"
)

func TestMarkdownProcessor(t *testing.T) {
	p := NewMarkdownProcessor()

	html, err := p.Process("Hello **world**", nil)
	assert.NoError(t, err)
	assert.Equal(t, "<p>Hello <strong>world</strong></p>", html)
}

func TestMarkdownProcessor_InvalidInput(t *testing.T) {
	p := NewMarkdownProcessor()

	_, err := p.Process("\xff", nil)
	assert.ErrorIs(t, err, markdown.ErrInvalidInput)
}

func TestDocumentProcessor(t *testing.T) {
	p := NewDocumentProcessor(document.New())

	doc, err := p.Process("<p>body</p>", map[string]interface{}{"Title": "T"})
	assert.NoError(t, err)
	assert.Contains(t, doc, "<title>T</title>")
	assert.Contains(t, doc, "<p>body</p>")
}

func TestStack(t *testing.T) {
	stack := Stack{
		NewMarkdownProcessor(),
		NewDocumentProcessor(document.New()),
	}

	doc, err := stack.Process("# Hello", map[string]interface{}{"Title": "Greeting"})
	assert.NoError(t, err)
	assert.Contains(t, doc, "<title>Greeting</title>")
	assert.Contains(t, doc, "<h1>Hello</h1>")
}

func TestStack_StopsOnError(t *testing.T) {
	stack := Stack{
		NewMarkdownProcessor(),
		NewDocumentProcessor(document.New()),
	}

	out, err := stack.Process("\x00", nil)
	assert.Error(t, err)
	assert.Empty(t, out)
}
