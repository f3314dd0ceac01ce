// Package processor composes the content rewrites a source document goes
// through on its way to a published HTML file.
package processor

// Processor is one content rewrite stage. The data map carries per-document
// values (currently the title) that individual stages may consult.
type Processor interface {
	Process(content string, data map[string]interface{}) (string, error)
}

// Stack applies processors in sequence, feeding each stage the output of
// the previous one.
type Stack []Processor

// Process runs the whole stack over content.
func (s Stack) Process(content string, data map[string]interface{}) (string, error) {
	var err error
	for _, p := range s {
		content, err = p.Process(content, data)
		if err != nil {
			return "", err
		}
	}
	return content, nil
}
