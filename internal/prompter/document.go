package prompter

import "strings"

// Document is the immutable source text split into raw lines.
type Document struct {
	lines []string
}

// NewDocument splits text on newlines. A single trailing newline does not
// produce an extra empty line and CRLF endings are accepted.
func NewDocument(text string) Document {
	if text == "" {
		return Document{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return Document{lines: lines}
}

// Len returns the number of raw lines.
func (d Document) Len() int {
	return len(d.lines)
}

// Lines returns a copy of the raw lines.
func (d Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}
