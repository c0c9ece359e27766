// Package htmldoc provides an immutable snapshot of a loaded HTML document.
// The snapshot carries the raw content plus a pre-computed line index so that
// line-oriented checks and reporters never re-split the file.
package htmldoc

import "strings"

// Document is the full text of one HTML file plus its line index.
// It is immutable once built.
type Document struct {
	// Path is the file path the content was read from.
	Path string

	// Content is the full file content as a single string.
	Content string

	lines []string
}

// New builds a Document from raw file content.
// Lines are split on CRLF, CR, or LF. A trailing empty segment after a final
// line break is dropped so line numbering matches editor conventions.
func New(path string, content []byte) *Document {
	text := string(content)

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := strings.Split(normalized, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return &Document{
		Path:    path,
		Content: text,
		lines:   lines,
	}
}

// Lines returns the document's lines in order.
// The returned slice must not be modified.
func (d *Document) Lines() []string {
	return d.lines
}

// Line returns the 1-based line n, or "" if n is out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}
