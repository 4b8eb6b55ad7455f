package parser

import (
	"strings"
	"unicode/utf8"
)

// Span is a view of the text between two cursors.
type Span struct {
	content string
	start   Cursor
	end     Cursor
}

// NewSpan returns the span of content between a and b. The cursors may be
// given in either order.
func NewSpan(content string, a, b Cursor) Span {
	if b.byteOffset < a.byteOffset {
		a, b = b, a
	}
	return Span{content: content, start: a, end: b}
}

func (s Span) Start() Cursor { return s.start }
func (s Span) End() Cursor   { return s.end }

// Content returns the text covered by the span.
func (s Span) Content() string {
	return s.content[s.start.byteOffset:s.end.byteOffset]
}

// Before returns the text preceding the span.
func (s Span) Before() string {
	return s.content[:s.start.byteOffset]
}

// After returns the text following the span.
func (s Span) After() string {
	return s.content[s.end.byteOffset:]
}

// Whole returns the complete text the span belongs to.
func (s Span) Whole() string {
	return s.content
}

// Len is the span length in bytes.
func (s Span) Len() int {
	return s.end.byteOffset - s.start.byteOffset
}

// CharLen is the span length in Unicode scalar values.
func (s Span) CharLen() int {
	return s.end.charOffset - s.start.charOffset
}

func (s Span) IsEmpty() bool {
	return s.start.byteOffset == s.end.byteOffset
}

// Lines returns every complete line the span touches, without the final
// line break.
func (s Span) Lines() string {
	from := strings.LastIndexByte(s.content[:s.start.byteOffset], '\n') + 1
	to := len(s.content)
	if i := strings.IndexByte(s.content[s.end.byteOffset:], '\n'); i >= 0 {
		to = s.end.byteOffset + i
	}
	return s.content[from:to]
}

// LineNumbers returns the first and last line touched by the span.
func (s Span) LineNumbers() (first, last int) {
	return s.start.line, s.end.line
}

// StartColumnInLines returns the byte offset of the span start within the
// string returned by Lines.
func (s Span) StartColumnInLines() int {
	from := strings.LastIndexByte(s.content[:s.start.byteOffset], '\n') + 1
	return s.start.byteOffset - from
}

func (s Span) String() string {
	if s.IsEmpty() {
		return s.start.String()
	}
	return s.start.String() + "-" + s.end.String()
}

// charCount is utf8.RuneCountInString; invalid bytes count as one each.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
