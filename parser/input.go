package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tliron/commonlog"
)

// Input is the text being parsed together with the current cursor.
// An Input is not safe for concurrent use.
type Input struct {
	content string
	cursor  Cursor
	context any
	logger  commonlog.Logger
	depth   int
}

// Option configures an Input.
type Option func(*Input)

// WithContext attaches a value grammars can read back with ContextAs.
func WithContext(v any) Option {
	return func(in *Input) {
		in.context = v
	}
}

// WithLogger enables Trace output on the given logger.
func WithLogger(log commonlog.Logger) Option {
	return func(in *Input) {
		in.logger = log
	}
}

// NewInput returns an Input positioned at the start of content.
func NewInput(content string, opts ...Option) *Input {
	in := &Input{
		content: content,
		cursor:  StartCursor(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Clone returns an independent copy of the input state.
func (in *Input) Clone() *Input {
	c := *in
	return &c
}

func (in *Input) Content() string { return in.content }
func (in *Input) Context() any    { return in.context }

func (in *Input) SetContext(v any) {
	in.context = v
}

// ContextAs returns the input context as a C.
func ContextAs[C any](in *Input) (C, bool) {
	c, ok := in.context.(C)
	return c, ok
}

func (in *Input) ByteOffset() int { return in.cursor.byteOffset }
func (in *Input) CharOffset() int { return in.cursor.charOffset }
func (in *Input) Line() int       { return in.cursor.line }
func (in *Input) Column() int     { return in.cursor.column }

// Cursor returns the current position. Pass it to Restore to backtrack.
func (in *Input) Cursor() Cursor {
	return in.cursor
}

// Restore moves the input back (or forward) to a saved cursor.
func (in *Input) Restore(c Cursor) {
	if c.byteOffset > len(in.content) {
		panic(fmt.Sprintf("parser: restore to offset %d beyond end of input (%d)", c.byteOffset, len(in.content)))
	}
	in.cursor = c
}

func (in *Input) RemainingContent() string {
	return in.content[in.cursor.byteOffset:]
}

// RemainingLength is the number of bytes left.
func (in *Input) RemainingLength() int {
	return len(in.content) - in.cursor.byteOffset
}

// RemainingCharLength is the number of scalar values left.
func (in *Input) RemainingCharLength() int {
	return charCount(in.RemainingContent())
}

func (in *Input) IsEnd() bool {
	return in.cursor.byteOffset >= len(in.content)
}

// SpanAtOffset returns the empty span at the current cursor.
func (in *Input) SpanAtOffset() Span {
	return NewSpan(in.content, in.cursor, in.cursor)
}

// RemainingSpan returns the span from the current cursor to the end of the
// text.
func (in *Input) RemainingSpan() Span {
	end := in.Clone()
	end.consume(end.RemainingLength())
	return NewSpan(in.content, in.cursor, end.cursor)
}

// Substring returns the text between two cursors of this input.
func (in *Input) Substring(from, to Cursor) string {
	return NewSpan(in.content, from, to).Content()
}

// SubstringToCurrent returns the text between from and the current cursor.
func (in *Input) SubstringToCurrent(from Cursor) string {
	return in.Substring(from, in.cursor)
}

// SpanFrom returns the span between from and the current cursor.
func (in *Input) SpanFrom(from Cursor) Span {
	return NewSpan(in.content, from, in.cursor)
}

// consume advances the cursor by n bytes.
func (in *Input) consume(n int) {
	if n > in.RemainingLength() {
		panic(fmt.Sprintf("parser: consume %d bytes with only %d remaining", n, in.RemainingLength()))
	}
	if n == 0 {
		return
	}

	chunk := in.content[in.cursor.byteOffset : in.cursor.byteOffset+n]
	chars := charCount(chunk)

	c := in.cursor
	c.byteOffset += n
	c.charOffset += chars
	if last := strings.LastIndexByte(chunk, '\n'); last >= 0 {
		c.line += strings.Count(chunk, "\n")
		c.column = 1 + charCount(chunk[last+1:])
	} else {
		c.column += chars
	}
	in.cursor = c
}

// Peek returns the next character without consuming it.
func (in *Input) Peek() (rune, bool) {
	r, _, ok := in.peekRune()
	return r, ok
}

// Read consumes and returns the next character.
func (in *Input) Read() (rune, bool) {
	r, size, ok := in.peekRune()
	if !ok {
		return 0, false
	}
	in.consume(size)
	return r, true
}

func (in *Input) peekRune() (rune, int, bool) {
	rest := in.RemainingContent()
	if rest == "" {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(rest)
	return r, size, true
}

// PeekText reports whether the remaining text starts with text.
func (in *Input) PeekText(text string) bool {
	return strings.HasPrefix(in.RemainingContent(), text)
}

// ReadText consumes text if the remaining content starts with it.
func (in *Input) ReadText(text string) bool {
	if !in.PeekText(text) {
		return false
	}
	in.consume(len(text))
	return true
}

// PeekQuantified returns the longest run of characters allowed by q.
// It fails when fewer than q.Min() characters remain.
func (in *Input) PeekQuantified(q Quantifier) (string, bool) {
	rest := in.RemainingContent()
	n, count := 0, 0
	for n < len(rest) && !q.IsFinished(count) {
		_, size := utf8.DecodeRuneInString(rest[n:])
		n += size
		count++
	}
	if !q.Contains(count) {
		return "", false
	}
	return rest[:n], true
}

// ReadQuantified is PeekQuantified followed by consuming the result.
func (in *Input) ReadQuantified(q Quantifier) (string, bool) {
	s, ok := in.PeekQuantified(q)
	if ok {
		in.consume(len(s))
	}
	return s, ok
}

// PeekWhile returns the longest run of characters accepted by v.
func (in *Input) PeekWhile(v Verifier) string {
	s, _ := in.PeekWhileQuantified(ZeroOrMore(), v)
	return s
}

// ReadWhile consumes the longest run of characters accepted by v.
func (in *Input) ReadWhile(v Verifier) string {
	s := in.PeekWhile(v)
	in.consume(len(s))
	return s
}

// PeekWhileQuantified returns the longest run of characters accepted by v,
// stopping once q is finished. It fails when the run does not satisfy q.
func (in *Input) PeekWhileQuantified(q Quantifier, v Verifier) (string, bool) {
	rest := in.RemainingContent()
	n, count := 0, 0
	for n < len(rest) && !q.IsFinished(count) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		if !v(count, r) {
			break
		}
		n += size
		count++
	}
	if !q.Contains(count) {
		return "", false
	}
	return rest[:n], true
}

// ReadWhileQuantified is PeekWhileQuantified followed by consuming the result.
func (in *Input) ReadWhileQuantified(q Quantifier, v Verifier) (string, bool) {
	s, ok := in.PeekWhileQuantified(q, v)
	if ok {
		in.consume(len(s))
	}
	return s, ok
}
