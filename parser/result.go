package parser

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a parser did not recognise the input at the
// current position. The cursor is where it was before the parser ran.
var ErrNotFound = errors.New("parser: not found")

// Error is a hard parse failure at a position. The payload type is chosen
// by the grammar.
type Error[P any] struct {
	Cursor  Cursor
	Payload P
}

// Fail returns a hard error at the given position.
func Fail[P any](at Cursor, payload P) *Error[P] {
	return &Error[P]{Cursor: at, Payload: payload}
}

func (e *Error[P]) Error() string {
	return fmt.Sprintf("%s: %v", e.Cursor, e.Payload)
}

// Position returns where the error happened.
func (e *Error[P]) Position() Cursor {
	return e.Cursor
}

// Detail returns the payload as text, without the position.
func (e *Error[P]) Detail() string {
	return fmt.Sprint(e.Payload)
}

// Positioned is implemented by errors that carry a cursor.
type Positioned interface {
	error
	Position() Cursor
	Detail() string
}

// IsNotFound reports whether err is the recoverable not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsHard reports whether err is a failure that must not be retried.
func IsHard(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound)
}

// Parser reads a T from the input.
//
// On ErrNotFound the cursor must be where it was on entry. Any other error
// is a hard failure and the cursor is left where the failure happened.
type Parser[T any] func(in *Input) (T, error)

// Parse runs the parser.
func (p Parser[T]) Parse(in *Input) (T, error) {
	return p(in)
}

// Match runs the parser and discards its result.
func (p Parser[T]) Match(in *Input) error {
	_, err := p(in)
	return err
}

// ParseString runs the parser over a fresh input built from text.
func (p Parser[T]) ParseString(text string, opts ...Option) (T, error) {
	return p(NewInput(text, opts...))
}

// Matcher is any parser with its result discarded. Every Parser[T] is a
// Matcher, so sequences and alternatives of mixed result types can be
// expressed through it.
type Matcher interface {
	Match(in *Input) error
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(in *Input) error

func (f MatcherFunc) Match(in *Input) error {
	return f(in)
}
