package parser

import (
	"errors"
	"sync"
)

// RestoreOnNotFound runs p and moves the cursor back to where it was if p
// returns ErrNotFound.
func RestoreOnNotFound[T any](p Parser[T]) Parser[T] {
	return func(in *Input) (T, error) {
		start := in.Cursor()
		v, err := p(in)
		if IsNotFound(err) {
			in.Restore(start)
		}
		return v, err
	}
}

// Map transforms the result of p.
func Map[T, U any](p Parser[T], fn func(T) U) Parser[U] {
	return func(in *Input) (U, error) {
		v, err := p(in)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v), nil
	}
}

// AndThen transforms the result of p with a function that may fail. If fn
// returns ErrNotFound the cursor is restored to before p.
func AndThen[T, U any](p Parser[T], fn func(T) (U, error)) Parser[U] {
	return RestoreOnNotFound(func(in *Input) (U, error) {
		v, err := p(in)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}

// MapParser runs inner over the text matched by outer. The inner parser
// sees a fresh input holding only that text, with the same context and
// logger; its positions are relative to the matched text.
func MapParser[T any](outer Parser[string], inner Parser[T]) Parser[T] {
	return RestoreOnNotFound(func(in *Input) (T, error) {
		text, err := outer(in)
		if err != nil {
			var zero T
			return zero, err
		}
		sub := NewInput(text, WithContext(in.context), WithLogger(in.logger))
		return inner(sub)
	})
}

// Consumed runs p and returns the text it consumed instead of its result.
func Consumed[T any](p Parser[T]) Parser[string] {
	return func(in *Input) (string, error) {
		start := in.Cursor()
		if _, err := p(in); err != nil {
			return "", err
		}
		return in.SubstringToCurrent(start), nil
	}
}

// ConsumedSpan runs p and returns the span it consumed.
func ConsumedSpan[T any](p Parser[T]) Parser[Span] {
	return func(in *Input) (Span, error) {
		start := in.Cursor()
		if _, err := p(in); err != nil {
			return Span{}, err
		}
		return in.SpanFrom(start), nil
	}
}

// WithSpan runs p and returns its result along with the span it consumed.
func WithSpan[T any](p Parser[T]) Parser[Spanned[T]] {
	return func(in *Input) (Spanned[T], error) {
		start := in.Cursor()
		v, err := p(in)
		if err != nil {
			return Spanned[T]{}, err
		}
		return Spanned[T]{Value: v, Span: in.SpanFrom(start)}, nil
	}
}

// Spanned is a parse result with its source span.
type Spanned[T any] struct {
	Value T
	Span  Span
}

// Ignore discards the result of p.
func Ignore[T any](p Parser[T]) Parser[struct{}] {
	return func(in *Input) (struct{}, error) {
		_, err := p(in)
		return struct{}{}, err
	}
}

// Value succeeds with v without consuming input.
func Value[T any](v T) Parser[T] {
	return func(*Input) (T, error) {
		return v, nil
	}
}

// Replace runs p and returns v in place of its result.
func Replace[T, U any](p Parser[T], v U) Parser[U] {
	return func(in *Input) (U, error) {
		if _, err := p(in); err != nil {
			var zero U
			return zero, err
		}
		return v, nil
	}
}

// Failure always fails with a hard error at the current cursor, built by fn.
func Failure[T, P any](fn func(in *Input) P) Parser[T] {
	return func(in *Input) (T, error) {
		var zero T
		return zero, Fail(in.Cursor(), fn(in))
	}
}

// Ensure turns ErrNotFound from p into a hard error at the current cursor
// whose payload is built by fn.
func Ensure[T, P any](p Parser[T], fn func(in *Input) P) Parser[T] {
	return func(in *Input) (T, error) {
		v, err := p(in)
		if IsNotFound(err) {
			return v, Fail(in.Cursor(), fn(in))
		}
		return v, err
	}
}

// Label is Ensure with a constant payload.
func Label[T, P any](p Parser[T], payload P) Parser[T] {
	return Ensure(p, func(*Input) P { return payload })
}

// Recover intercepts a hard *Error[P] from p. fn may return a substitute
// result with a nil error, or any error to keep failing.
func Recover[T, P any](p Parser[T], fn func(in *Input, err *Error[P]) (T, error)) Parser[T] {
	return func(in *Input) (T, error) {
		v, err := p(in)
		var perr *Error[P]
		if err != nil && errors.As(err, &perr) {
			return fn(in, perr)
		}
		return v, err
	}
}

// Lazy defers building a parser until it is first used, which lets a
// grammar refer to itself.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return func(in *Input) (T, error) {
		once.Do(func() { p = build() })
		return p(in)
	}
}
