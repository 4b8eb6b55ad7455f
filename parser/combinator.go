package parser

// Maybe is an optional result.
type Maybe[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Maybe.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{Value: v, Present: true}
}

func (m Maybe[T]) Get() (T, bool) {
	return m.Value, m.Present
}

// OrElse returns the value if present and d otherwise.
func (m Maybe[T]) OrElse(d T) T {
	if m.Present {
		return m.Value
	}
	return d
}

// Optional turns ErrNotFound from p into an absent result.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(in *Input) (Maybe[T], error) {
		v, err := p(in)
		switch {
		case err == nil:
			return Some(v), nil
		case IsNotFound(err):
			return Maybe[T]{}, nil
		default:
			return Maybe[T]{}, err
		}
	}
}

// OptionalDefault turns ErrNotFound from p into the zero value of T.
func OptionalDefault[T any](p Parser[T]) Parser[T] {
	return func(in *Input) (T, error) {
		v, err := p(in)
		if IsNotFound(err) {
			var zero T
			return zero, nil
		}
		return v, err
	}
}

// Not succeeds without consuming input when p is not found, and fails with
// ErrNotFound when p matches.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(in *Input) (struct{}, error) {
		start := in.Cursor()
		_, err := p(in)
		switch {
		case err == nil:
			in.Restore(start)
			return struct{}{}, ErrNotFound
		case IsNotFound(err):
			return struct{}{}, nil
		default:
			return struct{}{}, err
		}
	}
}

// Verify fails with ErrNotFound when the result of p does not satisfy ok.
func Verify[T any](p Parser[T], ok func(T) bool) Parser[T] {
	return func(in *Input) (T, error) {
		start := in.Cursor()
		v, err := p(in)
		if err != nil {
			return v, err
		}
		if !ok(v) {
			in.Restore(start)
			var zero T
			return zero, ErrNotFound
		}
		return v, nil
	}
}

// AllConsumed fails with ErrNotFound unless p consumes the rest of the input.
func AllConsumed[T any](p Parser[T]) Parser[T] {
	return func(in *Input) (T, error) {
		start := in.Cursor()
		v, err := p(in)
		if err != nil {
			return v, err
		}
		if !in.IsEnd() {
			in.Restore(start)
			var zero T
			return zero, ErrNotFound
		}
		return v, nil
	}
}

// End succeeds only at the end of the input.
func End() Parser[struct{}] {
	return func(in *Input) (struct{}, error) {
		if !in.IsEnd() {
			return struct{}{}, ErrNotFound
		}
		return struct{}{}, nil
	}
}

// NotConsume runs p and returns its result without moving the cursor.
func NotConsume[T any](p Parser[T]) Parser[T] {
	return func(in *Input) (T, error) {
		start := in.Cursor()
		v, err := p(in)
		if err != nil {
			return v, err
		}
		in.Restore(start)
		return v, nil
	}
}
