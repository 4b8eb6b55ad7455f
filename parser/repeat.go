package parser

// Repeating a parser that succeeds without consuming input would loop
// forever under an unbounded quantifier. Every loop below counts such an
// iteration once and then stops.

// Repeat reads p as many times as q allows and returns the results.
func Repeat[T any](q Quantifier, p Parser[T]) Parser[[]T] {
	return RepeatAndFold(q, nil, func(acc []T, v T) []T { return append(acc, v) }, p)
}

// RepeatAndCount reads p as many times as q allows and returns the count.
func RepeatAndCount(q Quantifier, p Matcher) Parser[int] {
	return RestoreOnNotFound(func(in *Input) (int, error) {
		n := 0
		for !q.IsFinished(n) {
			before := in.Cursor()
			err := p.Match(in)
			if IsNotFound(err) {
				break
			}
			if err != nil {
				return 0, err
			}
			n++
			if in.Cursor() == before && q.IsUnbounded() {
				break
			}
		}
		if !q.Contains(n) {
			return 0, ErrNotFound
		}
		return n, nil
	})
}

// RepeatAndFold reads p as many times as q allows, combining the results
// into an accumulator that starts at init.
func RepeatAndFold[A, T any](q Quantifier, init A, fold func(A, T) A, p Parser[T]) Parser[A] {
	return RestoreOnNotFound(func(in *Input) (A, error) {
		acc := init
		n := 0
		for !q.IsFinished(n) {
			before := in.Cursor()
			v, err := p(in)
			if IsNotFound(err) {
				break
			}
			if err != nil {
				var zero A
				return zero, err
			}
			acc = fold(acc, v)
			n++
			if in.Cursor() == before && q.IsUnbounded() {
				break
			}
		}
		if !q.Contains(n) {
			var zero A
			return zero, ErrNotFound
		}
		return acc, nil
	})
}

// RepeatSeparated reads p as many times as q allows with sep between
// consecutive elements. A separator not followed by an element is left
// unconsumed.
func RepeatSeparated[T any](q Quantifier, p Parser[T], sep Matcher) Parser[[]T] {
	return RestoreOnNotFound(func(in *Input) ([]T, error) {
		var out []T
		for !q.IsFinished(len(out)) {
			before := in.Cursor()
			if len(out) > 0 {
				err := sep.Match(in)
				if IsNotFound(err) {
					break
				}
				if err != nil {
					return nil, err
				}
			}
			v, err := p(in)
			if IsNotFound(err) {
				in.Restore(before)
				break
			}
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			if in.Cursor() == before && q.IsUnbounded() {
				break
			}
		}
		if !q.Contains(len(out)) {
			return nil, ErrNotFound
		}
		return out, nil
	})
}

// RepeatAndCountSeparated is RepeatSeparated returning only the count.
func RepeatAndCountSeparated(q Quantifier, p Matcher, sep Matcher) Parser[int] {
	return RestoreOnNotFound(func(in *Input) (int, error) {
		n := 0
		for !q.IsFinished(n) {
			before := in.Cursor()
			if n > 0 {
				err := sep.Match(in)
				if IsNotFound(err) {
					break
				}
				if err != nil {
					return 0, err
				}
			}
			err := p.Match(in)
			if IsNotFound(err) {
				in.Restore(before)
				break
			}
			if err != nil {
				return 0, err
			}
			n++
			if in.Cursor() == before && q.IsUnbounded() {
				break
			}
		}
		if !q.Contains(n) {
			return 0, ErrNotFound
		}
		return n, nil
	})
}

// RepeatToFill reads p exactly len(buf) times, storing the results in buf.
// Entries before a failure keep the values already read. The returned
// parser writes to buf, so it must not be shared between goroutines.
func RepeatToFill[T any](buf []T, p Parser[T]) Parser[struct{}] {
	return RestoreOnNotFound(func(in *Input) (struct{}, error) {
		for i := range buf {
			v, err := p(in)
			if err != nil {
				return struct{}{}, err
			}
			buf[i] = v
		}
		return struct{}{}, nil
	})
}

// CountAndRepeat reads a count with count and then reads p exactly that
// many times.
func CountAndRepeat[T any](count Parser[int], p Parser[T]) Parser[[]T] {
	return RestoreOnNotFound(func(in *Input) ([]T, error) {
		n, err := count(in)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, ErrNotFound
		}
		out := make([]T, 0, min(n, in.RemainingLength()+1))
		for range n {
			v, err := p(in)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	})
}
