package parser

//go:generate go run ../cmd/tuplegen --output tuples_gen.go --max 20

// Delimited reads open, content and close, keeping the content.
func Delimited[O, T, C any](open Parser[O], content Parser[T], close Parser[C]) Parser[T] {
	return RestoreOnNotFound(func(in *Input) (T, error) {
		var zero T
		if _, err := open(in); err != nil {
			return zero, err
		}
		v, err := content(in)
		if err != nil {
			return zero, err
		}
		if _, err := close(in); err != nil {
			return zero, err
		}
		return v, nil
	})
}

// Preceded reads prefix then content, keeping the content.
func Preceded[P, T any](prefix Parser[P], content Parser[T]) Parser[T] {
	return RestoreOnNotFound(func(in *Input) (T, error) {
		if _, err := prefix(in); err != nil {
			var zero T
			return zero, err
		}
		return content(in)
	})
}

// Terminated reads content then suffix, keeping the content.
func Terminated[T, S any](content Parser[T], suffix Parser[S]) Parser[T] {
	return RestoreOnNotFound(func(in *Input) (T, error) {
		var zero T
		v, err := content(in)
		if err != nil {
			return zero, err
		}
		if _, err := suffix(in); err != nil {
			return zero, err
		}
		return v, nil
	})
}

// SequenceIgnore matches every parser in order and discards the results.
func SequenceIgnore(ps ...Matcher) Parser[struct{}] {
	return RestoreOnNotFound(func(in *Input) (struct{}, error) {
		for _, p := range ps {
			if err := p.Match(in); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
}

// SeparatedSequenceIgnore is SequenceIgnore with sep matched between every
// pair of parsers.
func SeparatedSequenceIgnore(sep Matcher, ps ...Matcher) Parser[struct{}] {
	return RestoreOnNotFound(func(in *Input) (struct{}, error) {
		for i, p := range ps {
			if i > 0 {
				if err := sep.Match(in); err != nil {
					return struct{}{}, err
				}
			}
			if err := p.Match(in); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
}
