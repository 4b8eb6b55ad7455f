package parser

// Alternative tries each parser in order and returns the first success.
// A hard error from any of them stops the search.
func Alternative[T any](ps ...Parser[T]) Parser[T] {
	return func(in *Input) (T, error) {
		for _, p := range ps {
			v, err := p(in)
			if !IsNotFound(err) {
				return v, err
			}
		}
		var zero T
		return zero, ErrNotFound
	}
}

// AlternativeIgnore is Alternative over parsers of any result type.
func AlternativeIgnore(ps ...Matcher) Parser[struct{}] {
	return func(in *Input) (struct{}, error) {
		for _, p := range ps {
			err := p.Match(in)
			if !IsNotFound(err) {
				return struct{}{}, err
			}
		}
		return struct{}{}, ErrNotFound
	}
}

// BranchIf runs then when cond matches. The result is absent when cond is
// not found.
func BranchIf[C, T any](cond Parser[C], then Parser[T]) Parser[Maybe[T]] {
	return func(in *Input) (Maybe[T], error) {
		start := in.Cursor()
		if _, err := cond(in); err != nil {
			if IsNotFound(err) {
				return Maybe[T]{}, nil
			}
			return Maybe[T]{}, err
		}
		v, err := then(in)
		if err != nil {
			if IsNotFound(err) {
				in.Restore(start)
			}
			return Maybe[T]{}, err
		}
		return Some(v), nil
	}
}

// BranchIfElse runs then when cond matches and els otherwise.
func BranchIfElse[C, T any](cond Parser[C], then Parser[T], els Parser[T]) Parser[T] {
	return func(in *Input) (T, error) {
		start := in.Cursor()
		_, err := cond(in)
		switch {
		case IsNotFound(err):
			return els(in)
		case err != nil:
			var zero T
			return zero, err
		}
		v, err := then(in)
		if IsNotFound(err) {
			in.Restore(start)
		}
		return v, err
	}
}

// BranchWhile reads then after every match of cond and collects the
// results. It stops at the first cond that is not found.
func BranchWhile[C, T any](cond Parser[C], then Parser[T]) Parser[[]T] {
	return Repeat(ZeroOrMore(), Preceded(cond, then))
}
