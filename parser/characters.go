package parser

import "unicode"

// CharClass is a named set of characters with readers for runs of it.
type CharClass struct {
	name   string
	verify Verifier
}

// NewCharClass returns a class accepting the characters v accepts.
func NewCharClass(name string, v Verifier) CharClass {
	return CharClass{name: name, verify: v}
}

var (
	ASCIIAlpha           = NewCharClass("ascii alpha", IntervalVerifier(asciiAlphaRanges))
	ASCIIAlphanumeric    = NewCharClass("ascii alphanumeric", IntervalVerifier(asciiAlphanumericRanges))
	BinaryDigit          = NewCharClass("binary digit", IntervalVerifier(binaryDigitRanges))
	OctalDigit           = NewCharClass("octal digit", IntervalVerifier(octalDigitRanges))
	DecimalDigit         = NewCharClass("decimal digit", IntervalVerifier(decimalDigitRanges))
	HexDigit             = NewCharClass("hexadecimal digit", IntervalVerifier(hexDigitRanges))
	Whitespace           = NewCharClass("whitespace", IntervalVerifier(whitespaceRanges))
	SingleLineWhitespace = NewCharClass("single line whitespace", IntervalVerifier(singleLineWhitespaceRanges))
	LineBreak            = NewCharClass("line break", IntervalVerifier(lineBreakRanges))
)

func (c CharClass) Name() string       { return c.name }
func (c CharClass) Verifier() Verifier { return c.verify }

func (c CharClass) Contains(r rune) bool {
	return c.verify(0, r)
}

// One reads a single character of the class.
func (c CharClass) One() Parser[rune] {
	return AnyOf(c.verify)
}

// ZeroOrMore reads a possibly empty run of the class. It never fails.
func (c CharClass) ZeroOrMore() Parser[string] {
	return c.Quantified(ZeroOrMore())
}

// OneOrMore reads a non-empty run of the class.
func (c CharClass) OneOrMore() Parser[string] {
	return c.Quantified(OneOrMore())
}

// Quantified reads a run of the class whose length satisfies q.
func (c CharClass) Quantified(q Quantifier) Parser[string] {
	return AnyOfQuantified(q, c.verify)
}

func (c CharClass) String() string {
	return c.name
}

// ReadChar reads the character c.
func ReadChar(c rune) Parser[rune] {
	return AnyOf(CharVerifier(c))
}

// ReadCharNoCase reads c ignoring case.
func ReadCharNoCase(c rune) Parser[rune] {
	return func(in *Input) (rune, error) {
		r, size, ok := in.peekRune()
		if !ok || !foldEqual(r, c) {
			return 0, ErrNotFound
		}
		in.consume(size)
		return r, nil
	}
}

// ReadText reads the literal text.
func ReadText(text string) Parser[string] {
	return func(in *Input) (string, error) {
		if !in.PeekText(text) {
			return "", ErrNotFound
		}
		s := in.RemainingContent()[:len(text)]
		in.consume(len(text))
		return s, nil
	}
}

// ReadTextNoCase reads text ignoring case and returns the matched input,
// which may differ from text in case and in length.
func ReadTextNoCase(text string) Parser[string] {
	return func(in *Input) (string, error) {
		start := in.Cursor()
		for _, want := range text {
			r, ok := in.Read()
			if !ok || !foldEqual(r, want) {
				in.Restore(start)
				return "", ErrNotFound
			}
		}
		return in.SubstringToCurrent(start), nil
	}
}

// foldEqual compares a and b by their lowercase forms, trying every member
// of b's case folding orbit.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	la := unicode.ToLower(a)
	if la == unicode.ToLower(b) {
		return true
	}
	for f := unicode.SimpleFold(b); f != b; f = unicode.SimpleFold(f) {
		if la == unicode.ToLower(f) || a == f {
			return true
		}
	}
	return false
}

// AnyChar reads any single character.
func AnyChar() Parser[rune] {
	return func(in *Input) (rune, error) {
		r, ok := in.Read()
		if !ok {
			return 0, ErrNotFound
		}
		return r, nil
	}
}

// AnyQuantified reads a run of any characters whose length satisfies q.
func AnyQuantified(q Quantifier) Parser[string] {
	return func(in *Input) (string, error) {
		s, ok := in.ReadQuantified(q)
		if !ok {
			return "", ErrNotFound
		}
		return s, nil
	}
}

// AnyOf reads one character accepted by v.
func AnyOf(v Verifier) Parser[rune] {
	return func(in *Input) (rune, error) {
		r, size, ok := in.peekRune()
		if !ok || !v(0, r) {
			return 0, ErrNotFound
		}
		in.consume(size)
		return r, nil
	}
}

// AnyOfQuantified reads a run of characters accepted by v whose length
// satisfies q.
func AnyOfQuantified(q Quantifier, v Verifier) Parser[string] {
	return func(in *Input) (string, error) {
		s, ok := in.ReadWhileQuantified(q, v)
		if !ok {
			return "", ErrNotFound
		}
		return s, nil
	}
}

// NoneOf reads one character rejected by v.
func NoneOf(v Verifier) Parser[rune] {
	return AnyOf(v.Negate())
}

// NoneOfQuantified reads a run of characters rejected by v whose length
// satisfies q.
func NoneOfQuantified(q Quantifier, v Verifier) Parser[string] {
	return AnyOfQuantified(q, v.Negate())
}

// ReadWhile reads the longest, possibly empty, run of characters accepted
// by v. It never fails.
func ReadWhile(v Verifier) Parser[string] {
	return func(in *Input) (string, error) {
		return in.ReadWhile(v), nil
	}
}
