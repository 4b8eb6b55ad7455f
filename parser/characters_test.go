package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifiers(t *testing.T) {
	tests := []struct {
		name    string
		v       Verifier
		accepts []rune
		rejects []rune
	}{
		{"char", CharVerifier('x'), []rune{'x'}, []rune{'X', 'y'}},
		{"text", TextVerifier("+-*/"), []rune{'+', '/'}, []rune{'a', '%'}},
		{"range", RangeVerifier('a', 'f'), []rune{'a', 'c', 'f'}, []rune{'g', 'A'}},
		{"reversed range", RangeVerifier('f', 'a'), []rune{'a', 'f'}, []rune{'g'}},
		{"interval", IntervalVerifier([]RuneRange{{'0', '9'}, {'A', 'F'}}), []rune{'0', '9', 'A', 'F'}, []rune{'/', ':', '@', 'G', 'a'}},
		{"negate", CharVerifier('x').Negate(), []rune{'y'}, []rune{'x'}},
		{"or", CharVerifier('x').Or(CharVerifier('y')), []rune{'x', 'y'}, []rune{'z'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range tt.accepts {
				assert.True(t, tt.v(0, r), "accept %q", r)
			}
			for _, r := range tt.rejects {
				assert.False(t, tt.v(0, r), "reject %q", r)
			}
		})
	}
}

func TestIntervalVerifier_RejectsUnsortedRanges(t *testing.T) {
	assert.Panics(t, func() {
		IntervalVerifier([]RuneRange{{'a', 'z'}, {'A', 'Z'}})
	})
	assert.Panics(t, func() {
		IntervalVerifier([]RuneRange{{'a', 'm'}, {'k', 'z'}})
	})
	assert.Panics(t, func() {
		IntervalVerifier([]RuneRange{{'z', 'a'}})
	})
	assert.NotPanics(t, func() {
		IntervalVerifier(nil)
	})
}

func TestCharClasses(t *testing.T) {
	tests := []struct {
		class   CharClass
		accepts string
		rejects string
	}{
		{ASCIIAlpha, "azAZ", "09_é"},
		{ASCIIAlphanumeric, "az09AZ", "_-é"},
		{BinaryDigit, "01", "2a"},
		{OctalDigit, "07", "89"},
		{DecimalDigit, "09", "a/:"},
		{HexDigit, "09afAF", "gG"},
		{Whitespace, " \t\n\r\v\f\u0085\u00a0\u2003\u3000", "a\u200b"},
		{SingleLineWhitespace, " \t\u00a0\u3000", "\n\r\u2028"},
		{LineBreak, "\n\r\v\f\u0085\u2028\u2029", " \t"},
	}

	for _, tt := range tests {
		t.Run(tt.class.Name(), func(t *testing.T) {
			for _, r := range tt.accepts {
				assert.True(t, tt.class.Contains(r), "accept %U", r)
			}
			for _, r := range tt.rejects {
				assert.False(t, tt.class.Contains(r), "reject %U", r)
			}
		})
	}
}

func TestCharClass_Readers(t *testing.T) {
	in := NewInput("abc123 ")

	r, err := ASCIIAlpha.One()(in)
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	s, err := ASCIIAlpha.OneOrMore()(in)
	require.NoError(t, err)
	assert.Equal(t, "bc", s)

	_, err = ASCIIAlpha.OneOrMore()(in)
	assert.ErrorIs(t, err, ErrNotFound)

	s, err = ASCIIAlpha.ZeroOrMore()(in)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	_, err = DecimalDigit.Quantified(Exact(4))(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 3, in.ByteOffset())

	s, err = DecimalDigit.Quantified(AtMost(2))(in)
	require.NoError(t, err)
	assert.Equal(t, "12", s)
}

func TestReadChar(t *testing.T) {
	in := NewInput("ab")
	_, err := ReadChar('b')(in)
	assert.ErrorIs(t, err, ErrNotFound)

	r, err := ReadChar('a')(in)
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, in.ByteOffset())
}

func TestReadCharNoCase(t *testing.T) {
	tests := []struct {
		input string
		want  rune
		ok    bool
	}{
		{"A", 'a', true},
		{"a", 'A', true},
		{"É", 'é', true},
		{"\u212a", 'k', true}, // Kelvin sign
		{"b", 'a', false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			in := NewInput(tt.input)
			_, err := ReadCharNoCase(tt.want)(in)
			if tt.ok {
				assert.NoError(t, err)
				assert.True(t, in.IsEnd())
			} else {
				assert.ErrorIs(t, err, ErrNotFound)
				assert.Equal(t, 0, in.ByteOffset())
			}
		})
	}
}

func TestReadText(t *testing.T) {
	in := NewInput("Hello world")

	_, err := ReadText("hello")(in)
	assert.ErrorIs(t, err, ErrNotFound)

	s, err := ReadText("Hello")(in)
	require.NoError(t, err)
	assert.Equal(t, "Hello", s)
	assert.Equal(t, " world", in.RemainingContent())
}

func TestReadTextNoCase(t *testing.T) {
	in := NewInput("SeLeCt * FROM")

	s, err := ReadTextNoCase("select")(in)
	require.NoError(t, err)
	assert.Equal(t, "SeLeCt", s)

	_, err = ReadTextNoCase(" *  ")(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 6, in.ByteOffset())

	// The matched input may be longer in bytes than the pattern.
	in = NewInput("\u212aelvin")
	s, err = ReadTextNoCase("kelvin")(in)
	require.NoError(t, err)
	assert.Equal(t, "\u212aelvin", s)
}

func TestAnyReaders(t *testing.T) {
	in := NewInput("x+-y")

	r, err := AnyChar()(in)
	require.NoError(t, err)
	assert.Equal(t, 'x', r)

	s, err := AnyOfQuantified(OneOrMore(), TextVerifier("+-"))(in)
	require.NoError(t, err)
	assert.Equal(t, "+-", s)

	_, err = NoneOf(CharVerifier('y'))(in)
	assert.ErrorIs(t, err, ErrNotFound)

	r, err = AnyOf(CharVerifier('y'))(in)
	require.NoError(t, err)
	assert.Equal(t, 'y', r)

	_, err = AnyChar()(in)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NoneOf(CharVerifier('y'))(in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnyQuantified(t *testing.T) {
	in := NewInput("abcd")
	_, err := AnyQuantified(Exact(5))(in)
	assert.ErrorIs(t, err, ErrNotFound)

	s, err := AnyQuantified(Exact(3))(in)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestNoneOfQuantified(t *testing.T) {
	in := NewInput(`abc"rest`)
	s, err := NoneOfQuantified(ZeroOrMore(), CharVerifier('"'))(in)
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	_, err = NoneOfQuantified(OneOrMore(), CharVerifier('"'))(in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadWhile_NeverFails(t *testing.T) {
	in := NewInput("abc")
	s, err := ReadWhile(DecimalDigit.Verifier())(in)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}
