package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	p := Sequence3(ASCIIAlpha.OneOrMore(), ReadChar('='), DecimalDigit.OneOrMore())

	v, err := p.ParseString("x=10")
	require.NoError(t, err)
	name, eq, value := v.Unpack()
	assert.Equal(t, "x", name)
	assert.Equal(t, '=', eq)
	assert.Equal(t, "10", value)

	in := NewInput("x=y")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}

func TestSequence_HardErrorKeepsCursor(t *testing.T) {
	p := Sequence2(ReadChar('['), Label(ReadChar(']'), "unclosed"))

	in := NewInput("[x")
	_, err := p(in)
	var perr *Error[string]
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Cursor.ByteOffset())
	assert.Equal(t, 1, in.ByteOffset())
}

func TestSequence_LargestArity(t *testing.T) {
	c := ASCIIAlpha.One()
	p := Sequence20(c, c, c, c, c, c, c, c, c, c, c, c, c, c, c, c, c, c, c, c)

	v, err := p.ParseString("abcdefghijklmnopqrst")
	require.NoError(t, err)
	assert.Equal(t, 'a', v.A)
	assert.Equal(t, 'j', v.J)
	assert.Equal(t, 't', v.T)

	in := NewInput("abcdefghijklmnopqrs1")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}

func TestSeparatedSequence(t *testing.T) {
	comma := ReadChar(',')
	p := SeparatedSequence3(comma, DecimalDigit.OneOrMore(), ASCIIAlpha.OneOrMore(), DecimalDigit.OneOrMore())

	v, err := p.ParseString("1,a,2")
	require.NoError(t, err)
	assert.Equal(t, Tuple3[string, string, string]{A: "1", B: "a", C: "2"}, v)

	in := NewInput("1,a;2")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}

func TestSeparatedSequence1_IgnoresSeparator(t *testing.T) {
	in := NewInput(",12")
	_, err := SeparatedSequence1(ReadChar(','), DecimalDigit.OneOrMore())(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())

	v, err := SeparatedSequence1(ReadChar(','), DecimalDigit.OneOrMore()).ParseString("12,")
	require.NoError(t, err)
	assert.Equal(t, "12", v.A)
}

func TestSequenceIgnore(t *testing.T) {
	p := SequenceIgnore(ReadText("let"), SingleLineWhitespace.OneOrMore(), ASCIIAlpha.One())

	in := NewInput("let  x")
	_, err := p(in)
	require.NoError(t, err)
	assert.True(t, in.IsEnd())

	in = NewInput("let 1")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}

func TestSeparatedSequenceIgnore(t *testing.T) {
	p := SeparatedSequenceIgnore(ReadChar('.'), DecimalDigit.OneOrMore(), DecimalDigit.OneOrMore(), DecimalDigit.OneOrMore())

	s, err := Consumed(p).ParseString("1.22.333.4")
	require.NoError(t, err)
	assert.Equal(t, "1.22.333", s)

	in := NewInput("1.22.")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}

func TestDelimitedPrecededTerminated(t *testing.T) {
	word := ASCIIAlpha.OneOrMore()

	s, err := Delimited(ReadChar('('), word, ReadChar(')')).ParseString("(abc)")
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	in := NewInput("(abc]")
	_, err = Delimited(ReadChar('('), word, ReadChar(')'))(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())

	s, err = Preceded(ReadChar('$'), word).ParseString("$var")
	require.NoError(t, err)
	assert.Equal(t, "var", s)

	in = NewInput("$1")
	_, err = Preceded(ReadChar('$'), word)(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())

	s, err = Terminated(word, ReadChar(';')).ParseString("stmt;")
	require.NoError(t, err)
	assert.Equal(t, "stmt", s)

	in = NewInput("stmt")
	_, err = Terminated(word, ReadChar(';'))(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}
