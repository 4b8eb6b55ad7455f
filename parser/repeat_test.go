package parser

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeat(t *testing.T) {
	tests := []struct {
		name      string
		q         Quantifier
		input     string
		want      []rune
		found     bool
		remaining string
	}{
		{"one or more", OneOrMore(), "abc1", []rune{'a', 'b', 'c'}, true, "1"},
		{"bounded", AtMost(2), "abc", []rune{'a', 'b'}, true, "c"},
		{"exact", Exact(3), "abcd", []rune{'a', 'b', 'c'}, true, "d"},
		{"exact too few", Exact(3), "ab1", nil, false, "ab1"},
		{"at least too few", AtLeast(4), "abc", nil, false, "abc"},
		{"zero or more empty", ZeroOrMore(), "123", nil, true, "123"},
		{"no repeat", NoRepeat(), "abc", nil, true, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput(tt.input)
			got, err := Repeat(tt.q, ASCIIAlpha.One())(in)
			if tt.found {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, ErrNotFound)
			}
			assert.Equal(t, tt.remaining, in.RemainingContent())
		})
	}
}

func TestRepeat_HardErrorPropagates(t *testing.T) {
	item := Preceded(ReadChar('['), Label(ReadChar(']'), "unclosed"))
	in := NewInput("[][][x")
	_, err := Repeat(ZeroOrMore(), item)(in)
	var perr *Error[string]
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Cursor.ByteOffset())
}

func TestRepeat_ZeroWidthElementTerminates(t *testing.T) {
	got, err := Repeat(ZeroOrMore(), ReadWhile(DecimalDigit.Verifier())).ParseString("abc")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got)

	n, err := RepeatAndCount(AtLeast(1), Optional(ReadChar('x'))).ParseString("xxy")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Bounded quantifiers still stop at their maximum.
	n, err = RepeatAndCount(Exact(4), Optional(ReadChar('x'))).ParseString("")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRepeatAndCount(t *testing.T) {
	in := NewInput("Test ")
	p := RepeatAndCount(OneOrMore(), ASCIIAlpha.One())

	n, err := p(in)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 4, in.ByteOffset())
}

func TestRepeatAndFold(t *testing.T) {
	number := Map(DecimalDigit.OneOrMore(), func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
	sum := RepeatAndFold(OneOrMore(), 0, func(acc, n int) int { return acc + n },
		Terminated(number, Optional(ReadChar('+'))))

	total, err := sum.ParseString("1+22+300")
	require.NoError(t, err)
	assert.Equal(t, 323, total)

	_, err = sum.ParseString("x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepeatSeparated(t *testing.T) {
	in := NewInput("T|e|")
	got, err := RepeatSeparated(ZeroOrMore(), ASCIIAlpha.One(), ReadText("|"))(in)
	require.NoError(t, err)
	assert.Equal(t, []rune{'T', 'e'}, got)
	assert.Equal(t, 3, in.ByteOffset())
	assert.Equal(t, "|", in.RemainingContent())
}

func TestRepeatSeparated_Quantified(t *testing.T) {
	p := RepeatSeparated(Between(2, 3), DecimalDigit.OneOrMore(), ReadChar(','))

	got, err := p.ParseString("1,2,3,4")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	in := NewInput("1,x")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}

func TestRepeatAndCountSeparated(t *testing.T) {
	in := NewInput("T|e|s|t")
	p := RepeatAndCountSeparated(OneOrMore(), ASCIIAlpha.One(), ReadText("|"))

	n, err := p(in)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 7, in.ByteOffset())

	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)

	in = NewInput("a|b|")
	n, err = p(in)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "|", in.RemainingContent())
}

func TestRepeatToFill(t *testing.T) {
	buf := make([]rune, 3)
	p := RepeatToFill(buf, HexDigit.One())

	in := NewInput("a1fz")
	_, err := p(in)
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', '1', 'f'}, buf)
	assert.Equal(t, "z", in.RemainingContent())

	buf2 := make([]rune, 3)
	in = NewInput("ab")
	_, err = RepeatToFill(buf2, HexDigit.One())(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
	assert.Equal(t, []rune{'a', 'b', 0}, buf2)
}

func TestCountAndRepeat(t *testing.T) {
	count := Map(DecimalDigit.One(), func(r rune) int { return int(r - '0') })
	p := CountAndRepeat(count, ASCIIAlpha.One())

	in := NewInput("3abcd")
	got, err := p(in)
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 'b', 'c'}, got)
	assert.Equal(t, "d", in.RemainingContent())

	in = NewInput("5abc")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())

	got, err = p.ParseString("0")
	require.NoError(t, err)
	assert.Empty(t, got)
}
