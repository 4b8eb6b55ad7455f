package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlternative(t *testing.T) {
	keyword := Alternative(ReadText("if"), ReadText("in"), ReadText("int"))

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{"if", "if", true},
		{"int", "in", true}, // first match wins, no longest match
		{"for", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			in := NewInput(tt.input)
			got, err := keyword(in)
			if tt.found {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, ErrNotFound)
				assert.Equal(t, 0, in.ByteOffset())
			}
		})
	}
}

func TestAlternative_HardErrorStops(t *testing.T) {
	reached := false
	p := Alternative(
		Preceded(ReadChar('"'), Label(ReadChar('"'), "unterminated")),
		func(in *Input) (rune, error) {
			reached = true
			return AnyChar()(in)
		},
	)
	_, err := p.ParseString(`"x`)
	assert.True(t, IsHard(err))
	assert.False(t, reached)
}

func TestAlternativeIgnore(t *testing.T) {
	p := AlternativeIgnore(DecimalDigit.OneOrMore(), ReadChar('-'), Replace(ReadText("nil"), 0))

	for _, input := range []string{"12", "-", "nil"} {
		in := NewInput(input)
		_, err := p(in)
		require.NoError(t, err, input)
		assert.True(t, in.IsEnd(), input)
	}

	in := NewInput("x")
	_, err := p(in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBranchIf(t *testing.T) {
	p := BranchIf(ReadChar(':'), ASCIIAlpha.OneOrMore())

	m, err := p.ParseString(":type")
	require.NoError(t, err)
	assert.Equal(t, Some("type"), m)

	in := NewInput("type")
	m, err = p(in)
	require.NoError(t, err)
	assert.False(t, m.Present)
	assert.Equal(t, 0, in.ByteOffset())

	in = NewInput(":1")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())

	_, err = BranchIf(ReadChar(':'), Label(ASCIIAlpha.OneOrMore(), "type name")).ParseString(":1")
	assert.True(t, IsHard(err))
}

func TestBranchIfElse(t *testing.T) {
	p := BranchIfElse(ReadChar('-'), Map(DecimalDigit.OneOrMore(), func(s string) string { return "neg " + s }), DecimalDigit.OneOrMore())

	s, err := p.ParseString("-12")
	require.NoError(t, err)
	assert.Equal(t, "neg 12", s)

	s, err = p.ParseString("12")
	require.NoError(t, err)
	assert.Equal(t, "12", s)

	in := NewInput("-x")
	_, err = p(in)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}

func TestBranchWhile(t *testing.T) {
	p := BranchWhile(ReadChar('.'), ASCIIAlpha.OneOrMore())

	in := NewInput(".a.bc.1")
	got, err := p(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bc"}, got)
	assert.Equal(t, ".1", in.RemainingContent())
}
