package arith

import (
	"strings"
	"testing"

	"github.com/dhamidi/parsekit/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1", 1},
		{"2*2/(5-1)+3", 4},
		{"10-4-3", 3},
		{"100/10/5", 2},
		{"7/2", 3},
		{"0-7/2", -3},
		{"((((9))))", 9},
		{" 1 + 2 * 3 ", 7},
		{"(1+2)*3", 9},
		{"9223372036854775807-1+1", 9223372036854775807},
		{"(0-9223372036854775807-1)/1", -9223372036854775808},
		{"3037000499*3037000499", 9223372030926249001},
		{"  2*2 / ( 5 - 1) + 3 / 4 * (2 - 7 + 567 *12 /2) + 3*(1+2*( 45 /2))", 2*2/(5-1) + 3/4*(2-7+567*12/2) + 3*(1+2*(45/2))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Eval(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpr_LeavesRemainder(t *testing.T) {
	in := parser.NewInput("  2*2 / ( 5 - 1) + 3 / 4 * (2 - 7 + 567 *12 /2) + 3*(1+2*( 45 /2));")

	got, err := Expr(in)
	require.NoError(t, err)
	assert.Equal(t, int64(2*2/(5-1)+3/4*(2-7+567*12/2)+3*(1+2*(45/2))), got)
	assert.Equal(t, ";", in.RemainingContent())
}

func TestExpr_NotFound(t *testing.T) {
	in := parser.NewInput("  x")
	_, err := Expr(in)
	assert.ErrorIs(t, err, parser.ErrNotFound)
	assert.Equal(t, 0, in.ByteOffset())
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		offset  int
	}{
		{"empty", "", "expected an expression", 0},
		{"division by zero", "4 / (2-2)", "division by zero", 3},
		{"missing operand", "1 +", "expected an operand after '+'", 3},
		{"missing operand before paren", "2 * )", "expected an operand after '*'", 3},
		{"unclosed paren", "(1 + 2", "expected ')'", 6},
		{"empty parens", "()", "expected an expression", 1},
		{"trailing", "1 2", "unexpected '2'", 2},
		{"overflow", "99999999999999999999", "integer 99999999999999999999 out of range", 0},
		{"addition overflow", "9223372036854775807+1", "integer overflow", 20},
		{"subtraction overflow", "0-9223372036854775807-2", "integer overflow", 22},
		{"multiplication overflow", "3037000500*3037000500", "integer overflow", 11},
		{"negated minimum", "(0-9223372036854775807-1)*(0-1)", "integer overflow", 26},
		{"minimum divided by -1", "(0-9223372036854775807-1)/(0-1)", "integer overflow", 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.input)
			var perr *parser.Error[string]
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.message, perr.Payload)
			assert.Equal(t, tt.offset, perr.Cursor.ByteOffset())
		})
	}
}

func TestEvalWith_MaxDepth(t *testing.T) {
	nested := func(n int) string {
		return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
	}

	v, err := EvalWith(nested(3), Options{MaxDepth: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = EvalWith(nested(4), Options{MaxDepth: 3})
	var perr *parser.Error[string]
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "expression nested deeper than 3", perr.Payload)
	assert.Equal(t, 4, perr.Cursor.ByteOffset())

	_, err = Eval(nested(DefaultMaxDepth + 1))
	assert.Error(t, err)

	v, err = EvalWith(nested(DefaultMaxDepth+1), Options{MaxDepth: -1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestEval_DepthResetsBetweenGroups(t *testing.T) {
	v, err := EvalWith("(1)+(2)+(3)", Options{MaxDepth: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)
}

func BenchmarkEval(b *testing.B) {
	expr := strings.Repeat("(1+2*3-4/2)*", 50) + "1"
	b.SetBytes(int64(len(expr)))
	for b.Loop() {
		if _, err := Eval(expr); err != nil {
			b.Fatal(err)
		}
	}
}
