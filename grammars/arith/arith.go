// Package arith evaluates integer arithmetic expressions with +, -, *, /
// and parentheses. Operators of the same precedence fold left to right and
// division truncates toward zero.
package arith

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dhamidi/parsekit/parser"
)

// DefaultMaxDepth limits parenthesis nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 64

type Options struct {
	// MaxDepth is the deepest parenthesis nesting accepted. Negative means
	// unlimited.
	MaxDepth int
}

// state is carried in the input context.
type state struct {
	depth    int
	maxDepth int
}

// Eval evaluates text, which must hold exactly one expression.
func Eval(text string, opts ...parser.Option) (int64, error) {
	return EvalWith(text, Options{}, opts...)
}

// EvalWith is Eval with explicit options.
func EvalWith(text string, o Options, opts ...parser.Option) (int64, error) {
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	opts = append(opts, parser.WithContext(&state{maxDepth: o.MaxDepth}))
	in := parser.NewInput(text, opts...)

	v, err := expression(in)
	if err != nil {
		return 0, err
	}
	if !in.IsEnd() {
		r, _ := in.Peek()
		return 0, parser.Fail(in.Cursor(), fmt.Sprintf("unexpected %q", r))
	}
	return v, nil
}

// Expr reads one expression and leaves the cursor after it, including any
// trailing spaces. Without an arith context on the input, nesting is not
// limited.
func Expr(in *parser.Input) (int64, error) {
	first, err := term(in)
	if err != nil {
		return 0, err
	}
	return chain(in, first, addStep)
}

type step struct {
	op      rune
	operand int64
	at      parser.Cursor
}

// apply combines acc with the step. Results outside int64 are a hard
// error at the operand.
func (s step) apply(acc int64) (int64, error) {
	v := s.operand
	var r int64
	overflow := false
	switch s.op {
	case '+':
		r = acc + v
		overflow = (v > 0 && acc > math.MaxInt64-v) || (v < 0 && acc < math.MinInt64-v)
	case '-':
		r = acc - v
		overflow = (v < 0 && acc > math.MaxInt64+v) || (v > 0 && acc < math.MinInt64+v)
	case '*':
		r = acc * v
		overflow = (v != 0 && r/v != acc) || (acc == math.MinInt64 && v == -1)
	default:
		overflow = acc == math.MinInt64 && v == -1
		if !overflow {
			r = acc / v
		}
	}
	if overflow {
		return 0, parser.Fail(s.at, "integer overflow")
	}
	return r, nil
}

// chain applies the steps read by next to acc until no operator follows.
func chain(in *parser.Input, acc int64, next parser.Parser[step]) (int64, error) {
	for {
		s, err := next(in)
		if parser.IsNotFound(err) {
			return acc, nil
		}
		if err != nil {
			return 0, err
		}
		if acc, err = s.apply(acc); err != nil {
			return 0, err
		}
	}
}

var (
	ws = parser.SingleLineWhitespace.ZeroOrMore()

	expression = parser.Label(parser.Parser[int64](Expr), "expected an expression")

	closeParen = parser.Label(parser.ReadChar(')'), "expected ')'")

	mulStep, addStep parser.Parser[step]

	operand parser.Parser[int64]
)

func init() {
	operand = parser.Delimited(ws, parser.Alternative(
		parser.Trace("integer", integer),
		parser.Trace("group", parenthesized),
	), ws)
	mulStep = stepOf("*/", operand)
	addStep = stepOf("+-", term)
}

func integer(in *parser.Input) (int64, error) {
	start := in.Cursor()
	digits, err := parser.DecimalDigit.OneOrMore()(in)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, parser.Fail(start, fmt.Sprintf("integer %s out of range", digits))
	}
	return n, nil
}

func parenthesized(in *parser.Input) (int64, error) {
	if _, err := parser.ReadChar('(')(in); err != nil {
		return 0, err
	}
	if st, ok := parser.ContextAs[*state](in); ok {
		st.depth++
		defer func() { st.depth-- }()
		if st.maxDepth > 0 && st.depth > st.maxDepth {
			return 0, parser.Fail(in.Cursor(), fmt.Sprintf("expression nested deeper than %d", st.maxDepth))
		}
	}
	v, err := expression(in)
	if err != nil {
		return 0, err
	}
	if _, err := closeParen(in); err != nil {
		return 0, err
	}
	return v, nil
}

func term(in *parser.Input) (int64, error) {
	first, err := operand(in)
	if err != nil {
		return 0, err
	}
	return chain(in, first, mulStep)
}

// stepOf reads one of the operator characters in ops followed by a
// required operand.
func stepOf(ops string, next parser.Parser[int64]) parser.Parser[step] {
	op := parser.AnyOf(parser.TextVerifier(ops))
	return func(in *parser.Input) (step, error) {
		o, err := op(in)
		if err != nil {
			return step{}, err
		}
		at := in.Cursor()
		v, err := next(in)
		if parser.IsNotFound(err) {
			return step{}, parser.Fail(at, fmt.Sprintf("expected an operand after %q", o))
		}
		if err != nil {
			return step{}, err
		}
		if o == '/' && v == 0 {
			return step{}, parser.Fail(at, "division by zero")
		}
		return step{op: o, operand: v, at: at}, nil
	}
}
