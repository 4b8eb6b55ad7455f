package parse

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/dhamidi/parsekit/parser"
	"golang.org/x/exp/ebnf"
)

// compiler turns ebnf expressions into parsers yielding the nodes they
// contribute to the enclosing production.
type compiler struct {
	skip  parser.Matcher
	prods map[string]parser.Parser[*Node]
}

func (c *compiler) production(prod *ebnf.Production) (parser.Parser[*Node], error) {
	name := prod.Name.String
	lexical := isLexical(name)
	body, err := c.expr(prod.Expr, lexical)
	if err != nil {
		return nil, err
	}

	return parser.Trace(name, func(in *parser.Input) (*Node, error) {
		st := stateOf(in)
		err := st.enter(in, name)
		defer st.leave()
		if err != nil {
			return nil, err
		}

		start := in.Cursor()
		children, err := body(in)
		if err != nil {
			return nil, err
		}
		if lexical {
			return &Node{Name: name, Span: in.SpanFrom(start)}, nil
		}
		return &Node{Name: name, Span: spanOf(in, start, children), Children: children}, nil
	}), nil
}

func (c *compiler) expr(x ebnf.Expression, lexical bool) (parser.Parser[[]*Node], error) {
	switch x := x.(type) {
	case nil:
		return parser.Value[[]*Node](nil), nil

	case *ebnf.Token:
		return c.leaf(parser.ReadText(x.String), strconv.Quote(x.String), lexical), nil

	case *ebnf.Range:
		lo, _ := utf8.DecodeRuneInString(x.Begin.String)
		hi, _ := utf8.DecodeRuneInString(x.End.String)
		m := parser.Consumed(parser.AnyOf(parser.RangeVerifier(lo, hi)))
		return c.leaf(m, fmt.Sprintf("%q … %q", x.Begin.String, x.End.String), lexical), nil

	case *ebnf.Name:
		return c.name(x.String, lexical), nil

	case ebnf.Sequence:
		items, err := c.exprs(x, lexical)
		if err != nil {
			return nil, err
		}
		return parser.RestoreOnNotFound(func(in *parser.Input) ([]*Node, error) {
			var nodes []*Node
			for _, item := range items {
				ns, err := item(in)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, ns...)
			}
			return nodes, nil
		}), nil

	case ebnf.Alternative:
		alts, err := c.exprs(x, lexical)
		if err != nil {
			return nil, err
		}
		return parser.Alternative(alts...), nil

	case *ebnf.Group:
		return c.expr(x.Body, lexical)

	case *ebnf.Option:
		body, err := c.expr(x.Body, lexical)
		if err != nil {
			return nil, err
		}
		return parser.OptionalDefault(body), nil

	case *ebnf.Repetition:
		body, err := c.expr(x.Body, lexical)
		if err != nil {
			return nil, err
		}
		return parser.RepeatAndFold(parser.ZeroOrMore(), []*Node(nil), appendNodes, body), nil

	case *ebnf.Bad:
		return nil, fmt.Errorf("%s: %s", x.TokPos, x.Error)
	}

	return nil, fmt.Errorf("unsupported expression %T", x)
}

func (c *compiler) exprs(xs []ebnf.Expression, lexical bool) ([]parser.Parser[[]*Node], error) {
	ps := make([]parser.Parser[[]*Node], len(xs))
	for i, x := range xs {
		p, err := c.expr(x, lexical)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	return ps, nil
}

func appendNodes(acc, nodes []*Node) []*Node {
	return append(acc, nodes...)
}

// leaf matches a token or character range. Inside a syntactic production
// the skip parser runs first and the match becomes a node; inside a
// lexical production only the text is consumed.
func (c *compiler) leaf(m parser.Parser[string], expected string, lexical bool) parser.Parser[[]*Node] {
	if lexical {
		return parser.Replace(m, []*Node(nil))
	}
	return parser.RestoreOnNotFound(func(in *parser.Input) ([]*Node, error) {
		if err := c.skipSpace(in); err != nil {
			return nil, err
		}
		start := in.Cursor()
		if _, err := m(in); err != nil {
			if parser.IsNotFound(err) {
				stateOf(in).expect(start, expected)
			}
			return nil, err
		}
		return []*Node{{Name: expected, Span: in.SpanFrom(start)}}, nil
	})
}

// name refers to a production. Productions are looked up when parsing so
// that they may refer to each other in any order.
func (c *compiler) name(ref string, lexical bool) parser.Parser[[]*Node] {
	call := parser.Parser[*Node](func(in *parser.Input) (*Node, error) {
		return c.prods[ref](in)
	})

	switch {
	case lexical:
		return parser.Replace(call, []*Node(nil))
	case !isLexical(ref):
		return parser.Map(call, func(n *Node) []*Node { return []*Node{n} })
	}

	return parser.RestoreOnNotFound(func(in *parser.Input) ([]*Node, error) {
		if err := c.skipSpace(in); err != nil {
			return nil, err
		}
		start := in.Cursor()
		n, err := call(in)
		if err != nil {
			if parser.IsNotFound(err) {
				stateOf(in).expect(start, ref)
			}
			return nil, err
		}
		return []*Node{n}, nil
	})
}

func (c *compiler) skipSpace(in *parser.Input) error {
	if c.skip == nil {
		return nil
	}
	if err := c.skip.Match(in); err != nil && !parser.IsNotFound(err) {
		return err
	}
	return nil
}
