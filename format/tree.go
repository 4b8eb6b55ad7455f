package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/parsekit/ebnf/parse"
)

// TreeEncoder writes a syntax tree one node per line, indented by depth:
//
//	Expr 1:1-1:4
//	  Term 1:1-1:2
//	    number 1:1-1:2 "1"
//	  "+" 1:2-1:3
//
// Leaves other than tokens are followed by their quoted text.
type TreeEncoder struct {
	w      io.Writer
	indent string
}

var _ Encoder[*parse.Node] = (*TreeEncoder)(nil)

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w, indent: "  "}
}

func (e *TreeEncoder) Encode(node *parse.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(node *parse.Node) ([]byte, error) {
	var sb strings.Builder
	parse.Walk(node, func(n *parse.Node, depth int) bool {
		sb.WriteString(strings.Repeat(e.indent, depth))
		fmt.Fprintf(&sb, "%s %s", n.Name, n.Span)
		if n.IsLeaf() && !n.IsToken() {
			sb.WriteString(" " + strconv.Quote(n.Text()))
		}
		sb.WriteByte('\n')
		return true
	})
	return []byte(sb.String()), nil
}
