package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/parsekit/ebnf/parse"
	"github.com/dhamidi/parsekit/parser"
)

// ASTJSONEncoder writes a syntax tree as JSON.
type ASTJSONEncoder struct {
	w io.Writer
}

var _ Encoder[*parse.Node] = (*ASTJSONEncoder)(nil)

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *parse.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *parse.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Name     string         `json:"name"`
	Span     astJSONSpan    `json:"span"`
	Text     string         `json:"text,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func positionToJSON(c parser.Cursor) astJSONPosition {
	return astJSONPosition{Offset: c.ByteOffset(), Line: c.Line(), Column: c.Column()}
}

func nodeToJSON(n *parse.Node) *astJSONNode {
	if n == nil {
		return nil
	}

	jn := &astJSONNode{
		Name: n.Name,
		Span: astJSONSpan{
			Start: positionToJSON(n.Span.Start()),
			End:   positionToJSON(n.Span.End()),
		},
	}

	if n.IsLeaf() {
		jn.Text = n.Text()
		return jn
	}

	jn.Children = make([]*astJSONNode, len(n.Children))
	for i, child := range n.Children {
		jn.Children[i] = nodeToJSON(child)
	}
	return jn
}
