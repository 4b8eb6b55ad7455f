// Package parse compiles EBNF grammars into parsers that produce concrete
// syntax trees.
package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/parsekit/parser"
)

// Node represents a node in the concrete syntax tree.
// Token leaves are named by their quoted literal; lexical productions are
// leaves too, named after the production.
type Node struct {
	Name     string      // Production name or quoted token
	Span     parser.Span // Source span covering this node
	Children []*Node     // Child nodes (nil for leaves)
}

// IsToken returns true if this node is a literal token of a syntactic
// production.
func (n *Node) IsToken() bool {
	return strings.HasPrefix(n.Name, `"`)
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Text returns the source text covered by this node.
func (n *Node) Text() string {
	return n.Span.Content()
}

// Walk visits n and its descendants in document order. Returning false
// from fn skips the children of the node just visited.
func Walk(n *Node, fn func(n *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Find returns every node below and including n with the given name.
func Find(n *Node, name string) []*Node {
	var found []*Node
	Walk(n, func(c *Node, _ int) bool {
		if c.Name == name {
			found = append(found, c)
		}
		return true
	})
	return found
}

// spanOf covers the children of a syntactic node. Skipped text before the
// first child and after the last one is not part of the node.
func spanOf(in *parser.Input, at parser.Cursor, children []*Node) parser.Span {
	if len(children) == 0 {
		return parser.NewSpan(in.Content(), at, at)
	}
	return parser.NewSpan(in.Content(), children[0].Span.Start(), children[len(children)-1].Span.End())
}

// isLexical reports whether name denotes a lexical production: one whose
// name does not start with an upper case letter. No skipping happens
// inside lexical productions.
func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}
