package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/parsekit/parser"
	"github.com/dlclark/regexp2"
	"golang.org/x/exp/ebnf"
)

// DefaultMaxDepth bounds production nesting unless WithMaxDepth says
// otherwise.
const DefaultMaxDepth = 512

type options struct {
	skip     parser.Matcher
	maxDepth int
}

type Option func(*options)

// WithSkip sets what is skipped before every token and lexical production
// used by a syntactic production. The default skips Unicode whitespace;
// nil disables skipping.
func WithSkip(m parser.Matcher) Option {
	return func(o *options) { o.skip = m }
}

// SkipPattern returns WithSkip for a regular expression matched at the
// cursor.
func SkipPattern(pattern string) (Option, error) {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)`, regexp2.RE2)
	if err != nil {
		return nil, fmt.Errorf("skip pattern: %w", err)
	}
	return WithSkip(parser.Regexp(re)), nil
}

// WithMaxDepth bounds how deeply productions may nest while parsing.
// Zero or less means unlimited.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// Grammar is a compiled EBNF grammar.
type Grammar struct {
	start    string
	maxDepth int
	compiler *compiler
}

// Load reads an EBNF grammar from a file.
func Load(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	return grammar, nil
}

// CompileFile loads the grammar in filename and compiles it.
func CompileFile(filename, start string, opts ...Option) (*Grammar, error) {
	g, err := Load(filename)
	if err != nil {
		return nil, err
	}
	return Compile(g, start, opts...)
}

// Compile verifies g against start and turns every production into a
// parser. Alternatives are tried in order and the first match wins; left
// recursive grammars are rejected.
func Compile(g ebnf.Grammar, start string, opts ...Option) (*Grammar, error) {
	o := options{
		skip:     parser.Whitespace.ZeroOrMore(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := ebnf.Verify(g, start); err != nil {
		return nil, err
	}
	if cycle := leftRecursion(g); cycle != nil {
		return nil, fmt.Errorf("left recursion: %s", strings.Join(cycle, " -> "))
	}

	c := &compiler{
		skip:  o.skip,
		prods: make(map[string]parser.Parser[*Node], len(g)),
	}
	for name, prod := range g {
		p, err := c.production(prod)
		if err != nil {
			return nil, fmt.Errorf("production %s: %w", name, err)
		}
		c.prods[name] = p
	}

	return &Grammar{start: start, maxDepth: o.maxDepth, compiler: c}, nil
}

// Start returns the name of the start production.
func (g *Grammar) Start() string {
	return g.start
}

// Parser returns the parser for the start production. It does not require
// the whole input to be consumed.
func (g *Grammar) Parser() parser.Parser[*Node] {
	p, _ := g.Production(g.start)
	return p
}

// Production returns the parser for the named production.
func (g *Grammar) Production(name string) (parser.Parser[*Node], bool) {
	p, ok := g.compiler.prods[name]
	if !ok {
		return nil, false
	}
	return func(in *parser.Input) (*Node, error) {
		if _, ok := parser.ContextAs[*state](in); ok {
			return p(in)
		}
		saved := in.Context()
		in.SetContext(&state{maxDepth: g.maxDepth})
		defer in.SetContext(saved)
		return p(in)
	}, true
}

// Parse parses the whole of text with the start production. When parsing
// fails the error is a *parser.Error[string] at the furthest position any
// token was tried, listing what was expected there.
//
// The input context is used for bookkeeping; a context passed through opts
// is replaced.
func (g *Grammar) Parse(text string, opts ...parser.Option) (*Node, error) {
	in := parser.NewInput(text, opts...)
	st := &state{maxDepth: g.maxDepth}
	in.SetContext(st)

	n, err := g.compiler.prods[g.start](in)
	if parser.IsHard(err) {
		return nil, err
	}
	if err != nil {
		if !st.seen {
			st.expect(in.Cursor(), g.start)
		}
		return nil, st.failure(in)
	}

	if !isLexical(g.start) {
		if err := g.compiler.skipSpace(in); err != nil {
			return nil, err
		}
	}
	if !in.IsEnd() {
		st.expect(in.Cursor(), "end of input")
		return nil, st.failure(in)
	}
	return n, nil
}
