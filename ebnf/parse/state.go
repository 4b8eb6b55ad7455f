package parse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dhamidi/parsekit/parser"
)

// state is kept in the input context while a grammar parses.
type state struct {
	depth    int
	maxDepth int

	// furthest position a token was tried at, and what was tried there
	seen     bool
	furthest parser.Cursor
	expected []string
}

func stateOf(in *parser.Input) *state {
	st, _ := parser.ContextAs[*state](in)
	return st
}

func (st *state) enter(in *parser.Input, name string) error {
	if st == nil {
		return nil
	}
	st.depth++
	if st.maxDepth > 0 && st.depth > st.maxDepth {
		return parser.Fail(in.Cursor(), fmt.Sprintf("%s nested deeper than %d productions", name, st.maxDepth))
	}
	return nil
}

func (st *state) leave() {
	if st != nil {
		st.depth--
	}
}

func (st *state) expect(at parser.Cursor, what string) {
	if st == nil {
		return
	}
	switch {
	case !st.seen || st.furthest.Before(at):
		st.seen = true
		st.furthest = at
		st.expected = append(st.expected[:0], what)
	case at == st.furthest && !slices.Contains(st.expected, what):
		st.expected = append(st.expected, what)
	}
}

// failure moves in to the furthest failure and describes it.
func (st *state) failure(in *parser.Input) error {
	in.Restore(st.furthest)
	found := "end of input"
	if r, ok := in.Peek(); ok {
		found = strconv.QuoteRune(r)
	}
	return parser.Fail(st.furthest, fmt.Sprintf("expected %s, found %s", oneOf(st.expected), found))
}

func oneOf(xs []string) string {
	if len(xs) == 1 {
		return xs[0]
	}
	return strings.Join(xs[:len(xs)-1], ", ") + " or " + xs[len(xs)-1]
}
