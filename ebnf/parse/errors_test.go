package parse

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/ebnf"
)

func TestGrammarErrors_Syntax(t *testing.T) {
	_, err := ebnf.Parse("bad.ebnf", strings.NewReader("A = \"a\" .\nB = ( \"b\" .\n"))
	require.Error(t, err)

	errs := GrammarErrors("bad.ebnf", err)
	require.NotEmpty(t, errs)
	assert.Equal(t, 2, errs[0].Line)
	assert.Positive(t, errs[0].Column)
	assert.NotEmpty(t, errs[0].Message)
	assert.NotContains(t, errs[0].Message, "bad.ebnf")
}

func TestGrammarErrors_Verify(t *testing.T) {
	g, err := ebnf.Parse("g.ebnf", strings.NewReader(`A = B .`))
	require.NoError(t, err)

	_, err = Compile(g, "A")
	errs := GrammarErrors("g.ebnf", err)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Line)
	assert.Equal(t, 5, errs[0].Column)
	assert.Contains(t, errs[0].Message, "B")

	_, err = Compile(g, "Start")
	errs = GrammarErrors("g.ebnf", err)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Start")
}

func TestGrammarErrors_Plain(t *testing.T) {
	assert.Nil(t, GrammarErrors("x", nil))

	errs := GrammarErrors("x", fmt.Errorf("wrapped: %w", errors.New("left recursion: A -> A")))
	require.Len(t, errs, 1)
	assert.Equal(t, GrammarError{Message: "wrapped: left recursion: A -> A"}, errs[0])
	assert.Equal(t, "wrapped: left recursion: A -> A", errs[0].Error())

	assert.Equal(t, "3:4: oops", GrammarError{Line: 3, Column: 4, Message: "oops"}.Error())
}
