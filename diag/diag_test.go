package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dhamidi/parsekit/grammars/json"
	"github.com/dhamidi/parsekit/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	_, ok := FromError("x", nil)
	assert.False(t, ok)

	content := `{"a" 1}`
	_, err := json.Parse(content)
	d, ok := FromError(content, err)
	require.True(t, ok)
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "expected ':' after object key", d.Message)
	assert.Equal(t, 5, d.Span.Start().ByteOffset())

	d, _ = FromError("abc", parser.ErrNotFound)
	assert.Equal(t, "input not recognised", d.Message)
	assert.Equal(t, 0, d.Span.Start().ByteOffset())

	d, _ = FromError("abc", errors.New("boom"))
	assert.Equal(t, "boom", d.Message)
}

func TestRender(t *testing.T) {
	content := `{"a" 1}`
	_, err := json.Parse(content)
	d, _ := FromError(content, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d, Options{Filename: "input.json"}))

	want := "input.json:1:6: error: expected ':' after object key\n" +
		"  |\n" +
		"1 | {\"a\" 1}\n" +
		"  |      ^\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_Spans(t *testing.T) {
	content := "first\n\tsecond line\nthird"
	in := parser.NewInput(content)

	tests := []struct {
		name     string
		from, to int
		want     string
	}{
		{
			name: "word after tab",
			from: 7, to: 13,
			want: "2:2: warning: look here\n" +
				"  |\n" +
				"2 | \tsecond line\n" +
				"  | \t^^^^^^\n",
		},
		{
			name: "across lines",
			from: 3, to: 9,
			want: "1:4: warning: look here\n" +
				"  |\n" +
				"1 | first\n" +
				"  |    ^^\n" +
				"2 | \tsecond line\n" +
				"  | ^^^\n",
		},
		{
			name: "empty at end of line",
			from: 5, to: 5,
			want: "1:6: warning: look here\n" +
				"  |\n" +
				"1 | first\n" +
				"  |      ^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in.Restore(parser.StartCursor())
			in.ReadQuantified(parser.Exact(tt.from))
			start := in.Cursor()
			in.ReadQuantified(parser.Exact(tt.to - tt.from))

			d := Diagnostic{Severity: SeverityWarning, Message: "look here", Span: in.SpanFrom(start)}

			var buf bytes.Buffer
			require.NoError(t, Render(&buf, d, Options{}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRender_Color(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Message: "bad"}

	var plain, colored bytes.Buffer
	require.NoError(t, Render(&plain, d, Options{}))
	require.NoError(t, Render(&colored, d, Options{Color: true}))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "bad")
}

func TestRenderAll(t *testing.T) {
	at := parser.NewSpan("", parser.StartCursor(), parser.StartCursor())
	ds := []Diagnostic{
		{Severity: SeverityHint, Message: "one", Span: at},
		{Severity: SeverityInformation, Message: "two", Span: at},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderAll(&buf, ds, Options{Filename: "f"}))
	assert.Equal(t, "f:1:1: hint: one\nf:1:1: info: two\n", buf.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "severity(9)", Severity(9).String())
}

func TestAt(t *testing.T) {
	content := "ab\ncdé\nf"

	tests := []struct {
		line, column int
		offset       int
	}{
		{1, 1, 0},
		{1, 3, 2},
		{1, 9, 2},
		{2, 1, 3},
		{2, 4, 7},
		{3, 1, 8},
		{7, 7, 9},
		{0, 0, 0},
	}

	for _, tt := range tests {
		span := At(content, tt.line, tt.column)
		assert.True(t, span.IsEmpty())
		assert.Equal(t, tt.offset, span.Start().ByteOffset(), "line %d column %d", tt.line, tt.column)
	}
}
