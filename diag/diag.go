// Package diag turns parse failures into diagnostics and renders them the
// way compilers do: a location header, the offending source lines and
// carets under the span.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/parsekit/parser"
	"github.com/fatih/color"
)

// Severity uses the numbering of the Language Server Protocol.
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "severity(" + strconv.Itoa(int(s)) + ")"
	}
}

type Diagnostic struct {
	Severity Severity
	Message  string
	Span     parser.Span
}

// FromError describes err, returned from parsing content. Errors carrying
// a position point there; anything else points at the start of content.
// It returns false for a nil error.
func FromError(content string, err error) (Diagnostic, bool) {
	if err == nil {
		return Diagnostic{}, false
	}

	d := Diagnostic{
		Severity: SeverityError,
		Span:     parser.NewSpan(content, parser.StartCursor(), parser.StartCursor()),
	}

	var pos parser.Positioned
	switch {
	case errors.As(err, &pos):
		d.Message = pos.Detail()
		d.Span = parser.NewSpan(content, pos.Position(), pos.Position())
	case parser.IsNotFound(err):
		d.Message = "input not recognised"
	default:
		d.Message = err.Error()
	}
	return d, true
}

type Options struct {
	Color    bool
	Filename string
}

// styles holds color formatters for one diagnostic.
type styles struct {
	location *color.Color
	severity *color.Color
	message  *color.Color
	gutter   *color.Color
}

func newStyles(s Severity, enabled bool) *styles {
	st := &styles{
		location: color.New(color.Bold),
		message:  color.New(color.Bold),
		gutter:   color.New(color.FgHiBlue),
	}
	switch s {
	case SeverityError:
		st.severity = color.New(color.Bold, color.FgRed)
	case SeverityWarning:
		st.severity = color.New(color.Bold, color.FgYellow)
	case SeverityInformation:
		st.severity = color.New(color.Bold, color.FgBlue)
	default:
		st.severity = color.New(color.Bold, color.FgCyan)
	}

	for _, c := range []*color.Color{st.location, st.severity, st.message, st.gutter} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return st
}

// Render writes d to w:
//
//	input.json:1:6: error: expected ':' after object key
//	  |
//	1 | {"a" 1}
//	  |      ^
func Render(w io.Writer, d Diagnostic, o Options) error {
	st := newStyles(d.Severity, o.Color)

	loc := d.Span.Start().String()
	if o.Filename != "" {
		loc = o.Filename + ":" + loc
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s\n",
		st.location.Sprint(loc+":"),
		st.severity.Sprint(d.Severity.String()+":"),
		st.message.Sprint(d.Message))

	if d.Span.Whole() != "" {
		writeSnippet(&sb, d.Span, st)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderAll renders each diagnostic in turn.
func RenderAll(w io.Writer, ds []Diagnostic, o Options) error {
	for _, d := range ds {
		if err := Render(w, d, o); err != nil {
			return err
		}
	}
	return nil
}

func writeSnippet(sb *strings.Builder, span parser.Span, st *styles) {
	lines := strings.Split(span.Lines(), "\n")
	first, _ := span.LineNumbers()
	width := len(strconv.Itoa(first + len(lines) - 1))
	blank := st.gutter.Sprintf("%*s |", width, "")

	sb.WriteString(blank + "\n")

	// byte range of the span relative to the start of the first line
	from := span.StartColumnInLines()
	to := from + span.Len()

	offset := 0
	for i, line := range lines {
		fmt.Fprintf(sb, "%s %s\n", st.gutter.Sprintf("%*d |", width, first+i), line)

		lo := max(from-offset, 0)
		hi := min(to-offset, len(line))
		offset += len(line) + 1

		n := utf8.RuneCountInString(line[lo:max(lo, hi)])
		if n == 0 && (len(lines) > 1 || !span.IsEmpty()) {
			continue
		}
		if n == 0 {
			n = 1
		}
		fmt.Fprintf(sb, "%s %s%s\n", blank, padding(line[:lo]), st.severity.Sprint(strings.Repeat("^", n)))
	}
}

// padding blanks out text while keeping its tabs, so carets line up under
// the characters they point at.
func padding(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// At returns an empty span of content at a 1-based line and column,
// counted in characters. Positions past the end of a line or of content
// are clamped.
func At(content string, line, column int) parser.Span {
	in := parser.NewInput(content)
	for !in.IsEnd() && in.Line() < line {
		in.Read()
	}
	for !in.IsEnd() && in.Line() == line && in.Column() < column {
		if r, _ := in.Peek(); r == '\n' {
			break
		}
		in.Read()
	}
	return in.SpanFrom(in.Cursor())
}
