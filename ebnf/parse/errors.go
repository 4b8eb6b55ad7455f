package parse

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/dhamidi/parsekit/parser"
)

// GrammarError is one problem reported while reading or verifying a
// grammar. Line and Column are zero when the problem has no position.
type GrammarError struct {
	Line    int
	Column  int
	Message string
}

func (e GrammarError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Column) + ": " + e.Message
}

// GrammarErrors splits an error returned by Load, Compile or the ebnf
// package into positioned problems. filename is the name the grammar was
// parsed under.
func GrammarErrors(filename string, err error) []GrammarError {
	if err == nil {
		return nil
	}

	var list []error
	for e := err; e != nil && list == nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() != reflect.Slice {
			continue
		}
		for i := 0; i < v.Len(); i++ {
			if item, ok := v.Index(i).Interface().(error); ok {
				list = append(list, item)
			}
		}
	}
	if list == nil {
		list = []error{err}
	}

	out := make([]GrammarError, len(list))
	for i, e := range list {
		out[i] = splitPosition(filename, e.Error())
	}
	return out
}

// errorPosition reads the ":line:column: " that follows the file name in
// messages from the ebnf package.
var errorPosition = parser.Delimited(
	parser.ReadChar(':'),
	parser.SeparatedSequence2(parser.ReadChar(':'), parser.DecimalDigit.OneOrMore(), parser.DecimalDigit.OneOrMore()),
	parser.ReadText(": "),
)

func splitPosition(filename, text string) GrammarError {
	if filename == "" {
		filename = "<input>"
	}
	rest, ok := strings.CutPrefix(text, filename)
	if !ok {
		return GrammarError{Message: text}
	}

	in := parser.NewInput(rest)
	pos, err := errorPosition(in)
	if err != nil {
		if msg, ok := strings.CutPrefix(rest, ": "); ok {
			return GrammarError{Message: msg}
		}
		return GrammarError{Message: text}
	}

	line, _ := strconv.Atoi(pos.A)
	column, _ := strconv.Atoi(pos.B)
	return GrammarError{Line: line, Column: column, Message: in.RemainingContent()}
}
