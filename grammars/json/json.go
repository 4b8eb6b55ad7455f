// Package json is a JSON parser built from parsekit combinators. It decodes
// into the same Go values as encoding/json does for an any target.
package json

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/dhamidi/parsekit/parser"
)

// Parse decodes a single JSON document. Failures are *parser.Error[string]
// values positioned at the offending character.
func Parse(text string, opts ...parser.Option) (any, error) {
	return document(parser.NewInput(text, opts...))
}

// Value returns the parser for one JSON value surrounded by optional
// whitespace, for embedding in other grammars.
func Value() parser.Parser[any] {
	return value
}

var (
	ws = parser.Whitespace.ZeroOrMore()

	value parser.Parser[any]

	document = parser.Terminated(
		parser.Label(parser.Lazy(Value), "expected a JSON value"),
		parser.Label(parser.End(), "unexpected content after the JSON value"),
	)
)

func init() {
	value = parser.Delimited(ws, parser.Trace("value", parser.Alternative(
		parser.Replace(parser.ReadText("null"), any(nil)),
		parser.Replace(parser.ReadText("true"), any(true)),
		parser.Replace(parser.ReadText("false"), any(false)),
		parser.Map(stringLiteral, func(s string) any { return s }),
		number,
		parser.Map(array, func(a []any) any { return a }),
		parser.Map(object, func(m map[string]any) any { return m }),
	)), ws)
}

func number(in *parser.Input) (any, error) {
	start := in.Cursor()
	text, err := parser.Float()(in)
	if err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, parser.Fail(start, fmt.Sprintf("number %s out of range", text))
	}
	return f, nil
}

var array = parser.Delimited(
	parser.ReadChar('['),
	parser.Terminated(
		parser.RepeatSeparated(parser.ZeroOrMore(), parser.Lazy(Value), parser.ReadChar(',')),
		ws,
	),
	parser.Label(parser.ReadChar(']'), "expected ',' or ']' in array"),
)

var member = parser.Sequence3(
	parser.Delimited(ws, stringLiteral, ws),
	parser.Label(parser.ReadChar(':'), "expected ':' after object key"),
	parser.Label(parser.Lazy(Value), "expected a value after ':'"),
)

var object = parser.Map(
	parser.Delimited(
		parser.ReadChar('{'),
		parser.Terminated(parser.RepeatSeparated(parser.ZeroOrMore(), member, parser.ReadChar(',')), ws),
		parser.Label(parser.ReadChar('}'), "expected ',' or '}' in object"),
	),
	func(members []parser.Tuple3[string, rune, any]) map[string]any {
		m := make(map[string]any, len(members))
		for _, kv := range members {
			m[kv.A] = kv.C
		}
		return m
	},
)

var stringLiteral = parser.Preceded(
	parser.ReadChar('"'),
	parser.Terminated(
		parser.Map(
			parser.RepeatAndFold(parser.ZeroOrMore(), []byte(nil), func(buf []byte, s string) []byte {
				return append(buf, s...)
			}, stringChunk),
			func(buf []byte) string { return string(buf) },
		),
		parser.Ensure(parser.ReadChar('"'), stringEndProblem),
	),
)

func stringEndProblem(in *parser.Input) string {
	r, ok := in.Peek()
	if !ok {
		return "unterminated string"
	}
	return fmt.Sprintf("invalid character %q in string", r)
}

// stringChunk reads either a run of plain characters or one escape
// sequence.
var stringChunk = parser.Alternative(
	parser.AnyOfQuantified(parser.OneOrMore(), plainChar),
	parser.Preceded(parser.ReadChar('\\'), parser.Label(escape, "invalid escape sequence")),
)

func plainChar(_ int, r rune) bool {
	return r != '"' && r != '\\' && r >= 0x20
}

var escape = parser.Alternative(
	parser.Replace(parser.ReadChar('"'), `"`),
	parser.Replace(parser.ReadChar('\\'), `\`),
	parser.Replace(parser.ReadChar('/'), "/"),
	parser.Replace(parser.ReadChar('b'), "\b"),
	parser.Replace(parser.ReadChar('f'), "\f"),
	parser.Replace(parser.ReadChar('n'), "\n"),
	parser.Replace(parser.ReadChar('r'), "\r"),
	parser.Replace(parser.ReadChar('t'), "\t"),
	parser.Map(parser.Preceded(parser.ReadChar('u'), unicodeEscape), func(r rune) string {
		return string(r)
	}),
)

var hex4 = parser.Map(
	parser.Label(parser.HexDigit.Quantified(parser.Exact(4)), "expected four hexadecimal digits"),
	func(s string) rune {
		n, _ := strconv.ParseUint(s, 16, 16)
		return rune(n)
	},
)

// unicodeEscape decodes the digits of a \u escape. Characters outside the
// Basic Multilingual Plane are written as a UTF-16 surrogate pair, two
// escapes in a row.
func unicodeEscape(in *parser.Input) (rune, error) {
	start := in.Cursor()
	high, err := hex4(in)
	if err != nil {
		return 0, err
	}
	switch {
	case high < 0xD800 || high > 0xDFFF:
		return high, nil
	case high >= 0xDC00:
		return 0, parser.Fail(start, fmt.Sprintf("unpaired low surrogate \\u%04X", high))
	}

	if _, err := parser.ReadText(`\u`)(in); err != nil {
		return 0, parser.Fail(start, fmt.Sprintf("unpaired high surrogate \\u%04X", high))
	}
	lowStart := in.Cursor()
	low, err := hex4(in)
	if err != nil {
		return 0, err
	}
	if low < 0xDC00 || low > 0xDFFF {
		return 0, parser.Fail(lowStart, fmt.Sprintf("expected low surrogate after \\u%04X, found \\u%04X", high, low))
	}
	r := (high-0xD800)<<10 + (low - 0xDC00) + 0x10000
	if !utf8.ValidRune(r) {
		return 0, parser.Fail(start, "invalid surrogate pair")
	}
	return r, nil
}
