package json

import (
	stdjson "encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/parsekit/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `  { "a"	: 42,
  "b": [ "x", "y", 12 ,"\u2014", "\uD83D\uDE10"] ,
  "c": { "hello" : "world"
  }
  }  `

func TestParse_Sample(t *testing.T) {
	got, err := Parse(sample)
	require.NoError(t, err)

	want := map[string]any{
		"a": 42.0,
		"b": []any{"x", "y", 12.0, "—", "😐"},
		"c": map[string]any{"hello": "world"},
	}
	assert.Equal(t, want, got)
}

func TestParse_MatchesEncodingJSON(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		` false `,
		`0`,
		`-12.5e-3`,
		`""`,
		`"tab\there \"quoted\" \\ \/ \b\f\n\r"`,
		`"é中"`,
		`[]`,
		`[ ]`,
		`[[[]]]`,
		`{}`,
		`{"nested": {"list": [1, 2, {"k": null}]}, "s": "v"}`,
		`{"dup": 1, "dup": 2}`,
		"[\n\t1,\r\n\t2\n]",
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			var want any
			require.NoError(t, stdjson.Unmarshal([]byte(doc), &want))

			got, err := Parse(doc)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParse_SurrogatePairs(t *testing.T) {
	got, err := Parse(`"\uD83D\uDE10"`)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F610", got)

	got, err = Parse(`"\ud834\udd1e"`)
	require.NoError(t, err)
	assert.Equal(t, "\U0001D11E", got)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		offset  int
	}{
		{"empty", "", "expected a JSON value", 0},
		{"garbage", "  @", "expected a JSON value", 0},
		{"trailing", "1 2", "unexpected content after the JSON value", 2},
		{"lone high surrogate", `"\uD83D"`, `unpaired high surrogate \uD83D`, 3},
		{"lone low surrogate", `"\uDE10"`, `unpaired low surrogate \uDE10`, 3},
		{"high then non-surrogate", `"\uD83DA"`, `unpaired high surrogate \uD83D`, 3},
		{"high then non-low", `"\uD83D\u0041"`, `expected low surrogate after \uD83D, found \u0041`, 9},
		{"short unicode escape", `"\u12"`, "expected four hexadecimal digits", 3},
		{"bad escape", `"\x"`, "invalid escape sequence", 2},
		{"unterminated string", `"abc`, "unterminated string", 4},
		{"control character", "\"a\nb\"", `invalid character '\n' in string`, 2},
		{"unclosed array", `[1, 2`, "expected ',' or ']' in array", 5},
		{"trailing comma", `[1,]`, "expected ',' or ']' in array", 2},
		{"missing colon", `{"a" 1}`, "expected ':' after object key", 5},
		{"missing value", `{"a": }`, "expected a value after ':'", 5},
		{"unclosed object", `{"a": 1`, "expected ',' or '}' in object", 7},
		{"exponent", `1e`, parser.MissingExponentDigits, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var perr *parser.Error[string]
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.message, perr.Payload)
			assert.Equal(t, tt.offset, perr.Cursor.ByteOffset())
		})
	}
}

func TestValue_Embedded(t *testing.T) {
	// key=<json> pairs separated by ';'
	pair := parser.SeparatedSequence2(parser.ReadChar('='), parser.ASCIIAlpha.OneOrMore(), Value())
	pairs := parser.RepeatSeparated(parser.OneOrMore(), pair, parser.ReadChar(';'))

	got, err := parser.AllConsumed(pairs).ParseString(`a=[1];b= {"x":true} `)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].A)
	assert.Equal(t, []any{1.0}, got[0].B)
	assert.Equal(t, map[string]any{"x": true}, got[1].B)
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("[")
	for i := range 200 {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(sample)
	}
	sb.WriteString("]")
	doc := sb.String()

	b.SetBytes(int64(len(doc)))
	b.ResetTimer()
	for b.Loop() {
		if _, err := Parse(doc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodingJSON(b *testing.B) {
	doc := []byte(sample)
	b.SetBytes(int64(len(doc)))
	for b.Loop() {
		var v any
		if err := stdjson.Unmarshal(doc, &v); err != nil {
			b.Fatal(err)
		}
	}
}
