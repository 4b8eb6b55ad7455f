package format

import (
	"encoding/json"
	"io"
)

// JSONEncoder writes decoded JSON values (nil, bool, float64, string,
// []any, map[string]any) back out as JSON. Object keys are sorted.
type JSONEncoder struct {
	w      io.Writer
	indent string
}

var _ Encoder[any] = (*JSONEncoder)(nil)

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, indent: "  "}
}

// SetIndent sets the indentation per nesting level. An empty indent
// produces compact output.
func (e *JSONEncoder) SetIndent(indent string) {
	e.indent = indent
}

func (e *JSONEncoder) Encode(v any) error {
	text, err := e.MarshalText(v)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText(v any) ([]byte, error) {
	if e.indent == "" {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", e.indent)
}
