package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteger(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		found     bool
		remaining string
	}{
		{"-1563718", "-1563718", true, ""},
		{"+12abc", "+12", true, "abc"},
		{"007", "007", true, ""},
		{"-", "", false, "-"},
		{"abc", "", false, "abc"},
		{"1.5", "1", true, ".5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			in := NewInput(tt.input)
			got, err := Integer()(in)
			if tt.found {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				assert.ErrorIs(t, err, ErrNotFound)
			}
			assert.Equal(t, tt.remaining, in.RemainingContent())
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input     string
		want      string
		remaining string
	}{
		{"1", "1", ""},
		{"-1.", "-1.", ""},
		{"1.25", "1.25", ""},
		{".5", ".5", ""},
		{"+.5e10", "+.5e10", ""},
		{"6.02E+23 mol", "6.02E+23", " mol"},
		{"1e-9", "1e-9", ""},
		{"12.5.3", "12.5", ".3"},
		{"0123456789E-0123456789", "0123456789E-0123456789", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			in := NewInput(tt.input)
			got, err := Float()(in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.remaining, in.RemainingContent())
		})
	}
}

func TestFloat_NotFound(t *testing.T) {
	for _, input := range []string{"", ".", "-", "+.", "e5", "x1"} {
		t.Run(input, func(t *testing.T) {
			in := NewInput(input)
			_, err := Float()(in)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, 0, in.ByteOffset())
		})
	}
}

func TestFloat_MissingExponentDigits(t *testing.T) {
	for _, input := range []string{"1e", "1.5E+", "2e-x", "0123456789e"} {
		t.Run(input, func(t *testing.T) {
			_, err := Float().ParseString(input)
			var perr *Error[string]
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, MissingExponentDigits, perr.Payload)
		})
	}

	_, err := Float().ParseString("1.5E+")
	var perr *Error[string]
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.Cursor.ByteOffset())
}
