package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// ReadRegexp reads the text matched by pattern at the cursor. The pattern
// is anchored to the cursor and compiled once. ReadRegexp panics if the
// pattern does not compile.
func ReadRegexp(pattern string) Parser[string] {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)`, regexp2.RE2)
	if err != nil {
		panic(fmt.Sprintf("parser: compile %q: %v", pattern, err))
	}
	return Regexp(re)
}

// Regexp reads the text matched by re, which must match at the cursor.
// A match further along the input is not found.
func Regexp(re *regexp2.Regexp) Parser[string] {
	return func(in *Input) (string, error) {
		rest := in.RemainingContent()
		m, err := re.FindStringMatch(rest)
		if err != nil {
			return "", Fail(in.Cursor(), fmt.Sprintf("regexp %s: %v", re, err))
		}
		if m == nil || m.Index != 0 {
			return "", ErrNotFound
		}
		// regexp2 counts in runes.
		n := 0
		for range m.Length {
			_, size := utf8.DecodeRuneInString(rest[n:])
			n += size
		}
		in.consume(n)
		return rest[:n], nil
	}
}
