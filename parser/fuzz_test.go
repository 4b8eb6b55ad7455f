package parser

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func fuzzParsers() map[string]Parser[string] {
	word := ASCIIAlpha.OneOrMore()
	digits := DecimalDigit.OneOrMore()
	count := Map(DecimalDigit.One(), func(r rune) int { return int(r - '0') })
	short := func(s string) (int, error) {
		if len(s) > 3 {
			return 0, ErrNotFound
		}
		return len(s), nil
	}
	return map[string]Parser[string]{
		"integer":   Integer(),
		"sequence":  Consumed(Sequence3(word, ReadChar('='), DecimalDigit.OneOrMore())),
		"delimited": Consumed(Delimited(ReadChar('('), word, ReadChar(')'))),
		"separated": Consumed(RepeatSeparated(Between(2, 4), word, ReadText(", "))),
		"count":     Consumed(RepeatAndCount(AtLeast(3), DecimalDigit.One())),
		"branch":    Consumed(BranchIf(ReadChar(':'), word)),
		"all":       AllConsumed(Consumed(Repeat(OneOrMore(), AnyChar()))),
		"not":       Consumed(Sequence2(Not(ReadText("--")), AnyChar())),
		"nocase":    ReadTextNoCase("SeLeCt"),
		"alternative": Alternative(
			ReadText("let"),
			Consumed(Sequence2(word, ReadChar('!'))),
		),
		"optional":     Consumed(Sequence2(Optional(ReadChar('-')), digits)),
		"verify":       Verify(word, func(s string) bool { return len(s)%2 == 0 }),
		"andthen":      Consumed(AndThen(digits, short)),
		"mapparser":    Consumed(MapParser(Consumed(Sequence3(ReadChar('<'), word, ReadChar('>'))), ReadText("<a"))),
		"branchelse":   Consumed(BranchIfElse(ReadChar('#'), digits, word)),
		"countrepeat":  Consumed(CountAndRepeat(count, ASCIIAlpha.One())),
		"separatedseq": Consumed(SeparatedSequence3(ReadChar(','), word, digits, word)),
		"float": RestoreOnNotFound(Recover(Float(), func(in *Input, err *Error[string]) (string, error) {
			return "", ErrNotFound
		})),
	}
}

// checkCursor verifies that c is consistent with the text before it.
func checkCursor(t *testing.T, content string, c Cursor) {
	t.Helper()
	before := content[:c.ByteOffset()]
	if got := utf8.RuneCountInString(before); got != c.CharOffset() {
		t.Errorf("CharOffset = %d, want %d", c.CharOffset(), got)
	}
	if got := 1 + strings.Count(before, "\n"); got != c.Line() {
		t.Errorf("Line = %d, want %d", c.Line(), got)
	}
	lineStart := strings.LastIndexByte(before, '\n') + 1
	if got := 1 + utf8.RuneCountInString(before[lineStart:]); got != c.Column() {
		t.Errorf("Column = %d, want %d", c.Column(), got)
	}
}

func FuzzCursorRestoration(f *testing.F) {
	for _, seed := range []string{"", "abc", "x=1", "(a)", "a, b, c", "1234", ":x", "--", "select", "1e", "a\nb\n→", "\xff\xfe", "let", "ab!", "-12", "<ab>", "#12", "3abc", "ab,1,cd"} {
		f.Add(seed)
	}
	parsers := fuzzParsers()

	f.Fuzz(func(t *testing.T, content string) {
		for name, p := range parsers {
			in := NewInput(content)
			in.Read()
			start := in.Cursor()

			got, err := p(in)
			switch {
			case IsNotFound(err):
				if in.Cursor() != start {
					t.Fatalf("%s: not found moved cursor from %v to %v", name, start, in.Cursor())
				}
			case err == nil:
				if consumed := in.SubstringToCurrent(start); got != consumed {
					t.Fatalf("%s: result %q differs from consumed text %q", name, got, consumed)
				}
			}
			checkCursor(t, content, in.Cursor())
		}
	})
}
