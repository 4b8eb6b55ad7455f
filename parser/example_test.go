package parser_test

import (
	"fmt"

	"github.com/dhamidi/parsekit/parser"
)

func Example() {
	digits := parser.DecimalDigit.OneOrMore()
	pair := parser.Delimited(
		parser.ReadChar('('),
		parser.SeparatedSequence2(parser.ReadChar(','), digits, digits),
		parser.ReadChar(')'),
	)

	v, err := pair.ParseString("(12,34)")
	fmt.Println(v.A, v.B, err)
	// Output: 12 34 <nil>
}

func ExampleEnsure() {
	closing := parser.Ensure(parser.ReadChar(')'), func(in *parser.Input) string {
		return "expected ')'"
	})
	call := parser.Sequence3(parser.ASCIIAlpha.OneOrMore(), parser.ReadChar('('), closing)

	_, err := call.ParseString("f(x")
	fmt.Println(err)
	// Output: 1:3: expected ')'
}

func ExampleRepeatSeparated() {
	in := parser.NewInput("a, b, c;")
	items, _ := parser.RepeatSeparated(parser.OneOrMore(), parser.ASCIIAlpha.One(), parser.ReadText(", "))(in)
	fmt.Println(string(items), in.RemainingContent())
	// Output: abc ;
}

func ExampleInput_Cursor() {
	in := parser.NewInput("first\nsecond")
	saved := in.Cursor()
	in.ReadText("first\nsec")
	fmt.Println(in.Cursor())
	in.Restore(saved)
	fmt.Println(in.Cursor())
	// Output:
	// 2:4
	// 1:1
}

func ExampleFloat() {
	in := parser.NewInput("-6.02e23 moles")
	f, _ := parser.Float()(in)
	fmt.Printf("%q %q\n", f, in.RemainingContent())
	// Output: "-6.02e23" " moles"
}
