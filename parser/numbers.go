package parser

// MissingExponentDigits is the payload of the hard error Float returns for
// an exponent marker without digits.
const MissingExponentDigits = "a number is required after the exponent"

var sign = AnyOf(TextVerifier("+-"))

// Integer reads an optionally signed run of decimal digits and returns the
// matched text.
func Integer() Parser[string] {
	return Consumed(Sequence2(Optional(sign), DecimalDigit.OneOrMore()))
}

// Float reads an optionally signed decimal number with an optional
// fraction and exponent, and returns the matched text. Once an exponent
// marker has been read the digits after it are required; their absence is
// a hard *Error[string].
func Float() Parser[string] {
	digits := DecimalDigit.OneOrMore()
	mantissa := AlternativeIgnore(
		Sequence2(digits, Optional(Sequence2(ReadChar('.'), DecimalDigit.ZeroOrMore()))),
		Sequence2(ReadChar('.'), digits),
	)
	exponent := Sequence3(
		AnyOf(TextVerifier("eE")),
		Optional(sign),
		Label(digits, MissingExponentDigits),
	)
	return Consumed(Sequence3(Optional(sign), mantissa, Optional(exponent)))
}
