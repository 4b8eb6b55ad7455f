package parser

var (
	asciiAlphaRanges = []RuneRange{{'A', 'Z'}, {'a', 'z'}}

	asciiAlphanumericRanges = []RuneRange{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}}

	binaryDigitRanges  = []RuneRange{{'0', '1'}}
	octalDigitRanges   = []RuneRange{{'0', '7'}}
	decimalDigitRanges = []RuneRange{{'0', '9'}}
	hexDigitRanges     = []RuneRange{{'0', '9'}, {'A', 'F'}, {'a', 'f'}}

	// White_Space from the Unicode PropList.
	whitespaceRanges = []RuneRange{
		{0x09, 0x0D},
		{0x20, 0x20},
		{0x85, 0x85},
		{0xA0, 0xA0},
		{0x1680, 0x1680},
		{0x2000, 0x200A},
		{0x2028, 0x2029},
		{0x202F, 0x202F},
		{0x205F, 0x205F},
		{0x3000, 0x3000},
	}

	singleLineWhitespaceRanges = []RuneRange{
		{0x09, 0x09},
		{0x20, 0x20},
		{0xA0, 0xA0},
		{0x1680, 0x1680},
		{0x2000, 0x200A},
		{0x202F, 0x202F},
		{0x205F, 0x205F},
		{0x3000, 0x3000},
	}

	lineBreakRanges = []RuneRange{
		{0x0A, 0x0D},
		{0x85, 0x85},
		{0x2028, 0x2029},
	}
)
