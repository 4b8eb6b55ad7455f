// Package parser provides parser combinators for building recursive-descent
// text parsers over an in-memory string.
//
// # Overview
//
// A parser is a plain function over an *Input:
//
//	type Parser[T any] func(in *Input) (T, error)
//
// Small parsers (read a character, read a literal, read a run of digits) are
// combined into larger ones (sequences, alternatives, repetitions) by the
// functions in this package. Results are slices of the original text wherever
// possible, so parsing does not copy.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│ Primitives  │────▶│ Combinators │
//	│  (string)   │     │ (chars/text)│     │ (seq/alt/*) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	       │                                       │
//	       ▼                                       ▼
//	┌─────────────┐                         ┌─────────────┐
//	│   Cursor    │                         │ NotFound /  │
//	│   + Span    │                         │ hard Error  │
//	└─────────────┘                         └─────────────┘
//
// # Positions
//
// The Input tracks a Cursor holding four values:
//
//	ByteOffset()  // byte offset into the text
//	CharOffset()  // offset counted in Unicode scalar values
//	Line()        // 1-based line number
//	Column()      // 1-based column, counted in scalar values
//
// Only consuming input updates the cursor. Peeking never does.
//
// # Errors
//
// A parser reports one of two failures:
//
//	ErrNotFound   // nothing recognised here; try something else
//	*Error[P]     // the input is invalid at Cursor; P is caller chosen
//
// Every combinator restores the cursor to where it was entered before it
// returns ErrNotFound. Hard errors are returned as-is, with the cursor left
// wherever the failure happened. Ensure turns ErrNotFound into a hard error
// once a grammar has committed to a branch, and Recover intercepts a hard
// error.
//
// # Example
//
//	digits := parser.DecimalDigit.OneOrMore()
//	pair := parser.Delimited(
//		parser.ReadChar('('),
//		parser.SeparatedSequence2(parser.ReadChar(','), digits, digits),
//		parser.ReadChar(')'),
//	)
//
//	in := parser.NewInput("(12,34)")
//	v, err := pair(in)
//	// v.A == "12", v.B == "34", err == nil
//
// # Context
//
// Grammars that need ambient state (nesting depth, symbol tables) attach a
// value with WithContext and read it back with ContextAs. MapParser carries
// the context into the sub-input it creates.
//
// # Tracing
//
// Trace wraps a parser and logs entry and exit through the commonlog logger
// attached with WithLogger. Without a logger tracing is a no-op.
package parser
