package parser

import "fmt"

// Cursor is a position in the text of an Input.
// Cursors are values: copy and compare them freely.
type Cursor struct {
	byteOffset int
	charOffset int
	line       int
	column     int
}

// StartCursor returns the cursor at the beginning of any text.
func StartCursor() Cursor {
	return Cursor{line: 1, column: 1}
}

// NewCursor builds a cursor from its parts. It is meant for tests and for
// tools that translate positions from elsewhere; parsers obtain cursors
// from an Input.
func NewCursor(byteOffset, charOffset, line, column int) Cursor {
	return Cursor{
		byteOffset: byteOffset,
		charOffset: charOffset,
		line:       line,
		column:     column,
	}
}

func (c Cursor) ByteOffset() int { return c.byteOffset }
func (c Cursor) CharOffset() int { return c.charOffset }
func (c Cursor) Line() int       { return c.line }
func (c Cursor) Column() int     { return c.column }

// Before reports whether c is strictly before other.
func (c Cursor) Before(other Cursor) bool {
	return c.byteOffset < other.byteOffset
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.line, c.column)
}
