// Package format writes parse results for people and tools: JSON values,
// syntax trees as indented text and syntax trees as JSON.
package format

// Encoder writes values of type T to an underlying writer.
type Encoder[T any] interface {
	Encode(v T) error
	MarshalText(v T) ([]byte, error)
}
