package parser

import "fmt"

// Quantifier bounds the number of repetitions of a parser.
//
// The zero value accepts any number of repetitions, like ZeroOrMore.
type Quantifier struct {
	min     int
	max     int
	bounded bool
}

// Exact accepts exactly n repetitions.
func Exact(n int) Quantifier {
	return Between(n, n)
}

// AtLeast accepts n or more repetitions.
func AtLeast(n int) Quantifier {
	if n < 0 {
		panic(fmt.Sprintf("parser: negative quantifier minimum %d", n))
	}
	return Quantifier{min: n}
}

// AtMost accepts between zero and n repetitions.
func AtMost(n int) Quantifier {
	return Between(0, n)
}

// Between accepts between min and max repetitions, both inclusive.
// It panics when min > max or either bound is negative.
func Between(min, max int) Quantifier {
	if min < 0 || max < 0 {
		panic(fmt.Sprintf("parser: negative quantifier bound {%d,%d}", min, max))
	}
	if min > max {
		panic(fmt.Sprintf("parser: quantifier minimum %d exceeds maximum %d", min, max))
	}
	return Quantifier{min: min, max: max, bounded: true}
}

func ZeroOrMore() Quantifier { return AtLeast(0) }
func OneOrMore() Quantifier  { return AtLeast(1) }

// NoRepeat accepts zero repetitions only.
func NoRepeat() Quantifier { return Exact(0) }

func (q Quantifier) Min() int { return q.min }

// Max returns the upper bound; ok is false when there is none.
func (q Quantifier) Max() (max int, ok bool) {
	return q.max, q.bounded
}

func (q Quantifier) IsUnbounded() bool { return !q.bounded }

// Contains reports whether n is an acceptable final repetition count.
func (q Quantifier) Contains(n int) bool {
	return n >= q.min && (!q.bounded || n <= q.max)
}

// IsFinished reports whether a loop that has done n repetitions must stop.
func (q Quantifier) IsFinished(n int) bool {
	return q.bounded && n >= q.max
}

func (q Quantifier) String() string {
	switch {
	case !q.bounded:
		return fmt.Sprintf("{%d,}", q.min)
	case q.min == q.max:
		return fmt.Sprintf("{%d}", q.min)
	default:
		return fmt.Sprintf("{%d,%d}", q.min, q.max)
	}
}
