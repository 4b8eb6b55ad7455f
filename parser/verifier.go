package parser

import (
	"fmt"
	"strings"
)

// Verifier decides whether the character r at position index of a run is
// accepted.
type Verifier func(index int, r rune) bool

// CharVerifier accepts exactly c.
func CharVerifier(c rune) Verifier {
	return func(_ int, r rune) bool {
		return r == c
	}
}

// TextVerifier accepts any character that appears in chars.
func TextVerifier(chars string) Verifier {
	return func(_ int, r rune) bool {
		return strings.ContainsRune(chars, r)
	}
}

// RangeVerifier accepts characters in [lo, hi].
func RangeVerifier(lo, hi rune) Verifier {
	if lo > hi {
		lo, hi = hi, lo
	}
	return func(_ int, r rune) bool {
		return lo <= r && r <= hi
	}
}

// RuneRange is an inclusive range of characters.
type RuneRange struct {
	Lo, Hi rune
}

func (rr RuneRange) Contains(r rune) bool {
	return rr.Lo <= r && r <= rr.Hi
}

// IntervalVerifier accepts characters in any of the given ranges.
// The ranges must be sorted and must not overlap; IntervalVerifier panics
// otherwise.
func IntervalVerifier(ranges []RuneRange) Verifier {
	if err := checkIntervals(ranges); err != nil {
		panic(err.Error())
	}
	return func(_ int, r rune) bool {
		for _, rr := range ranges {
			if r < rr.Lo {
				return false
			}
			if r <= rr.Hi {
				return true
			}
		}
		return false
	}
}

func checkIntervals(ranges []RuneRange) error {
	for i, rr := range ranges {
		if rr.Lo > rr.Hi {
			return fmt.Errorf("parser: interval %d is reversed (%U > %U)", i, rr.Lo, rr.Hi)
		}
		if i > 0 && ranges[i-1].Hi >= rr.Lo {
			return fmt.Errorf("parser: interval %d (%U-%U) is not after interval %d (%U-%U)",
				i, rr.Lo, rr.Hi, i-1, ranges[i-1].Lo, ranges[i-1].Hi)
		}
	}
	return nil
}

// Or accepts a character accepted by v or by other.
func (v Verifier) Or(other Verifier) Verifier {
	return func(i int, r rune) bool {
		return v(i, r) || other(i, r)
	}
}

// Negate accepts the characters v rejects.
func (v Verifier) Negate() Verifier {
	return func(i int, r rune) bool {
		return !v(i, r)
	}
}
