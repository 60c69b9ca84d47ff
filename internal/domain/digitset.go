package domain

import (
	"math/bits"
	"strings"
)

// Digit is a Sudoku value in 1..9.
type Digit uint8

// DigitSet is a set of candidate digits packed into bits 1..9 of a uint16.
// The zero value is the empty set.
type DigitSet uint16

// AllDigits contains every digit 1..9.
const AllDigits DigitSet = 0b11_1111_1110

// SetOf builds a set from the given digits.
func SetOf(digits ...Digit) DigitSet {
	var s DigitSet
	for _, d := range digits {
		s = s.With(d)
	}
	return s
}

func (s DigitSet) Has(d Digit) bool        { return s&(1<<d) != 0 }
func (s DigitSet) With(d Digit) DigitSet   { return s | 1<<d }
func (s DigitSet) Without(d Digit) DigitSet { return s &^ (1 << d) }

// Count returns the number of candidates in the set.
func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the set's only member, if it is a singleton.
func (s DigitSet) Sole() (Digit, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return Digit(bits.TrailingZeros16(uint16(s))), true
}

// Digits lists the members in ascending order.
func (s DigitSet) Digits() []Digit {
	out := make([]Digit, 0, s.Count())
	for d := Digit(1); d <= GridSize; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the members as a compact digit string, e.g. "379".
func (s DigitSet) String() string {
	var b strings.Builder
	for d := Digit(1); d <= GridSize; d++ {
		if s.Has(d) {
			b.WriteByte('0' + byte(d))
		}
	}
	return b.String()
}
