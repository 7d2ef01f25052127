// Package maths provides the decimal digit arithmetic used by the integer filters.
package maths

import "golang.org/x/exp/constraints"

// powersOfTen covers every power of ten representable as a uint64, which is enough to find the leading digit of any
// magnitude returned by 'Magnitude'.
var powersOfTen = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Magnitude returns the absolute value of the given integer as a uint64.
//
// NOTE: This is correct for the minimum value of every signed integer type, which has no positive counterpart.
func Magnitude[T constraints.Integer](value T) uint64 {
	if value >= 0 {
		return uint64(value)
	}

	return uint64(-(value + 1)) + 1
}

// DigitCount returns the number of decimal digits in the given magnitude, along with the power of ten which isolates
// its leading digit.
func DigitCount(m uint64) (int, uint64) {
	for i := 1; i < len(powersOfTen); i++ {
		if m < powersOfTen[i] {
			return i, powersOfTen[i-1]
		}
	}

	return len(powersOfTen), powersOfTen[len(powersOfTen)-1]
}

// ValidDigit returns a boolean indicating whether the given value is a single decimal digit.
func ValidDigit(digit int) bool {
	return digit >= 0 && digit <= 9
}

// ContainsDigit returns a boolean indicating whether the given digit appears in the decimal representation of the
// value; the sign of the value is ignored.
//
// NOTE: A digit outside of the range 0-9 never matches.
func ContainsDigit[T constraints.Integer](value T, digit int) bool {
	if !ValidDigit(digit) {
		return false
	}

	var (
		m = Magnitude(value)
		d = uint64(digit)
	)

	for {
		if m%10 == d {
			return true
		}

		m /= 10

		if m == 0 {
			return false
		}
	}
}

// IsPalindrome returns a boolean indicating whether the decimal digits of the value read the same in both directions.
//
// NOTE: Negative values are never palindromes.
func IsPalindrome[T constraints.Integer](value T) bool {
	if value < 0 {
		return false
	}

	m := Magnitude(value)

	digits, divisor := DigitCount(m)

	for digits > 1 {
		if m/divisor != m%10 {
			return false
		}

		// Strip the leading and trailing digits, any zeros which follow the leading digit are tracked by the divisor
		m = (m % divisor) / 10
		divisor /= 100
		digits -= 2
	}

	return true
}
