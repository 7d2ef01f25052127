package predicate

import (
	"errors"
	"fmt"

	"github.com/couchbase/intfilter/maths"
)

// ErrDigitOutOfRange is matched, using 'errors.Is', by any 'DigitOutOfRangeError'.
var ErrDigitOutOfRange = errors.New("digit value is out of range (0..9)")

// DigitOutOfRangeError is returned when attempting to match against a value which isn't a single decimal digit.
type DigitOutOfRangeError struct {
	Digit int
}

func (e *DigitOutOfRangeError) Error() string {
	return fmt.Sprintf("digit value %d is out of range (0..9)", e.Digit)
}

func (e *DigitOutOfRangeError) Is(target error) bool {
	return target == ErrDigitOutOfRange
}

// Digit matches integers whose decimal representation contains a given digit, the sign is ignored.
//
// The zero value of Digit matches against the digit zero.
type Digit struct {
	digit int
}

// NewDigit returns a predicate matching against the given digit, which must be in the range 0-9.
func NewDigit(digit int) (Digit, error) {
	if !maths.ValidDigit(digit) {
		return Digit{}, &DigitOutOfRangeError{Digit: digit}
	}

	return Digit{digit: digit}, nil
}

// Digit returns the digit being matched against.
func (d Digit) Digit() int {
	return d.digit
}

// WithDigit returns a new predicate matching against the given digit; the receiver is unchanged.
func (d Digit) WithDigit(digit int) (Digit, error) {
	return NewDigit(digit)
}

// IsMatch returns a boolean indicating whether the digit appears in the given value.
func (d Digit) IsMatch(value int) bool {
	return maths.ContainsDigit(value, d.digit)
}
