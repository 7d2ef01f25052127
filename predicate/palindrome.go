package predicate

import "github.com/couchbase/intfilter/maths"

// Palindrome matches non-negative integers whose decimal digits read the same forwards and backwards.
type Palindrome struct{}

// IsMatch returns a boolean indicating whether the given value is a palindrome; negative values never are.
func (Palindrome) IsMatch(value int) bool {
	return maths.IsPalindrome(value)
}
