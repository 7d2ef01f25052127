package arrayfilter

import (
	"github.com/couchbase/intfilter/log"
	"github.com/couchbase/intfilter/predicate"
)

// FilterByPalindromic returns the non-negative elements of 'source' whose decimal digits form a palindrome.
func FilterByPalindromic(source []int) ([]int, error) {
	log.Debugf("(Array Filter) Filtering %d elements by palindrome", len(source))

	return Select(source, predicate.Palindrome{})
}
