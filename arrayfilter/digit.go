package arrayfilter

import (
	"fmt"

	"github.com/couchbase/intfilter/log"
	"github.com/couchbase/intfilter/predicate"
)

// FilterByDigit returns the elements of 'source' whose decimal representation contains the given digit, ignoring
// sign.
//
// NOTE: The digit is validated before the source, an out of range digit is always reported as such.
func FilterByDigit(source []int, digit int) ([]int, error) {
	p, err := predicate.NewDigit(digit)
	if err != nil {
		return nil, fmt.Errorf("could not create digit predicate: %w", err)
	}

	log.Debugf("(Array Filter) Filtering %d elements by digit %d", len(source), digit)

	return Select(source, p)
}
