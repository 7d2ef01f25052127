// Package arrayfilter exposes order preserving filters over slices of integers.
//
// Every function returns a newly allocated slice and never modifies its input. A <nil> source is rejected with
// 'ErrNilInput' and a zero length source with 'ErrEmptyInput', so a successful call always scanned at least one
// element.
package arrayfilter

import (
	"github.com/couchbase/intfilter/functional/slices"
	"github.com/couchbase/intfilter/log"
	"github.com/couchbase/intfilter/predicate"
)

// Select returns the elements of 'source' which match the given predicate, in their original order.
func Select(source []int, p predicate.Predicate) ([]int, error) {
	return SelectAll(source, p)
}

// SelectAll returns the elements of 'source' which match every one of the given predicates, in their original order.
//
// NOTE: At least one predicate must be provided and none may be <nil>, including a <nil> 'predicate.Func' or a <nil>
// pointer; see 'predicate.IsNil'.
func SelectAll(source []int, ps ...predicate.Predicate) ([]int, error) {
	err := validateSource(source)
	if err != nil {
		return nil, err
	}

	if len(ps) == 0 {
		return nil, ErrNilPredicate
	}

	fns := make([]func(e int) bool, 0, len(ps))

	for _, p := range ps {
		if predicate.IsNil(p) {
			return nil, ErrNilPredicate
		}

		fns = append(fns, p.IsMatch)
	}

	selected := slices.Filter(source, fns...)

	log.Tracef("(Array Filter) Selected %d of %d elements", len(selected), len(source))

	return selected, nil
}

// validateSource returns an error if the given slice can't be filtered.
func validateSource(source []int) error {
	if source == nil {
		return ErrNilInput
	}

	if len(source) == 0 {
		return ErrEmptyInput
	}

	return nil
}
