// Package slices provides generic, order preserving slice utilities.
package slices

// Filter returns a new slice containing the elements of 's' which match every one of the given predicates, in the
// order they appear in 's'.
//
// NOTE: Predicates are evaluated left to right and short circuit, so a predicate is only called for elements which
// matched all the predicates before it. The result never shares a backing array with 's', providing no predicates
// returns a copy.
func Filter[S ~[]E, E any](s S, p ...func(e E) bool) S {
	filtered := make(S, 0)

	for _, e := range s {
		if matchesAll(e, p...) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}

// matchesAll returns a boolean indicating whether the given element matches all the provided predicates.
func matchesAll[E any](e E, p ...func(e E) bool) bool {
	for _, fn := range p {
		if !fn(e) {
			return false
		}
	}

	return true
}
