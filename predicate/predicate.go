// Package predicate provides rules which decide whether a single integer should be kept by a filter.
package predicate

import "reflect"

//go:generate mockery --name Predicate --case underscore --inpackage

// Predicate reports whether a single integer satisfies a rule.
type Predicate interface {
	IsMatch(value int) bool
}

// Func is an adapter which allows the use of an ordinary function as a 'Predicate'.
type Func func(value int) bool

// IsMatch returns f(value).
func (f Func) IsMatch(value int) bool {
	return f(value)
}

// All returns a predicate which matches values that match every one of the given predicates.
//
// NOTE: <nil> predicates (see 'IsNil') are ignored, providing none results in a predicate which matches everything.
func All(ps ...Predicate) Predicate {
	ps = compact(ps)

	return Func(func(value int) bool {
		for _, p := range ps {
			if !p.IsMatch(value) {
				return false
			}
		}

		return true
	})
}

// Any returns a predicate which matches values that match at least one of the given predicates.
//
// NOTE: <nil> predicates (see 'IsNil') are ignored, providing none results in a predicate which matches nothing.
func Any(ps ...Predicate) Predicate {
	ps = compact(ps)

	return Func(func(value int) bool {
		for _, p := range ps {
			if p.IsMatch(value) {
				return true
			}
		}

		return false
	})
}

// Not returns a predicate which matches exactly the values the given predicate does not.
//
// NOTE: Negating a <nil> predicate (see 'IsNil') returns <nil>.
func Not(p Predicate) Predicate {
	if IsNil(p) {
		return nil
	}

	return Func(func(value int) bool { return !p.IsMatch(value) })
}

// IsNil returns a boolean indicating whether the given predicate is unusable because it, or the value it wraps, is
// <nil>; for example a <nil> 'Func' or a <nil> pointer to a type implementing 'Predicate'.
func IsNil(p Predicate) bool {
	if p == nil {
		return true
	}

	v := reflect.ValueOf(p)

	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}

	return false
}

// compact returns a copy of the given predicates with any <nil> values removed.
func compact(ps []Predicate) []Predicate {
	compacted := make([]Predicate, 0, len(ps))

	for _, p := range ps {
		if !IsNil(p) {
			compacted = append(compacted, p)
		}
	}

	return compacted
}
