package arrayfilter

import "errors"

var (
	// ErrNilInput is returned when the source slice is <nil>.
	ErrNilInput = errors.New("array is nil")

	// ErrEmptyInput is returned when the source slice is non-nil but has no elements.
	ErrEmptyInput = errors.New("array is empty")

	// ErrNilPredicate is returned when no usable predicate has been provided.
	ErrNilPredicate = errors.New("predicate is nil")
)
