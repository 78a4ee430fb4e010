package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")
)
