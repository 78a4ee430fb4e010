package arr

import "errors"

// Sentinel errors returned by arr operations.
var (
	// errMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	errMismatchedLengths = errors.New("arr: keys and values must have the same length")
)
