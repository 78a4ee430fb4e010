// Package collections provides a generic, fluent Collection type and
// standalone helper functions for common slice operations.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of T
// that exposes a rich, chainable API:
//
//	result := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Filter(func(n, _ int) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(3).
//	    Implode(", ", strconv.Itoa) // → "10, 8, 6"
//
// The underlying algorithms live in the arr package; Collection adds the
// chainable surface and immutability guarantees on top.
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. This makes Collection values safe to pass across goroutines
// without locking and avoids accidental aliasing bugs in pipelines.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (returns Collection[any]):
//	c.Map(func(n int, _ int) any { return n * 2 })
//
//	// Package-level (returns Collection[string], fully typed):
//	collections.Map(c, func(n int, _ int) string { return strconv.Itoa(n) })
//
// Package-level functions: [Map], [FlatMap], [Reduce], [Pluck], [GroupBy],
// [KeyBy], [Zip], [Combine], [Collapse], [Flatten], [FlattenDeep].
//
// # Runtime extension
//
// Collection itself has no plugin mechanism. When values need to be
// transformed transparently on read or write, wrap them in a bucket.Bucket
// and register hooks there; Bucket.Collect bridges stored slices back into
// a Collection for further chaining.
package collections
