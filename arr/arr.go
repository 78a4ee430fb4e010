package arr

import (
	"math/rand/v2"
	"slices"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		if i := slices.IndexFunc(items, fns[0]); i >= 0 {
			return items[i], true
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return slices.ContainsFunc(items, fn)
}

// ContainsValue reports whether items contains value (requires comparable T).
func ContainsValue[T comparable](items []T, value T) bool {
	return slices.Contains(items, value)
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	return slices.Index(items, value)
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	return slices.IndexFunc(items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Reduce reduces items to a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	acc := initial
	for i, item := range items {
		acc = fn(acc, item, i)
	}
	return acc
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	return Map(items, func(item T, _ int) U { return fn(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence of each value (requires comparable T).
func Unique[T comparable](items []T) []T {
	return UniqueBy(items, func(item T) T { return item })
}

// UniqueBy returns elements with duplicates removed using a key function.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	return Filter(items, func(item T, _ int) bool {
		k := fn(item)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// Diff returns elements in a that are not in b (requires comparable T).
func Diff[T comparable](a, b []T) []T {
	set := toSet(b)
	return Filter(a, func(item T, _ int) bool {
		_, found := set[item]
		return !found
	})
}

// Intersect returns elements that appear in both a and b (requires comparable T).
func Intersect[T comparable](a, b []T) []T {
	set := toSet(b)
	return Filter(a, func(item T, _ int) bool {
		_, found := set[item]
		return found
	})
}

func toSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// A size <= 0 is normalized to a single chunk holding every item.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return [][]T{}
	}
	if size <= 0 {
		size = len(items)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for chunk := range slices.Chunk(items, size) {
		chunks = append(chunks, slices.Clone(chunk))
	}
	return chunks
}

// Paginate returns the items belonging to the given 1-based page.
// A page < 1 is treated as page 1; a perPage <= 0 yields everything as
// one page.
func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = len(items)
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+perPage, len(items))
	return slices.Clone(items[start:end])
}

// Collapse flattens a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	return slices.Concat(items...)
}

// Flatten recursively flattens any nested []any structure.
func Flatten(items any) []any {
	out := make([]any, 0)
	var walk func(v any)
	walk = func(v any) {
		if list, ok := v.([]any); ok {
			for _, elem := range list {
				walk(elem)
			}
			return
		}
		out = append(out, v)
	}
	walk(items)
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	return out
}

// Prepend prepends values to the front of items.
func Prepend[T any](items []T, values ...T) []T {
	return slices.Concat(values, items)
}

// Wrap wraps value in a single-element slice.
func Wrap[T any](value T) []T {
	return []T{value}
}

// Partition splits items into two slices: those satisfying fn and those that do not.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Pair holds two values of possibly different types; it is the element type
// produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// Combine creates a map from equal-length key and value slices.
// Returns an error if lengths differ.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, errMismatchedLengths
	}
	out := make(map[K]V, len(keys))
	for i, k := range keys {
		out[k] = values[i]
	}
	return out, nil
}

// GroupBy groups items by a comparable key K extracted by fn.
func GroupBy[T any, K comparable](items []T, fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements keep their relative order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := slices.Clone(items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := slices.Clone(items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Random returns n randomly selected items (without replacement).
// If n >= len(items), a shuffled copy of all items is returned; a
// negative n yields an empty slice.
func Random[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	s := Shuffle(items)
	if n >= len(s) {
		return s
	}
	return s[:n]
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of items via fn.
func Sum[T any](items []T, fn func(T) float64) float64 {
	return Reduce(items, func(total float64, item T, _ int) float64 {
		return total + fn(item)
	}, 0)
}

// Min returns the element with the smallest value extracted by fn.
// Returns the zero value and false if items is empty.
func Min[T any](items []T, fn func(T) float64) (T, bool) {
	return extreme(items, fn, func(candidate, best float64) bool { return candidate < best })
}

// Max returns the element with the largest value extracted by fn.
// Returns the zero value and false if items is empty.
func Max[T any](items []T, fn func(T) float64) (T, bool) {
	return extreme(items, fn, func(candidate, best float64) bool { return candidate > best })
}

func extreme[T any](items []T, fn func(T) float64, better func(candidate, best float64) bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best, bestVal := items[0], fn(items[0])
	for _, item := range items[1:] {
		if v := fn(item); better(v, bestVal) {
			best, bestVal = item, v
		}
	}
	return best, true
}
