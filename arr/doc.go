// Package arr provides standalone, framework-agnostic helper functions for
// Go slices and row sets, inspired by Laravel's Arr facade and PHP's
// array_* functions.
//
// # Slice helpers
//
// All slice helpers are generic (Go 1.18+) and operate on plain []T values —
// no wrapper type required:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	names  := arr.Pluck(users, func(u User) string { return u.Name })
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)       // → [[1 2] [3 4] [5]]
//	page2  := arr.Paginate([]int{1, 2, 3, 4, 5}, 2, 2) // → [3 4]
//
// # Row helpers
//
// Row helpers operate on []map[string]any (decoded JSON objects, query
// results) and resolve column keys through the dot package, so nested
// columns work:
//
//	london := arr.Where(rows, "address.city", "London")
//	cities := arr.Column(rows, "address.city")
//	byCity := arr.GroupByColumn(rows, "address.city")
//	sorted := arr.SortByColumn(rows, "age")
//
// For dot-notation access to a single nested structure, see the dot
// package; for a fluent chainable pipeline, see the collections package.
package arr
