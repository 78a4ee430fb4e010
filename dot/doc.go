// Package dot is the dot-notation engine for nested Go containers: reading,
// writing, testing and deleting values in map[string]any / []any structures
// (and user types implementing [Object]) through dot-separated key paths.
//
// # Key paths
//
// A key path is split on "." into segments. Three reserved tokens exist:
//
//	"*"        every element at this level (fan-out)
//	"{first}"  the current container's first key
//	"{last}"   the current container's last key
//
// Escaping a token with a backslash ("\*", "\{first}", "\{last}") addresses
// the literal key instead. The dot itself cannot be escaped.
//
//	m := map[string]any{
//	    "items": []any{
//	        map[string]any{"id": 1},
//	        map[string]any{"id": 2},
//	    },
//	}
//	dot.Get(m, "items.*.id")    // []any{1, 2}
//	dot.Get(m, "items.{last}")  // map[string]any{"id": 2}
//
// # Wildcards
//
// A "*" segment resolves the remaining path against every element and
// collects the results into a fresh list. Chaining wildcards collapses the
// result one level per extra wildcard, so "a.*.b.*" yields a flat list
// rather than a list of lists.
//
// # Failure policy
//
// Lookups never fail loudly: any unresolvable segment yields the caller's
// default (nil if none). Pass a func() any as the default to defer an
// expensive fallback until it is actually needed. Set, Fill, Forget, Dot
// and Undot never return errors either — missing intermediates are created
// or skipped as each operation documents.
//
// # Ordering
//
// Go maps are unordered, so wherever the engine needs "the container's key
// order" ({first}/{last}, fan-out, [Dot]) maps enumerate in sorted key
// order, slices positionally, and [Object] values in AttrNames order.
//
// All functions mutate the caller's container in place and retain no
// reference to it. Nothing here is safe for concurrent mutation; callers
// own synchronization.
package dot
