// Package bucket provides a hookable, map-shaped collection addressed with
// dot-notation keys.
//
// A [Bucket] delegates all structural work (get, set, fill, has, forget,
// flatten) to the dot package, and layers per-key transformer hooks over
// reads and writes:
//
//	b := bucket.New(map[string]any{
//	    "user": map[string]any{"name": "alice"},
//	})
//	b.OnGet("user.name", func(v any) any {
//	    return strings.ToUpper(v.(string))
//	})
//	b.Get("user.name") // "ALICE" — stored value unchanged
//
// Set-hooks run before the write lands, get-hooks after the read resolves;
// multiple hooks on one key run in registration order. Hooks bind to the
// exact key expression, so "user.name" hooks do not fire for
// Get("user.{first}") even when both address the same entry.
//
// Collect and Rows bridge slice-valued entries into the collections
// pipeline and the arr row helpers respectively.
package bucket
