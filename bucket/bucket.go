package bucket

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/abmmhasan/Bucket/collections"
	"github.com/abmmhasan/Bucket/dot"
)

// Bucket is a map-shaped collection addressed with dot-notation keys.
// Every structural operation delegates to the dot package; on top of that,
// per-key transformer hooks can rewrite values on their way in and out
// (see hooks.go).
//
// A Bucket is caller-owned, in-memory state with no internal
// synchronization.
type Bucket struct {
	items map[string]any
	hooks map[string][]Hook
}

// New creates a Bucket, optionally seeded with one or more maps applied in
// order (later maps win on top-level key conflicts). Seed maps are copied
// shallowly; nested containers are shared with the caller.
func New(seed ...map[string]any) *Bucket {
	b := &Bucket{
		items: make(map[string]any),
		hooks: make(map[string][]Hook),
	}
	for _, m := range seed {
		for k, v := range m {
			b.items[k] = v
		}
	}
	return b
}

// Get retrieves the value at key (full dot-notation grammar), then pipes it
// through the key's get-hooks in registration order. Returns def[0] — also
// piped through the hooks — when the key does not resolve.
func (b *Bucket) Get(key string, def ...any) any {
	return b.applyHooks(key+"-get", dot.Get(b.items, key, def...))
}

// GetOr is [Bucket.Get] with an explicit fallback value.
func (b *Bucket) GetOr(key string, def any) any {
	return b.Get(key, def)
}

// Set pipes value through the key's set-hooks in registration order, then
// writes the result at key.
func (b *Bucket) Set(key string, value any) {
	dot.Set(b.items, key, b.applyHooks(key+"-set", value))
}

// Fill is [Bucket.Set] with fill-missing-only semantics; set-hooks still
// run on the candidate value.
func (b *Bucket) Fill(key string, value any) {
	dot.Fill(b.items, key, b.applyHooks(key+"-set", value))
}

// Has reports whether every given key resolves to an existing entry.
func (b *Bucket) Has(keys ...string) bool {
	return dot.Has(b.items, keys...)
}

// Forget removes each key. Hooks for removed keys stay registered.
func (b *Bucket) Forget(keys ...string) {
	dot.Forget(b.items, keys...)
}

// Count returns the number of top-level entries.
func (b *Bucket) Count() int { return len(b.items) }

// IsEmpty reports whether the bucket has no entries.
func (b *Bucket) IsEmpty() bool { return len(b.items) == 0 }

// Keys returns the top-level keys in sorted order.
func (b *Bucket) Keys() []string {
	keys := make([]string, 0, len(b.items))
	for k := range b.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a shallow copy of the top-level map. Hooks do not run.
func (b *Bucket) All() map[string]any {
	out := make(map[string]any, len(b.items))
	for k, v := range b.items {
		out[k] = v
	}
	return out
}

// Each calls fn(key, value) for every top-level entry in sorted key order.
func (b *Bucket) Each(fn func(key string, value any)) {
	for _, k := range b.Keys() {
		fn(k, b.items[k])
	}
}

// Flatten returns the whole bucket as a single-level dot-keyed map.
func (b *Bucket) Flatten() map[string]any {
	return dot.Dot(b.items)
}

// Collect lifts the value at key into a Collection for pipeline-style
// processing: a slice becomes its elements, a missing key an empty
// collection, anything else a one-element collection.
func (b *Bucket) Collect(key string) *collections.Collection[any] {
	switch v := b.Get(key).(type) {
	case nil:
		return collections.Empty[any]()
	case []any:
		return collections.From(v)
	default:
		return collections.New[any](v)
	}
}

// Rows extracts the value at key as a row set for the arr row helpers.
// Elements that are not map[string]any are skipped.
func (b *Bucket) Rows(key string) []map[string]any {
	list, _ := b.Get(key).([]any)
	rows := make([]map[string]any, 0, len(list))
	for _, el := range list {
		if row, ok := el.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// ToJSON serialises the bucket's items to JSON.
func (b *Bucket) ToJSON() ([]byte, error) {
	return json.Marshal(b.items)
}

// MarshalJSON implements [json.Marshaler].
func (b *Bucket) MarshalJSON() ([]byte, error) { return b.ToJSON() }

// String returns a JSON representation of the bucket.
// It implements [fmt.Stringer].
func (b *Bucket) String() string {
	data, err := b.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", b.items)
	}
	return string(data)
}
