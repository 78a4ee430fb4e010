package dot

import "sort"

// Dot flattens a nested container into a single-level map keyed by
// fully-qualified dot-notation paths. Nested maps, slices and [Object]
// values are descended into; slice elements are keyed by index.
//
// An EMPTY nested container is treated as a leaf and emitted as-is under
// its dotted key, so round-tripping through [Undot] reproduces it rather
// than dropping it.
//
//	Dot(map[string]any{"user": map[string]any{"roles": []any{"admin"}}})
//	// → map[string]any{"user.roles.0": "admin"}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, node any, out map[string]any) {
	for _, k := range keysOf(node) {
		v, _ := getEntry(node, k)
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if isContainer(v) && containerLen(v) > 0 {
			dotFlatten(key, v, out)
		} else {
			out[key] = v
		}
	}
}

// Undot expands a flat dot-notation map back into nested form by applying
// [Set] for each pair. Keys are applied in sorted order, so a shorter path
// that collides with a longer one ("a" then "a.b") deterministically loses
// to the longer path, which forces a container into place. Decimal segments
// rebuild []any values, making Undot the inverse of [Dot] for containers
// without dotted literal keys.
func Undot(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any)
	for _, k := range keys {
		Set(out, k, flat[k])
	}
	return out
}
