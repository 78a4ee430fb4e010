package dot

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key cannot be resolved.
//
// A key that exists literally at the top level is returned directly, even if
// it contains dots or reserved characters. Otherwise the key is split on "."
// and the segments are walked left to right:
//
//   - "*" fans out over every element at that level and collects the results
//     of resolving the remaining segments into a []any. When another "*"
//     appears among the remaining segments, the collected list is collapsed
//     one level (concatenated) instead of nested.
//   - "{first}" / "{last}" resolve to the current container's first / last
//     key; on an empty or non-enumerable container the default is returned.
//   - "\*", "\{first}", "\{last}" address the literal keys "*", "{first}",
//     "{last}".
//
// The default may be a lazy producer: pass a func() any and it is invoked
// only when the lookup fails.
//
//	Get(m, "user.address.city")                    // "London"
//	Get(m, "items.*.id")                           // []any{1, 2}
//	Get(m, "user.missing", "default")              // "default"
//	Get(m, "user.missing", func() any { ... })     // producer result
func Get(m map[string]any, key string, def ...any) any {
	if v, ok := m[key]; ok {
		return v
	}
	segs := parseKey(key)
	if len(segs) == 1 && segs[0].kind == segLiteral {
		// No partial matching for dotless keys; the only way a single
		// literal segment can still hit is an escaped token ("\*" meaning
		// the key named "*").
		if v, ok := m[segs[0].key]; ok {
			return v
		}
		return fallback(def)
	}
	v, ok := resolve(m, segs)
	if !ok {
		return fallback(def)
	}
	return v
}

// GetMany resolves several keys independently. Each map entry is a
// key-path → default pair; the result maps every requested key to its
// resolved value, or to its own default when unresolved.
func GetMany(m map[string]any, keys map[string]any) map[string]any {
	out := make(map[string]any, len(keys))
	for key, def := range keys {
		out[key] = Get(m, key, def)
	}
	return out
}

// Pluck resolves each requested key via [Get] and returns a map keyed by the
// requested key strings themselves (not by the resolved values).
func Pluck(m map[string]any, keys []string, def ...any) map[string]any {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		out[key] = Get(m, key, def...)
	}
	return out
}

// fallback materialises the caller's default: a func() any is invoked
// lazily, anything else is returned as-is, absence is nil.
func fallback(def []any) any {
	if len(def) == 0 {
		return nil
	}
	if fn, ok := def[0].(func() any); ok {
		return fn()
	}
	return def[0]
}

// resolve walks segs from node, reporting whether the terminal segment was
// reached. Failure carries no detail: any miss resolves to the caller's
// default upstream.
func resolve(node any, segs []segment) (any, bool) {
	for i, seg := range segs {
		switch seg.kind {
		case segWildcard:
			return fanOut(node, segs[i+1:])
		case segFirst, segLast:
			keys := keysOf(node)
			if len(keys) == 0 {
				return nil, false
			}
			k := keys[0]
			if seg.kind == segLast {
				k = keys[len(keys)-1]
			}
			next, ok := getEntry(node, k)
			if !ok {
				return nil, false
			}
			node = next
		default:
			next, ok := getEntry(node, seg.key)
			if !ok {
				return nil, false
			}
			node = next
		}
	}
	return node, true
}

// fanOut resolves rest against every element of node, collecting the hits
// into a fresh list. Elements that cannot resolve rest are skipped. When
// rest itself contains a wildcard, each hit is already a list and is
// concatenated in, flattening one level per chained wildcard.
func fanOut(node any, rest []segment) (any, bool) {
	vals := valuesOf(node)
	if vals == nil {
		return nil, false
	}
	if len(rest) == 0 {
		return vals, true
	}
	collapse := hasWildcard(rest)
	out := make([]any, 0, len(vals))
	for _, el := range vals {
		v, ok := resolve(el, rest)
		if !ok {
			continue
		}
		if collapse {
			if sub, isList := v.([]any); isList {
				out = append(out, sub...)
				continue
			}
		}
		out = append(out, v)
	}
	return out, true
}
