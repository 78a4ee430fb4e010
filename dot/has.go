package dot

// Has reports whether every given dot-notation key resolves to an existing
// entry in m. Existence follows array_key_exists semantics: a key whose
// stored value is an explicit nil still counts. Returns false when no keys
// are given.
func Has(m map[string]any, keys ...string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, key := range keys {
		if !hasOne(m, key) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the keys passes [Has].
func HasAny(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if hasOne(m, key) {
			return true
		}
	}
	return false
}

func hasOne(m map[string]any, key string) bool {
	if _, ok := m[key]; ok {
		return true
	}
	segs := parseKey(key)
	if len(segs) == 1 && segs[0].kind == segLiteral {
		_, ok := m[segs[0].key]
		return ok
	}
	return exists(m, segs)
}

// exists mirrors resolve's traversal but only tracks whether a value is
// present at the terminal segment. A wildcard passes when at least one
// element resolves the remaining path (the corresponding Get would return a
// non-empty list).
func exists(node any, segs []segment) bool {
	for i, seg := range segs {
		switch seg.kind {
		case segWildcard:
			rest := segs[i+1:]
			vals := valuesOf(node)
			if len(vals) == 0 {
				return false
			}
			if len(rest) == 0 {
				return true
			}
			for _, el := range vals {
				if exists(el, rest) {
					return true
				}
			}
			return false
		case segFirst, segLast:
			keys := keysOf(node)
			if len(keys) == 0 {
				return false
			}
			k := keys[0]
			if seg.kind == segLast {
				k = keys[len(keys)-1]
			}
			next, ok := getEntry(node, k)
			if !ok {
				return false
			}
			node = next
		default:
			next, ok := getEntry(node, seg.key)
			if !ok {
				return false
			}
			node = next
		}
	}
	return true
}
