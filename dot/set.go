package dot

// Set writes value into m at the dot-notation key, creating intermediate
// containers as needed. A missing intermediate becomes a map, or a []any
// when the following segment is a decimal index. A non-container standing
// where an intermediate is needed is replaced to make room.
//
// A "*" segment broadcasts: the remaining path is set on every element at
// that level; a terminal "*" assigns value to every element directly.
//
//	Set(m, "user.address.postcode", "EC1")
//	Set(m, "items.*.status", "active")
func Set(m map[string]any, key string, value any) {
	setSegments(m, parseKey(key), value, true)
}

// Fill writes value at key only when nothing exists there yet: existing
// entries are never overwritten, but missing intermediates are still
// created. A terminal-wildcard fill is a no-op, since "missing" has no
// single meaning across broadcast targets.
func Fill(m map[string]any, key string, value any) {
	setSegments(m, parseKey(key), value, false)
}

// SetMany applies [Set] for every key → value pair, each independently.
func SetMany(m map[string]any, values map[string]any) {
	for key, value := range values {
		Set(m, key, value)
	}
}

// FillMany applies [Fill] for every key → value pair, each independently.
func FillMany(m map[string]any, values map[string]any) {
	for key, value := range values {
		Fill(m, key, value)
	}
}

// Replace swaps dst's entire contents for those of src. This is the
// whole-container write mode: no key addresses "everything", so it is an
// explicit operation.
func Replace(dst, src map[string]any) {
	for k := range dst {
		delete(dst, k)
	}
	for k, v := range src {
		dst[k] = v
	}
}

// setSegments walks segs from node, creating or replacing intermediates,
// and returns the possibly-new node so callers can rebind it in the parent
// (slices grow and convert by value).
func setSegments(node any, segs []segment, value any, overwrite bool) any {
	seg := segs[0]
	rest := segs[1:]

	switch seg.kind {
	case segWildcard:
		keys := keysOf(node)
		if len(rest) == 0 {
			if !overwrite {
				return node
			}
			for _, k := range keys {
				node = setEntry(node, k, value)
			}
			return node
		}
		for _, k := range keys {
			child, _ := getEntry(node, k)
			if !isContainer(child) {
				child = newChild(rest[0])
			}
			node = setEntry(node, k, setSegments(child, rest, value, overwrite))
		}
		return node

	case segFirst, segLast:
		keys := keysOf(node)
		if len(keys) == 0 {
			return node
		}
		k := keys[0]
		if seg.kind == segLast {
			k = keys[len(keys)-1]
		}
		return setLiteral(node, k, rest, value, overwrite)

	default:
		return setLiteral(node, seg.key, rest, value, overwrite)
	}
}

func setLiteral(node any, key string, rest []segment, value any, overwrite bool) any {
	if len(rest) == 0 {
		if overwrite || !hasEntry(node, key) {
			node = setEntry(node, key, value)
		}
		return node
	}
	child, ok := getEntry(node, key)
	if !ok || !isContainer(child) {
		child = newChild(rest[0])
	}
	return setEntry(node, key, setSegments(child, rest, value, overwrite))
}

// newChild picks the intermediate container shape for a missing step: a
// slice when the next segment is a decimal index, a map otherwise.
func newChild(next segment) any {
	if next.kind == segLiteral && isIndex(next.key) {
		return []any{}
	}
	return map[string]any{}
}
