package dot

// Forget removes each dot-notation key from m. A key present literally at
// the top level is unset directly. Otherwise the path is walked down to the
// parent of the final segment; if any intermediate is missing or not a
// container, that key is silently skipped. A "*" segment applies the rest of
// the forget path to every element at that level; a terminal "*" removes
// every element.
//
// Removing a slice index splices the slice, shifting later elements down.
// Intermediate containers emptied by a forget are not cleaned up.
func Forget(m map[string]any, keys ...string) {
	for _, key := range keys {
		if _, ok := m[key]; ok {
			delete(m, key)
			continue
		}
		segs := parseKey(key)
		if len(segs) == 1 && segs[0].kind == segLiteral {
			delete(m, segs[0].key)
			continue
		}
		forgetSegments(m, segs)
	}
}

// forgetSegments walks segs from node and unsets the terminal entry,
// returning the possibly-new node for rebinding in the parent.
func forgetSegments(node any, segs []segment) any {
	seg := segs[0]
	rest := segs[1:]

	switch seg.kind {
	case segWildcard:
		if len(rest) == 0 {
			switch c := node.(type) {
			case map[string]any:
				for k := range c {
					delete(c, k)
				}
				return c
			case []any:
				return []any{}
			case Object:
				for _, n := range c.AttrNames() {
					c.DelAttr(n)
				}
				return c
			}
			return node
		}
		for _, k := range keysOf(node) {
			child, ok := getEntry(node, k)
			if !ok || !isContainer(child) {
				continue
			}
			node = setEntry(node, k, forgetSegments(child, rest))
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
		return forgetLiteral(node, k, rest)

	default:
		return forgetLiteral(node, seg.key, rest)
	}
}

func forgetLiteral(node any, key string, rest []segment) any {
	if len(rest) == 0 {
		return delEntry(node, key)
	}
	child, ok := getEntry(node, key)
	if !ok || !isContainer(child) {
		return node
	}
	return setEntry(node, key, forgetSegments(child, rest))
}
