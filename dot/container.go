package dot

import (
	"sort"
	"strconv"
)

// Object lets arbitrary types participate in dot-notation traversal as
// containers with named attributes, the way a map[string]any does with keys.
//
// AttrNames defines the attribute order used by {first}/{last} resolution,
// wildcard fan-out and [Dot]. Implementations own that ordering; maps and
// slices handled natively by this package enumerate in sorted-key and
// positional order respectively.
type Object interface {
	// Attr returns the named attribute and whether it exists.
	Attr(name string) (any, bool)

	// SetAttr creates or replaces the named attribute.
	SetAttr(name string, value any)

	// DelAttr removes the named attribute. Removing a missing attribute
	// is a no-op.
	DelAttr(name string)

	// AttrNames returns every attribute name, in the object's own order.
	AttrNames() []string
}

// isContainer reports whether v can be descended into.
func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any, Object:
		return true
	}
	return false
}

// containerLen returns the entry count of a container, or 0 for anything else.
func containerLen(v any) int {
	switch c := v.(type) {
	case map[string]any:
		return len(c)
	case []any:
		return len(c)
	case Object:
		return len(c.AttrNames())
	}
	return 0
}

// keysOf enumerates a container's keys in its canonical order:
// sorted for maps, positional for slices, AttrNames order for Objects.
// Returns nil for non-containers.
func keysOf(v any) []string {
	switch c := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	case []any:
		keys := make([]string, len(c))
		for i := range c {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	case Object:
		return c.AttrNames()
	}
	return nil
}

// valuesOf returns a container's values in keysOf order, or nil for
// non-containers.
func valuesOf(v any) []any {
	switch c := v.(type) {
	case map[string]any:
		keys := keysOf(c)
		vals := make([]any, len(keys))
		for i, k := range keys {
			vals[i] = c[k]
		}
		return vals
	case []any:
		vals := make([]any, len(c))
		copy(vals, c)
		return vals
	case Object:
		names := c.AttrNames()
		vals := make([]any, len(names))
		for i, n := range names {
			vals[i], _ = c.Attr(n)
		}
		return vals
	}
	return nil
}

// getEntry fetches one entry by key. Slice keys must be in-range decimal
// indices.
func getEntry(v any, key string) (any, bool) {
	switch c := v.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	case Object:
		return c.Attr(key)
	}
	return nil, false
}

// hasEntry reports whether the container holds the key at all, regardless of
// the stored value (an explicit nil still counts).
func hasEntry(v any, key string) bool {
	_, ok := getEntry(v, key)
	return ok
}

// setEntry writes one entry and returns the container, which may be a new
// value: slices grow (nil-padded) for out-of-range indices and are converted
// to a map keyed "0","1",… when the key is not a decimal index.
func setEntry(v any, key string, value any) any {
	switch c := v.(type) {
	case map[string]any:
		c[key] = value
		return c
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 {
			m := sliceToMap(c)
			m[key] = value
			return m
		}
		for i >= len(c) {
			c = append(c, nil)
		}
		c[i] = value
		return c
	case Object:
		c.SetAttr(key, value)
		return c
	}
	return v
}

// delEntry removes one entry and returns the container. Removing a slice
// index splices the slice, shifting later elements down.
func delEntry(v any, key string) any {
	switch c := v.(type) {
	case map[string]any:
		delete(c, key)
		return c
	case []any:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(c) {
			return c
		}
		return append(c[:i], c[i+1:]...)
	case Object:
		c.DelAttr(key)
		return c
	}
	return v
}

// sliceToMap converts a slice into an index-keyed map, preserving elements.
func sliceToMap(s []any) map[string]any {
	m := make(map[string]any, len(s))
	for i, val := range s {
		m[strconv.Itoa(i)] = val
	}
	return m
}

// isIndex reports whether key parses as a non-negative decimal index.
func isIndex(key string) bool {
	i, err := strconv.Atoi(key)
	return err == nil && i >= 0
}
