package dot

import "strings"

// segKind discriminates the four segment forms a key path can contain.
type segKind int

const (
	segLiteral segKind = iota
	segWildcard
	segFirst
	segLast
)

// segment is one step of a parsed key path. Literal segments carry the map
// key (or slice index, as a string); token segments carry no key because
// {first}/{last} are resolved against the container reached at traversal
// time, not at parse time.
type segment struct {
	kind segKind
	key  string
}

// parseKey splits a dot-notation expression into ordered segments.
//
// Reserved tokens are "*", "{first}" and "{last}". Their backslash-escaped
// forms ("\*", "\{first}", "\{last}") resolve to the literal key without the
// backslash. The dot itself cannot be escaped: a literal key containing "."
// is not addressable. An empty segment is the literal key "".
func parseKey(key string) []segment {
	parts := strings.Split(key, ".")
	segs := make([]segment, len(parts))
	for i, p := range parts {
		switch p {
		case "*":
			segs[i] = segment{kind: segWildcard}
		case "{first}":
			segs[i] = segment{kind: segFirst}
		case "{last}":
			segs[i] = segment{kind: segLast}
		case `\*`, `\{first}`, `\{last}`:
			segs[i] = segment{kind: segLiteral, key: p[1:]}
		default:
			segs[i] = segment{kind: segLiteral, key: p}
		}
	}
	return segs
}

// hasWildcard reports whether any segment in segs is a live wildcard.
// Drives the one-level collapse rule for chained wildcards.
func hasWildcard(segs []segment) bool {
	for _, s := range segs {
		if s.kind == segWildcard {
			return true
		}
	}
	return false
}
