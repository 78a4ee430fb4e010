package arr

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/abmmhasan/Bucket/dot"
)

// ─────────────────────────────────────────────────────────────────────────────
// Multi-dimension row helpers
//
// A "row set" is a []map[string]any, the shape produced by decoding JSON
// arrays of objects or database result sets. Column keys are resolved
// through the dot package, so nested columns work:
//
//	rows := []map[string]any{
//	    {"name": "Alice", "address": map[string]any{"city": "London"}},
//	    {"name": "Bob", "address": map[string]any{"city": "Paris"}},
//	}
//	arr.Where(rows, "address.city", "Paris") // → the Bob row
// ─────────────────────────────────────────────────────────────────────────────

// Where returns the rows whose column at key equals value.
// Nested values are compared with reflect.DeepEqual.
func Where(rows []map[string]any, key string, value any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if reflect.DeepEqual(dot.Get(row, key), value) {
			out = append(out, row)
		}
	}
	return out
}

// WhereIn returns the rows whose column at key equals any of values.
func WhereIn(rows []map[string]any, key string, values []any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		v := dot.Get(row, key)
		for _, want := range values {
			if reflect.DeepEqual(v, want) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Column extracts one column from every row. Rows missing the key
// contribute a nil entry, keeping positions aligned with the input.
func Column(rows []map[string]any, key string) []any {
	out := make([]any, len(rows))
	for i, row := range rows {
		out[i] = dot.Get(row, key)
	}
	return out
}

// GroupByColumn groups rows by the string form of the column at key.
func GroupByColumn(rows []map[string]any, key string) map[string][]map[string]any {
	groups := make(map[string][]map[string]any)
	for _, row := range rows {
		k := fmt.Sprintf("%v", dot.Get(row, key))
		groups[k] = append(groups[k], row)
	}
	return groups
}

// KeyByColumn maps each row by the string form of its column at key.
// When rows share a key, the last one wins.
func KeyByColumn(rows []map[string]any, key string) map[string]map[string]any {
	out := make(map[string]map[string]any, len(rows))
	for _, row := range rows {
		out[fmt.Sprintf("%v", dot.Get(row, key))] = row
	}
	return out
}

// SortByColumn returns a copy of rows sorted ascending by the column at
// key. Numeric values compare numerically; everything else compares by its
// string form. The sort is stable.
func SortByColumn(rows []map[string]any, key string) []map[string]any {
	out := make([]map[string]any, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return columnLess(dot.Get(out[i], key), dot.Get(out[j], key))
	})
	return out
}

// SortByColumnDesc is [SortByColumn] in descending order.
func SortByColumnDesc(rows []map[string]any, key string) []map[string]any {
	out := make([]map[string]any, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return columnLess(dot.Get(out[j], key), dot.Get(out[i], key))
	})
	return out
}

func columnLess(a, b any) bool {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		return af < bf
	}
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
