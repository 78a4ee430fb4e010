package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/abmmhasan/Bucket/dot"
)

// Config is an in-memory configuration store addressed with dot-notation
// keys. It holds one private nested map and composes the dot package's
// primitives; it performs no I/O after loading and provides no internal
// synchronization.
type Config struct {
	items  map[string]any
	loaded bool
}

// New returns an empty, unloaded store.
func New() *Config {
	return &Config{items: map[string]any{}}
}

// LoadMap populates the store from m (deep-copied, so later changes to m do
// not leak in). A store can be loaded exactly once; subsequent loads return
// [ErrAlreadyLoaded].
func (c *Config) LoadMap(m map[string]any) error {
	if c.loaded {
		return ErrAlreadyLoaded
	}
	c.items = deepCopyMap(m)
	c.loaded = true
	return nil
}

// LoadFile populates the store from a configuration file, dispatching on
// the extension: .json, .yaml/.yml (goccy/go-yaml) or .toml
// (pelletier/go-toml). The same populate-once guard as [Config.LoadMap]
// applies.
func (c *Config) LoadFile(path string) error {
	if c.loaded {
		return ErrAlreadyLoaded
	}
	items, err := decodeFile(path)
	if err != nil {
		return err
	}
	c.items = items
	c.loaded = true
	return nil
}

// MergeMap deep-merges m over the current items: m's values win on
// conflict, nested maps merge recursively. Unlike LoadMap it carries no
// populate-once guard and marks the store loaded.
func (c *Config) MergeMap(m map[string]any) error {
	src := deepCopyMap(m)
	if err := mergo.Merge(&c.items, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("config: merge: %w", err)
	}
	c.loaded = true
	return nil
}

// MergeFile decodes path like [Config.LoadFile] and deep-merges the result
// over the current items. Use it to layer environment-specific files over a
// base configuration.
func (c *Config) MergeFile(path string) error {
	items, err := decodeFile(path)
	if err != nil {
		return err
	}
	return c.MergeMap(items)
}

// Get retrieves the value at key, or def[0] (nil if absent) when the key
// does not resolve. The full dot-notation grammar is available, wildcards
// and lazy func() any defaults included.
func (c *Config) Get(key string, def ...any) any {
	return dot.Get(c.items, key, def...)
}

// Set writes value at key, creating intermediate containers as needed.
func (c *Config) Set(key string, value any) {
	dot.Set(c.items, key, value)
}

// Fill writes value at key only when nothing exists there yet.
func (c *Config) Fill(key string, value any) {
	dot.Fill(c.items, key, value)
}

// Has reports whether every given key resolves to an existing entry.
func (c *Config) Has(keys ...string) bool {
	return dot.Has(c.items, keys...)
}

// HasAny reports whether at least one of the keys resolves.
func (c *Config) HasAny(keys ...string) bool {
	return dot.HasAny(c.items, keys...)
}

// Forget removes each key from the store.
func (c *Config) Forget(keys ...string) {
	dot.Forget(c.items, keys...)
}

// Pluck resolves each requested key, keyed by the requested strings.
func (c *Config) Pluck(keys []string, def ...any) map[string]any {
	return dot.Pluck(c.items, keys, def...)
}

// All returns a deep copy of every item.
func (c *Config) All() map[string]any {
	return deepCopyMap(c.items)
}

// Replace swaps the store's entire contents for those of m.
func (c *Config) Replace(m map[string]any) {
	dot.Replace(c.items, deepCopyMap(m))
	c.loaded = true
}

// Flatten returns the whole store as a single-level dot-keyed map.
func (c *Config) Flatten() map[string]any {
	return dot.Dot(c.items)
}

// Append pushes values onto the slice at key: a missing key becomes a new
// slice, an existing slice is extended, and a scalar is wrapped first.
func (c *Config) Append(key string, values ...any) {
	c.Set(key, extend(c.Get(key), values, false))
}

// Prepend is [Config.Append] with the values inserted at the front.
func (c *Config) Prepend(key string, values ...any) {
	c.Set(key, extend(c.Get(key), values, true))
}

func extend(current any, values []any, front bool) []any {
	var base []any
	switch cur := current.(type) {
	case nil:
		base = []any{}
	case []any:
		base = cur
	default:
		base = []any{cur}
	}
	if front {
		out := make([]any, 0, len(values)+len(base))
		out = append(out, values...)
		return append(out, base...)
	}
	return append(base, values...)
}

func decodeFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	items := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return items, nil
}

// deepCopyMap clones nested maps and slices so the store owns its data.
// Anything other than map[string]any / []any is copied by value.
func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, el := range val {
			out[i] = deepCopyValue(el)
		}
		return out
	}
	return v
}
