package config

import (
	"fmt"
	"math"

	"github.com/abmmhasan/Bucket/dot"
)

// Typed accessors. Unlike Get, these fail LOUDLY: a missing key returns
// [ErrKeyNotFound] and a present-but-wrong-type value returns
// [ErrTypeMismatch]. "Does this path exist" never errors; "give me this as
// a string" errors when the contract does not hold.

// String returns the string at key.
func (c *Config) String(key string) (string, error) {
	v, err := c.require(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", mismatch(key, "string", v)
	}
	return s, nil
}

// Int returns the integer at key. Integral float64 values are accepted,
// since every number decoded from JSON arrives as float64; non-integral
// floats still fail.
func (c *Config) Int(key string) (int, error) {
	v, err := c.require(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, mismatch(key, "int", v)
}

// Float returns the float64 at key; integers are widened.
func (c *Config) Float(key string) (float64, error) {
	v, err := c.require(key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, mismatch(key, "float64", v)
}

// Bool returns the bool at key.
func (c *Config) Bool(key string) (bool, error) {
	v, err := c.require(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(key, "bool", v)
	}
	return b, nil
}

// Slice returns the []any at key.
func (c *Config) Slice(key string) ([]any, error) {
	v, err := c.require(key)
	if err != nil {
		return nil, err
	}
	s, ok := v.([]any)
	if !ok {
		return nil, mismatch(key, "[]any", v)
	}
	return s, nil
}

// StringSlice returns the value at key as []string; every element of the
// stored slice must itself be a string.
func (c *Config) StringSlice(key string) ([]string, error) {
	s, err := c.Slice(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(s))
	for i, el := range s {
		str, ok := el.(string)
		if !ok {
			return nil, mismatch(key, "[]string", el)
		}
		out[i] = str
	}
	return out, nil
}

// StringMap returns the nested map[string]any at key.
func (c *Config) StringMap(key string) (map[string]any, error) {
	v, err := c.require(key)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(key, "map[string]any", v)
	}
	return m, nil
}

// require resolves key or reports ErrKeyNotFound. Existence follows Has,
// so an explicit nil value is found (and then fails the type check, which
// is the correct loud outcome for a typed read of nil).
func (c *Config) require(key string) (any, error) {
	if !dot.Has(c.items, key) {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return dot.Get(c.items, key), nil
}

func mismatch(key, want string, got any) error {
	return fmt.Errorf("%w: %q is %T, want %s", ErrTypeMismatch, key, got, want)
}
