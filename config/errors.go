package config

import "errors"

// Sentinel errors returned by configuration operations.
//
// Use [errors.Is] for comparisons:
//
//	port, err := cfg.Int("db.port")
//	if errors.Is(err, config.ErrTypeMismatch) {
//	    // value exists but is not an integer
//	}
var (
	// ErrAlreadyLoaded is returned by LoadMap / LoadFile when the store has
	// already been populated. Loading is a one-shot operation; use MergeMap
	// or MergeFile to layer further data on top.
	ErrAlreadyLoaded = errors.New("config: store already loaded")

	// ErrUnsupportedFormat is returned by LoadFile / MergeFile for a file
	// extension other than .json, .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrKeyNotFound is returned by the typed accessors when the key does
	// not resolve at all.
	ErrKeyNotFound = errors.New("config: key not found")

	// ErrTypeMismatch is returned by the typed accessors when the key
	// resolves but the stored value has the wrong type. This is the loud
	// counterpart to Get's silent-default policy: asking for a typed value
	// is a contract check, asking whether a path exists is not.
	ErrTypeMismatch = errors.New("config: value has unexpected type")
)
