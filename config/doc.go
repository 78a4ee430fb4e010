// Package config provides an in-memory configuration store addressed with
// dot-notation keys, built on the dot package.
//
// # Loading
//
// A store is populated exactly once, from a map or a file (.json,
// .yaml/.yml, .toml — chosen by extension):
//
//	cfg := config.New()
//	if err := cfg.LoadFile("app.yaml"); err != nil {
//	    // ...
//	}
//
// Further layers merge on top with MergeMap / MergeFile, later layers
// winning on conflict:
//
//	_ = cfg.MergeFile("app.production.yaml")
//
// # Access
//
// Get follows the dot package's silent-default policy; the typed accessors
// (String, Int, Float, Bool, Slice, StringSlice, StringMap) fail loudly
// with ErrKeyNotFound / ErrTypeMismatch instead:
//
//	cfg.Get("db.host", "localhost")   // never errors
//	port, err := cfg.Int("db.port")   // errors on absence or wrong type
//
// Append and Prepend are read-modify-write conveniences over Get+Set for
// slice-valued keys.
//
// # Shared store
//
// Shared() hands out one process-wide *Config for applications that want a
// facade-style global; everything else in the package works on explicit
// instances and ignores it.
package config
