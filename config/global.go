package config

import "sync"

// The shared store is an explicit handle, not hidden package state: nothing
// in this package reads or writes it implicitly, callers opt in by calling
// Shared().
var shared struct {
	mu    sync.Mutex
	store *Config
}

// Shared returns the process-wide configuration store, creating it on first
// use. The handle itself is safe to obtain from multiple goroutines; the
// store's operations are not synchronized, like any other *Config.
func Shared() *Config {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.store == nil {
		shared.store = New()
	}
	return shared.store
}

// ResetShared discards the process-wide store so the next Shared() call
// starts fresh. Intended for use in tests.
func ResetShared() {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	shared.store = nil
}
