// Copyright Docsift Authors
// SPDX-License-Identifier: Apache-2.0

// Package provider implements a generic registry of named handlers.
//
// Each subsystem (extract formats, output renderers) creates a typed
// Registry and registers its implementations under one or more names at
// startup. Lookups are by name; unknown names report the registered set
// so callers can surface a useful error.
package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a thread-safe table of named handlers for a given type T.
type Registry[T any] struct {
	subsystem string
	mu        sync.RWMutex
	entries   map[string]T
}

// NewRegistry creates a new Registry. The subsystem name is used in error
// messages (e.g. "extract format", "renderer").
func NewRegistry[T any](subsystem string) *Registry[T] {
	return &Registry[T]{
		subsystem: subsystem,
		entries:   make(map[string]T),
	}
}

// Register adds a handler under one or more names. Panics if a name is
// already registered.
func (r *Registry[T]) Register(v T, names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if _, exists := r.entries[name]; exists {
			panic(fmt.Sprintf("provider: %s %q already registered", r.subsystem, name))
		}
		r.entries[name] = v
	}
}

// Get returns the handler registered under name. Returns an error naming
// the registered set if the name is unknown.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	v, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown %s: %q (available: %v)", r.subsystem, name, r.Available())
	}
	return v, nil
}

// Lookup returns the handler registered under name and whether it exists.
// Unlike Get it allocates nothing on a miss.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[name]
	return v, ok
}

// Available returns the sorted list of registered names.
func (r *Registry[T]) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
