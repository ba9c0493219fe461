// Package registry provides a name-keyed registry of factories.
// Packages register their implementations in init() functions, allowing the
// CLI and config layer to look them up by name without hardcoded switches.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Info contains metadata about a registered entry.
type Info struct {
	Name  string
	Title string
}

// Factory creates a new instance of T.
type Factory[T any] func() T

type entry[T any] struct {
	title   string
	factory Factory[T]
}

// Registry maps names to factories. The zero value is not usable; use New.
type Registry[T any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[string]entry[T]
}

// New creates an empty registry. kind names the registered things in error
// messages, e.g. "evaluator".
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]entry[T]),
	}
}

// Register adds a factory under name.
// Typically called from an init() function.
// Panics if name is already registered.
func (r *Registry[T]) Register(name, title string, f Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("registry: %s %q already registered", r.kind, name))
	}
	r.entries[name] = entry[T]{title: title, factory: f}
}

// List returns information about all registered entries, sorted by name.
func (r *Registry[T]) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Info, 0, len(r.entries))
	for name, e := range r.entries {
		result = append(result, Info{Name: name, Title: e.title})
	}

	slices.SortFunc(result, func(a, b Info) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return result
}

// Create instantiates the entry registered under name.
// Returns an error if the name is not registered.
func (r *Registry[T]) Create(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, name)
	}

	return e.factory(), nil
}

// Exists checks if an entry with the given name is registered.
func (r *Registry[T]) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry[T]) Names() []string {
	return lo.Map(r.List(), func(info Info, _ int) string { return info.Name })
}
