package native

import (
	"fmt"
	"sort"
	"sync"
)

// Registry indexes native types by full name so serialized models can refer to
// them by name. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Type
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// NewRegistry creates a registry holding the given types.
func NewRegistry(types ...Type) *Registry {
	r := &Registry{byName: make(map[string]Type, len(types))}
	for _, t := range types {
		r.byName[t.FullName()] = t
	}
	return r
}

// Default returns the process-wide registry, pre-populated with Builtins.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(Builtins()...)
	})
	return defaultRegistry
}

// Register adds t. Registering a different type under a name that is already
// taken is an error; re-registering the same type is a no-op.
func (r *Registry) Register(t Type) error {
	if t == nil {
		return fmt.Errorf("native type cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.FullName()
	if existing, ok := r.byName[name]; ok {
		if Same(existing, t) {
			return nil
		}
		return fmt.Errorf("native type %q is already registered", name)
	}
	r.byName[name] = t
	return nil
}

// Lookup finds a type by full name.
func (r *Registry) Lookup(fullName string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[fullName]
	return t, ok
}

// All returns every registered type sorted by full name.
func (r *Registry) All() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Type, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName() < out[j].FullName()
	})
	return out
}
