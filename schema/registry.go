package schema

import (
	"errors"
	"fmt"
	"sync"

	"github.com/inputkit/inputkit"
)

var (
	// ErrAlreadyRegistered is returned when a schema name is registered twice.
	ErrAlreadyRegistered = errors.New("schema already registered")

	// ErrNotFound is returned when looking up a schema name nobody registered.
	ErrNotFound = errors.New("schema not found")
)

// Registry holds named schemas. Register everything at process start and
// treat the registry as read-only afterwards; lookups are safe from any
// goroutine.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]inputkit.Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]inputkit.Schema)}
}

// Register stores a schema under name. Registering the same name twice is an
// error; schemas are immutable once published.
func (r *Registry) Register(name string, s inputkit.Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	r.schemas[name] = s
	return nil
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (inputkit.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, nil
}

// MustGet is Get for schemas wired at startup; it panics on a missing name.
func (r *Registry) MustGet(name string) inputkit.Schema {
	s, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names lists every registered schema name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	return names
}

// Update derives the partial-update variant of a schema: every field keeps
// its base rules with Required forced off, so fields absent from an update
// payload contribute no errors while present fields are checked in full.
func Update(base inputkit.Schema) inputkit.Schema {
	derived := make(inputkit.Schema, len(base))
	for field, rules := range base {
		copied := make([]inputkit.Rule, len(rules))
		copy(copied, rules)
		for i := range copied {
			copied[i].Required = false
		}
		derived[field] = copied
	}
	return derived
}
