package converter

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"accessor-generator/options"
)

// Resolver finds the converter pair for a logical type and its declared attributes.
type Resolver interface {
	Resolve(logical reflect.Type, attrs options.AttributeEnum) Pair
}

// Registry holds named converter pairs and indexes them by logical type.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Pair
	byType map[reflect.Type]string
}

var _ Resolver = (*Registry)(nil)

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Pair),
		byType: make(map[reflect.Type]string),
	}
}

// Defaults returns a registry holding the built-in converters.
// time.Duration resolves to "duration", not "seconds".
func Defaults() *Registry {
	r := NewRegistry()
	r.MustRegister(NameBool, Bool)
	r.MustRegister(NameDuration, Duration)
	r.MustRegister(NameTimestamp, Timestamp)
	r.MustRegister(NameSeconds, Seconds)

	return r
}

// Register adds a named pair. The first pair registered for a logical type
// becomes the one Resolve returns for it.
func (r *Registry) Register(name string, p Pair) error {
	if name == "" {
		return fmt.Errorf("converter name must not be empty")
	}

	if p.IsEmpty() {
		return fmt.Errorf("converter %q: pair is empty", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("converter %q already registered", name)
	}

	r.byName[name] = p

	if logical, ok := p.LogicalType(); ok {
		if _, taken := r.byType[logical]; !taken {
			r.byType[logical] = name
		}
	}

	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(name string, p Pair) {
	if err := r.Register(name, p); err != nil {
		panic(err)
	}
}

// ByName returns the pair registered under name.
func (r *Registry) ByName(name string) (Pair, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[name]
	if !ok {
		return Pair{}, fmt.Errorf("%w: %q", ErrUnknownConverter, name)
	}

	return p, nil
}

// Has returns true if a converter with the given name exists.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byName[name]
	return exists
}

// Resolve returns the pair indexed for logical, or the empty pair.
// Attributes do not take part in the lookup.
func (r *Registry) Resolve(logical reflect.Type, _ options.AttributeEnum) Pair {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byType[logical]
	if !ok {
		return None()
	}

	return r.byName[name]
}

// Names returns all converter names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
