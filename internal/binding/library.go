package binding

import (
	"errors"
	"fmt"

	"accessor-generator/accessor"
)

var ErrUnknownVariable = errors.New("unknown variable")

// Library is a bound manifest: one accessor per variable.
type Library struct {
	name    string
	base    uintptr
	size    int64
	entries []entry
	index   map[string]int
}

type entry struct {
	binding Binding
	acc     *accessor.Accessor
}

// Value is one variable as captured by Snapshot.
type Value struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Kind   string `yaml:"kind"`
	Offset int64  `yaml:"offset"`
	Value  any    `yaml:"value"`
}

func newLibrary(layout *Layout, base uintptr, accs []*accessor.Accessor) *Library {
	l := &Library{
		name:    layout.Library,
		base:    base,
		size:    layout.Size,
		entries: make([]entry, len(accs)),
		index:   make(map[string]int, len(accs)),
	}

	for i, acc := range accs {
		l.entries[i] = entry{binding: layout.Bindings[i], acc: acc}
		l.index[layout.Bindings[i].Name] = i
	}

	return l
}

func (l *Library) Name() string  { return l.name }
func (l *Library) Base() uintptr { return l.base }
func (l *Library) Size() int64   { return l.size }
func (l *Library) Len() int      { return len(l.entries) }

// Lookup returns the accessor of the named variable.
func (l *Library) Lookup(name string) (*accessor.Accessor, bool) {
	i, ok := l.index[name]
	if !ok {
		return nil, false
	}

	return l.entries[i].acc, true
}

// Names returns the variable names in declaration order.
func (l *Library) Names() []string {
	names := make([]string, len(l.entries))
	for i := range l.entries {
		names[i] = l.entries[i].binding.Name
	}

	return names
}

// Get reads the named variable.
func (l *Library) Get(name string) (any, error) {
	acc, ok := l.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	return acc.Get()
}

// Set coerces a literal to the variable's type and writes it, see Coerce.
func (l *Library) Set(name string, literal any) error {
	i, ok := l.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}

	e := &l.entries[i]

	value, err := Coerce(literal, e.binding.Logical)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return e.acc.Set(value)
}

// Snapshot reads every variable in declaration order.
func (l *Library) Snapshot() ([]Value, error) {
	values := make([]Value, 0, len(l.entries))

	for i := range l.entries {
		e := &l.entries[i]

		v, err := e.acc.Get()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.binding.Name, err)
		}

		values = append(values, Value{
			Name:   e.binding.Name,
			Type:   TypeName(e.binding.Logical),
			Kind:   e.binding.Kind.String(),
			Offset: e.binding.Offset,
			Value:  v,
		})
	}

	return values, nil
}
