package binding

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"
	"unsafe"

	"accessor-generator/internal/common"
	"accessor-generator/primitive"
)

// TypeRegistry maps manifest type names to Go types.
// It is safe for concurrent use.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewTypeRegistry creates a registry knowing the predeclared numeric types,
// bool, string, uintptr, unsafe.Pointer, primitive.Pointer, time.Duration and time.Time.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{types: make(map[string]reflect.Type)}

	for _, t := range []reflect.Type{
		reflect.TypeFor[int](), reflect.TypeFor[int8](), reflect.TypeFor[int16](),
		reflect.TypeFor[int32](), reflect.TypeFor[int64](),
		reflect.TypeFor[uint](), reflect.TypeFor[uint8](), reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](), reflect.TypeFor[uint64](),
		reflect.TypeFor[float32](), reflect.TypeFor[float64](),
		reflect.TypeFor[uintptr](), reflect.TypeFor[bool](), reflect.TypeFor[string](),
		reflect.TypeFor[unsafe.Pointer](), reflect.TypeFor[primitive.Pointer](),
		reflect.TypeFor[time.Duration](), reflect.TypeFor[time.Time](),
	} {
		r.Register(t)
	}

	r.alias("byte", reflect.TypeFor[byte]())
	r.alias("rune", reflect.TypeFor[rune]())
	r.alias("pointer", reflect.TypeFor[primitive.Pointer]())

	return r
}

// Register makes t known under its qualified name, e.g. "time.Duration".
func (r *TypeRegistry) Register(t reflect.Type) {
	r.alias(t.String(), t)
}

func (r *TypeRegistry) alias(name string, t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types[name] = t
}

// Resolve resolves a type name like:
// - "int64" (predeclared)
// - "time.Duration" (package alias and name)
// - "Duration" (name only, when unambiguous).
func (r *TypeRegistry) Resolve(name string) (reflect.Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("empty type name")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.types[name]; ok {
		return t, nil
	}

	if strings.Contains(name, ".") {
		return nil, fmt.Errorf("unknown type %q", name)
	}

	// Name-only: match by type name when exactly one package declares it.
	var found []reflect.Type
	for _, t := range r.types {
		if t.PkgPath() != "" && t.Name() == name {
			found = common.AppendUnique(found, t)
		}
	}

	switch {
	case common.IsSingle(found):
		return found[0], nil
	case common.IsMultiple(found):
		return nil, fmt.Errorf("ambiguous type %q: declared in %d packages", name, len(found))
	default:
		return nil, fmt.Errorf("unknown type %q", name)
	}
}

// Names returns every registered name, sorted.
func (r *TypeRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// TypeName returns the manifest spelling of t.
func TypeName(t reflect.Type) string { return common.QualifiedName(t) }
