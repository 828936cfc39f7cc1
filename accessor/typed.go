package accessor

import (
	"reflect"

	"accessor-generator/converter"
	"accessor-generator/options"
)

// Typed is an accessor whose logical type is known at compile time.
type Typed[T any] struct {
	acc *Accessor
}

// Bind generates an accessor with logical type T.
func Bind[T any](s *Synthesizer, address uintptr, attrs options.AttributeEnum, conv converter.Pair) (*Typed[T], error) {
	acc, err := s.Generate(address, reflect.TypeFor[T](), attrs, conv)
	if err != nil {
		return nil, err
	}

	return &Typed[T]{acc: acc}, nil
}

func (t *Typed[T]) Get() (T, error) {
	var zero T

	v, err := t.acc.Get()
	if err != nil {
		return zero, err
	}

	out, ok := v.(T)
	if !ok {
		return zero, &ClassCastError{
			Accessor: t.acc.Name(),
			Stage:    "get",
			Expected: reflect.TypeFor[T](),
			Actual:   reflect.TypeOf(v),
		}
	}

	return out, nil
}

func (t *Typed[T]) Set(value T) error { return t.acc.Set(value) }

// Accessor returns the untyped accessor underneath.
func (t *Typed[T]) Accessor() *Accessor { return t.acc }
