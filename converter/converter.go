package converter

import (
	"errors"
	"fmt"
	"reflect"

	"accessor-generator/utils"
)

var (
	ErrArgumentType     = errors.New("converter argument has the wrong type")
	ErrRejected         = errors.New("converter rejected the value")
	ErrUnknownConverter = errors.New("unknown converter")
)

// ToNativeContext carries metadata about the conversion site.
// Accessors always pass nil; the parameter is kept so richer context can be threaded later.
type ToNativeContext any

// FromNativeContext is the read-side counterpart of ToNativeContext.
type FromNativeContext any

// ToNative turns a logical value into the value stored natively.
type ToNative interface {
	ToNative(value any, ctx ToNativeContext) (any, error)
	// NativeType is the type every successful ToNative result has.
	NativeType() reflect.Type
}

// FromNative turns a natively stored value back into a logical value.
type FromNative interface {
	FromNative(value any, ctx FromNativeContext) (any, error)
	// NativeType is the type FromNative expects as input.
	NativeType() reflect.Type
}

// Pair is the optional converter pair attached to one variable.
type Pair struct {
	To   utils.Option[ToNative]
	From utils.Option[FromNative]
}

// None is the empty pair: values are stored as they are.
func None() Pair { return Pair{} }

// Both builds a pair from two converters, either of which may be nil.
func Both(to ToNative, from FromNative) Pair {
	var p Pair
	if to != nil {
		p.To = utils.Some(to)
	}

	if from != nil {
		p.From = utils.Some(from)
	}

	return p
}

// NewPair builds a pair from plain functions, see ParseFunc. Nil functions are left absent.
func NewPair(toFn, fromFn any) (Pair, error) {
	var p Pair

	if toFn != nil {
		f, err := ParseFunc(toFn)
		if err != nil {
			return Pair{}, fmt.Errorf("to-native: %w", err)
		}

		p.To = utils.Some(f.AsToNative())
	}

	if fromFn != nil {
		f, err := ParseFunc(fromFn)
		if err != nil {
			return Pair{}, fmt.Errorf("from-native: %w", err)
		}

		p.From = utils.Some(f.AsFromNative())
	}

	return p, nil
}

// MustPair is NewPair for package level declarations.
func MustPair(toFn, fromFn any) Pair {
	p, err := NewPair(toFn, fromFn)
	if err != nil {
		panic(err)
	}

	return p
}

// IsEmpty reports whether neither converter is present.
func (p Pair) IsEmpty() bool {
	return !p.To.IsSome() && !p.From.IsSome()
}

// NativeType returns the type the pair stores natively: the to-native result type
// when present, else the from-native input type. ok is false for an empty pair.
func (p Pair) NativeType() (reflect.Type, bool) {
	if to, ok := p.To.Get(); ok {
		return to.NativeType(), true
	}

	if from, ok := p.From.Get(); ok {
		return from.NativeType(), true
	}

	return nil, false
}

// LogicalType returns the type the pair exposes to callers, when the converters declare it.
func (p Pair) LogicalType() (reflect.Type, bool) {
	type logical interface{ LogicalType() reflect.Type }

	if from, ok := p.From.Get(); ok {
		if l, ok := from.(logical); ok {
			return l.LogicalType(), true
		}
	}

	if to, ok := p.To.Get(); ok {
		if l, ok := to.(logical); ok {
			return l.LogicalType(), true
		}
	}

	return nil, false
}
