package accessor

import (
	"fmt"
	"reflect"

	"accessor-generator/converter"
	"accessor-generator/options"
	"accessor-generator/primitive"
)

// Plan is everything a backend needs to build one accessor.
// The synthesizer fills it and never changes it after instantiation.
type Plan struct {
	Name    string
	Address uintptr

	Kind primitive.KindEnum
	Op   *primitive.ScalarOp

	// Logical is the type seen by callers of Get and Set.
	Logical reflect.Type
	// Boxed is the type written to and read from memory; Logical unless a converter says otherwise.
	Boxed     reflect.Type
	Category  CategoryEnum
	Signed    bool
	BoxedBits int

	Attributes options.AttributeEnum
	Converters converter.Pair

	// Memory is bound to Address by the synthesizer just before instantiation.
	Memory primitive.Memory
}

// Coercion reports how values change width between Boxed and native storage.
func (p *Plan) Coercion() primitive.CoercionEnum {
	return primitive.Classify(p.BoxedBits, p.Op.Bits)
}

func boxedBits(t reflect.Type) int {
	if t.Kind() == reflect.UnsafePointer {
		return primitive.AddressBits
	}

	return t.Bits()
}

// Decoder turns a raw storage pattern into a boxed value.
type Decoder func(raw uint64) any

// Encoder turns a boxed value into a raw storage pattern. ok is false
// when the value does not have the boxed type exactly.
type Encoder func(value any) (raw uint64, ok bool)

// Compose builds the decode and encode steps of a plan: native read width to boxed
// value and back, with the widening and narrowing the widths call for.
func Compose(p *Plan) (Decoder, Encoder, error) {
	bits := p.Op.Bits

	switch {
	case p.Category == CategoryNumeric && p.Op.Float:
		box, unbox := floatBoxing(p.Boxed)
		decode := func(raw uint64) any { return box(primitive.FloatFromBits(raw, bits)) }
		encode := func(v any) (uint64, bool) {
			f, ok := unbox(v)
			return primitive.FloatToBits(f, bits), ok
		}

		return decode, encode, nil

	case p.Category == CategoryNumeric || p.Category == CategoryPointer:
		var (
			box   func(uint64) any
			unbox func(any) (uint64, bool)
		)

		if p.Category == CategoryPointer {
			box, unbox = pointerBoxing(p.Boxed)
		} else {
			box, unbox = integerBoxing(p.Boxed)
		}

		signed := p.Signed
		decode := func(raw uint64) any { return box(primitive.Widen(raw, bits, signed)) }
		encode := func(v any) (uint64, bool) {
			raw, ok := unbox(v)
			return primitive.Narrow(raw, bits), ok
		}

		return decode, encode, nil

	default:
		return nil, nil, fmt.Errorf("cannot compose %s storage for %s", p.Category, typeName(p.Boxed))
	}
}
