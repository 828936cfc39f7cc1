package accessor

import (
	"fmt"
	"reflect"

	"accessor-generator/options"
	"accessor-generator/primitive"
)

// CategoryEnum separates boxed types the synthesizer can store from those it cannot.
type CategoryEnum int

const (
	CategoryUnsupported CategoryEnum = iota
	CategoryNumeric                  // signed or unsigned integers, floats
	CategoryPointer                  // uintptr, unsafe.Pointer and types defined over them
)

func (c CategoryEnum) String() string {
	switch c {
	case CategoryNumeric:
		return "numeric"
	case CategoryPointer:
		return "pointer"
	default:
		return "unsupported"
	}
}

// Categorize places a boxed type in its category. Go pointers are unsupported:
// the collector cannot see references kept in native memory.
func Categorize(t reflect.Type) CategoryEnum {
	if t == nil {
		return CategoryUnsupported
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return CategoryNumeric
	case reflect.Uintptr, reflect.UnsafePointer:
		return CategoryPointer
	default:
		return CategoryUnsupported
	}
}

// Classifier resolves the native kind for a boxed type and its declared attributes.
type Classifier interface {
	Classify(boxed reflect.Type, attrs options.AttributeEnum) (primitive.KindEnum, error)
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(boxed reflect.Type, attrs options.AttributeEnum) (primitive.KindEnum, error)

func (f ClassifierFunc) Classify(boxed reflect.Type, attrs options.AttributeEnum) (primitive.KindEnum, error) {
	return f(boxed, attrs)
}

// DefaultClassifier maps a boxed type to the kind it naturally occupies, refined by attributes:
// width attributes pick the native width of an integer and signedness attributes its sign.
// Attributes never apply to floats or pointers.
type DefaultClassifier struct{}

var _ Classifier = DefaultClassifier{}

func (DefaultClassifier) Classify(boxed reflect.Type, attrs options.AttributeEnum) (primitive.KindEnum, error) {
	natural := primitive.FromReflectType(boxed)
	if natural == 0 {
		return 0, fmt.Errorf("no native representation for %s", typeName(boxed))
	}

	width, ok := attrs.Width()
	if !ok {
		return 0, fmt.Errorf("conflicting width attributes %s", width)
	}

	if attrs.Has(options.AttributeSignedness) {
		return 0, fmt.Errorf("conflicting signedness attributes %s", attrs&options.AttributeSignedness)
	}

	if !natural.IsInteger() {
		if applied := attrs & (options.AttributeWidths | options.AttributeSignedness); applied != 0 {
			return 0, fmt.Errorf("attributes %s do not apply to %s", applied, typeName(boxed))
		}

		return natural, nil
	}

	signed := natural.IsSigned()
	switch {
	case attrs.Has(options.AttributeSigned):
		signed = true
	case attrs.Has(options.AttributeUnsigned):
		signed = false
	}

	var kind primitive.KindEnum
	switch width {
	default:
		kind = primitive.IntegerKind(natural.Bits(), signed)
	case options.AttributeInt8:
		kind = primitive.IntegerKind(8, signed)
	case options.AttributeInt16:
		kind = primitive.IntegerKind(16, signed)
	case options.AttributeInt32:
		kind = primitive.IntegerKind(32, signed)
	case options.AttributeInt64:
		kind = primitive.IntegerKind(64, signed)
	case options.AttributeLong:
		kind = primitive.KindLong
		if !signed {
			kind = primitive.KindUlong
		}
	}

	return kind, nil
}
