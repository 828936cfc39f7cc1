package accessor

import (
	"reflect"
	"unsafe"

	"accessor-generator/primitive"
)

var (
	typeInt     = reflect.TypeFor[int]()
	typeInt8    = reflect.TypeFor[int8]()
	typeInt16   = reflect.TypeFor[int16]()
	typeInt32   = reflect.TypeFor[int32]()
	typeInt64   = reflect.TypeFor[int64]()
	typeUint    = reflect.TypeFor[uint]()
	typeUint8   = reflect.TypeFor[uint8]()
	typeUint16  = reflect.TypeFor[uint16]()
	typeUint32  = reflect.TypeFor[uint32]()
	typeUint64  = reflect.TypeFor[uint64]()
	typeFloat32 = reflect.TypeFor[float32]()
	typeFloat64 = reflect.TypeFor[float64]()
	typeUintptr = reflect.TypeFor[uintptr]()
	typePointer = reflect.TypeFor[primitive.Pointer]()
	typeUnsafe  = reflect.TypeFor[unsafe.Pointer]()
)

// integerBoxing returns the conversions between a 64-bit pattern and values of t.
// Predeclared types avoid reflection; defined types go through it.
func integerBoxing(t reflect.Type) (func(uint64) any, func(any) (uint64, bool)) {
	switch t {
	case typeInt:
		return func(x uint64) any { return int(x) }, func(v any) (uint64, bool) { i, ok := v.(int); return uint64(i), ok }
	case typeInt8:
		return func(x uint64) any { return int8(x) }, func(v any) (uint64, bool) { i, ok := v.(int8); return uint64(i), ok }
	case typeInt16:
		return func(x uint64) any { return int16(x) }, func(v any) (uint64, bool) { i, ok := v.(int16); return uint64(i), ok }
	case typeInt32:
		return func(x uint64) any { return int32(x) }, func(v any) (uint64, bool) { i, ok := v.(int32); return uint64(i), ok }
	case typeInt64:
		return func(x uint64) any { return int64(x) }, func(v any) (uint64, bool) { i, ok := v.(int64); return uint64(i), ok }
	case typeUint:
		return func(x uint64) any { return uint(x) }, func(v any) (uint64, bool) { i, ok := v.(uint); return uint64(i), ok }
	case typeUint8:
		return func(x uint64) any { return uint8(x) }, func(v any) (uint64, bool) { i, ok := v.(uint8); return uint64(i), ok }
	case typeUint16:
		return func(x uint64) any { return uint16(x) }, func(v any) (uint64, bool) { i, ok := v.(uint16); return uint64(i), ok }
	case typeUint32:
		return func(x uint64) any { return uint32(x) }, func(v any) (uint64, bool) { i, ok := v.(uint32); return uint64(i), ok }
	case typeUint64:
		return func(x uint64) any { return x }, func(v any) (uint64, bool) { i, ok := v.(uint64); return i, ok }
	}

	signed := t.Kind() >= reflect.Int && t.Kind() <= reflect.Int64

	box := func(x uint64) any {
		rv := reflect.New(t).Elem()
		if signed {
			rv.SetInt(int64(x))
		} else {
			rv.SetUint(x)
		}

		return rv.Interface()
	}

	unbox := func(v any) (uint64, bool) {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || rv.Type() != t {
			return 0, false
		}

		if signed {
			return uint64(rv.Int()), true
		}

		return rv.Uint(), true
	}

	return box, unbox
}

func floatBoxing(t reflect.Type) (func(float64) any, func(any) (float64, bool)) {
	switch t {
	case typeFloat32:
		return func(f float64) any { return float32(f) },
			func(v any) (float64, bool) { f, ok := v.(float32); return float64(f), ok }
	case typeFloat64:
		return func(f float64) any { return f },
			func(v any) (float64, bool) { f, ok := v.(float64); return f, ok }
	}

	box := func(f float64) any {
		rv := reflect.New(t).Elem()
		rv.SetFloat(f)

		return rv.Interface()
	}

	unbox := func(v any) (float64, bool) {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || rv.Type() != t {
			return 0, false
		}

		return rv.Float(), true
	}

	return box, unbox
}

func pointerBoxing(t reflect.Type) (func(uint64) any, func(any) (uint64, bool)) {
	switch t {
	case typeUintptr:
		return func(x uint64) any { return uintptr(x) },
			func(v any) (uint64, bool) { p, ok := v.(uintptr); return uint64(p), ok }
	case typePointer:
		return func(x uint64) any { return primitive.Pointer(x) },
			func(v any) (uint64, bool) { p, ok := v.(primitive.Pointer); return uint64(p), ok }
	case typeUnsafe:
		return func(x uint64) any { return unsafe.Pointer(uintptr(x)) }, //nolint:govet
			func(v any) (uint64, bool) { p, ok := v.(unsafe.Pointer); return uint64(uintptr(p)), ok }
	}

	isUnsafe := t.Kind() == reflect.UnsafePointer

	box := func(x uint64) any {
		rv := reflect.New(t).Elem()
		if isUnsafe {
			rv.SetPointer(unsafe.Pointer(uintptr(x))) //nolint:govet
		} else {
			rv.SetUint(x)
		}

		return rv.Interface()
	}

	unbox := func(v any) (uint64, bool) {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || rv.Type() != t {
			return 0, false
		}

		if isUnsafe {
			return uint64(rv.Pointer()), true
		}

		return rv.Uint(), true
	}

	return box, unbox
}
