package converter

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"accessor-generator/utils"
)

var (
	ErrIsNotAConverter         = errors.New("provided function is not a recognizable converter")
	ErrConverterIsNotAFunction = errors.New("provided converter is not a function")
)

// Func is a converter backed by a plain Go function.
type Func struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseFunc inspects the provided function and returns a Func if it is a valid converter function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
//
// A false bool result rejects the value with ErrRejected.
func ParseFunc(fn any) (*Func, error) {
	if fn == nil {
		return nil, ErrConverterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, ErrConverterIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return nil, ErrIsNotAConverter
	}

	f := &Func{
		Src: fnType.In(0),
		Dst: fnType.Out(0),
		fn:  fnVal,
	}

	if fnPC := runtime.FuncForPC(fnVal.Pointer()); fnPC != nil {
		_, file := path.Split(fnPC.Name())
		f.PackageAlias, f.Name = utils.Unpack2(strings.SplitN(file, ".", 2))
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrIsNotAConverter

	case 1:
		return f, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return nil, ErrIsNotAConverter
		case last.Kind() == reflect.Bool:
			f.HasBool = true
		case isError(last):
			f.HasErr = true
		}
		return f, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return nil, ErrIsNotAConverter
		}

		f.HasBool = true
		f.HasErr = true
		return f, nil
	}
}

// MustFunc is ParseFunc for package level declarations.
func MustFunc(fn any) *Func {
	f, err := ParseFunc(fn)
	if err != nil {
		panic(err)
	}

	return f
}

// String returns the qualified function name.
func (f *Func) String() string {
	if f.PackageAlias == "" {
		return f.Name
	}

	return f.PackageAlias + "." + f.Name
}

// Call converts value, which must have type Src exactly.
func (f *Func) Call(value any) (any, error) {
	in, err := f.argument(value)
	if err != nil {
		return nil, err
	}

	out := f.fn.Call([]reflect.Value{in})

	if f.HasErr {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return nil, fmt.Errorf("%s: %w", f, errVal.Interface().(error))
		}
	}

	if f.HasBool && !out[1].Bool() {
		return nil, fmt.Errorf("%s: %w: %v", f, ErrRejected, value)
	}

	return out[0].Interface(), nil
}

func (f *Func) argument(value any) (reflect.Value, error) {
	if value == nil {
		switch f.Src.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(f.Src), nil
		}

		return reflect.Value{}, fmt.Errorf("%w: %s wants %s, got nil", ErrArgumentType, f, f.Src)
	}

	v := reflect.ValueOf(value)
	if v.Type() != f.Src && (f.Src.Kind() != reflect.Interface || !v.Type().Implements(f.Src)) {
		return reflect.Value{}, fmt.Errorf("%w: %s wants %s, got %s", ErrArgumentType, f, f.Src, v.Type())
	}

	return v, nil
}

// AsToNative uses f as a to-native converter: Src is logical, Dst is native.
func (f *Func) AsToNative() ToNative { return toNativeFunc{f} }

// AsFromNative uses f as a from-native converter: Src is native, Dst is logical.
func (f *Func) AsFromNative() FromNative { return fromNativeFunc{f} }

type toNativeFunc struct{ *Func }

func (t toNativeFunc) ToNative(value any, _ ToNativeContext) (any, error) { return t.Call(value) }
func (t toNativeFunc) NativeType() reflect.Type                             { return t.Dst }
func (t toNativeFunc) LogicalType() reflect.Type                            { return t.Src }

type fromNativeFunc struct{ *Func }

func (f fromNativeFunc) FromNative(value any, _ FromNativeContext) (any, error) { return f.Call(value) }
func (f fromNativeFunc) NativeType() reflect.Type                               { return f.Src }
func (f fromNativeFunc) LogicalType() reflect.Type                              { return f.Dst }

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
