package accessor

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnsupportedType = errors.New("global variable type not supported")
	ErrClassCast       = errors.New("class cast")
	ErrConstruction    = errors.New("accessor construction failed")
)

// UnsupportedTypeError rejects a generation request. It is fatal to that request only.
type UnsupportedTypeError struct {
	// Type is the logical type of the request.
	Type reflect.Type
	// Boxed is the type stored natively, when it differs from Type.
	Boxed  reflect.Type
	Reason string
	Err    error
}

func (e *UnsupportedTypeError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrUnsupportedType, typeName(e.Type))
	if e.Boxed != nil && e.Boxed != e.Type {
		msg += " (stored as " + typeName(e.Boxed) + ")"
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }
func (e *UnsupportedTypeError) Unwrap() error        { return e.Err }

// ClassCastError reports a value of the wrong type at Get or Set time.
// The accessor stays usable for correctly typed calls.
type ClassCastError struct {
	Accessor string
	// Stage names the check that failed, e.g. "set" or "from-native result".
	Stage    string
	Expected reflect.Type
	Actual   reflect.Type
	Err      error
}

func (e *ClassCastError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s: cannot use %s as %s",
		e.Accessor, e.Stage, ErrClassCast, typeName(e.Actual), typeName(e.Expected))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ClassCastError) Is(target error) bool { return target == ErrClassCast }
func (e *ClassCastError) Unwrap() error        { return e.Err }

// ConstructionError wraps a failure of the backend instantiating an accessor.
type ConstructionError struct {
	Name string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Name, ErrConstruction, e.Err)
}

func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }
func (e *ConstructionError) Unwrap() error        { return e.Err }

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}

	return t.String()
}
