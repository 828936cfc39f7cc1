package accessor

import (
	"errors"
	"fmt"
	"reflect"

	"accessor-generator/converter"
	"accessor-generator/primitive"
)

// Backend turns a plan into a ready accessor unit.
// A returned error or a panic is reported as a ConstructionError.
type Backend interface {
	Instantiate(plan *Plan) (Variable, error)
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(plan *Plan) (Variable, error)

func (f BackendFunc) Instantiate(plan *Plan) (Variable, error) { return f(plan) }

// ClosureBackend builds accessors out of closures composed once per plan,
// so Get and Set never look at the plan again.
type ClosureBackend struct{}

var (
	_ Backend  = ClosureBackend{}
	_ Preparer = (*unit)(nil)
)

func (ClosureBackend) Instantiate(plan *Plan) (Variable, error) {
	if plan.Memory == nil {
		return nil, errors.New("plan has no memory bound")
	}

	decode, encode, err := Compose(plan)
	if err != nil {
		return nil, err
	}

	u := &unit{
		name:    plan.Name,
		mem:     plan.Memory,
		read:    plan.Op.Read,
		write:   plan.Op.Write,
		decode:  decode,
		encode:  encode,
		boxed:   plan.Boxed,
		logical: plan.Logical,
	}

	u.to, u.hasTo = plan.Converters.To.Get()
	u.from, u.hasFrom = plan.Converters.From.Get()

	return u, nil
}

type unit struct {
	name string
	mem  primitive.Memory

	read  func(mem primitive.Memory, offset int64) uint64
	write func(mem primitive.Memory, offset int64, raw uint64)

	decode Decoder
	encode Encoder

	boxed, logical reflect.Type

	to      converter.ToNative
	hasTo   bool
	from    converter.FromNative
	hasFrom bool
}

func (u *unit) Get() (any, error) {
	value := u.decode(u.read(u.mem, 0))
	if !u.hasFrom {
		return value, nil
	}

	out, err := u.from.FromNative(value, nil)
	if err != nil {
		return nil, u.converterError("from-native", u.boxed, value, err)
	}

	if rt := reflect.TypeOf(out); (rt == nil && !canBeNil(u.logical)) || (rt != nil && !rt.AssignableTo(u.logical)) {
		return nil, &ClassCastError{Accessor: u.name, Stage: "from-native result", Expected: u.logical, Actual: rt}
	}

	return out, nil
}

func (u *unit) Set(value any) error {
	raw, err := u.encodeValue(value)
	if err != nil {
		return err
	}

	u.write(u.mem, 0, raw)

	return nil
}

// Prepare runs every step of Set but the write, which is left to commit.
func (u *unit) Prepare(value any) (func(), error) {
	raw, err := u.encodeValue(value)
	if err != nil {
		return nil, err
	}

	return func() { u.write(u.mem, 0, raw) }, nil
}

func (u *unit) encodeValue(value any) (uint64, error) {
	native := value
	if u.hasTo {
		out, err := u.to.ToNative(value, nil)
		if err != nil {
			return 0, u.converterError("to-native", u.logical, value, err)
		}

		native = out
	}

	raw, ok := u.encode(native)
	if !ok {
		stage := "set"
		if u.hasTo {
			stage = "to-native result"
		}

		return 0, &ClassCastError{Accessor: u.name, Stage: stage, Expected: u.boxed, Actual: reflect.TypeOf(native)}
	}

	return raw, nil
}

// canBeNil reports whether a nil result is a valid value of t.
func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func (u *unit) converterError(stage string, expected reflect.Type, value any, err error) error {
	if errors.Is(err, converter.ErrArgumentType) {
		return &ClassCastError{Accessor: u.name, Stage: stage + " argument", Expected: expected, Actual: reflect.TypeOf(value), Err: err}
	}

	return fmt.Errorf("%s: %s: %w", u.name, stage, err)
}
