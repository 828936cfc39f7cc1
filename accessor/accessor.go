package accessor

import (
	"fmt"
	"reflect"

	"accessor-generator/primitive"
)

// Variable reads and writes one native variable as a boxed value.
type Variable interface {
	Get() (any, error)
	Set(value any) error
}

// Preparer is implemented by units that can run every check of Set up front.
// commit performs the native write and cannot fail.
type Preparer interface {
	Prepare(value any) (commit func(), err error)
}

// Accessor is a generated accessor bound to one native address.
// Get and Set are safe to call from several goroutines as long as the
// native variable itself is, the accessor adds no synchronization.
type Accessor struct {
	plan *Plan
	unit Variable
}

var _ Variable = (*Accessor)(nil)

func (a *Accessor) Get() (any, error)   { return a.unit.Get() }
func (a *Accessor) Set(value any) error { return a.unit.Set(value) }

// Prepare converts and checks value the way Set does without touching memory.
// The returned commit writes it. Units that cannot prepare defer all of Set to commit.
func (a *Accessor) Prepare(value any) (commit func() error, err error) {
	p, ok := a.unit.(Preparer)
	if !ok {
		return func() error { return a.unit.Set(value) }, nil
	}

	write, err := p.Prepare(value)
	if err != nil {
		return nil, err
	}

	return func() error { write(); return nil }, nil
}

// Name is unique within the process, e.g. "main$VariableAccessor$$3".
func (a *Accessor) Name() string              { return a.plan.Name }
func (a *Accessor) Address() uintptr          { return a.plan.Address }
func (a *Accessor) Kind() primitive.KindEnum  { return a.plan.Kind }
func (a *Accessor) Op() *primitive.ScalarOp   { return a.plan.Op }
func (a *Accessor) LogicalType() reflect.Type { return a.plan.Logical }
func (a *Accessor) BoxedType() reflect.Type   { return a.plan.Boxed }

// Coercion reports the width change between the boxed value and native storage.
func (a *Accessor) Coercion() primitive.CoercionEnum {
	return a.plan.Coercion()
}

func (a *Accessor) String() string {
	return fmt.Sprintf("%s(%s @ %#x)", a.plan.Name, a.plan.Kind, a.plan.Address)
}
