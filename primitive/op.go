package primitive

import (
	"math"
)

// ScalarOp reads and writes one native storage width.
//
// Raw values travel as the storage bit pattern held in the low bits of a
// uint64: integers are zero-extended, floats are their IEEE-754 bits.
// Signed and unsigned kinds of a width share one ScalarOp; sign handling
// belongs to Widen.
type ScalarOp struct {
	// Name is the memory accessor suffix, e.g. "Int32" for ReadInt32/WriteInt32.
	Name string
	// Storage is the signed (or float/address) kind representing the width.
	Storage KindEnum
	// Bits is the storage width.
	Bits  int
	Float bool

	Read  func(mem Memory, offset int64) uint64
	Write func(mem Memory, offset int64, raw uint64)
}

// Size returns the storage width in bytes.
func (op *ScalarOp) Size() int { return op.Bits / 8 }

var (
	opInt8 = &ScalarOp{
		Name: "Int8", Storage: KindInt8, Bits: 8,
		Read:  func(m Memory, off int64) uint64 { return uint64(uint8(m.ReadInt8(off))) },
		Write: func(m Memory, off int64, raw uint64) { m.WriteInt8(off, int8(raw)) },
	}
	opInt16 = &ScalarOp{
		Name: "Int16", Storage: KindInt16, Bits: 16,
		Read:  func(m Memory, off int64) uint64 { return uint64(uint16(m.ReadInt16(off))) },
		Write: func(m Memory, off int64, raw uint64) { m.WriteInt16(off, int16(raw)) },
	}
	opInt32 = &ScalarOp{
		Name: "Int32", Storage: KindInt32, Bits: 32,
		Read:  func(m Memory, off int64) uint64 { return uint64(uint32(m.ReadInt32(off))) },
		Write: func(m Memory, off int64, raw uint64) { m.WriteInt32(off, int32(raw)) },
	}
	opInt64 = &ScalarOp{
		Name: "Int64", Storage: KindInt64, Bits: 64,
		Read:  func(m Memory, off int64) uint64 { return uint64(m.ReadInt64(off)) },
		Write: func(m Memory, off int64, raw uint64) { m.WriteInt64(off, int64(raw)) },
	}
	opFloat32 = &ScalarOp{
		Name: "Float32", Storage: KindFloat32, Bits: 32, Float: true,
		Read:  func(m Memory, off int64) uint64 { return uint64(math.Float32bits(m.ReadFloat32(off))) },
		Write: func(m Memory, off int64, raw uint64) { m.WriteFloat32(off, math.Float32frombits(uint32(raw))) },
	}
	opFloat64 = &ScalarOp{
		Name: "Float64", Storage: KindFloat64, Bits: 64, Float: true,
		Read:  func(m Memory, off int64) uint64 { return math.Float64bits(m.ReadFloat64(off)) },
		Write: func(m Memory, off int64, raw uint64) { m.WriteFloat64(off, math.Float64frombits(raw)) },
	}
	opAddress = &ScalarOp{
		Name: "Address", Storage: KindAddress, Bits: AddressBits,
		Read:  func(m Memory, off int64) uint64 { return uint64(m.ReadAddress(off)) },
		Write: func(m Memory, off int64, raw uint64) { m.WriteAddress(off, uintptr(raw)) },
	}
)

// OpTable maps native kinds to their ScalarOp. It is immutable once built.
type OpTable struct {
	platform Platform
	ops      map[KindEnum]*ScalarOp
}

var defaultTable *OpTable

func init() {
	defaultTable = NewOpTable(Native)
}

// DefaultOpTable returns the process wide table for the native platform.
func DefaultOpTable() *OpTable { return defaultTable }

// LookupOp looks kind up in the process wide table.
func LookupOp(kind KindEnum) (*ScalarOp, bool) { return defaultTable.Lookup(kind) }

// NewOpTable builds the table for platform p. C long resolves to the
// fixed width op matching p.LongBits.
func NewOpTable(p Platform) *OpTable {
	t := &OpTable{platform: p, ops: map[KindEnum]*ScalarOp{}}

	t.op(opInt8, KindInt8, KindUint8)
	t.op(opInt16, KindInt16, KindUint16)
	t.op(opInt32, KindInt32, KindUint32)
	t.op(opInt64, KindInt64, KindUint64)
	t.op(opFloat32, KindFloat32)
	t.op(opFloat64, KindFloat64)
	t.op(opAddress, KindAddress)

	switch p.LongBits {
	case 32:
		t.op(opInt32, KindLong, KindUlong)
	case 64:
		t.op(opInt64, KindLong, KindUlong)
	}

	return t
}

func (t *OpTable) op(op *ScalarOp, kinds ...KindEnum) {
	for _, k := range kinds {
		t.ops[k] = op
	}
}

// Platform returns the platform the table was built for.
func (t *OpTable) Platform() Platform { return t.platform }

// Lookup returns the op for kind, or false when the kind is not supported.
func (t *OpTable) Lookup(kind KindEnum) (*ScalarOp, bool) {
	op, ok := t.ops[kind]
	return op, ok
}

// Kinds returns every supported kind in enum order.
func (t *OpTable) Kinds() []KindEnum {
	kinds := make([]KindEnum, 0, len(t.ops))
	for k := KindEnum(0); int(k) < KindTotal; k++ {
		if _, ok := t.ops[k]; ok {
			kinds = append(kinds, k)
		}
	}

	return kinds
}
