package primitive_test

import (
	"accessor-generator/primitive"
	"fmt"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func Example() {
	type Errno int32
	type Handle uintptr

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int8(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uint16(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Errno(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(float32(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Handle(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(unsafe.Pointer(nil))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(primitive.Pointer(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	// Output:
	// KindInt8
	// KindUint16
	// KindInt32
	// KindFloat32
	// KindAddress
	// KindAddress
	// KindAddress
	// KindEnum(0)
}

func TestKindPredicates(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		assert.True(t, k.IsValid(), k.String())
		assert.True(t, k.IsNumber() || k.IsAddress(), k.String())
		assert.False(t, k.IsSigned() && k.IsUnsigned(), k.String())
		assert.False(t, k.IsInteger() && k.IsFloat(), k.String())

		if k.IsInteger() {
			assert.True(t, k.Signed().IsSigned(), k.String())
			assert.True(t, k.Unsigned().IsUnsigned(), k.String())
			assert.Equal(t, k.Bits(), k.Signed().Bits(), k.String())
			assert.Equal(t, k.Bits(), k.Unsigned().Bits(), k.String())
		}
	}

	assert.False(t, primitive.KindEnum(0).IsValid())
	assert.False(t, primitive.KindEnum(primitive.KindTotal).IsValid())
}

func TestIntegerKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits   int
		signed bool
		want   primitive.KindEnum
	}{
		{8, true, primitive.KindInt8},
		{8, false, primitive.KindUint8},
		{16, true, primitive.KindInt16},
		{16, false, primitive.KindUint16},
		{32, true, primitive.KindInt32},
		{32, false, primitive.KindUint32},
		{64, true, primitive.KindInt64},
		{64, false, primitive.KindUint64},
		{24, true, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, primitive.IntegerKind(tt.bits, tt.signed), "%d/%v", tt.bits, tt.signed)
	}
}

func TestPlatformBits(t *testing.T) {
	t.Parallel()

	lp64 := primitive.Platform{LongBits: 64}
	llp64 := primitive.Platform{LongBits: 32}

	assert.Equal(t, 64, lp64.Bits(primitive.KindLong))
	assert.Equal(t, 32, llp64.Bits(primitive.KindUlong))
	assert.Equal(t, 8, llp64.Bits(primitive.KindUint8))
	assert.Equal(t, 32, lp64.Bits(primitive.KindFloat32))
	assert.Equal(t, 64, lp64.Bits(primitive.KindFloat64))
	assert.Equal(t, int(unsafe.Sizeof(uintptr(0)))*8, lp64.Bits(primitive.KindAddress))
	assert.Zero(t, lp64.Bits(0))
}
