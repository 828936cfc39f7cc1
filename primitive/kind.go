package primitive

import (
	"math/bits"
	"reflect"
	"runtime"
	"unsafe"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is a native scalar kind: the machine-level shape of a value stored in native memory.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindLong  // C long, platform dependent width
	KindUlong // C unsigned long, platform dependent width
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindAddress // pointer sized unsigned integer

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindLong, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUlong, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindLong, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint8, KindUint16, KindUint32, KindUlong, KindUint64, KindAddress:
		return true
	}
}

func (k KindEnum) IsAddress() bool {
	return k == KindAddress
}

// Bits returns the in-memory width of the kind on the native platform.
func (k KindEnum) Bits() int {
	return Native.Bits(k)
}

// Signed returns the signed variant of an integer kind. Other kinds are returned unchanged.
func (k KindEnum) Signed() KindEnum {
	switch k {
	default:
		return k
	case KindUint8:
		return KindInt8
	case KindUint16:
		return KindInt16
	case KindUint32:
		return KindInt32
	case KindUlong:
		return KindLong
	case KindUint64:
		return KindInt64
	}
}

// Unsigned returns the unsigned variant of an integer kind. Other kinds are returned unchanged.
func (k KindEnum) Unsigned() KindEnum {
	switch k {
	default:
		return k
	case KindInt8:
		return KindUint8
	case KindInt16:
		return KindUint16
	case KindInt32:
		return KindUint32
	case KindLong:
		return KindUlong
	case KindInt64:
		return KindUint64
	}
}

// IntegerKind returns the fixed width integer kind for the given bit count and signedness.
func IntegerKind(bits int, signed bool) KindEnum {
	var k KindEnum
	switch bits {
	default:
		return 0
	case 8:
		k = KindInt8
	case 16:
		k = KindInt16
	case 32:
		k = KindInt32
	case 64:
		k = KindInt64
	}

	if !signed {
		k = k.Unsigned()
	}

	return k
}

// Platform describes the widths that vary between native ABIs.
type Platform struct {
	// LongBits is the width of C long: 32 on LLP64 (windows), word size elsewhere.
	LongBits int
}

// Native is the platform this process runs on.
var Native = Platform{LongBits: nativeLongBits(runtime.GOOS)}

// AddressBits is the width of a native pointer.
const AddressBits = int(unsafe.Sizeof(uintptr(0))) * 8

func nativeLongBits(goos string) int {
	if goos == "windows" {
		return 32
	}

	return bits.UintSize
}

// Bits returns the in-memory width of kind k on platform p, or 0 for an invalid kind.
func (p Platform) Bits(k KindEnum) int {
	switch k {
	default:
		return 0
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	case KindLong, KindUlong:
		return p.LongBits
	case KindAddress:
		return AddressBits
	}
}

// FromReflectType returns the native kind a Go value of type rtype naturally occupies.
// Types without a native scalar representation map to the zero KindEnum.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int8:
		return KindInt8
	case reflect.Uint8:
		return KindUint8
	case reflect.Int16:
		return KindInt16
	case reflect.Uint16:
		return KindUint16
	case reflect.Int32:
		return KindInt32
	case reflect.Uint32:
		return KindUint32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint64:
		return KindUint64
	case reflect.Int:
		return IntegerKind(bits.UintSize, true)
	case reflect.Uint:
		return IntegerKind(bits.UintSize, false)
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Uintptr, reflect.UnsafePointer:
		return KindAddress
	}
}
