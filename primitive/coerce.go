package primitive

import (
	"math"
)

// CoercionEnum classifies the width change between a boxed value and its native storage.
type CoercionEnum int

const (
	CoercionIdentity CoercionEnum = iota // same width, bits move unchanged
	CoercionWiden                        // native storage is narrower than the boxed value
	CoercionNarrow                       // native storage is wider than the boxed value
)

func (c CoercionEnum) String() string {
	switch c {
	case CoercionIdentity:
		return "identity"
	case CoercionWiden:
		return "widen"
	case CoercionNarrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Classify reports how a value read from nativeBits storage is adapted to a boxedBits value.
// Writes run the same coercion in reverse, so CoercionWiden on read means a set truncates.
func Classify(boxedBits, nativeBits int) CoercionEnum {
	switch {
	case boxedBits > nativeBits:
		return CoercionWiden
	case boxedBits < nativeBits:
		return CoercionNarrow
	default:
		return CoercionIdentity
	}
}

// Mask returns the low bits mask for a width, all ones for 64 and above.
func Mask(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}

	return 1<<uint(bits) - 1
}

// SignExtend extends the two's complement value held in the low bits of raw to 64 bits.
func SignExtend(raw uint64, bits int) uint64 {
	if bits >= 64 {
		return raw
	}

	shift := uint(64 - bits)

	return uint64(int64(raw<<shift) >> shift)
}

// ZeroExtend clears everything above the low bits of raw.
func ZeroExtend(raw uint64, bits int) uint64 {
	return raw & Mask(bits)
}

// Widen expands a raw storage pattern of the given width to 64 bits,
// sign-extending for signed storage and zero-extending otherwise.
func Widen(raw uint64, bits int, signed bool) uint64 {
	if signed {
		return SignExtend(raw, bits)
	}

	return ZeroExtend(raw, bits)
}

// Narrow truncates a 64-bit pattern to its low bits.
func Narrow(raw uint64, bits int) uint64 {
	return raw & Mask(bits)
}

// FloatFromBits decodes an IEEE-754 pattern of width 32 or 64.
func FloatFromBits(raw uint64, bits int) float64 {
	if bits == 32 {
		return float64(math.Float32frombits(uint32(raw)))
	}

	return math.Float64frombits(raw)
}

// FloatToBits encodes f as an IEEE-754 pattern of width 32 or 64.
// Values outside float32 range become infinities, as a float32 conversion does.
func FloatToBits(f float64, bits int) uint64 {
	if bits == 32 {
		return uint64(math.Float32bits(float32(f)))
	}

	return math.Float64bits(f)
}

// IntRange returns the inclusive bounds of a signed integer of the given width.
func IntRange(bits int) (int64, int64) {
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}

	max := int64(1)<<uint(bits-1) - 1

	return -max - 1, max
}

// UintRange returns the inclusive bounds of an unsigned integer of the given width.
func UintRange(bits int) (uint64, uint64) {
	return 0, Mask(bits)
}
