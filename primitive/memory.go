package primitive

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// Memory reads and writes native scalars relative to a base address.
//
// Implementations own nothing: the caller guarantees that the addressed
// region outlives every access made through it.
type Memory interface {
	ReadInt8(offset int64) int8
	ReadInt16(offset int64) int16
	ReadInt32(offset int64) int32
	ReadInt64(offset int64) int64
	ReadFloat32(offset int64) float32
	ReadFloat64(offset int64) float64
	ReadAddress(offset int64) uintptr

	WriteInt8(offset int64, value int8)
	WriteInt16(offset int64, value int16)
	WriteInt32(offset int64, value int32)
	WriteInt64(offset int64, value int64)
	WriteFloat32(offset int64, value float32)
	WriteFloat64(offset int64, value float64)
	WriteAddress(offset int64, value uintptr)
}

// MemoryFactory wraps a base address into a Memory without touching it.
type MemoryFactory func(address uintptr) Memory

// Direct is raw process memory starting at a fixed address.
type Direct uintptr

var _ Memory = Direct(0)

// NewDirect is the MemoryFactory for real process addresses.
func NewDirect(address uintptr) Memory {
	return Direct(address)
}

func (d Direct) at(offset int64) unsafe.Pointer {
	return unsafe.Pointer(uintptr(d) + uintptr(offset)) //nolint:govet // address is owned by the caller
}

func (d Direct) ReadInt8(offset int64) int8       { return *(*int8)(d.at(offset)) }
func (d Direct) ReadInt16(offset int64) int16     { return *(*int16)(d.at(offset)) }
func (d Direct) ReadInt32(offset int64) int32     { return *(*int32)(d.at(offset)) }
func (d Direct) ReadInt64(offset int64) int64     { return *(*int64)(d.at(offset)) }
func (d Direct) ReadFloat32(offset int64) float32 { return *(*float32)(d.at(offset)) }
func (d Direct) ReadFloat64(offset int64) float64 { return *(*float64)(d.at(offset)) }
func (d Direct) ReadAddress(offset int64) uintptr { return *(*uintptr)(d.at(offset)) }

func (d Direct) WriteInt8(offset int64, value int8)       { *(*int8)(d.at(offset)) = value }
func (d Direct) WriteInt16(offset int64, value int16)     { *(*int16)(d.at(offset)) = value }
func (d Direct) WriteInt32(offset int64, value int32)     { *(*int32)(d.at(offset)) = value }
func (d Direct) WriteInt64(offset int64, value int64)     { *(*int64)(d.at(offset)) = value }
func (d Direct) WriteFloat32(offset int64, value float32) { *(*float32)(d.at(offset)) = value }
func (d Direct) WriteFloat64(offset int64, value float64) { *(*float64)(d.at(offset)) = value }
func (d Direct) WriteAddress(offset int64, value uintptr) { *(*uintptr)(d.at(offset)) = value }

// Buffer is a heap allocated block that can be addressed like native memory.
// Accesses go through the slice, so they are bounds checked, and use the
// native byte order so that Direct and Buffer views of the same bytes agree.
type Buffer struct {
	data []byte
	base uintptr
}

// NewBuffer allocates a zeroed block of size bytes, 16-byte aligned.
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		panic(fmt.Sprintf("buffer size must be positive, got %d", size))
	}

	const align = 16

	raw := make([]byte, size+align)
	start := uintptr(unsafe.Pointer(&raw[0]))
	pad := int((align - start%align) % align)

	return &Buffer{
		data: raw[pad : pad+size : pad+size],
		base: start + uintptr(pad),
	}
}

// Address returns the native address of the first byte.
func (b *Buffer) Address() uintptr { return b.base }

// Size returns the block size in bytes.
func (b *Buffer) Size() int { return len(b.data) }

// Bytes exposes the underlying storage.
func (b *Buffer) Bytes() []byte { return b.data }

// Contains reports whether [address, address+size) lies inside the block.
func (b *Buffer) Contains(address uintptr, size int) bool {
	if address < b.base || size < 0 {
		return false
	}

	return address-b.base+uintptr(size) <= uintptr(len(b.data))
}

// At is a MemoryFactory over the block. It panics on addresses outside of it.
func (b *Buffer) At(address uintptr) Memory {
	if !b.Contains(address, 0) {
		panic(fmt.Sprintf("address %#x outside of buffer [%#x, %#x)", address, b.base, b.base+uintptr(len(b.data))))
	}

	return bufferView{buf: b, off: int64(address - b.base)}
}

type bufferView struct {
	buf *Buffer
	off int64
}

var _ Memory = bufferView{}

// slice panics like At when [start, start+n) leaves the block, naming both ranges.
func (v bufferView) slice(offset int64, n int) []byte {
	start := v.off + offset
	if start < 0 || start+int64(n) > int64(len(v.buf.data)) {
		addr := v.buf.base + uintptr(start)
		panic(fmt.Sprintf("access [%#x, %#x) outside of buffer [%#x, %#x)",
			addr, addr+uintptr(n), v.buf.base, v.buf.base+uintptr(len(v.buf.data))))
	}

	return v.buf.data[start : start+int64(n)]
}

func (v bufferView) ReadInt8(offset int64) int8 { return int8(v.slice(offset, 1)[0]) }
func (v bufferView) ReadInt16(offset int64) int16 {
	return int16(binary.NativeEndian.Uint16(v.slice(offset, 2)))
}
func (v bufferView) ReadInt32(offset int64) int32 {
	return int32(binary.NativeEndian.Uint32(v.slice(offset, 4)))
}
func (v bufferView) ReadInt64(offset int64) int64 {
	return int64(binary.NativeEndian.Uint64(v.slice(offset, 8)))
}
func (v bufferView) ReadFloat32(offset int64) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(v.slice(offset, 4)))
}
func (v bufferView) ReadFloat64(offset int64) float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(v.slice(offset, 8)))
}
func (v bufferView) ReadAddress(offset int64) uintptr {
	if AddressBits == 32 {
		return uintptr(binary.NativeEndian.Uint32(v.slice(offset, 4)))
	}

	return uintptr(binary.NativeEndian.Uint64(v.slice(offset, 8)))
}

func (v bufferView) WriteInt8(offset int64, value int8) { v.slice(offset, 1)[0] = byte(value) }
func (v bufferView) WriteInt16(offset int64, value int16) {
	binary.NativeEndian.PutUint16(v.slice(offset, 2), uint16(value))
}
func (v bufferView) WriteInt32(offset int64, value int32) {
	binary.NativeEndian.PutUint32(v.slice(offset, 4), uint32(value))
}
func (v bufferView) WriteInt64(offset int64, value int64) {
	binary.NativeEndian.PutUint64(v.slice(offset, 8), uint64(value))
}
func (v bufferView) WriteFloat32(offset int64, value float32) {
	binary.NativeEndian.PutUint32(v.slice(offset, 4), math.Float32bits(value))
}
func (v bufferView) WriteFloat64(offset int64, value float64) {
	binary.NativeEndian.PutUint64(v.slice(offset, 8), math.Float64bits(value))
}
func (v bufferView) WriteAddress(offset int64, value uintptr) {
	if AddressBits == 32 {
		binary.NativeEndian.PutUint32(v.slice(offset, 4), uint32(value))
		return
	}

	binary.NativeEndian.PutUint64(v.slice(offset, 8), uint64(value))
}
