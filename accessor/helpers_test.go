package accessor_test

import (
	"sync/atomic"
	"testing"

	"accessor-generator/accessor"
	"accessor-generator/primitive"
)

// countingMemory records every access going through a memory view.
type countingMemory struct {
	primitive.Memory
	reads, writes *atomic.Int64
}

func (c countingMemory) ReadInt8(off int64) int8       { c.reads.Add(1); return c.Memory.ReadInt8(off) }
func (c countingMemory) ReadInt16(off int64) int16     { c.reads.Add(1); return c.Memory.ReadInt16(off) }
func (c countingMemory) ReadInt32(off int64) int32     { c.reads.Add(1); return c.Memory.ReadInt32(off) }
func (c countingMemory) ReadInt64(off int64) int64     { c.reads.Add(1); return c.Memory.ReadInt64(off) }
func (c countingMemory) ReadFloat32(off int64) float32 { c.reads.Add(1); return c.Memory.ReadFloat32(off) }
func (c countingMemory) ReadFloat64(off int64) float64 { c.reads.Add(1); return c.Memory.ReadFloat64(off) }
func (c countingMemory) ReadAddress(off int64) uintptr { c.reads.Add(1); return c.Memory.ReadAddress(off) }

func (c countingMemory) WriteInt8(off int64, v int8)       { c.writes.Add(1); c.Memory.WriteInt8(off, v) }
func (c countingMemory) WriteInt16(off int64, v int16)     { c.writes.Add(1); c.Memory.WriteInt16(off, v) }
func (c countingMemory) WriteInt32(off int64, v int32)     { c.writes.Add(1); c.Memory.WriteInt32(off, v) }
func (c countingMemory) WriteInt64(off int64, v int64)     { c.writes.Add(1); c.Memory.WriteInt64(off, v) }
func (c countingMemory) WriteFloat32(off int64, v float32) { c.writes.Add(1); c.Memory.WriteFloat32(off, v) }
func (c countingMemory) WriteFloat64(off int64, v float64) { c.writes.Add(1); c.Memory.WriteFloat64(off, v) }
func (c countingMemory) WriteAddress(off int64, v uintptr) { c.writes.Add(1); c.Memory.WriteAddress(off, v) }

// region is a scratch buffer whose accesses and bindings are counted.
type region struct {
	*primitive.Buffer
	reads, writes, binds atomic.Int64
}

func newRegion(size int) *region {
	return &region{Buffer: primitive.NewBuffer(size)}
}

func (r *region) memory(address uintptr) primitive.Memory {
	r.binds.Add(1)
	return countingMemory{Memory: r.At(address), reads: &r.reads, writes: &r.writes}
}

func (r *region) accesses() int64 { return r.reads.Load() + r.writes.Load() }

func newSynthesizer(t *testing.T, r *region) *accessor.Synthesizer {
	t.Helper()

	return accessor.NewSynthesizer(accessor.Config{Owner: "test", Memory: r.memory})
}
