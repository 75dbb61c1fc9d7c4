// Package uinteger provides unsigned-magnitude integers stored as
// little-endian arrays of 32-bit blocks, in two flavors sharing one
// contract:
//
//   - AP32, whose block storage grows on demand and is bounded only by
//     available memory
//   - FP32, whose block capacity is fixed when the value is created and
//     for which exceeding the capacity is a fatal error
//
// A value is described by numBits, the count of significant bits, with
// numBits == 0 meaning the value zero. Constructors from native integers
// normalize their input: trailing zero bits are shifted away, so the
// stored integer is always odd (or zero) and numBits is the exact
// distance from the lowest to the highest set bit, inclusive. The
// exact-number types built on this package keep the shifted-out count in
// their exponent, so no information is lost.
//
// Only the first ceil(numBits/32) blocks of a value are meaningful.
// SetNumBits does not preserve block contents; callers are expected to
// rewrite every live block afterward, which is what the arithmetic layer
// in this package does.
package uinteger

import (
	"sync/atomic"
)

// UInteger is the storage contract shared by AP32 and FP32. The
// arithmetic layer operates on this interface so that the same
// algorithms serve both storage kinds.
type UInteger interface {
	// NumBits returns the count of significant bits, 0 for the value zero.
	NumBits() int32

	// SetNumBits resizes the value to hold numBits significant bits.
	// It panics if numBits is negative or exceeds the storage capacity.
	// Block contents are not guaranteed to be preserved.
	SetNumBits(numBits int32)

	// Blocks returns the backing block storage, least significant block
	// first. Only the first Size() blocks are meaningful.
	Blocks() []uint32

	// Size returns the number of blocks in use, ceil(NumBits()/32).
	Size() int32

	// MaxSize returns the block capacity.
	MaxSize() int32

	// Back returns the last block in use, or 0 for the value zero.
	Back() uint32

	// SetBack overwrites the last block in use. It panics for the value
	// zero, which has no blocks.
	SetBack(value uint32)

	// SetAllBitsToZero zeroes the blocks in use without changing NumBits.
	SetAllBitsToZero()

	// SetUint64 replaces the value with the normalized representation of
	// value: the stored integer is value shifted right by its trailing
	// zero count, and NumBits is the span from the lowest to the highest
	// set bit.
	SetUint64(value uint64)

	// NewLike returns a fresh zero value of the same storage kind and
	// capacity as the receiver.
	NewLike() UInteger
}

// Copy replaces dst with the value of src. It panics if the blocks in
// use by src exceed the capacity of dst.
func Copy(dst, src UInteger) {
	if src.Size() > dst.MaxSize() {
		panic("uinteger.Copy: source does not fit in destination capacity")
	}
	dst.SetNumBits(src.NumBits())
	copy(dst.Blocks(), src.Blocks()[:src.Size()])
}

func blocksFor(numBits int32) int32 {
	return (numBits + 31) >> 5
}

// Stats is an optional diagnostic sink recording the high-water block
// count across all values that report to it. Updates are lock-free and
// safe for concurrent use. The sink is never consulted for correctness;
// it exists to size FP32 capacities from observed workloads.
type Stats struct {
	maxSize atomic.Int64
}

// MaxSize returns the largest block count recorded so far.
func (s *Stats) MaxSize() int32 {
	return int32(s.maxSize.Load())
}

func (s *Stats) update(size int32) {
	for {
		current := s.maxSize.Load()
		if int64(size) <= current {
			return
		}
		if s.maxSize.CompareAndSwap(current, int64(size)) {
			return
		}
	}
}

var statsSink atomic.Pointer[Stats]

// SetStatsSink installs s as the process-wide diagnostic sink, or
// removes the sink when s is nil. The default is no sink and no
// recording overhead beyond one atomic load per resize.
func SetStatsSink(s *Stats) {
	statsSink.Store(s)
}

func recordSize(size int32) {
	if s := statsSink.Load(); s != nil {
		s.update(size)
	}
}
