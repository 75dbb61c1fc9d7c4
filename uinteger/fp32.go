package uinteger

import (
	"fmt"
	"math/bits"
)

// FP32 is the fixed-capacity storage kind. The block capacity is chosen
// once, at construction, and never changes; an operation that would need
// more blocks than the capacity is a fatal precondition violation and
// panics. Callers are expected to size the capacity ahead of time with
// the bsprecision package so that overflow cannot occur for their class
// of computations.
type FP32 struct {
	numBits int32
	size    int32
	blocks  []uint32
}

// NewFP32 returns an FP32 with the value zero and a capacity of
// maxBlocks 32-bit blocks. maxBlocks must be positive.
func NewFP32(maxBlocks int32) *FP32 {
	if maxBlocks <= 0 {
		panic(fmt.Sprintf("NewFP32: nonpositive capacity %d", maxBlocks))
	}
	return &FP32{blocks: make([]uint32, maxBlocks)}
}

// NewFP32FromUint32 returns an FP32 with capacity maxBlocks and the
// normalized representation of value.
func NewFP32FromUint32(maxBlocks int32, value uint32) *FP32 {
	u := NewFP32(maxBlocks)
	u.SetUint64(uint64(value))
	return u
}

// NewFP32FromUint64 returns an FP32 with capacity maxBlocks and the
// normalized representation of value.
func NewFP32FromUint64(maxBlocks int32, value uint64) *FP32 {
	u := NewFP32(maxBlocks)
	u.SetUint64(value)
	return u
}

func (u *FP32) NumBits() int32 {
	return u.numBits
}

func (u *FP32) SetNumBits(numBits int32) {
	if numBits < 0 {
		panic(fmt.Sprintf("FP32.SetNumBits: negative bit count %d", numBits))
	}
	size := blocksFor(numBits)
	if int(size) > len(u.blocks) {
		panic(fmt.Sprintf(
			"FP32.SetNumBits: %d bits need %d blocks, capacity is %d",
			numBits, size, len(u.blocks),
		))
	}
	u.numBits = numBits
	u.size = size
	recordSize(size)
}

func (u *FP32) Blocks() []uint32 {
	return u.blocks
}

func (u *FP32) Size() int32 {
	return u.size
}

func (u *FP32) MaxSize() int32 {
	return int32(len(u.blocks))
}

func (u *FP32) Back() uint32 {
	if u.size == 0 {
		return 0
	}
	return u.blocks[u.size-1]
}

func (u *FP32) SetBack(value uint32) {
	if u.size == 0 {
		panic("FP32.SetBack: the value zero has no blocks")
	}
	u.blocks[u.size-1] = value
}

func (u *FP32) SetAllBitsToZero() {
	for i := int32(0); i < u.size; i++ {
		u.blocks[i] = 0
	}
}

func (u *FP32) SetUint64(value uint64) {
	if value == 0 {
		u.SetNumBits(0)
		return
	}
	value >>= uint(bits.TrailingZeros64(value))
	u.SetNumBits(int32(bits.Len64(value)))
	u.blocks[0] = uint32(value)
	if u.numBits > 32 {
		u.blocks[1] = uint32(value >> 32)
	}
}

func (u *FP32) NewLike() UInteger {
	return NewFP32(int32(len(u.blocks)))
}
