package uinteger

import (
	"fmt"
	"math"
	"math/bits"
)

// AP32 is the arbitrary-precision storage kind. Its block storage grows
// and shrinks with SetNumBits and is bounded only by available memory,
// so the capacity-overflow failure mode of FP32 does not arise.
type AP32 struct {
	numBits int32
	blocks  []uint32
}

// NewAP32 returns an AP32 with the value zero.
func NewAP32() *AP32 {
	return &AP32{}
}

// NewAP32FromUint32 returns an AP32 with the normalized representation
// of value.
func NewAP32FromUint32(value uint32) *AP32 {
	u := &AP32{}
	u.SetUint64(uint64(value))
	return u
}

// NewAP32FromUint64 returns an AP32 with the normalized representation
// of value.
func NewAP32FromUint64(value uint64) *AP32 {
	u := &AP32{}
	u.SetUint64(value)
	return u
}

func (u *AP32) NumBits() int32 {
	return u.numBits
}

func (u *AP32) SetNumBits(numBits int32) {
	if numBits < 0 {
		panic(fmt.Sprintf("AP32.SetNumBits: negative bit count %d", numBits))
	}
	u.numBits = numBits
	size := blocksFor(numBits)
	if int(size) <= cap(u.blocks) {
		u.blocks = u.blocks[:size]
	} else {
		u.blocks = make([]uint32, size)
	}
	recordSize(size)
}

func (u *AP32) Blocks() []uint32 {
	return u.blocks
}

func (u *AP32) Size() int32 {
	return int32(len(u.blocks))
}

func (u *AP32) MaxSize() int32 {
	return math.MaxInt32
}

func (u *AP32) Back() uint32 {
	if len(u.blocks) == 0 {
		return 0
	}
	return u.blocks[len(u.blocks)-1]
}

func (u *AP32) SetBack(value uint32) {
	if len(u.blocks) == 0 {
		panic("AP32.SetBack: the value zero has no blocks")
	}
	u.blocks[len(u.blocks)-1] = value
}

func (u *AP32) SetAllBitsToZero() {
	for i := range u.blocks {
		u.blocks[i] = 0
	}
}

func (u *AP32) SetUint64(value uint64) {
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

func (u *AP32) NewLike() UInteger {
	return &AP32{}
}
