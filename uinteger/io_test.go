package uinteger

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(79))
	for trial := 0; trial < 200; trial++ {
		src, srcAsBig := randomValue(rnd, 5)
		var buf bytes.Buffer
		assert.NoError(t, Write(src, &buf))

		dst := NewAP32()
		assert.NoError(t, Read(dst, &buf))
		assert.Equal(t, src.NumBits(), dst.NumBits())
		assert.Zero(t, srcAsBig.Cmp(toBig(dst)))
		assert.Zero(t, buf.Len())
	}
}

func TestReadWriteZero(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(NewAP32(), &buf))
	assert.Equal(t, 8, buf.Len())

	dst := NewFP32FromUint64(2, 12345)
	assert.NoError(t, Read(dst, &buf))
	assert.Equal(t, int32(0), dst.NumBits())
}

func TestReadIntoFixedCapacity(t *testing.T) {
	rnd := rand.New(rand.NewSource(83))
	src, _ := randomValue(rnd, 2)
	src.SetBack(src.Back() | 1<<31)
	src.SetNumBits(32 * src.Size())
	srcAsBig := toBig(src)

	var buf bytes.Buffer
	assert.NoError(t, Write(src, &buf))

	dst := NewFP32(2)
	assert.NoError(t, Read(dst, &buf))
	assert.Zero(t, srcAsBig.Cmp(toBig(dst)))
}

func TestReadCapacityExceeded(t *testing.T) {
	wide := NewAP32()
	wide.SetNumBits(32 * 3)
	wide.SetBack(1)

	var buf bytes.Buffer
	assert.NoError(t, Write(wide, &buf))

	dst := NewFP32FromUint64(2, 7)
	err := Read(dst, &buf)
	assert.Error(t, err)
	// The destination keeps its old value on failure.
	assert.Equal(t, int32(3), dst.NumBits())
	assert.Equal(t, uint64(7), toBig(dst).Uint64())
}

func TestReadTruncatedStream(t *testing.T) {
	rnd := rand.New(rand.NewSource(89))
	src, _ := randomValue(rnd, 4)
	var buf bytes.Buffer
	assert.NoError(t, Write(src, &buf))

	encoded := buf.Bytes()
	for cut := 0; cut < len(encoded); cut += 3 {
		dst := NewAP32FromUint64(99)
		err := Read(dst, bytes.NewReader(encoded[:cut]))
		assert.Error(t, err)
		assert.Equal(t, uint64(99), toBig(dst).Uint64())
	}
}

func TestReadCorruptHeader(t *testing.T) {
	// numBits 40 requires 2 blocks; claim 3.
	var buf bytes.Buffer
	buf.Write([]byte{40, 0, 0, 0, 3, 0, 0, 0})
	err := Read(NewAP32(), &buf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt header")

	// Negative numBits is rejected outright.
	buf.Reset()
	buf.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0})
	assert.Error(t, Read(NewAP32(), &buf))
}
