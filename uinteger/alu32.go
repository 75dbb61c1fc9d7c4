package uinteger

import (
	"math/bits"
)

// The arithmetic layer. Every function writes its result with an exact
// trimmed bit count, so NumBits always equals the true bit length of the
// stored integer. Results must not alias operands: SetNumBits on the
// result may reallocate or truncate storage shared with an operand.
// Capacity overflow of an FP32 result surfaces as the SetNumBits panic.

// Add sets z to x + y.
func Add(z, x, y UInteger) {
	nb0, nb1 := x.NumBits(), y.NumBits()
	if nb0 == 0 {
		Copy(z, y)
		return
	}
	if nb1 == 0 {
		Copy(z, x)
		return
	}
	if nb0 < nb1 {
		x, y = y, x
		nb0, nb1 = nb1, nb0
	}

	// The sum of an nb0-bit and an nb1-bit integer, nb0 >= nb1, has
	// either nb0 or nb0+1 bits. Reserve for the larger and trim after.
	z.SetNumBits(nb0 + 1)
	s0, s1 := int(x.Size()), int(y.Size())
	xb, yb, zb := x.Blocks(), y.Blocks(), z.Blocks()
	var carry uint32
	for i := 0; i < s1; i++ {
		zb[i], carry = bits.Add32(xb[i], yb[i], carry)
	}
	for i := s1; i < s0; i++ {
		zb[i], carry = bits.Add32(xb[i], 0, carry)
	}
	if carry != 0 {
		// Only possible when nb0 is a multiple of 32, in which case the
		// reservation above included block s0.
		zb[s0] = 1
		z.SetNumBits(int32(32*s0 + 1))
		return
	}
	z.SetNumBits(int32(32*(s0-1) + bits.Len32(zb[s0-1])))
}

// Sub sets z to x - y. The caller must guarantee x >= y.
func Sub(z, x, y UInteger) {
	if y.NumBits() == 0 {
		Copy(z, x)
		return
	}
	nb0 := x.NumBits()
	z.SetNumBits(nb0)
	s0, s1 := int(x.Size()), int(y.Size())
	xb, yb, zb := x.Blocks(), y.Blocks(), z.Blocks()
	var borrow uint32
	for i := 0; i < s1; i++ {
		zb[i], borrow = bits.Sub32(xb[i], yb[i], borrow)
	}
	for i := s1; i < s0; i++ {
		zb[i], borrow = bits.Sub32(xb[i], 0, borrow)
	}
	last := s0 - 1
	for last >= 0 && zb[last] == 0 {
		last--
	}
	if last < 0 {
		z.SetNumBits(0)
		return
	}
	z.SetNumBits(int32(32*last + bits.Len32(zb[last])))
}

// Mul sets z to x * y.
func Mul(z, x, y UInteger) {
	nb0, nb1 := x.NumBits(), y.NumBits()
	if nb0 == 0 || nb1 == 0 {
		z.SetNumBits(0)
		return
	}
	s0, s1 := int(x.Size()), int(y.Size())
	xb, yb := x.Blocks(), y.Blocks()

	// Schoolbook multiply into a scratch buffer. The accumulator cannot
	// overflow: (2^32-1)^2 + 2*(2^32-1) = 2^64 - 1.
	product := make([]uint32, s0+s1)
	for i := 0; i < s0; i++ {
		digit := uint64(xb[i])
		var carry uint64
		for j := 0; j < s1; j++ {
			t := uint64(product[i+j]) + digit*uint64(yb[j]) + carry
			product[i+j] = uint32(t)
			carry = t >> 32
		}
		product[i+s1] = uint32(carry)
	}
	last := s0 + s1 - 1
	for product[last] == 0 {
		last--
	}
	z.SetNumBits(int32(32*last + bits.Len32(product[last])))
	copy(z.Blocks(), product[:last+1])
}

// ShiftLeft sets z to x << shift.
func ShiftLeft(z, x UInteger, shift int32) {
	if shift < 0 {
		panic("uinteger.ShiftLeft: negative shift")
	}
	nb := x.NumBits()
	if nb == 0 {
		z.SetNumBits(0)
		return
	}
	if shift == 0 {
		Copy(z, x)
		return
	}
	z.SetNumBits(nb + shift)
	s0, sz := int(x.Size()), int(z.Size())
	xb, zb := x.Blocks(), z.Blocks()
	blockShift := int(shift >> 5)
	bitShift := uint(shift & 31)
	if bitShift == 0 {
		for i := s0 - 1; i >= 0; i-- {
			zb[i+blockShift] = xb[i]
		}
	} else {
		for i := sz - 1; i >= blockShift; i-- {
			j := i - blockShift
			var w uint32
			if j < s0 {
				w = xb[j] << bitShift
			}
			if j > 0 {
				w |= xb[j-1] >> (32 - bitShift)
			}
			zb[i] = w
		}
	}
	for i := 0; i < blockShift; i++ {
		zb[i] = 0
	}
}

// ShiftRightToOdd sets z to x shifted right until its trailing bit is 1
// and returns the shift amount. For x == 0 the result is zero and the
// returned shift is 0.
func ShiftRightToOdd(z, x UInteger) int32 {
	nb := x.NumBits()
	if nb == 0 {
		z.SetNumBits(0)
		return 0
	}
	s0 := int(x.Size())
	xb := x.Blocks()
	firstNonZero := 0
	for xb[firstNonZero] == 0 {
		firstNonZero++
	}
	bitShift := uint(bits.TrailingZeros32(xb[firstNonZero]))
	shift := int32(32*firstNonZero) + int32(bitShift)
	z.SetNumBits(nb - shift)
	sz := int(z.Size())
	zb := z.Blocks()
	if bitShift == 0 {
		for i := 0; i < sz; i++ {
			zb[i] = xb[i+firstNonZero]
		}
	} else {
		for i := 0; i < sz; i++ {
			w := xb[i+firstNonZero] >> bitShift
			if i+firstNonZero+1 < s0 {
				w |= xb[i+firstNonZero+1] << (32 - bitShift)
			}
			zb[i] = w
		}
	}
	return shift
}

// Compare returns -1, 0 or +1 as the magnitude of x is less than, equal
// to or greater than the magnitude of y. Because NumBits is always the
// exact bit length, a bit-count mismatch decides the order immediately.
func Compare(x, y UInteger) int {
	nb0, nb1 := x.NumBits(), y.NumBits()
	if nb0 != nb1 {
		if nb0 < nb1 {
			return -1
		}
		return 1
	}
	xb, yb := x.Blocks(), y.Blocks()
	for i := int(x.Size()) - 1; i >= 0; i-- {
		if xb[i] != yb[i] {
			if xb[i] < yb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y encode the same magnitude.
func Equal(x, y UInteger) bool {
	return Compare(x, y) == 0
}

// Less reports whether the magnitude of x is less than that of y.
func Less(x, y UInteger) bool {
	return Compare(x, y) < 0
}
