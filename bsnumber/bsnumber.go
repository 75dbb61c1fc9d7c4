// Package bsnumber implements Number, an exact software floating-point
// value sign * significand * 2^biasedExponent. The significand is a
// uinteger value normalized to be odd, and the biased exponent is the
// base-2 exponent of its least significant bit.
//
// Construction from native float, double and integer types is exact, and
// so are Add, Sub, Mul and all comparisons: the significand grows as
// needed rather than rounding. The only place precision is lost is the
// explicit conversion back to float32/float64, which rounds to nearest
// with ties to even. This is what makes Number usable for sign tests and
// tie-breaks that native floating point gets wrong: a computation built
// from +, - and * carries no rounding error at all.
//
// The API follows the math/big convention: operations store their result
// in the receiver and return it, as in z.Add(x, y). Results allocate
// fresh significand storage of the receiver's storage kind (a zero
// receiver adopts arbitrary-precision storage), so a Number backed by a
// fixed-capacity FP32 keeps its capacity discipline through arithmetic
// and panics if a result would not fit.
package bsnumber

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"

	"exactnum/uinteger"
)

// Number is an exact signed binary floating-point value. The zero value
// of the struct represents 0 and is ready to use.
type Number struct {
	sign      int32
	biasedExp int32
	bits      uinteger.UInteger
}

// NewNumber returns a zero-valued Number whose significand uses the
// provided backing storage. A nil backing selects arbitrary-precision
// storage. The backing determines the storage kind and capacity of every
// result computed into this Number.
func NewNumber(backing uinteger.UInteger) *Number {
	if backing == nil {
		backing = uinteger.NewAP32()
	} else {
		backing.SetNumBits(0)
	}
	return &Number{bits: backing}
}

// FromFloat64 returns a new arbitrary-precision Number with the exact
// value of x. x must be finite.
func FromFloat64(x float64) *Number {
	return new(Number).SetFloat64(x)
}

// FromFloat32 returns a new arbitrary-precision Number with the exact
// value of x. x must be finite.
func FromFloat32(x float32) *Number {
	return new(Number).SetFloat32(x)
}

// FromInt64 returns a new arbitrary-precision Number with the value of x.
func FromInt64(x int64) *Number {
	return new(Number).SetInt64(x)
}

// FromUint64 returns a new arbitrary-precision Number with the value of x.
func FromUint64(x uint64) *Number {
	return new(Number).SetUint64(x)
}

// FromInt32 returns a new arbitrary-precision Number with the value of x.
func FromInt32(x int32) *Number {
	return new(Number).SetInt64(int64(x))
}

// FromUint32 returns a new arbitrary-precision Number with the value of x.
func FromUint32(x uint32) *Number {
	return new(Number).SetUint64(uint64(x))
}

// SetFloat64 sets n to the exact value of x and returns n. It panics if
// x is NaN or infinite; non-finite values have no exact representation.
func (n *Number) SetFloat64(x float64) *Number {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("Number.SetFloat64: value must be finite")
	}
	if x == 0 {
		return n.setZero()
	}
	b := math.Float64bits(x)
	n.sign = 1
	if b>>63 != 0 {
		n.sign = -1
	}
	exponent := int32((b >> 52) & 0x7FF)
	trailing := b & (1<<52 - 1)
	var significand uint64
	if exponent > 0 {
		// normal: (2^52 + trailing) * 2^(exponent - 1023 - 52)
		significand = trailing | 1<<52
		n.biasedExp = exponent - 1075
	} else {
		// subnormal: trailing * 2^-1074
		significand = trailing
		n.biasedExp = -1074
	}
	n.biasedExp += int32(bits.TrailingZeros64(significand))
	n.storage().SetUint64(significand)
	return n
}

// SetFloat32 sets n to the exact value of x and returns n. It panics if
// x is NaN or infinite.
func (n *Number) SetFloat32(x float32) *Number {
	if x != x || x > math.MaxFloat32 || x < -math.MaxFloat32 {
		panic("Number.SetFloat32: value must be finite")
	}
	if x == 0 {
		return n.setZero()
	}
	b := math.Float32bits(x)
	n.sign = 1
	if b>>31 != 0 {
		n.sign = -1
	}
	exponent := int32((b >> 23) & 0xFF)
	trailing := uint64(b & (1<<23 - 1))
	var significand uint64
	if exponent > 0 {
		// normal: (2^23 + trailing) * 2^(exponent - 127 - 23)
		significand = trailing | 1<<23
		n.biasedExp = exponent - 150
	} else {
		// subnormal: trailing * 2^-149
		significand = trailing
		n.biasedExp = -149
	}
	n.biasedExp += int32(bits.TrailingZeros64(significand))
	n.storage().SetUint64(significand)
	return n
}

// SetInt64 sets n to the value of x and returns n.
func (n *Number) SetInt64(x int64) *Number {
	if x == 0 {
		return n.setZero()
	}
	n.sign = 1
	magnitude := uint64(x)
	if x < 0 {
		n.sign = -1
		magnitude = uint64(-x)
	}
	n.biasedExp = int32(bits.TrailingZeros64(magnitude))
	n.storage().SetUint64(magnitude)
	return n
}

// SetUint64 sets n to the value of x and returns n.
func (n *Number) SetUint64(x uint64) *Number {
	if x == 0 {
		return n.setZero()
	}
	n.sign = 1
	n.biasedExp = int32(bits.TrailingZeros64(x))
	n.storage().SetUint64(x)
	return n
}

// Set sets n to the value of x and returns n. The significand is deeply
// copied; n and x share no storage afterward.
func (n *Number) Set(x *Number) *Number {
	if n == x {
		return n
	}
	if x.sign == 0 {
		return n.setZero()
	}
	dst := n.proto(x).NewLike()
	uinteger.Copy(dst, x.bits)
	n.bits = dst
	n.sign = x.sign
	n.biasedExp = x.biasedExp
	return n
}

// Sign returns -1, 0 or +1 as n is negative, zero or positive.
func (n *Number) Sign() int {
	return int(n.sign)
}

// IsZero reports whether n is exactly 0.
func (n *Number) IsZero() bool {
	return n.sign == 0
}

// NumBits returns the significand's bit count, 0 for the value zero.
func (n *Number) NumBits() int32 {
	if n.bits == nil {
		return 0
	}
	return n.bits.NumBits()
}

// BiasedExponent returns the base-2 exponent of the significand's least
// significant bit.
func (n *Number) BiasedExponent() int32 {
	return n.biasedExp
}

// Exponent returns the base-2 exponent of the significand's most
// significant bit, 0 for the value zero.
func (n *Number) Exponent() int32 {
	if n.sign == 0 {
		return 0
	}
	return n.biasedExp + n.bits.NumBits() - 1
}

// UInteger returns the significand storage. Callers must treat it as
// read-only; mutating it breaks the value invariant.
func (n *Number) UInteger() uinteger.UInteger {
	return n.bits
}

// Neg sets n to -x and returns n.
func (n *Number) Neg(x *Number) *Number {
	n.Set(x)
	n.sign = -n.sign
	return n
}

// Abs sets n to |x| and returns n.
func (n *Number) Abs(x *Number) *Number {
	n.Set(x)
	if n.sign < 0 {
		n.sign = 1
	}
	return n
}

// Add sets n to the exact sum x + y and returns n.
func (n *Number) Add(x, y *Number) *Number {
	if x.sign == 0 {
		return n.Set(y)
	}
	if y.sign == 0 {
		return n.Set(x)
	}
	return n.signedSum(x.sign, x, y.sign, y)
}

// Sub sets n to the exact difference x - y and returns n.
func (n *Number) Sub(x, y *Number) *Number {
	if y.sign == 0 {
		return n.Set(x)
	}
	if x.sign == 0 {
		return n.Neg(y)
	}
	return n.signedSum(x.sign, x, -y.sign, y)
}

// Mul sets n to the exact product x * y and returns n.
func (n *Number) Mul(x, y *Number) *Number {
	if x.sign == 0 || y.sign == 0 {
		return n.setZero()
	}
	sign := x.sign * y.sign
	biasedExp := x.biasedExp + y.biasedExp
	product := n.proto(x).NewLike()
	// The product of two odd significands is odd; no renormalization.
	uinteger.Mul(product, x.bits, y.bits)
	n.bits = product
	n.sign = sign
	n.biasedExp = biasedExp
	return n
}

// Cmp compares n and y and returns -1, 0 or +1 as n < y, n == y or
// n > y. The comparison is exact.
func (n *Number) Cmp(y *Number) int {
	if n.sign != y.sign {
		if n.sign < y.sign {
			return -1
		}
		return 1
	}
	if n.sign == 0 {
		return 0
	}
	c := cmpMagnitudes(n, y)
	if n.sign < 0 {
		return -c
	}
	return c
}

// Rat returns the exact value of n as a big.Rat.
func (n *Number) Rat() *big.Rat {
	r := new(big.Rat)
	if n.sign == 0 {
		return r
	}
	magnitude := significandInt(n.bits)
	if n.sign < 0 {
		magnitude.Neg(magnitude)
	}
	if n.biasedExp >= 0 {
		magnitude.Lsh(magnitude, uint(n.biasedExp))
		return r.SetInt(magnitude)
	}
	denominator := new(big.Int).Lsh(big.NewInt(1), uint(-n.biasedExp))
	return r.SetFrac(magnitude, denominator)
}

// Float64 returns the value of n rounded to the nearest float64, ties to
// even. Magnitudes beyond the float64 range convert to an infinity.
func (n *Number) Float64() float64 {
	f, _ := n.Rat().Float64()
	return f
}

// Float32 returns the value of n rounded to the nearest float32, ties to
// even.
func (n *Number) Float32() float32 {
	f, _ := n.Rat().Float32()
	return f
}

// String formats n as an exact fraction in lowest terms.
func (n *Number) String() string {
	return n.Rat().RatString()
}

func (n *Number) setZero() *Number {
	n.sign = 0
	n.biasedExp = 0
	if n.bits != nil {
		n.bits.SetNumBits(0)
	}
	return n
}

// storage returns n's significand storage, allocating the default
// arbitrary-precision kind on first use of a zero-valued struct.
func (n *Number) storage() uinteger.UInteger {
	if n.bits == nil {
		n.bits = uinteger.NewAP32()
	}
	return n.bits
}

// proto returns the storage whose kind and capacity results computed
// into n should have: n's own backing, or x's when n has none yet.
func (n *Number) proto(x *Number) uinteger.UInteger {
	if n.bits != nil {
		return n.bits
	}
	if x.bits != nil {
		return x.bits
	}
	return uinteger.NewAP32()
}

// signedSum sets n to xsign*|x| + ysign*|y| for nonzero x and y.
func (n *Number) signedSum(xsign int32, x *Number, ysign int32, y *Number) *Number {
	if xsign == ysign {
		b, e := addMagnitudes(n.proto(x), x, y)
		n.bits, n.biasedExp, n.sign = b, e, xsign
		return n
	}
	switch cmpMagnitudes(x, y) {
	case 0:
		return n.setZero()
	case 1:
		b, e := subMagnitudes(n.proto(x), x, y)
		n.bits, n.biasedExp, n.sign = b, e, xsign
	default:
		b, e := subMagnitudes(n.proto(x), y, x)
		n.bits, n.biasedExp, n.sign = b, e, ysign
	}
	return n
}

// addMagnitudes computes |x| + |y| for nonzero x and y, aligning the two
// significands at the smaller biased exponent, and returns the odd-
// normalized significand with its biased exponent. proto supplies the
// storage kind for the result and temporaries.
func addMagnitudes(proto uinteger.UInteger, x, y *Number) (uinteger.UInteger, int32) {
	var base int32
	sum := proto.NewLike()
	switch d := x.biasedExp - y.biasedExp; {
	case d > 0:
		shifted := proto.NewLike()
		uinteger.ShiftLeft(shifted, x.bits, d)
		uinteger.Add(sum, shifted, y.bits)
		base = y.biasedExp
	case d < 0:
		shifted := proto.NewLike()
		uinteger.ShiftLeft(shifted, y.bits, -d)
		uinteger.Add(sum, x.bits, shifted)
		base = x.biasedExp
	default:
		uinteger.Add(sum, x.bits, y.bits)
		base = x.biasedExp
	}
	normalized := proto.NewLike()
	base += uinteger.ShiftRightToOdd(normalized, sum)
	return normalized, base
}

// subMagnitudes computes |x| - |y| for nonzero x and y with |x| > |y|.
func subMagnitudes(proto uinteger.UInteger, x, y *Number) (uinteger.UInteger, int32) {
	var base int32
	difference := proto.NewLike()
	switch d := x.biasedExp - y.biasedExp; {
	case d > 0:
		shifted := proto.NewLike()
		uinteger.ShiftLeft(shifted, x.bits, d)
		uinteger.Sub(difference, shifted, y.bits)
		base = y.biasedExp
	case d < 0:
		shifted := proto.NewLike()
		uinteger.ShiftLeft(shifted, y.bits, -d)
		uinteger.Sub(difference, x.bits, shifted)
		base = x.biasedExp
	default:
		uinteger.Sub(difference, x.bits, y.bits)
		base = x.biasedExp
	}
	normalized := proto.NewLike()
	base += uinteger.ShiftRightToOdd(normalized, difference)
	return normalized, base
}

// cmpMagnitudes compares |x| and |y| for nonzero x and y: first by the
// exponent of the leading bit, then bit by bit from the top. When one
// significand is a bit-for-bit prefix of the other, the longer one is
// larger, because its remaining low-order bits end in a 1.
func cmpMagnitudes(x, y *Number) int {
	e0 := x.biasedExp + x.bits.NumBits() - 1
	e1 := y.biasedExp + y.bits.NumBits() - 1
	if e0 != e1 {
		if e0 < e1 {
			return -1
		}
		return 1
	}
	xb, yb := x.bits.Blocks(), y.bits.Blocks()
	i0, i1 := x.bits.NumBits()-1, y.bits.NumBits()-1
	for i0 >= 0 && i1 >= 0 {
		b0 := (xb[i0>>5] >> uint(i0&31)) & 1
		b1 := (yb[i1>>5] >> uint(i1&31)) & 1
		if b0 != b1 {
			if b0 < b1 {
				return -1
			}
			return 1
		}
		i0--
		i1--
	}
	if i0 >= 0 {
		return 1
	}
	if i1 >= 0 {
		return -1
	}
	return 0
}

// significandInt converts the significand blocks to a big.Int magnitude.
func significandInt(u uinteger.UInteger) *big.Int {
	size := int(u.Size())
	blocks := u.Blocks()
	buf := make([]byte, 4*size)
	for i := 0; i < size; i++ {
		binary.BigEndian.PutUint32(buf[4*(size-1-i):], blocks[i])
	}
	return new(big.Int).SetBytes(buf)
}
