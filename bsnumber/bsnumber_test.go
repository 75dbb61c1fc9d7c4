package bsnumber

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"exactnum/uinteger"
)

// randomFloat64 draws a finite float64 from the full bit-pattern space,
// so normals, subnormals, zeros and extreme exponents all occur.
func randomFloat64(rnd *rand.Rand) float64 {
	for {
		v := math.Float64frombits(rnd.Uint64())
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
}

func randomFloat32(rnd *rand.Rand) float32 {
	for {
		v := math.Float32frombits(rnd.Uint32())
		if v == v && v <= math.MaxFloat32 && v >= -math.MaxFloat32 {
			return v
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(101))
	for trial := 0; trial < 2000; trial++ {
		v := randomFloat64(rnd)
		back := FromFloat64(v).Float64()
		if v == 0 {
			// -0 converts to the canonical zero.
			assert.Equal(t, 0.0, back)
			continue
		}
		assert.Equal(t, math.Float64bits(v), math.Float64bits(back))
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(103))
	for trial := 0; trial < 2000; trial++ {
		v := randomFloat32(rnd)
		back := FromFloat32(v).Float32()
		if v == 0 {
			assert.Equal(t, float32(0), back)
			continue
		}
		assert.Equal(t, math.Float32bits(v), math.Float32bits(back))
	}
}

func TestNonFiniteInputsPanic(t *testing.T) {
	assert.Panics(t, func() { FromFloat64(math.NaN()) })
	assert.Panics(t, func() { FromFloat64(math.Inf(1)) })
	assert.Panics(t, func() { FromFloat32(float32(math.Inf(-1))) })
}

func TestExactValueOfKnownInputs(t *testing.T) {
	// 1.5 = 3 * 2^-1: odd significand 3, biased exponent -1.
	n := FromFloat64(1.5)
	assert.Equal(t, 1, n.Sign())
	assert.Equal(t, int32(-1), n.BiasedExponent())
	assert.Equal(t, int32(2), n.NumBits())
	assert.Equal(t, int32(0), n.Exponent())

	// The smallest positive subnormal is 2^-1074.
	tiny := FromFloat64(math.SmallestNonzeroFloat64)
	assert.Equal(t, int32(-1074), tiny.BiasedExponent())
	assert.Equal(t, int32(1), tiny.NumBits())
}

func TestArithmeticMatchesBigRat(t *testing.T) {
	rnd := rand.New(rand.NewSource(107))
	for trial := 0; trial < 500; trial++ {
		a := randomFloat64(rnd)
		b := randomFloat64(rnd)
		ra := new(big.Rat).SetFloat64(a)
		rb := new(big.Rat).SetFloat64(b)
		x := FromFloat64(a)
		y := FromFloat64(b)

		var sum, difference, product Number
		sum.Add(x, y)
		difference.Sub(x, y)
		product.Mul(x, y)
		assert.Zero(t, sum.Rat().Cmp(new(big.Rat).Add(ra, rb)))
		assert.Zero(t, difference.Rat().Cmp(new(big.Rat).Sub(ra, rb)))
		assert.Zero(t, product.Rat().Cmp(new(big.Rat).Mul(ra, rb)))
	}
}

func TestAdditionCancellationIsExact(t *testing.T) {
	// (x + y) - x recovers y exactly even when y is far below x's
	// precision, where native float64 addition would lose it entirely.
	x := FromFloat64(1e30)
	y := FromFloat64(1e-30)
	var sum, recovered Number
	sum.Add(x, y)
	recovered.Sub(&sum, x)
	assert.Zero(t, recovered.Cmp(y))
}

func TestZeroIdentities(t *testing.T) {
	zero := new(Number)
	x := FromFloat64(-2.75)
	var result Number

	assert.True(t, zero.IsZero())
	assert.Zero(t, result.Add(x, zero).Cmp(x))
	assert.Zero(t, result.Add(zero, x).Cmp(x))
	assert.Zero(t, result.Sub(x, zero).Cmp(x))
	assert.Zero(t, result.Sub(zero, x).Cmp(new(Number).Neg(x)))
	assert.True(t, result.Mul(x, zero).IsZero())
	assert.True(t, result.Sub(x, x).IsZero())
	assert.Equal(t, int32(0), result.Sub(x, x).NumBits())
}

func TestCmpMatchesBigRat(t *testing.T) {
	rnd := rand.New(rand.NewSource(109))
	for trial := 0; trial < 1000; trial++ {
		a := randomFloat64(rnd)
		b := randomFloat64(rnd)
		expected := new(big.Rat).SetFloat64(a).Cmp(new(big.Rat).SetFloat64(b))
		assert.Equal(t, expected, FromFloat64(a).Cmp(FromFloat64(b)))
	}

	// Adjacent values and prefix significands.
	one := FromFloat64(1)
	onePlus := FromFloat64(1 + 0x1p-52)
	assert.Equal(t, -1, one.Cmp(onePlus))
	assert.Equal(t, 1, onePlus.Cmp(one))
	assert.Zero(t, one.Cmp(FromFloat64(1)))
	assert.Equal(t, -1, FromFloat64(-3).Cmp(FromFloat64(2)))
}

func TestIntegerSetters(t *testing.T) {
	values := []int64{0, 1, -1, 42, -1 << 40, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		assert.Zero(t, FromInt64(v).Rat().Cmp(new(big.Rat).SetInt64(v)), "value %d", v)
	}
	assert.Zero(t, FromUint64(math.MaxUint64).Rat().Cmp(
		new(big.Rat).SetInt(new(big.Int).SetUint64(math.MaxUint64))))
	assert.Zero(t, FromInt32(math.MinInt32).Rat().Cmp(new(big.Rat).SetInt64(math.MinInt32)))
	assert.Zero(t, FromUint32(math.MaxUint32).Rat().Cmp(new(big.Rat).SetInt64(math.MaxUint32)))
}

func TestNegAndAbs(t *testing.T) {
	x := FromFloat64(-6.5)
	assert.Equal(t, 6.5, new(Number).Neg(x).Float64())
	assert.Equal(t, 6.5, new(Number).Abs(x).Float64())
	assert.True(t, new(Number).Neg(new(Number)).IsZero())
}

func TestSetIsDeepCopy(t *testing.T) {
	x := FromFloat64(3.25)
	y := new(Number).Set(x)
	assert.Zero(t, x.Cmp(y))
	y.Add(y, FromFloat64(1))
	assert.Equal(t, 3.25, x.Float64())
	assert.Equal(t, 4.25, y.Float64())
}

func TestFixedCapacityBacking(t *testing.T) {
	a := 1 + 0x1p-52
	b := 1 + 0x1p-51
	x := NewNumber(uinteger.NewFP32(4)).SetFloat64(a)
	y := NewNumber(uinteger.NewFP32(4)).SetFloat64(b)

	// Results computed into a fixed-capacity receiver match the
	// arbitrary-precision results.
	product := NewNumber(uinteger.NewFP32(4)).Mul(x, y)
	var reference Number
	reference.Mul(FromFloat64(a), FromFloat64(b))
	assert.Zero(t, product.Cmp(&reference))

	// Two 53-bit significands need 106 product bits; capacity for 64
	// bits is a fatal precondition violation.
	assert.Panics(t, func() {
		small := NewNumber(uinteger.NewFP32(2))
		small.Mul(x, y)
	})
}

func TestZeroReceiverAdoptsOperandStorage(t *testing.T) {
	x := NewNumber(uinteger.NewFP32(4)).SetFloat64(1.5)
	y := NewNumber(uinteger.NewFP32(4)).SetFloat64(2.5)
	var sum Number
	sum.Add(x, y)
	assert.Equal(t, 4.0, sum.Float64())
	_, isFixed := sum.UInteger().(*uinteger.FP32)
	assert.True(t, isFixed)
}
