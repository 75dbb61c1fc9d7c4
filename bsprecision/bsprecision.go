// Package bsprecision computes worst-case bit-growth bounds for exact
// arithmetic expressions. Given bounds on the operands of an expression
// tree, the combinators here bound the exponent range and bit count of
// every intermediate result, which is how a fixed uinteger.FP32 capacity
// is chosen ahead of time so that it can never overflow for a known
// class of computations.
//
// Each quantity carries two bounds: one for the plain bsnumber case,
// where the expression uses only +, - and *, and one for the bsrational
// case, where every operation goes through the rational identities and
// therefore grows faster (a rational addition is two multiplications and
// an addition of the cross products). Division exists only on the
// rational side; the bsnumber side of a quotient is left zeroed.
//
// This is a design-time calculator, driven by hand or by a script
// walking an expression tree. It performs no arithmetic-hot-path work.
package bsprecision

import (
	"fmt"
)

// Type tags the native numeric types with predefined bounds.
type Type int

const (
	IsFloat Type = iota
	IsDouble
	IsInt32
	IsUint32
	IsInt64
	IsUint64
)

// Parameters bounds a quantity: every value the quantity might take has
// its least significant bit at exponent >= MinExponent, its most
// significant bit at exponent <= MaxExponent, and at most MaxBits
// significant bits.
type Parameters struct {
	MinExponent int
	MaxExponent int
	MaxBits     int
}

// MaxWords returns the number of 32-bit words needed for MaxBits.
func (p Parameters) MaxWords() int {
	return (p.MaxBits + 31) / 32
}

// Precision carries the bounds for both interpretations of a quantity:
// BSN when the expression stays in bsnumber arithmetic, BSR when it goes
// through bsrational identities.
type Precision struct {
	BSN Parameters
	BSR Parameters
}

// FromType returns the bounds of a native numeric type. For the
// floating-point types the exponent range spans subnormals.
func FromType(t Type) Precision {
	var p Parameters
	switch t {
	case IsFloat:
		p = Parameters{MinExponent: -149, MaxExponent: 127, MaxBits: 24}
	case IsDouble:
		p = Parameters{MinExponent: -1074, MaxExponent: 1023, MaxBits: 53}
	case IsInt32:
		// |math.MinInt32| = 2^31 reaches exponent 31 with a single bit;
		// 2^31 - 1 needs the most bits.
		p = Parameters{MinExponent: 0, MaxExponent: 31, MaxBits: 31}
	case IsUint32:
		p = Parameters{MinExponent: 0, MaxExponent: 31, MaxBits: 32}
	case IsInt64:
		p = Parameters{MinExponent: 0, MaxExponent: 63, MaxBits: 63}
	case IsUint64:
		p = Parameters{MinExponent: 0, MaxExponent: 63, MaxBits: 64}
	default:
		panic(fmt.Sprintf("bsprecision.FromType: unknown type tag %d", int(t)))
	}
	return Precision{BSN: p, BSR: p}
}

// FromParameters returns a Precision with the given bounds on both the
// bsnumber and bsrational sides.
func FromParameters(minExponent, maxExponent, maxBits int) Precision {
	p := Parameters{
		MinExponent: minExponent,
		MaxExponent: maxExponent,
		MaxBits:     maxBits,
	}
	return Precision{BSN: p, BSR: p}
}

// Add bounds the sum of two bounded quantities. Subtraction bounds the
// same way: sign does not affect magnitude growth.
func (p Precision) Add(q Precision) Precision {
	cross := mulParameters(p.BSR, q.BSR)
	return Precision{
		BSN: addParameters(p.BSN, q.BSN),
		// Rational addition is (n0 d1 + n1 d0) / (d0 d1): the numerator
		// is a sum of two cross products and the denominator is one
		// product; the single bound must cover both.
		BSR: unionParameters(addParameters(cross, cross), cross),
	}
}

// Sub bounds the difference of two bounded quantities; identical to Add.
func (p Precision) Sub(q Precision) Precision {
	return p.Add(q)
}

// Mul bounds the product of two bounded quantities. On the rational side
// both numerator and denominator are plain products, so the bound is the
// same formula.
func (p Precision) Mul(q Precision) Precision {
	return Precision{
		BSN: mulParameters(p.BSN, q.BSN),
		BSR: mulParameters(p.BSR, q.BSR),
	}
}

// Div bounds the quotient of two bounded quantities. Division is defined
// only for the rational interpretation; rational division swaps the
// divisor's parts and multiplies, so the growth mirrors Mul. The BSN
// side of the result is zeroed.
func (p Precision) Div(q Precision) Precision {
	return Precision{
		BSR: mulParameters(p.BSR, q.BSR),
	}
}

// Compare bounds the computation a comparison performs: the sign of a
// difference for bsnumber, and the sign of a difference of cross
// products for bsrational. All six comparison operators share this
// bound.
func (p Precision) Compare(q Precision) Precision {
	cross := mulParameters(p.BSR, q.BSR)
	return Precision{
		BSN: addParameters(p.BSN, q.BSN),
		BSR: addParameters(cross, cross),
	}
}

// addParameters bounds a sum: the exponent window is the union of the
// operand windows plus one carry bit, and the bit count is the full
// window width (the operands need not overlap).
func addParameters(p0, p1 Parameters) Parameters {
	minExponent := min(p0.MinExponent, p1.MinExponent)
	maxExponent := max(p0.MaxExponent, p1.MaxExponent) + 1
	return Parameters{
		MinExponent: minExponent,
		MaxExponent: maxExponent,
		MaxBits:     maxExponent - minExponent + 1,
	}
}

// mulParameters bounds a product: exponents add (plus one for the
// high-bit carry) and bit counts add.
func mulParameters(p0, p1 Parameters) Parameters {
	return Parameters{
		MinExponent: p0.MinExponent + p1.MinExponent,
		MaxExponent: p0.MaxExponent + p1.MaxExponent + 1,
		MaxBits:     p0.MaxBits + p1.MaxBits,
	}
}

// unionParameters bounds a quantity that may be either of two bounded
// quantities.
func unionParameters(p0, p1 Parameters) Parameters {
	return Parameters{
		MinExponent: min(p0.MinExponent, p1.MinExponent),
		MaxExponent: max(p0.MaxExponent, p1.MaxExponent),
		MaxBits:     max(p0.MaxBits, p1.MaxBits),
	}
}
