// Package bsrational extends the exact bsnumber arithmetic with
// division. A Rational is a ratio of two bsnumber.Number values; the
// standard rational identities keep +, -, * and / exact, and comparisons
// go through cross-multiplication rather than any floating-point
// shortcut. The numerator and denominator grow as an expression is
// evaluated; precision is lost only at the explicit conversion to
// float32/float64, which rounds to nearest with ties to even.
//
// Division by a rational whose value is exactly zero is a domain error
// reported to the caller, not a silent infinity.
package bsrational

import (
	"fmt"
	"math/big"

	"exactnum/bsnumber"
)

// Rational is an exact rational value numerator/denominator. A valid
// Rational always has a nonzero denominator; use the constructors. The
// zero value of the struct is not a valid operand, but it is usable as a
// receiver for results, as in new(Rational).Add(x, y).
type Rational struct {
	numerator   *bsnumber.Number
	denominator *bsnumber.Number
}

// NewRational returns the rational numerator/denominator. Both parts are
// deeply copied. An exactly-zero denominator is an error.
func NewRational(numerator, denominator *bsnumber.Number) (*Rational, error) {
	if denominator.IsZero() {
		return nil, fmt.Errorf("NewRational: denominator is zero")
	}
	return &Rational{
		numerator:   new(bsnumber.Number).Set(numerator),
		denominator: new(bsnumber.Number).Set(denominator),
	}, nil
}

// FromFloat64 returns the exact rational x/1. x must be finite.
func FromFloat64(x float64) *Rational {
	return &Rational{
		numerator:   bsnumber.FromFloat64(x),
		denominator: bsnumber.FromInt64(1),
	}
}

// FromFloat32 returns the exact rational x/1. x must be finite.
func FromFloat32(x float32) *Rational {
	return &Rational{
		numerator:   bsnumber.FromFloat32(x),
		denominator: bsnumber.FromInt64(1),
	}
}

// FromInt64 returns the rational x/1.
func FromInt64(x int64) *Rational {
	return &Rational{
		numerator:   bsnumber.FromInt64(x),
		denominator: bsnumber.FromInt64(1),
	}
}

// FromRatio returns the rational numerator/denominator. A zero
// denominator is an error.
func FromRatio(numerator, denominator int64) (*Rational, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("FromRatio: denominator is zero")
	}
	return &Rational{
		numerator:   bsnumber.FromInt64(numerator),
		denominator: bsnumber.FromInt64(denominator),
	}, nil
}

// Numerator returns a copy of the numerator.
func (r *Rational) Numerator() *bsnumber.Number {
	return new(bsnumber.Number).Set(r.numerator)
}

// Denominator returns a copy of the denominator.
func (r *Rational) Denominator() *bsnumber.Number {
	return new(bsnumber.Number).Set(r.denominator)
}

// Set sets r to the value of x and returns r. The parts are deeply
// copied; r and x share no storage afterward.
func (r *Rational) Set(x *Rational) *Rational {
	if r == x {
		return r
	}
	r.numerator = new(bsnumber.Number).Set(x.numerator)
	r.denominator = new(bsnumber.Number).Set(x.denominator)
	return r
}

// Sign returns -1, 0 or +1 as r is negative, zero or positive.
func (r *Rational) Sign() int {
	return r.numerator.Sign() * r.denominator.Sign()
}

// IsZero reports whether r is exactly 0.
func (r *Rational) IsZero() bool {
	return r.numerator.IsZero()
}

// Neg sets r to -x and returns r.
func (r *Rational) Neg(x *Rational) *Rational {
	var numerator bsnumber.Number
	numerator.Neg(x.numerator)
	r.numerator = &numerator
	r.denominator = new(bsnumber.Number).Set(x.denominator)
	return r
}

// Add sets r to the exact sum x + y and returns r:
// (n0 d1 + n1 d0) / (d0 d1).
func (r *Rational) Add(x, y *Rational) *Rational {
	var n0d1, n1d0, numerator, denominator bsnumber.Number
	n0d1.Mul(x.numerator, y.denominator)
	n1d0.Mul(y.numerator, x.denominator)
	numerator.Add(&n0d1, &n1d0)
	denominator.Mul(x.denominator, y.denominator)
	r.numerator = &numerator
	r.denominator = &denominator
	return r
}

// Sub sets r to the exact difference x - y and returns r:
// (n0 d1 - n1 d0) / (d0 d1).
func (r *Rational) Sub(x, y *Rational) *Rational {
	var n0d1, n1d0, numerator, denominator bsnumber.Number
	n0d1.Mul(x.numerator, y.denominator)
	n1d0.Mul(y.numerator, x.denominator)
	numerator.Sub(&n0d1, &n1d0)
	denominator.Mul(x.denominator, y.denominator)
	r.numerator = &numerator
	r.denominator = &denominator
	return r
}

// Mul sets r to the exact product x * y and returns r: (n0 n1)/(d0 d1).
func (r *Rational) Mul(x, y *Rational) *Rational {
	var numerator, denominator bsnumber.Number
	numerator.Mul(x.numerator, y.numerator)
	denominator.Mul(x.denominator, y.denominator)
	r.numerator = &numerator
	r.denominator = &denominator
	return r
}

// Div sets r to the exact quotient x / y and returns r:
// (n0 d1)/(d0 n1). If y is exactly zero, a division-by-zero error is
// returned and r is unchanged.
func (r *Rational) Div(x, y *Rational) (*Rational, error) {
	if y.numerator.IsZero() {
		return nil, fmt.Errorf("Rational.Div: division by zero")
	}
	var numerator, denominator bsnumber.Number
	numerator.Mul(x.numerator, y.denominator)
	denominator.Mul(x.denominator, y.numerator)
	r.numerator = &numerator
	r.denominator = &denominator
	return r, nil
}

// Cmp compares r and y and returns -1, 0 or +1 as r < y, r == y or
// r > y. The comparison cross-multiplies and is exact.
func (r *Rational) Cmp(y *Rational) int {
	var lhs, rhs bsnumber.Number
	lhs.Mul(r.numerator, y.denominator)
	rhs.Mul(y.numerator, r.denominator)
	c := lhs.Cmp(&rhs)
	// Cross-multiplying by a negative denominator flips the order.
	if r.denominator.Sign()*y.denominator.Sign() < 0 {
		return -c
	}
	return c
}

// Rat returns the exact value of r as a big.Rat.
func (r *Rational) Rat() *big.Rat {
	return new(big.Rat).Quo(r.numerator.Rat(), r.denominator.Rat())
}

// Float64 returns the value of r rounded to the nearest float64, ties to
// even.
func (r *Rational) Float64() float64 {
	f, _ := r.Rat().Float64()
	return f
}

// Float32 returns the value of r rounded to the nearest float32, ties to
// even.
func (r *Rational) Float32() float32 {
	f, _ := r.Rat().Float32()
	return f
}

// String formats r as an exact fraction in lowest terms.
func (r *Rational) String() string {
	return r.Rat().RatString()
}
