// Package roots classifies and solves low-degree polynomials with exact
// rational coefficients. The classification decisions — how many real
// roots, with which multiplicities — reduce to sign tests on exactly
// computed discriminants, so a double root is never mistaken for two
// nearby simple roots the way a native floating-point solver can.
// Numeric root values are extracted in exact rational arithmetic as long
// as possible (rational roots are computed exactly) and converted to the
// caller's floating type only at the last step.
package roots

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"exactnum/bsrational"
)

// SolveCubic returns the distinct real roots of
//
//	p0 + p1 z + p2 z^2 + p3 z^3
//
// mapped to their multiplicities. p3 must be nonzero; a zero leading
// coefficient is an error, not a silent fallback to a quadratic.
// Complex-conjugate root pairs are not reported.
func SolveCubic[T constraints.Float](p0, p1, p2, p3 *bsrational.Rational) (map[T]int, error) {
	if p3.Sign() == 0 {
		return nil, fmt.Errorf("SolveCubic: leading coefficient is zero")
	}

	// Normalize to monic z^3 + a z^2 + b z + c, then depress with
	// z = y - a/3, all in exact rational arithmetic:
	//   y^3 + c1 y + c0,  c1 = b - 3 q^2,  c0 = c - q b + 2 q^3,  q = a/3.
	a := div(p2, p3)
	b := div(p1, p3)
	c := div(p0, p3)
	q := div(a, rational(3))
	qq := mul(q, q)
	c1 := sub(b, mul(rational(3), qq))
	c0 := add(sub(c, mul(q, b)), mul(rational(2), mul(q, qq)))
	return solveDepressed[T](c0, c1, q)
}

// SolveDepressedCubic returns the distinct real roots of c0 + c1 z + z^3
// mapped to their multiplicities.
func SolveDepressedCubic[T constraints.Float](c0, c1 *bsrational.Rational) (map[T]int, error) {
	return solveDepressed[T](c0, c1, rational(0))
}

// ClassifyCubic returns the multiplicity pattern of the real roots of
// p0 + p1 z + p2 z^2 + p3 z^3 without computing root values. The
// possible patterns are [1 1 1], [1 2], [3] and [1]. p3 must be nonzero.
func ClassifyCubic(p0, p1, p2, p3 *bsrational.Rational) ([]int, error) {
	if p3.Sign() == 0 {
		return nil, fmt.Errorf("ClassifyCubic: leading coefficient is zero")
	}
	a := div(p2, p3)
	b := div(p1, p3)
	c := div(p0, p3)
	q := div(a, rational(3))
	qq := mul(q, q)
	c1 := sub(b, mul(rational(3), qq))
	c0 := add(sub(c, mul(q, b)), mul(rational(2), mul(q, qq)))
	return ClassifyDepressedCubic(c0, c1), nil
}

// ClassifyDepressedCubic returns the multiplicity pattern of the real
// roots of c0 + c1 z + z^3 without computing root values.
func ClassifyDepressedCubic(c0, c1 *bsrational.Rational) []int {
	if c0.Sign() == 0 {
		switch {
		case c1.Sign() > 0:
			// z (z^2 + c1) with a positive quadratic: one real root.
			return []int{1}
		case c1.Sign() == 0:
			return []int{3}
		default:
			return []int{1, 1, 1}
		}
	}
	if c1.Sign() == 0 {
		// z^3 = -c0: one real root, one conjugate pair.
		return []int{1}
	}
	delta := cubicDiscriminant(c0, c1)
	switch {
	case delta.Sign() > 0:
		return []int{1, 1, 1}
	case delta.Sign() < 0:
		return []int{1}
	default:
		return []int{1, 2}
	}
}

// solveDepressed solves y^3 + c1 y + c0 = 0 and reports the roots
// shifted to z = y - offset.
func solveDepressed[T constraints.Float](c0, c1, offset *bsrational.Rational) (map[T]int, error) {
	roots := make(map[T]int)

	if c0.Sign() == 0 {
		// y (y^2 + c1) = 0: the quadratic's roots plus the factored-out
		// root at the origin, which coincides with a quadratic root only
		// when c1 == 0.
		quadratic := SolveDepressedQuadratic[float64](c1)
		quadratic[0]++
		shift := offset.Float64()
		for y, multiplicity := range quadratic {
			if y == 0 {
				insertRational(roots, rational(0), offset, multiplicity)
			} else {
				roots[T(y-shift)] += multiplicity
			}
		}
		return roots, nil
	}

	if c1.Sign() == 0 {
		// y^3 = -c0: the single real cube root; the conjugate pair is
		// not reported.
		y := -math.Cbrt(c0.Float64())
		roots[T(y-offset.Float64())]++
		return roots, nil
	}

	delta := cubicDiscriminant(c0, c1)
	switch {
	case delta.Sign() > 0:
		// Three distinct real roots, extracted with the trigonometric
		// form: y_k = m cos(theta - 2 pi k / 3), m = 2 sqrt(-c1/3).
		p := c1.Float64()
		q := c0.Float64()
		m := 2 * math.Sqrt(-p/3)
		argument := 3 * q / (p * m)
		// delta > 0 puts the argument inside (-1, 1); clamp the float
		// evaluation to the domain of Acos anyway.
		argument = math.Max(-1, math.Min(1, argument))
		theta := math.Acos(argument) / 3
		shift := offset.Float64()
		for k := 0; k < 3; k++ {
			y := m * math.Cos(theta-2*math.Pi*float64(k)/3)
			roots[T(y-shift)]++
		}
	case delta.Sign() < 0:
		// One real root (Cardano); the conjugate pair is not reported.
		p := c1.Float64()
		q := c0.Float64()
		d := math.Sqrt(q*q/4 + p*p*p/27)
		y := math.Cbrt(-q/2+d) + math.Cbrt(-q/2-d)
		roots[T(y-offset.Float64())]++
	default:
		// delta == 0 with c0, c1 both nonzero: one double and one simple
		// root, both rational, so compute them exactly.
		double := neg(div(mul(rational(3), c0), mul(rational(2), c1)))
		simple := div(mul(rational(3), c0), c1)
		insertRational(roots, double, offset, 2)
		insertRational(roots, simple, offset, 1)
	}
	return roots, nil
}

// cubicDiscriminant returns delta = -(4 c1^3 + 27 c0^2), exactly. Its
// sign is the entire classification, which is why it must never be
// computed in floating point.
func cubicDiscriminant(c0, c1 *bsrational.Rational) *bsrational.Rational {
	c1Cubed := mul(c1, mul(c1, c1))
	c0Squared := mul(c0, c0)
	return neg(add(mul(rational(4), c1Cubed), mul(rational(27), c0Squared)))
}

// insertRational records the root y - offset, computed exactly before
// the single conversion to T.
func insertRational[T constraints.Float](roots map[T]int, y, offset *bsrational.Rational, multiplicity int) {
	z := new(bsrational.Rational).Sub(y, offset)
	roots[T(z.Float64())] += multiplicity
}

func rational(value int64) *bsrational.Rational {
	return bsrational.FromInt64(value)
}

func add(x, y *bsrational.Rational) *bsrational.Rational {
	return new(bsrational.Rational).Add(x, y)
}

func sub(x, y *bsrational.Rational) *bsrational.Rational {
	return new(bsrational.Rational).Sub(x, y)
}

func mul(x, y *bsrational.Rational) *bsrational.Rational {
	return new(bsrational.Rational).Mul(x, y)
}

func neg(x *bsrational.Rational) *bsrational.Rational {
	return new(bsrational.Rational).Neg(x)
}

// div divides by an operand the call site knows is nonzero.
func div(x, y *bsrational.Rational) *bsrational.Rational {
	q, err := new(bsrational.Rational).Div(x, y)
	if err != nil {
		panic("roots: division by zero in internal arithmetic")
	}
	return q
}
