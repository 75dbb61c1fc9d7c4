package roots

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"exactnum/bsrational"
)

// SolveQuadratic returns the distinct real roots of p0 + p1 z + p2 z^2
// mapped to their multiplicities. p2 must be nonzero. A negative
// discriminant yields an empty map: the conjugate pair is not reported.
func SolveQuadratic[T constraints.Float](p0, p1, p2 *bsrational.Rational) (map[T]int, error) {
	if p2.Sign() == 0 {
		return nil, fmt.Errorf("SolveQuadratic: leading coefficient is zero")
	}
	roots := make(map[T]int)

	// discriminant p1^2 - 4 p0 p2, exact
	discriminant := sub(mul(p1, p1), mul(rational(4), mul(p0, p2)))
	switch {
	case discriminant.Sign() < 0:
		// conjugate pair only
	case discriminant.Sign() == 0:
		root := neg(div(p1, mul(rational(2), p2)))
		roots[T(root.Float64())] = 2
	default:
		midpoint := neg(div(p1, mul(rational(2), p2))).Float64()
		halfSpan := math.Sqrt(discriminant.Float64()) / (2 * math.Abs(p2.Float64()))
		roots[T(midpoint-halfSpan)]++
		roots[T(midpoint+halfSpan)]++
	}
	return roots, nil
}

// SolveDepressedQuadratic returns the distinct real roots of c0 + z^2
// mapped to their multiplicities.
func SolveDepressedQuadratic[T constraints.Float](c0 *bsrational.Rational) map[T]int {
	roots := make(map[T]int)
	switch {
	case c0.Sign() > 0:
		// conjugate pair only
	case c0.Sign() == 0:
		roots[T(0)] = 2
	default:
		s := math.Sqrt(-c0.Float64())
		roots[T(s)]++
		roots[T(-s)]++
	}
	return roots
}

// ClassifyQuadratic returns the multiplicity pattern of the real roots
// of p0 + p1 z + p2 z^2: [1 1], [2] or []. p2 must be nonzero.
func ClassifyQuadratic(p0, p1, p2 *bsrational.Rational) ([]int, error) {
	if p2.Sign() == 0 {
		return nil, fmt.Errorf("ClassifyQuadratic: leading coefficient is zero")
	}
	discriminant := sub(mul(p1, p1), mul(rational(4), mul(p0, p2)))
	switch {
	case discriminant.Sign() < 0:
		return []int{}, nil
	case discriminant.Sign() == 0:
		return []int{2}, nil
	default:
		return []int{1, 1}, nil
	}
}
