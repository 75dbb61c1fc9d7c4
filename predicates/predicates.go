// Package predicates provides sign-exact geometric tests on native
// float64 inputs. Each predicate converts its inputs to exact bsnumber
// values and evaluates a determinant with exact +, - and *, so the
// returned sign is the true mathematical sign even when the determinant
// is many orders of magnitude smaller than the inputs — the regime where
// a native floating-point evaluation silently flips classifications.
// No division is required, so the plain bsnumber layer suffices.
package predicates

import (
	"exactnum/bsnumber"
)

// Order2 returns the exact sign of the determinant
//
//	| a  b |
//	| c  d |
func Order2(a, b, c, d float64) int {
	var ad, bc, determinant bsnumber.Number
	ad.Mul(bsnumber.FromFloat64(a), bsnumber.FromFloat64(d))
	bc.Mul(bsnumber.FromFloat64(b), bsnumber.FromFloat64(c))
	determinant.Sub(&ad, &bc)
	return determinant.Sign()
}

// Order3 returns the exact sign of the determinant of the row-major
// 3x3 matrix m.
func Order3(m [9]float64) int {
	var entry [9]*bsnumber.Number
	for i, value := range m {
		entry[i] = bsnumber.FromFloat64(value)
	}
	// Cofactor expansion along the first row.
	var total bsnumber.Number
	for column := 0; column < 3; column++ {
		minor := minor2(entry, column)
		var term bsnumber.Number
		term.Mul(entry[column], minor)
		if column == 1 {
			total.Sub(&total, &term)
		} else {
			total.Add(&total, &term)
		}
	}
	return total.Sign()
}

// minor2 returns the 2x2 minor of the first row's given column.
func minor2(entry [9]*bsnumber.Number, column int) *bsnumber.Number {
	columns := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	c0, c1 := columns[column][0], columns[column][1]
	var p, q, minor bsnumber.Number
	p.Mul(entry[3+c0], entry[6+c1])
	q.Mul(entry[3+c1], entry[6+c0])
	minor.Sub(&p, &q)
	return &minor
}

// Orient2D returns +1 when the point triple (a, b, c) makes a
// counterclockwise turn, -1 for clockwise and 0 for exactly collinear.
// The differences b-a and c-a are formed in exact arithmetic, not in
// float64, so no cancellation error precedes the determinant.
func Orient2D(ax, ay, bx, by, cx, cy float64) int {
	a0 := bsnumber.FromFloat64(ax)
	a1 := bsnumber.FromFloat64(ay)
	var ux, uy, vx, vy bsnumber.Number
	ux.Sub(bsnumber.FromFloat64(bx), a0)
	uy.Sub(bsnumber.FromFloat64(by), a1)
	vx.Sub(bsnumber.FromFloat64(cx), a0)
	vy.Sub(bsnumber.FromFloat64(cy), a1)
	var p, q, determinant bsnumber.Number
	p.Mul(&ux, &vy)
	q.Mul(&uy, &vx)
	determinant.Sub(&p, &q)
	return determinant.Sign()
}
