package roots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"exactnum/bsrational"
)

// requireRoot asserts that roots contains a key within tolerance of
// expected, carrying the given multiplicity.
func requireRoot(t *testing.T, roots map[float64]int, expected float64, multiplicity int, tolerance float64) {
	t.Helper()
	for root, m := range roots {
		if math.Abs(root-expected) <= tolerance {
			assert.Equal(t, multiplicity, m, "multiplicity of root near %g", expected)
			return
		}
	}
	assert.Failf(t, "missing root", "no root within %g of %g in %v", tolerance, expected, roots)
}

func TestTripleRootAtOrigin(t *testing.T) {
	// z^3: the triple root is reported exactly.
	roots, err := SolveCubic[float64](rational(0), rational(0), rational(0), rational(1))
	assert.NoError(t, err)
	assert.Equal(t, map[float64]int{0: 3}, roots)
}

func TestThreeSimpleRoots(t *testing.T) {
	// (z-1)(z-2)(z-3) = -6 + 11z - 6z^2 + z^3.
	roots, err := SolveCubic[float64](rational(-6), rational(11), rational(-6), rational(1))
	assert.NoError(t, err)
	assert.Len(t, roots, 3)
	requireRoot(t, roots, 1, 1, 1e-8)
	requireRoot(t, roots, 2, 1, 1e-8)
	requireRoot(t, roots, 3, 1, 1e-8)
}

func TestDepressedWithRootAtOrigin(t *testing.T) {
	// z^3 - 3z = z (z^2 - 3): the origin root is exact.
	roots, err := SolveCubic[float64](rational(0), rational(-3), rational(0), rational(1))
	assert.NoError(t, err)
	assert.Len(t, roots, 3)
	assert.Equal(t, 1, roots[0])
	requireRoot(t, roots, math.Sqrt(3), 1, 1e-8)
	requireRoot(t, roots, -math.Sqrt(3), 1, 1e-8)
}

func TestSingleRealRoot(t *testing.T) {
	// z^3 = 4: one real root, the conjugate pair is not reported.
	roots, err := SolveCubic[float64](rational(-4), rational(0), rational(0), rational(1))
	assert.NoError(t, err)
	assert.Len(t, roots, 1)
	requireRoot(t, roots, math.Cbrt(4), 1, 1e-8)
}

func TestNegativeDiscriminant(t *testing.T) {
	// z^3 + z + 1 has discriminant -31: one real root near -0.6823278.
	roots, err := SolveCubic[float64](rational(1), rational(1), rational(0), rational(1))
	assert.NoError(t, err)
	assert.Len(t, roots, 1)
	requireRoot(t, roots, -0.6823278038280193, 1, 1e-8)
}

func TestDoubleRootIsExact(t *testing.T) {
	// z^3 - 3z + 2 = (z-1)^2 (z+2): zero discriminant, both roots
	// rational and therefore computed exactly.
	roots, err := SolveCubic[float64](rational(2), rational(-3), rational(0), rational(1))
	assert.NoError(t, err)
	assert.Equal(t, map[float64]int{1: 2, -2: 1}, roots)
}

func TestNonMonicAndShifted(t *testing.T) {
	// Scaling every coefficient leaves the roots unchanged.
	scale, err := bsrational.FromRatio(7, 3)
	assert.NoError(t, err)
	coefficient := func(v int64) *bsrational.Rational {
		return mul(rational(v), scale)
	}
	roots, err := SolveCubic[float64](coefficient(2), coefficient(-3), coefficient(0), coefficient(1))
	assert.NoError(t, err)
	assert.Equal(t, map[float64]int{1: 2, -2: 1}, roots)

	// (z-5)^2 (z-1) = -25 + 35z - 11z^2 + z^3 exercises a nonzero
	// depression offset on the zero-discriminant path.
	roots, err = SolveCubic[float64](rational(-25), rational(35), rational(-11), rational(1))
	assert.NoError(t, err)
	assert.Equal(t, map[float64]int{5: 2, 1: 1}, roots)
}

func TestLeadingCoefficientZero(t *testing.T) {
	_, err := SolveCubic[float64](rational(1), rational(1), rational(1), rational(0))
	assert.EqualError(t, err, "SolveCubic: leading coefficient is zero")
	_, err = ClassifyCubic(rational(1), rational(1), rational(1), rational(0))
	assert.Error(t, err)
}

func TestDepressedSolverMatchesGeneral(t *testing.T) {
	cases := [][2]int64{{2, -3}, {0, -3}, {-4, 0}, {1, 1}, {0, 0}, {0, 5}}
	for _, c := range cases {
		c0, c1 := rational(c[0]), rational(c[1])
		depressed, err := SolveDepressedCubic[float64](c0, c1)
		assert.NoError(t, err)
		general, err := SolveCubic[float64](c0, c1, rational(0), rational(1))
		assert.NoError(t, err)
		assert.Equal(t, general, depressed, "c0=%d c1=%d", c[0], c[1])
	}
}

func TestClassifyCubic(t *testing.T) {
	classify := func(p0, p1, p2, p3 int64) []int {
		pattern, err := ClassifyCubic(rational(p0), rational(p1), rational(p2), rational(p3))
		assert.NoError(t, err)
		return pattern
	}
	assert.Equal(t, []int{1, 1, 1}, classify(-6, 11, -6, 1))
	assert.Equal(t, []int{1, 2}, classify(2, -3, 0, 1))
	assert.Equal(t, []int{3}, classify(0, 0, 0, 1))
	assert.Equal(t, []int{1}, classify(-4, 0, 0, 1))
	assert.Equal(t, []int{1}, classify(1, 1, 0, 1))
	assert.Equal(t, []int{3}, classify(-1, 3, -3, 1)) // (z-1)^3
}

func TestClassifyDepressedCubic(t *testing.T) {
	// All branches of the c0 == 0 factorization.
	assert.Equal(t, []int{1}, ClassifyDepressedCubic(rational(0), rational(5)))
	assert.Equal(t, []int{3}, ClassifyDepressedCubic(rational(0), rational(0)))
	assert.Equal(t, []int{1, 1, 1}, ClassifyDepressedCubic(rational(0), rational(-3)))
	// c1 == 0 with nonzero c0.
	assert.Equal(t, []int{1}, ClassifyDepressedCubic(rational(-4), rational(0)))
	// Discriminant sign cases.
	assert.Equal(t, []int{1, 1, 1}, ClassifyDepressedCubic(rational(1), rational(-3)))
	assert.Equal(t, []int{1}, ClassifyDepressedCubic(rational(1), rational(1)))
	assert.Equal(t, []int{1, 2}, ClassifyDepressedCubic(rational(2), rational(-3)))
}

func TestFloat32Instantiation(t *testing.T) {
	roots, err := SolveCubic[float32](rational(2), rational(-3), rational(0), rational(1))
	assert.NoError(t, err)
	assert.Equal(t, map[float32]int{1: 2, -2: 1}, roots)
}
