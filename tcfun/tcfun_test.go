package tcfun_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/flexgen/tcfun"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

var cs = []float64{-2, -1, -0.5, 0, 0.5, 1, 1.5, 2}

// TestRoundTrip checks inverse(T_c(x), c) == x to within 4 ULPs over the
// reference grid of x and c values.
func TestRoundTrip(t *testing.T) {
	xs := []float64{0.5, 1, 1.5, 2, 2.5, 3}
	for _, c := range cs {
		for _, x := range xs {
			y := tcfun.Transform(x, c)
			back := tcfun.Inverse(y, c)
			assert.True(t, scalar.EqualWithinULP(x, back, 4),
				"inverse(transform(%v, c=%v)) = %v", x, c, back)
		}
	}
}

// TestTransform_Branch pins the branch convention: transformed values are
// negative for c < 0, positive for c > 0, and log-scale for c == 0.
func TestTransform_Branch(t *testing.T) {
	assert.Equal(t, math.Log(2), tcfun.Transform(2.0, 0.0), "T_0 is log")
	assert.Equal(t, 2.0, tcfun.Transform(2.0, 1.0), "T_1 is identity")
	assert.Equal(t, -0.5, tcfun.Transform(2.0, -1.0), "T_-1(x) = -1/x")
	assert.InDelta(t, -1/math.Sqrt2, tcfun.Transform(2.0, -0.5), 1e-15, "T_-1/2(x) = -1/sqrt(x)")
	assert.Equal(t, 4.0, tcfun.Transform(2.0, 2.0), "T_2(x) = x^2")
}

// TestInverse_Clamp maps off-branch arguments (hat below zero for c > 0)
// to density zero instead of NaN.
func TestInverse_Clamp(t *testing.T) {
	assert.Equal(t, 0.0, tcfun.Inverse(-0.25, 1.5), "c > 0, y < 0 clamps to 0")
	assert.Equal(t, 0.0, tcfun.Inverse(0.25, -0.5), "c < 0, y > 0 clamps to 0")
	assert.Equal(t, 0.25, tcfun.Inverse(0.25, 1.0), "on-branch passes through")
}

// TestAntiderivative_RoundTrip checks A_c and its inverse against each
// other across the c grid on branch-valid arguments.
func TestAntiderivative_RoundTrip(t *testing.T) {
	ys := []float64{0.25, 0.5, 1, 2, 4}
	for _, c := range cs {
		for _, y0 := range ys {
			y := y0
			if c < 0 {
				y = -y0 // valid branch for negative c
			}
			z := tcfun.Antiderivative(y, c)
			back := tcfun.InverseAntiderivative(z, c)
			assert.True(t, scalar.EqualWithinULP(y, back, 8),
				"invAntideriv(antideriv(%v, c=%v)) = %v", y, c, back)
		}
	}
}

// TestAntiderivative_ClosedForms pins the dedicated closed forms.
func TestAntiderivative_ClosedForms(t *testing.T) {
	assert.Equal(t, math.Exp(1.5), tcfun.Antiderivative(1.5, 0.0), "c=0: exp")
	assert.Equal(t, 1.125, tcfun.Antiderivative(1.5, 1.0), "c=1: y^2/2")
	assert.Equal(t, -math.Log(1.5), tcfun.Antiderivative(-1.5, -1.0), "c=-1: -log(-y)")
	assert.InDelta(t, 2.0/3, tcfun.Antiderivative(-1.5, -0.5), 1e-15, "c=-1/2: -1/y")
	assert.Equal(t, 0.0, tcfun.Antiderivative(-3.0, 2.0), "c>0 clamps negative y to 0")
	assert.Equal(t, 0.0, tcfun.Antiderivative(math.Inf(-1), -0.5), "tail limit is 0")
}

// TestAntiderivative_IsDerivative verifies dA/dy == T_c⁻¹ by a central
// difference at interior points of the branch.
func TestAntiderivative_IsDerivative(t *testing.T) {
	const h = 1e-6
	for _, c := range cs {
		y := 2.0
		if c < 0 {
			y = -2.0
		}
		d := (tcfun.Antiderivative(y+h, c) - tcfun.Antiderivative(y-h, c)) / (2 * h)
		assert.InDelta(t, tcfun.Inverse(y, c), d, 1e-5, "A'_c at %v (c=%v)", y, c)
	}
}

// TestTransformTriple applies the chain rule for c ≠ 0 and passes the
// log-density triple through for c == 0.
func TestTransformTriple(t *testing.T) {
	// c == 0: identity.
	tx, t1x, t2x := tcfun.TransformTriple(0.0, -1.0, 0.5, -2.0)
	assert.Equal(t, [3]float64{-1, 0.5, -2}, [3]float64{tx, t1x, t2x}, "c=0 passes through")

	// c = 1: T(t) = t = exp(f0); T' = t·f1; T'' = t·(f1² + f2).
	f0, f1, f2 := -0.5, 0.25, -1.5
	e := math.Exp(f0)
	tx, t1x, t2x = tcfun.TransformTriple(1.0, f0, f1, f2)
	require.InDelta(t, e, tx, 1e-15)
	require.InDelta(t, e*f1, t1x, 1e-15)
	require.InDelta(t, e*(f1*f1+f2), t2x, 1e-15)

	// c = -0.5 against a hand-computed chain rule.
	c := -0.5
	q := -math.Pow(e, c)
	tx, t1x, t2x = tcfun.TransformTriple(c, f0, f1, f2)
	require.InDelta(t, q, tx, 1e-15)
	require.InDelta(t, c*q*f1, t1x, 1e-15)
	require.InDelta(t, c*q*(c*f1*f1+f2), t2x, 1e-15)
}

// TestTransformTriple_Numeric cross-checks the chain rule against numeric
// differentiation of x ↦ T_c(exp(f0(x))) for a nontrivial log-density.
func TestTransformTriple_Numeric(t *testing.T) {
	f0 := func(x float64) float64 { return -x*x*x*x + 5*x*x - 4 }
	f1 := func(x float64) float64 { return -4*x*x*x + 10*x }
	f2 := func(x float64) float64 { return -12*x*x + 10 }
	tc := func(x, c float64) float64 { return tcfun.Transform(math.Exp(f0(x)), c) }

	const h = 1e-5
	for _, c := range []float64{-0.5, 0.5, 1, 1.5} {
		for _, x := range []float64{-1.2, 0.3, 1.7} {
			tx, t1x, t2x := tcfun.TransformTriple(c, f0(x), f1(x), f2(x))
			assert.InDelta(t, tc(x, c), tx, 1e-10, "value c=%v x=%v", c, x)
			num1 := (tc(x+h, c) - tc(x-h, c)) / (2 * h)
			assert.InEpsilon(t, t1x, num1, 1e-5, "1st derivative c=%v x=%v", c, x)
			num2 := (tc(x+h, c) - 2*tc(x, c) + tc(x-h, c)) / (h * h)
			assert.InEpsilon(t, t2x, num2, 1e-3, "2nd derivative c=%v x=%v", c, x)
		}
	}
}
