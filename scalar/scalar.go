package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for all flexgen algorithms.
type Float = constraints.Float

// is32 reports whether S has float32 precision. 2⁻⁴⁰ is far below float32's
// epsilon, so 1+2⁻⁴⁰ rounds back to 1 exactly in float32 and not in float64.
func is32[S Float]() bool {
	return S(1)+S(0x1p-40) == S(1)
}

// Eps returns the machine epsilon of S.
func Eps[S Float]() S {
	if is32[S]() {
		return 0x1p-23
	}

	return 0x1p-52
}

// ScaleTol maps a float64-tuned tolerance onto S, scaling by the ratio of
// machine epsilons. For S = float64 it returns tol unchanged.
func ScaleTol[S Float](tol float64) S {
	return S(tol) * Eps[S]() * 0x1p52
}

// Abs returns |x|.
func Abs[S Float](x S) S {
	if x < 0 {
		return -x
	}

	return x
}

// Max returns the larger of a and b.
func Max[S Float](a, b S) S {
	if a > b {
		return a
	}

	return b
}

// Min returns the smaller of a and b.
func Min[S Float](a, b S) S {
	if a < b {
		return a
	}

	return b
}

// Exp returns e**x.
func Exp[S Float](x S) S { return S(math.Exp(float64(x))) }

// Log returns the natural logarithm of x.
func Log[S Float](x S) S { return S(math.Log(float64(x))) }

// Pow returns x**y.
func Pow[S Float](x, y S) S { return S(math.Pow(float64(x), float64(y))) }

// Sqrt returns the square root of x.
func Sqrt[S Float](x S) S { return S(math.Sqrt(float64(x))) }

// Atan returns the arctangent of x.
func Atan[S Float](x S) S { return S(math.Atan(float64(x))) }

// Tan returns the tangent of x.
func Tan[S Float](x S) S { return S(math.Tan(float64(x))) }

// NaN returns an S "not-a-number" value.
func NaN[S Float]() S { return S(math.NaN()) }

// Inf returns +∞ if sign >= 0, −∞ if sign < 0.
func Inf[S Float](sign int) S { return S(math.Inf(sign)) }

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN[S Float](x S) bool { return x != x }

// IsInf reports whether x is an infinity, according to sign:
// sign > 0 → +∞ only, sign < 0 → −∞ only, sign == 0 → either.
func IsInf[S Float](x S, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[S Float](x S) bool {
	return !IsNaN(x) && !math.IsInf(float64(x), 0)
}

// NextDown returns the greatest representable S value strictly below x.
func NextDown[S Float](x S) S {
	if is32[S]() {
		return S(math.Nextafter32(float32(x), float32(math.Inf(-1))))
	}

	return S(math.Nextafter(float64(x), math.Inf(-1)))
}

// NextUp returns the least representable S value strictly above x.
func NextUp[S Float](x S) S {
	if is32[S]() {
		return S(math.Nextafter32(float32(x), float32(math.Inf(1))))
	}

	return S(math.Nextafter(float64(x), math.Inf(1)))
}
