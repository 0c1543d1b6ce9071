package tcfun

import "github.com/katalvlaran/flexgen/scalar"

// sgn returns sign(c) as a scalar factor.
func sgn[S scalar.Float](c S) S {
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	}

	return 0
}

// Transform returns T_c(x): log(x) for c == 0, sign(c)·x^c otherwise.
// x must be positive (it is a density value).
func Transform[S scalar.Float](x, c S) S {
	if c == 0 {
		return scalar.Log(x)
	}

	return sgn(c) * scalar.Pow(x, c)
}

// Inverse returns the unique x with T_c(x) == y on the valid branch.
// Arguments outside the branch (possible for c > 0 where a hat line runs
// below zero) map to density 0.
func Inverse[S scalar.Float](y, c S) S {
	switch {
	case c == 0:
		return scalar.Exp(y)
	case sgn(c)*y < 0:
		return 0
	case c == -1:
		return -1 / y
	case c == -0.5:
		return 1 / (y * y)
	case c == 1:
		return y
	}

	return scalar.Pow(scalar.Abs(y), 1/c)
}

// Antiderivative returns A_c(y), an antiderivative (in y) of T_c⁻¹. For
// c > −1 it is normalized so that A_c(y) → 0 as y approaches the
// zero-density end of the branch; for c ≤ −1 it diverges there. Closed
// forms:
//
//	c = 0:    exp(y)
//	c = 1:    y²/2
//	c = −1:   −log(−y)
//	c = −1/2: −1/y
//	general:  c·sign(c)/(c+1) · |y|^((c+1)/c)
func Antiderivative[S scalar.Float](y, c S) S {
	switch {
	case c == 0:
		return scalar.Exp(y)
	case c == 1:
		if y <= 0 {
			return 0
		}

		return y * y / 2
	case c == -1:
		return -scalar.Log(-y)
	case c == -0.5:
		return -1 / y
	case c > 0:
		if y <= 0 {
			return 0
		}
	case scalar.IsInf(y, -1):
		// -1 < c < 0 tail limit: |y|^((c+1)/c) → 0.
		return 0
	}

	return c * sgn(c) / (c + 1) * scalar.Pow(scalar.Abs(y), (c+1)/c)
}

// InverseAntiderivative solves A_c(y) == z for y on the valid branch.
// It round-trips with Antiderivative to within a few ULPs.
func InverseAntiderivative[S scalar.Float](z, c S) S {
	switch {
	case c == 0:
		return scalar.Log(z)
	case c == 1:
		return scalar.Sqrt(2 * z)
	case c == -1:
		return -scalar.Exp(-z)
	case c == -0.5:
		return -1 / z
	}

	k := c * sgn(c) / (c + 1)

	return sgn(c) * scalar.Pow(scalar.Abs(z/k), c/(c+1))
}

// TransformTriple rewrites a (log-density, 1st, 2nd derivative) triple at a
// point into T_c space via the chain rule. For c == 0 the log-density is
// already the T_0-transformed density, so the triple passes through.
func TransformTriple[S scalar.Float](c, f0, f1, f2 S) (tx, t1x, t2x S) {
	if c == 0 {
		return f0, f1, f2
	}

	q := sgn(c) * scalar.Pow(scalar.Exp(f0), c)

	return q, c * q * f1, c * q * (c*f1*f1 + f2)
}
