// Package tcfun implements the T_c transformation family used by
// transformed density rejection:
//
//	T_0(x) = log(x)
//	T_c(x) = sign(c)·x^c   (c ≠ 0)
//
// plus the pieces the sampling kernel needs along a linear hat: the inverse
// T_c⁻¹, the antiderivative of T_c⁻¹, and that antiderivative's inverse.
// The frequent parameters c ∈ {0, 1, −1/2, −1} take dedicated closed forms;
// the general case goes through the power rule.
//
// Branch convention: a density is nonnegative, so valid transformed values
// satisfy sign(c)·y ≥ 0 (y ≤ 0 for c < 0, y ≥ 0 for c > 0). For c > 0 the
// inverse and antiderivative clamp arguments outside the branch to zero
// density — a hat line may cross zero where the density's support ends.
package tcfun
