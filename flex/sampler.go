package flex

import (
	"sync/atomic"

	"github.com/katalvlaran/flexgen/discrete"
	"github.com/katalvlaran/flexgen/randx"
	"github.com/katalvlaran/flexgen/scalar"
	"github.com/katalvlaran/flexgen/tcfun"
)

// Sampler draws variates from the density it was built for. Immutable
// after New; safe for concurrent use as long as each goroutine owns its
// random source.
type Sampler[S scalar.Float] struct {
	f0           Func[S]
	ivs          []FlexInterval[S]
	ds           *discrete.Sampler[S]
	hatTotal     S
	squeezeTotal S
	violations   atomic.Uint64
}

// invertHat maps a uniform u ∈ [0,1) to a candidate inside iv by inverting
// the CDF of T_c⁻¹(hat) on [Lx, Rx]. The frequent c values take series
// fallbacks where the closed form cancels; a nearly flat hat over a finite
// interval degenerates to linear interpolation.
func invertHat[S scalar.Float](iv *FlexInterval[S], u S) S {
	slope := iv.Hat.Slope
	finite := scalar.IsFinite(iv.Lx) && scalar.IsFinite(iv.Rx)
	if scalar.Abs(slope) < scalar.ScaleTol[S](1e-10) {
		if !finite {
			return scalar.NaN[S]()
		}

		return (1-u)*iv.Lx + u*iv.Rx
	}

	ub := u * iv.HatArea // area below the hat, left of the candidate
	yl := iv.Hat.Eval(iv.Lx)
	tol := scalar.ScaleTol[S](1e-6)

	switch {
	case iv.C == 0:
		e := scalar.Exp(-yl)
		z := ub * slope * e
		if scalar.Abs(z) < tol {
			return iv.Lx + ub*e*(1-z/2+z*z/3)
		}

		return iv.Hat.Inverse(scalar.Log(slope*ub + scalar.Exp(yl)))
	case iv.C == -0.5:
		w := slope * ub * yl
		if scalar.Abs(w) < tol {
			return iv.Lx + ub*yl*yl*(1+w+w*w)
		}
		a0 := -1 / yl // A(yl); the -Inf tail limit is 0

		return iv.Hat.Inverse(-1 / (a0 + slope*ub))
	case iv.C == 1:
		k := yl
		z := slope * ub / (k * k)
		if scalar.Abs(z) < tol {
			return iv.Lx + ub/k*(1-z/2+z*z/2)
		}

		return iv.Hat.Inverse(scalar.Sqrt(k*k + 2*slope*ub))
	}

	return iv.Hat.Inverse(tcfun.InverseAntiderivative(
		slope*ub+tcfun.Antiderivative(yl, iv.C), iv.C))
}

// Sample returns one variate. It loops rejection rounds until acceptance:
// draw an interval proportional to hat area, invert the hat CDF at a
// uniform, then accept against the squeeze (no density evaluation) or the
// density itself. Numerical failures — a candidate escaping its interval
// by more than a few ULPs, or the envelopes crossing — reject the round,
// bump InvariantViolations and continue.
func (s *Sampler[S]) Sample(src randx.Source) S {
	for {
		iv := &s.ivs[s.ds.Draw(S(src.Float64()))]
		u := S(src.Float64())
		x := invertHat(iv, u)

		bound := func(b S) S {
			if scalar.IsFinite(b) {
				return scalar.Abs(b)
			}

			return 0
		}
		slack := 4 * scalar.Eps[S]() * scalar.Max(1, scalar.Max(bound(iv.Lx), bound(iv.Rx)))
		if !scalar.IsFinite(x) ||
			(scalar.IsFinite(iv.Lx) && x < iv.Lx-slack) ||
			(scalar.IsFinite(iv.Rx) && x > iv.Rx+slack) {
			s.violations.Add(1)

			continue
		}
		x = scalar.Max(x, iv.Lx)
		x = scalar.Min(x, iv.Rx)

		hatX := iv.Hat.Eval(x)
		invHatX := tcfun.Inverse(hatX, iv.C)
		invSqzX := S(0)
		if iv.SqueezeArea > 0 {
			sqzX := iv.Squeeze.Eval(x)
			if hatX < sqzX {
				s.violations.Add(1)

				continue
			}
			invSqzX = tcfun.Inverse(sqzX, iv.C)
		}

		t := S(src.Float64()) * invHatX
		if invSqzX > 0 && t <= invSqzX {
			return x
		}
		if t <= scalar.Exp(s.f0(x)) {
			return x
		}
	}
}

// Intervals returns a copy of the frozen interval table, ordered by Lx.
func (s *Sampler[S]) Intervals() []FlexInterval[S] {
	out := make([]FlexInterval[S], len(s.ivs))
	copy(out, s.ivs)

	return out
}

// Rho returns the achieved efficiency Σhat/Σsqueeze. The expected number
// of density evaluations per accepted sample is at most this ratio.
func (s *Sampler[S]) Rho() S {
	if !(s.squeezeTotal > 0) {
		return scalar.Inf[S](1)
	}

	return s.hatTotal / s.squeezeTotal
}

// TotalHatArea returns the compensated sum of all hat areas.
func (s *Sampler[S]) TotalHatArea() S { return s.hatTotal }

// TotalSqueezeArea returns the compensated sum of all squeeze areas.
func (s *Sampler[S]) TotalSqueezeArea() S { return s.squeezeTotal }

// InvariantViolations reports how many rejection rounds were discarded for
// numerical invariant failures. A nonzero count is harmless; a count
// growing linearly with draws indicates an ill-conditioned setup.
func (s *Sampler[S]) InvariantViolations() uint64 {
	return s.violations.Load()
}
