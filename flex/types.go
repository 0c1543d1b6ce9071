package flex

import (
	"github.com/katalvlaran/flexgen/linfun"
	"github.com/katalvlaran/flexgen/scalar"
)

// Func is a real-valued function of one real variable. New monomorphizes
// over it, so plain functions, closures and method values all work without
// interface dispatch in the hot loop.
type Func[S scalar.Float] func(S) S

// FunType tags the shape of the transformed density on one interval. The
// digit encodes how the endpoint derivatives relate to the secant slope R;
// the letter encodes the curvature at the left end (a = concave,
// b = convex). T2/T3 intervals contain exactly one inflection point, T4
// intervals none, T1 intervals one with both endpoint slopes on the same
// side of R.
type FunType uint8

const (
	// Undefined marks an interval violating the partition precondition.
	Undefined FunType = iota
	// T1a: both endpoint derivatives ≥ R; concave then convex.
	T1a
	// T1b: both endpoint derivatives ≤ R; convex then concave.
	T1b
	// T2a: derivatives bracket R from above; concave then convex.
	T2a
	// T2b: derivatives bracket R from above; convex then concave.
	T2b
	// T3a: derivatives bracket R from below; concave then convex.
	T3a
	// T3b: derivatives bracket R from below; convex then concave.
	T3b
	// T4a: concave on the whole interval.
	T4a
	// T4b: convex on the whole interval.
	T4b
)

// String implements fmt.Stringer.
func (ft FunType) String() string {
	switch ft {
	case T1a:
		return "T1a"
	case T1b:
		return "T1b"
	case T2a:
		return "T2a"
	case T2b:
		return "T2b"
	case T3a:
		return "T3a"
	case T3b:
		return "T3b"
	case T4a:
		return "T4a"
	case T4b:
		return "T4b"
	}

	return "undefined"
}

// interval is the mutable setup-time record: endpoints, transformation
// parameter, the transformed density and its first two derivatives at both
// ends, and the envelopes derived from them. The derivative caches are
// dropped when the sampler freezes.
type interval[S scalar.Float] struct {
	lx, rx S // endpoints, lx < rx; either may be ±Inf at the partition edge
	c      S

	ltx, lt1x, lt2x S // transformed density, 1st, 2nd derivative at lx
	rtx, rt1x, rt2x S // same at rx

	typ         FunType
	hat         linfun.LinearFun[S]
	squeeze     linfun.LinearFun[S] // undefined (NaN slope) when absent
	hatArea     S
	squeezeArea S // 0 when no consistent squeeze exists
}

// FlexInterval is the frozen per-interval record the sampler runs on.
type FlexInterval[S scalar.Float] struct {
	Lx, Rx      S
	C           S
	Hat         linfun.LinearFun[S]
	Squeeze     linfun.LinearFun[S]
	HatArea     S
	SqueezeArea S
}

// Options bounds the adaptive setup.
//
// Fields:
//   - MaxPoints     — cap on partition points (intervals + 1). Default 1000.
//   - MaxIterations — cap on refinement sweeps. Default 1000.
//
// When either cap is hit before the target ρ, New returns the sampler
// together with ErrEfficiencyNotReached.
type Options struct {
	MaxPoints     int
	MaxIterations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxPoints: 1000, MaxIterations: 1000}
}
