package linfun

import "github.com/katalvlaran/flexgen/scalar"

// LinearFun is a linear function y = A + Slope·(x − Pivot).
//
// A line whose Slope is NaN is "undefined"; flexgen uses that state for
// squeezes that cannot be constructed (Defined reports it).
type LinearFun[S scalar.Float] struct {
	Slope S // gradient of the line
	Pivot S // x coordinate of the anchor point
	A     S // function value at Pivot
}

// New constructs a linear function from slope, pivot and value at pivot.
func New[S scalar.Float](slope, pivot, a S) LinearFun[S] {
	return LinearFun[S]{Slope: slope, Pivot: pivot, A: a}
}

// Tangent returns the line through (x, y) with the given slope.
func Tangent[S scalar.Float](x, y, slope S) LinearFun[S] {
	return New(slope, x, y)
}

// Secant returns the chord through (lx, yl) and (rx, yr).
// The pivot is anchored at the endpoint with the larger ordinate; for the
// monotone segments the envelopes are made of, that keeps evaluation near
// the dominant end cancellation-free.
func Secant[S scalar.Float](lx, rx, yl, yr S) LinearFun[S] {
	slope := (yr - yl) / (rx - lx)
	if yl > yr {
		return New(slope, lx, yl)
	}

	return New(slope, rx, yr)
}

// Undefined returns the NaN line used for absent squeezes.
func Undefined[S scalar.Float]() LinearFun[S] {
	return New(scalar.NaN[S](), scalar.NaN[S](), scalar.NaN[S]())
}

// Defined reports whether the line is usable (Slope is not NaN).
func (f LinearFun[S]) Defined() bool {
	return !scalar.IsNaN(f.Slope)
}

// Eval returns the function value at x.
func (f LinearFun[S]) Eval(x S) S {
	return f.A + f.Slope*(x-f.Pivot)
}

// Inverse returns the x with Eval(x) == y. The slope must be nonzero.
func (f LinearFun[S]) Inverse(y S) S {
	return f.Pivot + (y-f.A)/f.Slope
}

// Intercept derives the classical y-axis intercept a − slope·pivot.
func (f LinearFun[S]) Intercept() S {
	return f.A - f.Slope*f.Pivot
}
