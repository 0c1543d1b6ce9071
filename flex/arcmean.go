package flex

import "github.com/katalvlaran/flexgen/scalar"

// arcmean returns the split point tan((atan(lx)+atan(rx))/2). Mapping the
// endpoints through atan compresses the real line onto (−π/2, π/2), so the
// mean adapts to the transformed geometry and stays finite even when one
// endpoint is infinite. If rounding pushes the result outside the open
// interval (huge nearly-equal endpoints), fall back to a stride past the
// finite endpoint for tails and the midpoint otherwise.
func arcmean[S scalar.Float](lx, rx S) S {
	m := scalar.Tan(0.5 * (scalar.Atan(lx) + scalar.Atan(rx)))
	if m > lx && m < rx {
		return m
	}

	switch {
	case scalar.IsInf(lx, -1):
		return rx - scalar.Max(1, scalar.Abs(rx))
	case scalar.IsInf(rx, 1):
		return lx + scalar.Max(1, scalar.Abs(lx))
	}

	return lx + (rx-lx)/2
}
