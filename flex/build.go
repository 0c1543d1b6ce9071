package flex

import (
	"github.com/katalvlaran/flexgen/linfun"
	"github.com/katalvlaran/flexgen/scalar"
	"github.com/katalvlaran/flexgen/tcfun"
)

// area integrates T_c⁻¹(f(x)) over [lx, rx] for a linear f in closed form:
//
//	c = 0:      (exp(f(rx)) − exp(f(lx))) / slope
//	otherwise:  (A_c(f(rx)) − A_c(f(lx))) / slope
//
// with a Taylor (c = 0) or trapezoid fallback when |slope·(rx−lx)| is
// below the cancellation threshold.
func area[S scalar.Float](f linfun.LinearFun[S], lx, rx, c S) S {
	d := rx - lx
	yl, yr := f.Eval(lx), f.Eval(rx)
	s := f.Slope
	z := s * d

	if c == 0 {
		if scalar.Abs(z) < scalar.ScaleTol[S](1e-10) {
			return scalar.Exp(yl) * d * (1 + z/2 + z*z/6)
		}

		return (scalar.Exp(yr) - scalar.Exp(yl)) / s
	}
	if scalar.IsNaN(z) || scalar.Abs(z) < scalar.ScaleTol[S](1e-10) {
		return d * (tcfun.Inverse(yl, c) + tcfun.Inverse(yr, c)) / 2
	}

	return (tcfun.Antiderivative(yr, c) - tcfun.Antiderivative(yl, c)) / s
}

// usableTangent reports whether a tangent can be anchored at (x, tx) with
// slope t1x: everything involved has to be finite.
func usableTangent[S scalar.Float](x, tx, t1x S) bool {
	return scalar.IsFinite(x) && scalar.IsFinite(tx) && scalar.IsFinite(t1x)
}

// buildHatSqueeze selects the hat and squeeze lines for a classified
// interval and integrates them.
//
// Selection table (tan_l/tan_r are endpoint tangents, sec the secant):
//
//	T1a: hat tan_l, squeeze tan_r     T1b: hat tan_r, squeeze tan_l
//	T2a: hat tan_l, squeeze sec       T2b: hat tan_r, squeeze sec
//	T3a: hat sec,   squeeze tan_r     T3b: hat sec,   squeeze tan_l
//	T4a: hat tangent whose slope is nearer R, squeeze sec
//	T4b: hat sec,   squeeze tangent whose slope is nearer R
//
// An unusable squeeze (typical on unbounded intervals, where the secant
// has no finite anchor) is recorded with NaN slope and zero area; the
// kernel then always falls through to the density test. An unusable hat
// means the classification was inconsistent, reported as !ok.
//
// Rounding cannot be allowed to flip the envelope ordering, so a hat
// integral that comes out NaN or negative is clamped up to +Inf (forcing
// the setup loop to split the interval first) and a squeeze integral that
// comes out NaN, negative or infinite is clamped down to 0.
func buildHatSqueeze[S scalar.Float](iv *interval[S]) (ok bool) {
	var tanL, tanR, sec linfun.LinearFun[S]
	tanLOK := usableTangent(iv.lx, iv.ltx, iv.lt1x)
	tanROK := usableTangent(iv.rx, iv.rtx, iv.rt1x)
	secOK := scalar.IsFinite(iv.ltx) && scalar.IsFinite(iv.rtx)
	if tanLOK {
		tanL = linfun.Tangent(iv.lx, iv.ltx, iv.lt1x)
	}
	if tanROK {
		tanR = linfun.Tangent(iv.rx, iv.rtx, iv.rt1x)
	}
	if secOK {
		sec = linfun.Secant(iv.lx, iv.rx, iv.ltx, iv.rtx)
	}

	// closerTangent picks the endpoint tangent whose slope is nearer the
	// chord slope; with only one usable candidate there is no choice.
	closerTangent := func() (linfun.LinearFun[S], bool) {
		switch {
		case tanLOK && !tanROK:
			return tanL, true
		case tanROK && !tanLOK:
			return tanR, true
		case !tanLOK && !tanROK:
			return linfun.Undefined[S](), false
		}
		r := iv.secantSlope()
		if !scalar.IsFinite(r) || scalar.Abs(iv.lt1x-r) <= scalar.Abs(iv.rt1x-r) {
			return tanL, true
		}

		return tanR, true
	}

	var hat, squeeze linfun.LinearFun[S]
	hatOK, squeezeOK := false, false
	switch iv.typ {
	case T1a:
		hat, hatOK = tanL, tanLOK
		squeeze, squeezeOK = tanR, tanROK
	case T1b:
		hat, hatOK = tanR, tanROK
		squeeze, squeezeOK = tanL, tanLOK
	case T2a:
		hat, hatOK = tanL, tanLOK
		squeeze, squeezeOK = sec, secOK
	case T2b:
		hat, hatOK = tanR, tanROK
		squeeze, squeezeOK = sec, secOK
	case T3a:
		hat, hatOK = sec, secOK
		squeeze, squeezeOK = tanR, tanROK
	case T3b:
		hat, hatOK = sec, secOK
		squeeze, squeezeOK = tanL, tanLOK
	case T4a:
		hat, hatOK = closerTangent()
		squeeze, squeezeOK = sec, secOK
	case T4b:
		hat, hatOK = sec, secOK
		squeeze, squeezeOK = closerTangent()
	default:
		return false
	}
	if !hatOK {
		return false
	}

	iv.hat = hat
	iv.hatArea = area(hat, iv.lx, iv.rx, iv.c)
	if scalar.IsNaN(iv.hatArea) || iv.hatArea < 0 {
		iv.hatArea = scalar.Inf[S](1)
	}

	iv.squeeze = linfun.Undefined[S]()
	iv.squeezeArea = 0
	if squeezeOK {
		a := area(squeeze, iv.lx, iv.rx, iv.c)
		if scalar.IsFinite(a) && a > 0 {
			iv.squeeze = squeeze
			iv.squeezeArea = scalar.Min(a, iv.hatArea)
		}
	}

	return true
}
