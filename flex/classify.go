package flex

import "github.com/katalvlaran/flexgen/scalar"

// vanishesLeft reports whether the transformed density is zero at lx:
// T_c maps density 0 to 0 for c > 0 and to -Inf for c ≤ 0.
func (iv *interval[S]) vanishesLeft() bool {
	return (iv.c > 0 && iv.ltx == 0) || (iv.c <= 0 && scalar.IsInf(iv.ltx, -1))
}

func (iv *interval[S]) vanishesRight() bool {
	return (iv.c > 0 && iv.rtx == 0) || (iv.c <= 0 && scalar.IsInf(iv.rtx, -1))
}

// secantSlope returns R, the chord slope of the transformed density.
func (iv *interval[S]) secantSlope() S {
	return (iv.rtx - iv.ltx) / (iv.rx - iv.lx)
}

// determineType labels the interval by the shape of its transformed
// density. The decision procedure, in order:
//
//  1. lx = -Inf: the tail must be concave and increasing at rx → T4a.
//  2. rx = +Inf: concave and decreasing at lx → T4a.
//  3. Density vanishing at one endpoint: the opposite endpoint's curvature
//     picks T4a (concave) or, for c > 0, T4b (convex). For c ≤ 0 the
//     transformed value at the vanishing end is -Inf, which a convex
//     function cannot attain next to finite interior values, so only the
//     concave branch is admissible there.
//  4. c < 0 with a zero endpoint value (the density diverges there) and
//     positive curvature opposite → T4b.
//  5. Otherwise compare endpoint derivatives with the secant slope R and
//     curvature signs: same side of R → T1; uniform curvature → T4;
//     bracketing R with one curvature change → T2 (from above) or T3
//     (from below).
//
// Anything else is Undefined: the interval straddles more than one
// inflection point (or numerical noise makes it look that way), and the
// initial partition must be refined by the caller.
func determineType[S scalar.Float](iv *interval[S]) FunType {
	if scalar.IsInf(iv.lx, -1) {
		if iv.rt2x < 0 && iv.rt1x > 0 {
			return T4a
		}

		return Undefined
	}
	if scalar.IsInf(iv.rx, 1) {
		if iv.lt2x < 0 && iv.lt1x < 0 {
			return T4a
		}

		return Undefined
	}

	if iv.vanishesLeft() {
		switch {
		case iv.rt2x < 0:
			return T4a
		case iv.c > 0 && iv.rt2x > 0:
			return T4b
		case iv.c > 0 && iv.rt2x == 0:
			return T4a
		}

		return Undefined
	}
	if iv.vanishesRight() {
		switch {
		case iv.lt2x < 0:
			return T4a
		case iv.c > 0 && iv.lt2x > 0:
			return T4b
		case iv.c > 0 && iv.lt2x == 0:
			return T4a
		}

		return Undefined
	}

	if iv.c < 0 && ((iv.ltx == 0 && iv.rt2x > 0) || (iv.rtx == 0 && iv.lt2x > 0)) {
		return T4b
	}

	r := iv.secantSlope()
	if scalar.IsNaN(r) {
		return Undefined
	}

	switch {
	case iv.lt1x >= r && iv.rt1x >= r:
		return T1a
	case iv.lt1x <= r && iv.rt1x <= r:
		return T1b
	case iv.lt2x <= 0 && iv.rt2x <= 0:
		return T4a
	case iv.lt2x >= 0 && iv.rt2x >= 0:
		return T4b
	}

	if iv.lt1x >= r && r >= iv.rt1x {
		if iv.lt2x <= 0 && iv.rt2x >= 0 {
			return T2a
		}
		if iv.lt2x >= 0 && iv.rt2x <= 0 {
			return T2b
		}
	}
	if iv.lt1x <= r && r <= iv.rt1x {
		if iv.lt2x <= 0 && iv.rt2x >= 0 {
			return T3a
		}
		if iv.lt2x >= 0 && iv.rt2x <= 0 {
			return T3b
		}
	}

	return Undefined
}
