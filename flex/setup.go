package flex

import (
	"fmt"

	"github.com/katalvlaran/flexgen/discrete"
	"github.com/katalvlaran/flexgen/scalar"
	"github.com/katalvlaran/flexgen/tcfun"
)

// rawPoint caches one evaluation of (f0, f1, f2); the right endpoint of
// interval i is reused as the left endpoint of interval i+1.
type rawPoint[S scalar.Float] struct {
	f0, f1, f2 S
}

// setEnds fills the transformed endpoint triples of iv from raw values.
// At an infinite endpoint the density tends to zero, so the transformed
// value is the limit 0 (c > 0) or -Inf (c ≤ 0) and the derivatives are
// unusable.
func setEnds[S scalar.Float](iv *interval[S], l, r rawPoint[S]) {
	limit := func() S {
		if iv.c > 0 {
			return 0
		}

		return scalar.Inf[S](-1)
	}
	if scalar.IsFinite(iv.lx) {
		iv.ltx, iv.lt1x, iv.lt2x = tcfun.TransformTriple(iv.c, l.f0, l.f1, l.f2)
	} else {
		iv.ltx, iv.lt1x, iv.lt2x = limit(), scalar.NaN[S](), scalar.NaN[S]()
	}
	if scalar.IsFinite(iv.rx) {
		iv.rtx, iv.rt1x, iv.rt2x = tcfun.TransformTriple(iv.c, r.f0, r.f1, r.f2)
	} else {
		iv.rtx, iv.rt1x, iv.rt2x = limit(), scalar.NaN[S](), scalar.NaN[S]()
	}
}

// classifyAndBuild types the interval and derives its envelopes.
func classifyAndBuild[S scalar.Float](iv *interval[S]) bool {
	iv.typ = determineType(iv)
	if iv.typ == Undefined {
		return false
	}

	return buildHatSqueeze(iv)
}

// splitAt halves iv at m, reusing the cached endpoint triples and
// evaluating the density functions only at the new point. Both halves must
// classify and build; otherwise the split is abandoned and iv kept whole.
func splitAt[S scalar.Float](iv *interval[S], m S, f0, f1, f2 Func[S]) (left, right *interval[S], ok bool) {
	if !(m > iv.lx && m < iv.rx) || !scalar.IsFinite(m) {
		return nil, nil, false
	}
	v0 := f0(m)
	if scalar.IsNaN(v0) {
		return nil, nil, false
	}
	tx, t1x, t2x := tcfun.TransformTriple(iv.c, v0, f1(m), f2(m))

	left = &interval[S]{
		lx: iv.lx, rx: m, c: iv.c,
		ltx: iv.ltx, lt1x: iv.lt1x, lt2x: iv.lt2x,
		rtx: tx, rt1x: t1x, rt2x: t2x,
	}
	right = &interval[S]{
		lx: m, rx: iv.rx, c: iv.c,
		ltx: tx, lt1x: t1x, lt2x: t2x,
		rtx: iv.rtx, rt1x: iv.rt1x, rt2x: iv.rt2x,
	}
	if !classifyAndBuild(left) || !classifyAndBuild(right) {
		return nil, nil, false
	}

	return left, right, true
}

// validate checks every construction precondition and returns the
// per-interval transformation parameters (cs broadcast if needed).
func validate[S scalar.Float](f0, f1, f2 Func[S], points, cs []S, rho S, o Options) ([]S, error) {
	if f0 == nil || f1 == nil || f2 == nil {
		return nil, ErrNilFunction
	}
	if o.MaxPoints <= 0 || o.MaxIterations <= 0 {
		return nil, ErrOptions
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPointCount, len(points))
	}
	if scalar.IsNaN(rho) || scalar.IsInf(rho, 0) || rho <= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrRho, rho)
	}
	for i, p := range points {
		if scalar.IsNaN(p) {
			return nil, fmt.Errorf("%w: points[%d] is NaN", ErrNonMonotonePoints, i)
		}
		if i > 0 && i < len(points)-1 && !scalar.IsFinite(p) {
			return nil, fmt.Errorf("%w: points[%d]", ErrInteriorInfinite, i)
		}
		if i > 0 && p <= points[i-1] {
			return nil, fmt.Errorf("%w: points[%d] = %v", ErrNonMonotonePoints, i, p)
		}
	}

	k := len(points) - 1
	var perIv []S
	switch len(cs) {
	case k:
		perIv = append([]S(nil), cs...)
	case 1:
		perIv = make([]S, k)
		for i := range perIv {
			perIv[i] = cs[0]
		}
	default:
		return nil, fmt.Errorf("%w: got %d for %d intervals", ErrCsLength, len(cs), k)
	}
	for i, c := range perIv {
		if !scalar.IsFinite(c) {
			return nil, fmt.Errorf("%w: cs[%d] = %v", ErrBadC, i, c)
		}
	}
	if scalar.IsInf(points[0], -1) && perIv[0] <= -1 {
		return nil, fmt.Errorf("%w: cs[0] = %v", ErrUnboundedC, perIv[0])
	}
	if scalar.IsInf(points[k], 1) && perIv[k-1] <= -1 {
		return nil, fmt.Errorf("%w: cs[%d] = %v", ErrUnboundedC, k-1, perIv[k-1])
	}

	return perIv, nil
}

// New builds a Flex sampler for the density exp(f0).
//
// Inputs:
//   - f0, f1, f2 — log-density and its first two derivatives.
//   - points     — strictly increasing partition, ±Inf allowed at the ends;
//     each resulting interval may contain at most one inflection point of
//     the T_c-transformed density.
//   - cs         — transformation parameter per interval; a single entry
//     broadcasts. c > -1 is required next to an unbounded endpoint.
//   - rho        — target efficiency Σhat/Σsqueeze, finite and > 1.
//   - opts       — iteration/point budget; nil means DefaultOptions.
//
// Setup sweeps the partition once to classify, build and integrate each
// interval's envelopes, then repeatedly splits every interval whose excess
// hat-over-squeeze area exceeds the (next-representable-down) average, at
// the arcmean, until the global ratio meets rho or a budget runs out.
// Area totals are kept in compensated accumulators.
//
// Errors: the Err… sentinels in errors.go. ErrEfficiencyNotReached is
// special: the sampler returned alongside it is valid, only slower.
func New[S scalar.Float](f0, f1, f2 Func[S], points, cs []S, rho S, opts *Options) (*Sampler[S], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	perIv, err := validate(f0, f1, f2, points, cs, rho, o)
	if err != nil {
		return nil, err
	}

	// One density evaluation per finite partition point.
	raws := make([]rawPoint[S], len(points))
	for i, x := range points {
		if !scalar.IsFinite(x) {
			continue
		}
		v0 := f0(x)
		if scalar.IsNaN(v0) {
			return nil, fmt.Errorf("%w: f0(%v) is NaN", ErrNonFiniteDensity, x)
		}
		raws[i] = rawPoint[S]{f0: v0, f1: f1(x), f2: f2(x)}
	}

	k := len(points) - 1
	ivs := make([]*interval[S], 0, k)
	var hatSum, sqzSum scalar.Sum[S]
	for i := 0; i < k; i++ {
		iv := &interval[S]{lx: points[i], rx: points[i+1], c: perIv[i]}
		setEnds(iv, raws[i], raws[i+1])
		if !classifyAndBuild(iv) {
			return nil, fmt.Errorf("%w: interval %d [%v, %v] is %v",
				ErrUnsupportedPartition, i, iv.lx, iv.rx, iv.typ)
		}
		hatSum.Add(iv.hatArea)
		sqzSum.Add(iv.squeezeArea)
		ivs = append(ivs, iv)
	}

	// Adaptive refinement: split everything above the average excess, one
	// sweep per iteration, rebuilding the ordered slice in place-order.
	for iter := 0; iter < o.MaxIterations; iter++ {
		h, q := hatSum.Value(), sqzSum.Value()
		if q > 0 && h/q <= rho {
			break
		}
		room := (o.MaxPoints - 1) - len(ivs)
		if room <= 0 {
			break
		}
		// Next-down keeps boundary intervals (excess exactly average, e.g.
		// a partition of identical halves) eligible for splitting.
		avg := scalar.NextDown(h-q) / S(len(ivs))

		out := make([]*interval[S], 0, len(ivs)+room)
		anySplit := false
		for _, iv := range ivs {
			if room > 0 && iv.hatArea-iv.squeezeArea > avg {
				if l, r, ok := splitAt(iv, arcmean(iv.lx, iv.rx), f0, f1, f2); ok {
					hatSum.Sub(iv.hatArea)
					sqzSum.Sub(iv.squeezeArea)
					hatSum.Add(l.hatArea)
					hatSum.Add(r.hatArea)
					sqzSum.Add(l.squeezeArea)
					sqzSum.Add(r.squeezeArea)
					out = append(out, l, r)
					room--
					anySplit = true

					continue
				}
			}
			out = append(out, iv)
		}
		ivs = out
		if !anySplit {
			break
		}
	}

	// Freeze: drop the derivative caches, key the discrete sampler by hat
	// area.
	flat := make([]FlexInterval[S], len(ivs))
	areas := make([]S, len(ivs))
	for i, iv := range ivs {
		flat[i] = FlexInterval[S]{
			Lx: iv.lx, Rx: iv.rx, C: iv.c,
			Hat: iv.hat, Squeeze: iv.squeeze,
			HatArea: iv.hatArea, SqueezeArea: iv.squeezeArea,
		}
		areas[i] = iv.hatArea
	}
	ds, err := discrete.New(areas)
	if err != nil {
		return nil, fmt.Errorf("flex: building the interval sampler: %w", err)
	}

	s := &Sampler[S]{
		f0:           f0,
		ivs:          flat,
		ds:           ds,
		hatTotal:     hatSum.Value(),
		squeezeTotal: sqzSum.Value(),
	}
	if !(s.squeezeTotal > 0) || s.hatTotal/s.squeezeTotal > rho {
		return s, fmt.Errorf("%w: achieved %v over %d intervals",
			ErrEfficiencyNotReached, s.Rho(), len(ivs))
	}

	return s, nil
}
