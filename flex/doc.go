// Package flex builds rejection samplers for arbitrary univariate
// continuous densities via Transformed Density Rejection with inflection
// points (Botts, Hörmann & Leydold, 2013).
//
// 🚀 How it works
//
//	The caller supplies the log-density f0 and its first two derivatives,
//	an initial partition of the support into intervals each containing at
//	most one inflection point of the T_c-transformed density, a
//	transformation parameter c per interval, and a target efficiency ρ.
//	Setup then:
//	  1. classifies every interval by the shape of the transformed density
//	     (monotonicity of the derivative × sign of the curvature),
//	  2. builds a linear hat (upper bound) and squeeze (lower bound) from
//	     endpoint tangents and the secant,
//	  3. integrates both in closed form,
//	  4. adaptively splits the intervals with the most excess area at the
//	     transformation-aware arcmean until Σhat/Σsqueeze ≤ ρ.
//
//	Sampling draws an interval proportional to hat area, inverts the hat
//	CDF inside it, and accepts against the squeeze (cheap) or the density
//	(one evaluation). The expected number of density evaluations per
//	variate is bounded by ρ.
//
// ⚙️ Usage:
//
//	s, err := flex.New(f0, f1, f2,
//		[]float64{-3, -1.5, 0, 1.5, 3}, // partition points (±Inf allowed at the ends)
//		[]float64{1.5},                 // c per interval, single value broadcasts
//		1.1,                            // target ρ
//		nil)                            // default MaxPoints/MaxIterations
//	if err != nil && !errors.Is(err, flex.ErrEfficiencyNotReached) {
//		// setup failed; see errors.go for the taxonomy
//	}
//	x := s.Sample(rng) // rng is any randx.Source
//
// Samplers are immutable after construction and safe to share across
// goroutines; each goroutine must own its random source.
//
// Partition restriction: intervals must be monotone+concave where the
// support is unbounded and must not straddle more than one inflection
// point of the transformed density; boundary cases where the density
// oscillates through a partition point (so the interval is neither
// concave, convex, nor split by a single inflection) are rejected with
// ErrUnsupportedPartition rather than guessed at.
//
// Complexity: setup O(k·ρ-dependent splits), sampling O(log n) per draw
// plus an expected O(1) rejection loop.
package flex
