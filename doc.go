// Package flexgen generates pseudo-random variates from arbitrary univariate
// continuous distributions via Transformed Density Rejection with inflection
// points (the Flex algorithm of Botts, Hörmann & Leydold, 2013).
//
// 🚀 What is flexgen?
//
//	Given a log-density and its first two derivatives, flexgen builds
//	piecewise-linear hat (upper) and squeeze (lower) envelopes of the
//	T_c-transformed density and samples by rejection:
//	  • works for unimodal AND multimodal densities
//	  • bounded or unbounded supports
//	  • adaptive setup — refines until Σhat/Σsqueeze ≤ ρ
//	  • generic over float32/float64
//
// ✨ Why choose flexgen?
//
//   - One-time setup, then an O(log n) interval lookup plus O(1) expected
//     rejection rounds per variate
//   - Immutable samplers — share freely across goroutines
//   - Bring your own RNG: anything with Float64() in [0,1)
//   - Pure Go core, gonum-backed test suite
//
// Under the hood, everything is organized per concern:
//
//	scalar/   — generic float shims, ULP tolerances, compensated summation
//	linfun/   — two-point linear functions (tangents & secants)
//	tcfun/    — the T_c transformation family and its antiderivatives
//	flex/     — interval classification, hat/squeeze setup, sampling kernel
//	discrete/ — O(log n) inversion sampler over hat areas
//	randx/    — uniform source contract + Mersenne Twister 19937-64
//	stats/    — online moments, for validating sample streams
//
// Quick example:
//
//	f0 := func(x float64) float64 { return -x * x / 2 }
//	f1 := func(x float64) float64 { return -x }
//	f2 := func(x float64) float64 { return -1 }
//	s, err := flex.New(f0, f1, f2,
//		[]float64{-3, -1.5, 0, 1.5, 3}, // partition points
//		[]float64{1.5},                 // c, broadcast per interval
//		1.1,                            // target efficiency ρ
//		nil)                            // default caps
//	x := s.Sample(randx.NewMT19937(42))
//
// See flex/example_test.go and discrete/example_test.go for runnable
// examples.
package flexgen
