// Package scalar provides the generic floating-point plumbing the rest of
// flexgen is built on: a Float constraint covering float32 and float64,
// thin generic shims over math, epsilon-scaled tolerances, and a Neumaier
// compensated summator.
//
// Tolerances: the numeric thresholds used across flexgen (1e-6, 1e-10, …)
// are tuned for float64. ScaleTol rescales such a threshold by the ratio of
// the target type's machine epsilon to float64's, so float32 instantiations
// get proportionally looser cutoffs.
//
// Summation: Sum accumulates with Neumaier's compensated algorithm. The
// setup loop adds and removes thousands of interval areas spanning many
// orders of magnitude; naïve summation drifts measurably there.
package scalar
