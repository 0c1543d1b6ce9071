// Package discrete draws indices with probability proportional to a fixed
// vector of nonnegative weights, by inversion: a uniform u ∈ [0,1) is
// scaled to u·total and bisected against the prefix-sum vector in O(log n).
//
// Construction is two-pass: the total is computed first with compensated
// summation, then the prefix vector is built and forced monotone, so that
// rounding can never produce a decreasing step (which would make bisection
// return an index whose weight is zero).
//
// flexgen uses it to pick the interval whose hat a candidate is drawn from,
// but it is independent of the sampler and usable on its own.
package discrete
