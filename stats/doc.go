// Package stats accumulates online summary statistics (count, min, max,
// mean, variance) over a stream of values in O(1) memory, using Welford's
// update for numerical stability.
//
// flexgen's tests and examples use it to sanity-check millions of sampled
// variates without materializing them.
package stats
