// Package randx defines the uniform-source contract flexgen samples from,
// plus a seedable Mersenne Twister (MT19937-64) for reproducible runs.
//
// The contract is deliberately minimal: anything with a Float64() method
// returning uniform draws in [0,1) qualifies. *rand.Rand from
// golang.org/x/exp/rand and *math/rand.Rand both satisfy Source without an
// adapter.
//
// Sources are not required to be goroutine-safe; the samplers that consume
// them expect each goroutine to own its source.
package randx
