package discrete

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/flexgen/scalar"
)

var (
	// ErrNoWeights indicates an empty weight vector.
	ErrNoWeights = errors.New("discrete: weight vector must be non-empty")
	// ErrBadWeight indicates a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("discrete: weights must be finite and nonnegative")
	// ErrNoMass indicates that all weights are zero or that their total
	// overflows.
	ErrNoMass = errors.New("discrete: total weight must be positive")
)

// Sampler draws indices proportionally to the weights it was built from.
// It is immutable and safe for concurrent use.
type Sampler[S scalar.Float] struct {
	cum   []S // monotone prefix sums, cum[len-1] == total
	total S
}

// New builds a Sampler over the given weights.
//
// Errors:
//   - ErrNoWeights — len(weights) == 0.
//   - ErrBadWeight — a weight is negative, NaN or infinite.
//   - ErrNoMass    — every weight is zero, or the total overflows.
func New[S scalar.Float](weights []S) (*Sampler[S], error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}

	// Pass 1: validate and total with compensation.
	var acc scalar.Sum[S]
	for i, w := range weights {
		if scalar.IsNaN(w) || w < 0 || scalar.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weights[%d] = %v", ErrBadWeight, i, w)
		}
		acc.Add(w)
	}
	total := acc.Value()
	if !(total > 0) || scalar.IsInf(total, 0) {
		return nil, ErrNoMass
	}

	// Pass 2: prefix sums, clamped monotone so bisection stays consistent
	// under rounding; the last entry is pinned to the exact total.
	cum := make([]S, len(weights))
	var run scalar.Sum[S]
	prev := S(0)
	for i, w := range weights {
		run.Add(w)
		v := run.Value()
		if v < prev {
			v = prev
		}
		cum[i] = v
		prev = v
	}
	cum[len(cum)-1] = total

	return &Sampler[S]{cum: cum, total: total}, nil
}

// Draw maps a uniform u ∈ [0,1) to an index, bisecting u·total against the
// prefix sums. O(log n).
func (d *Sampler[S]) Draw(u S) int {
	target := u * d.total
	i := sort.Search(len(d.cum), func(i int) bool { return d.cum[i] > target })
	if i == len(d.cum) {
		i--
	}

	return i
}

// Len returns the number of weights.
func (d *Sampler[S]) Len() int { return len(d.cum) }

// Total returns the compensated sum of all weights.
func (d *Sampler[S]) Total() S { return d.total }
