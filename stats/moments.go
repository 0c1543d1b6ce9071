package stats

import "math"

// Moments is an online accumulator of count, min, max, mean and variance.
// The zero value is ready to use. Not safe for concurrent use.
type Moments struct {
	n    uint64
	min  float64
	max  float64
	mean float64
	m2   float64 // sum of squared deviations from the running mean
}

// Add folds x into the accumulator (Welford's update).
func (m *Moments) Add(x float64) {
	if m.n == 0 {
		m.min, m.max = x, x
	} else if x < m.min {
		m.min = x
	} else if x > m.max {
		m.max = x
	}
	m.n++
	d := x - m.mean
	m.mean += d / float64(m.n)
	m.m2 += d * (x - m.mean)
}

// Reset empties the accumulator.
func (m *Moments) Reset() {
	*m = Moments{}
}

// Count returns the number of accumulated values.
func (m *Moments) Count() uint64 { return m.n }

// Min returns the smallest value seen, or NaN when empty.
func (m *Moments) Min() float64 {
	if m.n == 0 {
		return math.NaN()
	}

	return m.min
}

// Max returns the largest value seen, or NaN when empty.
func (m *Moments) Max() float64 {
	if m.n == 0 {
		return math.NaN()
	}

	return m.max
}

// Mean returns the running mean, or NaN when empty.
func (m *Moments) Mean() float64 {
	if m.n == 0 {
		return math.NaN()
	}

	return m.mean
}

// Variance returns the unbiased sample variance, or NaN for fewer than two
// values.
func (m *Moments) Variance() float64 {
	if m.n < 2 {
		return math.NaN()
	}

	return m.m2 / float64(m.n-1)
}

// StdDev returns the square root of Variance.
func (m *Moments) StdDev() float64 {
	return math.Sqrt(m.Variance())
}
