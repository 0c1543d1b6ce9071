package scalar

// Sum is a Neumaier compensated accumulator. The zero value is an empty sum.
//
// Unlike plain Kahan summation, Neumaier's variant stays accurate when a new
// term is larger in magnitude than the running sum, which happens routinely
// when the setup loop removes a large interval area and re-adds two halves.
type Sum[S Float] struct {
	sum  S
	comp S
}

// Add accumulates x.
func (s *Sum[S]) Add(x S) {
	t := s.sum + x
	if Abs(s.sum) >= Abs(x) {
		s.comp += (s.sum - t) + x
	} else {
		s.comp += (x - t) + s.sum
	}
	s.sum = t
}

// Sub accumulates −x.
func (s *Sum[S]) Sub(x S) {
	s.Add(-x)
}

// Value returns the compensated total.
func (s *Sum[S]) Value() S {
	return s.sum + s.comp
}
