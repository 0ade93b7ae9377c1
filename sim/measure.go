package sim

// Source supplies uniform samples in [0, 1). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	Float64() float64
}

// Measure performs a projective measurement of every qubit in the
// computational basis. It returns the observed basis index and collapses the
// state onto it.
func (c *Circuit) Measure() uint {
	outcome := sample(c.state, c.rng.Float64())
	c.state.reset(outcome)
	return uint(outcome)
}

// sample selects the smallest index whose cumulative probability exceeds u.
// When accumulated drift keeps the total below u, the last index carrying
// any weight is chosen instead.
func sample(s *StateVector, u float64) int {
	cumulative := 0.0
	last := 0
	for i, a := range s.All() {
		p := NormSqr(a)
		if p == 0 {
			continue
		}
		cumulative += p
		if cumulative > u {
			return i
		}
		last = i
	}
	return last
}
