package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

// fixedSource always returns the same sample.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func newCircuit(t *testing.T, numQubits int, excited ...int) *Circuit {
	t.Helper()
	c, err := FromStates(numQubits, excited, WithSeed(1))
	require.NoError(t, err)
	return c
}

func assertProbabilities(t *testing.T, want []float64, c *Circuit) {
	t.Helper()
	got := c.Probabilities()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], tolerance, "basis %s", BasisLabel(i, c.NumQubits()))
	}
}

func assertStateInDelta(t *testing.T, want, got []Complex) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), tolerance, "real part of index %d", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), tolerance, "imag part of index %d", i)
	}
}

func sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}
