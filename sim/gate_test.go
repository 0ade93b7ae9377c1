package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateConstructors(t *testing.T) {
	assert.Equal(t, Gate{Kind: Hadamard, Target: 3, Control: -1}, H(3))
	assert.Equal(t, Gate{Kind: PauliX, Target: 1, Control: -1}, X(1))
	assert.Equal(t, Gate{Kind: ControlledX, Target: 2, Control: 0}, CX(0, 2))
}

func TestGateString(t *testing.T) {
	assert.Equal(t, "H q[0]", H(0).String())
	assert.Equal(t, "X q[4]", X(4).String())
	assert.Equal(t, "CX q[1], q[0]", CX(1, 0).String())
	assert.Equal(t, "GateKind(9)", GateKind(9).String())
}

// scrambled returns a 3-qubit circuit in a state with distinct, complex
// amplitudes so the involution checks are not trivially satisfied.
func scrambled(t *testing.T) *Circuit {
	t.Helper()
	c := newCircuit(t, 3)
	amps := []Complex{
		complex(0.1, 0.2), complex(-0.3, 0.1), complex(0.25, -0.05), complex(0.4, 0),
		complex(0, -0.35), complex(0.15, 0.15), complex(-0.2, -0.1), complex(0.05, 0.3),
	}
	norm := 0.0
	for _, a := range amps {
		norm += NormSqr(a)
	}
	for i, a := range amps {
		c.state.Set(i, a/complex(math.Sqrt(norm), 0))
	}
	return c
}

func TestGatesAreInvolutions(t *testing.T) {
	gates := []Gate{H(0), H(1), H(2), X(0), X(2), CX(0, 1), CX(2, 0), CX(1, 2)}
	for _, g := range gates {
		t.Run(g.String(), func(t *testing.T) {
			c := scrambled(t)
			before := c.State()

			require.NoError(t, c.ApplyGate(g))
			assert.InDelta(t, 1.0, sum(c.Probabilities()), tolerance, "norm after one application")

			require.NoError(t, c.ApplyGate(g))
			assertStateInDelta(t, before, c.State())
		})
	}
}

func TestHadamardAmplitudes(t *testing.T) {
	c := newCircuit(t, 1, 0)
	require.NoError(t, c.ApplyHadamard(0))
	assertStateInDelta(t, []Complex{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)}, c.State())
}

func TestPauliXSwapsPairs(t *testing.T) {
	c := scrambled(t)
	before := c.State()
	require.NoError(t, c.ApplyNot(1))
	after := c.State()
	for i := range before {
		assert.Equal(t, before[i^2], after[i], "index %d", i)
	}
}

func TestControlledXSwapsOnlyWhenControlSet(t *testing.T) {
	c := scrambled(t)
	before := c.State()
	require.NoError(t, c.ApplyCNOT(2, 0))
	after := c.State()
	for i := range before {
		if i&4 == 0 {
			assert.Equal(t, before[i], after[i], "index %d untouched", i)
		} else {
			assert.Equal(t, before[i^1], after[i], "index %d swapped", i)
		}
	}
}
