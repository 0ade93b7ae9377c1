// Package sim simulates a qubit register as a dense state vector.
package sim

import (
	"fmt"
	"math/rand/v2"
)

// MaxQubits bounds the register so 2^n amplitudes stay addressable.
const MaxQubits = 30

// Circuit is a qubit register evolving under gate applications and
// measurement. It is not safe for concurrent use.
type Circuit struct {
	state *StateVector
	rng   Source
}

// Option configures a Circuit at construction.
type Option func(*Circuit)

// WithSource sets the randomness used by Measure.
func WithSource(src Source) Option {
	return func(c *Circuit) {
		c.rng = src
	}
}

// WithSeed makes measurement reproducible by seeding a PCG generator.
func WithSeed(seed uint64) Option {
	return WithSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// FromStates builds a circuit of numQubits qubits in the basis state where
// every qubit listed in initialStates is |1⟩ and all others are |0⟩.
// Duplicate indices are harmless.
func FromStates(numQubits int, initialStates []int, opts ...Option) (*Circuit, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoQubits, numQubits)
	}
	if numQubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyQubits, numQubits, MaxQubits)
	}

	basis := 0
	for _, q := range initialStates {
		if err := checkQubit(q, numQubits); err != nil {
			return nil, fmt.Errorf("initial state: %w", err)
		}
		basis |= 1 << q
	}

	c := &Circuit{state: NewStateVector(numQubits)}
	c.state.reset(basis)
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c, nil
}

func (c *Circuit) NumQubits() int {
	return c.state.NumQubits
}

// ApplyGate mutates the state in place. An invalid gate leaves the state
// unchanged.
func (c *Circuit) ApplyGate(g Gate) error {
	if err := g.validate(c.state.NumQubits); err != nil {
		return err
	}
	g.apply(c.state)
	return nil
}

// ApplyGates applies gates in order and stops at the first invalid one.
func (c *Circuit) ApplyGates(gates ...Gate) error {
	for i, g := range gates {
		if err := c.ApplyGate(g); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return nil
}

func (c *Circuit) ApplyHadamard(q int) error {
	return c.ApplyGate(H(q))
}

func (c *Circuit) ApplyNot(q int) error {
	return c.ApplyGate(X(q))
}

func (c *Circuit) ApplyCNOT(control, target int) error {
	return c.ApplyGate(CX(control, target))
}

// Probabilities returns a fresh slice of 2^n basis-state probabilities.
func (c *Circuit) Probabilities() []float64 {
	return c.state.Probabilities()
}

// State returns a copy of the amplitudes.
func (c *Circuit) State() []Complex {
	return c.state.Clone().Amplitudes
}

// Clone copies the circuit, sharing its randomness source.
func (c *Circuit) Clone() *Circuit {
	return &Circuit{state: c.state.Clone(), rng: c.rng}
}

func (c *Circuit) String() string {
	return c.state.String()
}

// QubitProbability is the marginal distribution of a single qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns P(|0⟩) and P(|1⟩) for each qubit.
func (c *Circuit) QubitProbabilities() []QubitProbability {
	n := c.state.NumQubits
	probs := make([]QubitProbability, n)
	for i, a := range c.state.All() {
		p := NormSqr(a)
		for q := 0; q < n; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += p
			} else {
				probs[q].Prob0 += p
			}
		}
	}
	return probs
}
