package sim

import (
	"fmt"
	"iter"
	"strings"
)

// Complex is the amplitude type of a single basis state.
type Complex = complex128

// NormSqr returns real² + imag², the probability weight of an amplitude.
func NormSqr(a Complex) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}

// StateVector is a flat buffer of 2^n amplitudes. Bit k of an index is the
// value of qubit k in that basis state, so qubit 0 is the least significant bit.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector allocates a zeroed vector for numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	return &StateVector{
		Amplitudes: make([]Complex, 1<<numQubits),
		NumQubits:  numQubits,
	}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

func (s *StateVector) Len() int {
	return len(s.Amplitudes)
}

func (s *StateVector) At(i int) Complex {
	return s.Amplitudes[i]
}

func (s *StateVector) Set(i int, a Complex) {
	s.Amplitudes[i] = a
}

// All yields every (basis index, amplitude) pair in index order.
func (s *StateVector) All() iter.Seq2[int, Complex] {
	return func(yield func(int, Complex) bool) {
		for i, a := range s.Amplitudes {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Probabilities returns the norm-squared of every amplitude.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, a := range s.All() {
		probs[i] = NormSqr(a)
	}
	return probs
}

func (s *StateVector) TotalProbability() float64 {
	total := 0.0
	for _, a := range s.All() {
		total += NormSqr(a)
	}
	return total
}

// reset zeroes the vector and puts all weight on basis index i.
func (s *StateVector) reset(i int) {
	clear(s.Amplitudes)
	s.Amplitudes[i] = 1
}

// String renders the amplitudes one per line as |bits⟩: re+imi.
func (s *StateVector) String() string {
	var sb strings.Builder
	for i, a := range s.All() {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "|%s⟩: %s", BasisLabel(i, s.NumQubits), formatComplex(a))
	}
	return sb.String()
}

// BasisLabel writes index i as an n-bit string with qubit n-1 on the left.
func BasisLabel(i, numQubits int) string {
	return fmt.Sprintf("%0*b", numQubits, i)
}

func formatComplex(a Complex) string {
	return fmt.Sprintf("%.4f%+.4fi", real(a), imag(a))
}
