package sim

import (
	"fmt"
	"math"
)

// GateKind identifies one of the supported elementary gates.
type GateKind int

const (
	Hadamard GateKind = iota
	PauliX
	ControlledX
)

func (k GateKind) String() string {
	switch k {
	case Hadamard:
		return "H"
	case PauliX:
		return "X"
	case ControlledX:
		return "CX"
	default:
		return fmt.Sprintf("GateKind(%d)", int(k))
	}
}

// Gate is a single gate instruction. Control is -1 for single-qubit gates.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
}

// H returns a Hadamard gate on qubit q.
func H(q int) Gate {
	return Gate{Kind: Hadamard, Target: q, Control: -1}
}

// X returns a Pauli-X (NOT) gate on qubit q.
func X(q int) Gate {
	return Gate{Kind: PauliX, Target: q, Control: -1}
}

// CX returns a controlled-NOT gate flipping target when control is |1⟩.
func CX(control, target int) Gate {
	return Gate{Kind: ControlledX, Target: target, Control: control}
}

func (g Gate) String() string {
	if g.Kind == ControlledX {
		return fmt.Sprintf("%s q[%d], q[%d]", g.Kind, g.Control, g.Target)
	}
	return fmt.Sprintf("%s q[%d]", g.Kind, g.Target)
}

// validate checks the gate against a register of numQubits qubits.
func (g Gate) validate(numQubits int) error {
	if err := checkQubit(g.Target, numQubits); err != nil {
		return fmt.Errorf("%s target: %w", g.Kind, err)
	}
	switch g.Kind {
	case Hadamard, PauliX:
		return nil
	case ControlledX:
		if err := checkQubit(g.Control, numQubits); err != nil {
			return fmt.Errorf("%s control: %w", g.Kind, err)
		}
		if g.Control == g.Target {
			return fmt.Errorf("%s on q[%d]: %w", g.Kind, g.Target, ErrDegenerateGate)
		}
		return nil
	default:
		return fmt.Errorf("unknown gate kind %d", int(g.Kind))
	}
}

func checkQubit(q, numQubits int) error {
	if q < 0 || q >= numQubits {
		return fmt.Errorf("%w: q[%d] not in [0, %d)", ErrInvalidQubitIndex, q, numQubits)
	}
	return nil
}

// apply runs the gate kernel. The gate must already be validated.
func (g Gate) apply(s *StateVector) {
	switch g.Kind {
	case Hadamard:
		s.applyH(g.Target)
	case PauliX:
		s.applyX(g.Target)
	case ControlledX:
		s.applyCX(g.Control, g.Target)
	}
}

// Each kernel walks i over indices with the target bit clear and pairs it
// with j = i | bit, so every pair is touched exactly once.

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = hFactor * (a0 + a1)
			s.Amplitudes[j] = hFactor * (a0 - a1)
		}
	}
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}
