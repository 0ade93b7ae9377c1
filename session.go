package main

import (
	"github.com/cfpgomes/quantum-sim-godot-bindings/sim"
	log "github.com/sirupsen/logrus"
)

// Session is the host-side handle on a simulator. It starts without a
// circuit; until CreateCircuit succeeds, gates are ignored, State is empty
// and Measure reports 0. Every mutation logs the resulting amplitudes.
type Session struct {
	circuit *sim.Circuit
	source  sim.Source
	log     log.FieldLogger
}

// NewSession returns an empty session. Circuits it creates draw measurement
// samples from source.
func NewSession(logger log.FieldLogger, source sim.Source) *Session {
	return &Session{source: source, log: logger}
}

// Ready reports whether a circuit has been created.
func (s *Session) Ready() bool {
	return s.circuit != nil
}

func (s *Session) NumQubits() int {
	if s.circuit == nil {
		return 0
	}
	return s.circuit.NumQubits()
}

// CreateCircuit replaces the current circuit. On error the previous circuit
// is kept.
func (s *Session) CreateCircuit(numQubits int, initialStates []int) error {
	circuit, err := sim.FromStates(numQubits, initialStates, sim.WithSource(s.source))
	if err != nil {
		s.log.WithError(err).Warn("create circuit")
		return err
	}
	s.circuit = circuit
	s.logState(log.Fields{"op": "create", "qubits": numQubits, "excited": initialStates})
	return nil
}

func (s *Session) ApplyHadamard(qubit int) error {
	return s.apply(sim.H(qubit))
}

func (s *Session) ApplyNot(qubit int) error {
	return s.apply(sim.X(qubit))
}

func (s *Session) ApplyCNOT(control, target int) error {
	return s.apply(sim.CX(control, target))
}

func (s *Session) apply(g sim.Gate) error {
	if s.circuit == nil {
		s.log.WithField("gate", g.String()).Debug("no circuit, gate ignored")
		return nil
	}
	if err := s.circuit.ApplyGate(g); err != nil {
		s.log.WithError(err).WithField("gate", g.String()).Warn("apply gate")
		return err
	}
	s.logState(log.Fields{"op": "gate", "gate": g.String()})
	return nil
}

// State returns the basis-state probabilities, or an empty slice when no
// circuit exists.
func (s *Session) State() []float64 {
	if s.circuit == nil {
		return []float64{}
	}
	return s.circuit.Probabilities()
}

// Amplitudes returns a copy of the raw amplitudes for display.
func (s *Session) Amplitudes() []sim.Complex {
	if s.circuit == nil {
		return nil
	}
	return s.circuit.State()
}

func (s *Session) QubitProbabilities() []sim.QubitProbability {
	if s.circuit == nil {
		return nil
	}
	return s.circuit.QubitProbabilities()
}

// Measure collapses the register and returns the observed basis index.
func (s *Session) Measure() uint {
	if s.circuit == nil {
		s.log.Debug("no circuit, measure returns 0")
		return 0
	}
	outcome := s.circuit.Measure()
	s.logState(log.Fields{"op": "measure", "outcome": outcome})
	return outcome
}

func (s *Session) logState(fields log.Fields) {
	s.log.WithFields(fields).Infof("state\n%s", s.circuit)
}
