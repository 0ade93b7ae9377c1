package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cfpgomes/quantum-sim-godot-bindings/sim"
)

// opKind is a host call issued by the run command.
type opKind int

const (
	opHadamard opKind = iota
	opNot
	opCNOT
	opMeasure
	opState
)

type op struct {
	kind   opKind
	qubits []int
}

// parseOps turns arguments like "h:0", "cx:0,1" or "measure" into ops.
func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, arg := range args {
		o, err := parseOp(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

func parseOp(arg string) (op, error) {
	name, operands, _ := strings.Cut(strings.ToLower(strings.TrimSpace(arg)), ":")
	qubits, err := parseQubitList(operands)
	if err != nil {
		return op{}, fmt.Errorf("op %q: %w", arg, err)
	}

	var o op
	var want int
	switch name {
	case "h":
		o, want = op{kind: opHadamard}, 1
	case "x", "not":
		o, want = op{kind: opNot}, 1
	case "cx", "cnot":
		o, want = op{kind: opCNOT}, 2
	case "measure", "m":
		o, want = op{kind: opMeasure}, 0
	case "state":
		o, want = op{kind: opState}, 0
	default:
		return op{}, fmt.Errorf("op %q: unknown operation %q", arg, name)
	}
	if len(qubits) != want {
		return op{}, fmt.Errorf("op %q: expected %d qubit(s), got %d", arg, want, len(qubits))
	}
	o.qubits = qubits
	return o, nil
}

// parseQubitList parses a comma separated list of qubit indices. An empty
// string yields no qubits.
func parseQubitList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var qubits []int
	for _, part := range strings.Split(s, ",") {
		q, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid qubit %q", part)
		}
		qubits = append(qubits, q)
	}
	return qubits, nil
}

// runOps applies ops to the session and writes the final probabilities.
func runOps(sess *Session, ops []op, out io.Writer) error {
	for _, o := range ops {
		var err error
		switch o.kind {
		case opHadamard:
			err = sess.ApplyHadamard(o.qubits[0])
		case opNot:
			err = sess.ApplyNot(o.qubits[0])
		case opCNOT:
			err = sess.ApplyCNOT(o.qubits[0], o.qubits[1])
		case opMeasure:
			outcome := sess.Measure()
			fmt.Fprintf(out, "measured |%s⟩ (%d)\n", sim.BasisLabel(int(outcome), sess.NumQubits()), outcome)
		case opState:
			writeProbabilities(out, sess)
		}
		if err != nil {
			return err
		}
	}
	writeProbabilities(out, sess)
	return nil
}

func writeProbabilities(out io.Writer, sess *Session) {
	for i, p := range sess.State() {
		fmt.Fprintf(out, "|%s⟩ %.4f\n", sim.BasisLabel(i, sess.NumQubits()), p)
	}
}
