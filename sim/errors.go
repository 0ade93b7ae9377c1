package sim

import "errors"

// Contract violations reported by the engine. Callers match them with
// errors.Is; the wrapped message carries the offending indices.
var (
	ErrNoQubits          = errors.New("circuit needs at least one qubit")
	ErrTooManyQubits     = errors.New("too many qubits")
	ErrInvalidQubitIndex = errors.New("invalid qubit index")
	ErrDegenerateGate    = errors.New("control and target must differ")
)
