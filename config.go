package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/cfpgomes/quantum-sim-godot-bindings/sim"
)

// Config holds the options shared by the interactive host and the run command.
type Config struct {
	NumQubits int
	Excited   []int
	Seed      uint64 // 0 draws a fresh seed per process
	Verbose   bool
}

func defaultConfig() Config {
	return Config{NumQubits: 2}
}

// Validate rejects a register the simulator would refuse to build.
func (c Config) Validate() error {
	if c.NumQubits < 1 || c.NumQubits > sim.MaxQubits {
		return fmt.Errorf("qubits must be in [1, %d], got %d", sim.MaxQubits, c.NumQubits)
	}
	for _, q := range c.Excited {
		if q < 0 || q >= c.NumQubits {
			return fmt.Errorf("excited qubit %d out of range for %d qubits", q, c.NumQubits)
		}
	}
	return nil
}

// Source returns the measurement randomness for this run.
func (c Config) Source() sim.Source {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
