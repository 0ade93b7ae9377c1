package main

import (
	"testing"

	"github.com/cfpgomes/quantum-sim-godot-bindings/sim"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"default", defaultConfig(), true},
		{"excited", Config{NumQubits: 3, Excited: []int{0, 2}}, true},
		{"no qubits", Config{NumQubits: 0}, false},
		{"too many", Config{NumQubits: sim.MaxQubits + 1}, false},
		{"excited out of range", Config{NumQubits: 2, Excited: []int{2}}, false},
		{"negative excited", Config{NumQubits: 2, Excited: []int{-1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfigSourceIsSeeded(t *testing.T) {
	a := Config{Seed: 99}.Source()
	b := Config{Seed: 99}.Source()
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	u := Config{}.Source().Float64()
	assert.GreaterOrEqual(t, u, 0.0)
	assert.Less(t, u, 1.0)
}
