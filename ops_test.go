package main

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOps(t *testing.T) {
	ops, err := parseOps([]string{"h:0", "X:1", "not:2", "cx:0,1", "CNOT: 2 , 0", "measure", "m", "state"})
	require.NoError(t, err)

	want := []op{
		{kind: opHadamard, qubits: []int{0}},
		{kind: opNot, qubits: []int{1}},
		{kind: opNot, qubits: []int{2}},
		{kind: opCNOT, qubits: []int{0, 1}},
		{kind: opCNOT, qubits: []int{2, 0}},
		{kind: opMeasure},
		{kind: opMeasure},
		{kind: opState},
	}
	assert.Equal(t, want, ops)
}

func TestParseOpsErrors(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"y:0", "unknown operation"},
		{"h", "expected 1 qubit(s), got 0"},
		{"h:0,1", "expected 1 qubit(s), got 2"},
		{"cx:0", "expected 2 qubit(s), got 1"},
		{"measure:1", "expected 0 qubit(s), got 1"},
		{"x:a", "invalid qubit"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, err := parseOps([]string{tt.arg})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunOps(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sess := NewSession(logger, fixedSource(0.9))
	require.NoError(t, sess.CreateCircuit(2, nil))

	ops, err := parseOps([]string{"h:0", "cx:0,1", "state", "measure"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runOps(sess, ops, &out))

	want := "|00⟩ 0.5000\n|01⟩ 0.0000\n|10⟩ 0.0000\n|11⟩ 0.5000\n" +
		"measured |11⟩ (3)\n" +
		"|00⟩ 0.0000\n|01⟩ 0.0000\n|10⟩ 0.0000\n|11⟩ 1.0000\n"
	assert.Equal(t, want, out.String())
}

func TestRunOpsStopsOnError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sess := NewSession(logger, fixedSource(0))
	require.NoError(t, sess.CreateCircuit(1, nil))

	ops, err := parseOps([]string{"x:0", "cx:0,1", "h:0"})
	require.NoError(t, err)

	var out bytes.Buffer
	assert.Error(t, runOps(sess, ops, &out))
	assert.Empty(t, out.String())
	assert.Equal(t, []float64{0, 1}, sess.State())
}

func TestRunCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"run", "-n", "2", "-e", "0", "--seed", "7", "cx:0,1"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "|00⟩ 0.0000\n|01⟩ 0.0000\n|10⟩ 0.0000\n|11⟩ 1.0000\n", out.String())
	assert.Contains(t, errOut.String(), "INFO state gate=CX q[0], q[1] op=gate")
}
