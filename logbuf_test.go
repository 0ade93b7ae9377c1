package main

import (
	"fmt"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainFormatter(t *testing.T) {
	entry := &log.Entry{
		Level:   log.InfoLevel,
		Message: "state\n|0⟩: 1\n|1⟩: 0",
		Data:    log.Fields{"op": "create", "qubits": 1},
	}
	out, err := plainFormatter{}.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "INFO state op=create qubits=1\n  |0⟩: 1\n  |1⟩: 0\n", string(out))

	entry = &log.Entry{Level: log.WarnLevel, Message: "apply gate", Data: log.Fields{}}
	out, err = plainFormatter{}.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "WARN apply gate\n", string(out))
}

func TestLogBufferKeepsRecentLines(t *testing.T) {
	b := &logBuffer{}
	for i := 0; i < maxLogLines+10; i++ {
		fmt.Fprintf(b, "line %d\n", i)
	}
	require.Len(t, b.lines, maxLogLines)
	assert.Equal(t, "line 10", b.lines[0])
	assert.Equal(t, fmt.Sprintf("line %d", maxLogLines+9), b.lines[maxLogLines-1])

	b = &logBuffer{}
	_, err := b.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb", b.String())
}
