package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	log "github.com/sirupsen/logrus"
)

const maxLogLines = 500

// logBuffer keeps the most recent log lines for the interactive log panel.
type logBuffer struct {
	lines []string
}

func (b *logBuffer) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\n")
	b.lines = append(b.lines, strings.Split(text, "\n")...)
	if over := len(b.lines) - maxLogLines; over > 0 {
		b.lines = slices.Clone(b.lines[over:])
	}
	return len(p), nil
}

func (b *logBuffer) String() string {
	return strings.Join(b.lines, "\n")
}

// plainFormatter writes the four letter level, the first message line and the sorted
// fields on one line, then any remaining message lines indented below it.
type plainFormatter struct{}

func (plainFormatter) Format(entry *log.Entry) ([]byte, error) {
	var sb strings.Builder
	head, body, _ := strings.Cut(entry.Message, "\n")
	fmt.Fprintf(&sb, "%s %s", strings.ToUpper(entry.Level.String())[:4], head)
	for _, k := range slices.Sorted(maps.Keys(entry.Data)) {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteString("\n")
	if body != "" {
		for _, line := range strings.Split(body, "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}
	return []byte(sb.String()), nil
}
