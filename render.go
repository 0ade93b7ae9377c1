package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/cfpgomes/quantum-sim-godot-bindings/sim"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// probBar draws p in [0, 1] as a bar of width cells using eighth blocks.
func probBar(p float64, width int) string {
	eighths := int(math.Round(math.Max(0, math.Min(1, p)) * float64(width*8)))
	full, rest := eighths/8, eighths%8
	bar := strings.Repeat("█", full)
	if rest > 0 {
		bar += string([]rune("▏▎▍▌▋▊▉")[rest-1])
	}
	return bar + strings.Repeat(" ", width-lipgloss.Width(bar))
}

func formatAmplitude(a sim.Complex) string {
	return fmt.Sprintf("%+.3f%+.3fi", real(a), imag(a))
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderRegisterPanel renders one row per qubit with its chance of reading 1.
func (m Model) renderRegisterPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Register"))
	sb.WriteString("\n\n")

	for q, p := range m.sess.QubitProbabilities() {
		marker := "  "
		label := qubitLabelStyle.Render(fmt.Sprintf("%-*s", labelVisualW-2, fmt.Sprintf("q[%d]", q)))
		switch {
		case m.focus == focusSelectTarget && q == m.targetQubit:
			marker = targetSelectStyle.Render("⊕ ")
		case m.focus == focusSelectTarget && q == m.cursorQubit:
			marker = cursorStyle.Render("● ")
		case q == m.cursorQubit:
			marker = cursorStyle.Render("▸ ")
		}
		fmt.Fprintf(&sb, "%s%s%s %s\n", marker, label, barStyle.Render(probBar(p.Prob1, barW)), dimStyle.Render(fmt.Sprintf("P(1)=%.3f", p.Prob1)))
	}

	sb.WriteString("\n")
	if m.focus == focusSelectTarget {
		fmt.Fprintf(&sb, "  %s", activeGateStyle.Render("CNOT"))
		fmt.Fprintf(&sb, "  control q[%d], target ", m.cursorQubit)
		sb.WriteString(targetSelectStyle.Render(fmt.Sprintf("q[%d]", m.targetQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	} else {
		fmt.Fprintf(&sb, "  Qubit %d", m.cursorQubit)
		if m.statusMsg != "" {
			fmt.Fprintf(&sb, "  │  %s", activeGateStyle.Render(m.statusMsg))
		}
	}

	return registerStyle.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel renders basis-state probabilities and amplitudes. Rows
// that do not fit are summarised on the last line.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("State"))
	sb.WriteString("\n\n")

	n := m.sess.NumQubits()
	probs := m.sess.State()
	amps := m.sess.Amplitudes()
	rows := max(height-4, 1)
	for i, p := range probs {
		if i == rows-1 && len(probs) > rows {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("… %d more basis states", len(probs)-i)))
			break
		}
		label := fmt.Sprintf("|%s⟩", sim.BasisLabel(i, n))
		if i == m.lastOutcome {
			label = measuredStyle.Render(label)
		} else {
			label = qubitLabelStyle.Render(label)
		}
		fmt.Fprintf(&sb, "%s %s %.3f  %s\n", label, barStyle.Render(probBar(p, barW/2)), p, dimStyle.Render(formatAmplitude(amps[i])))
	}

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// renderLogPanel renders the scrolling session log.
func (m Model) renderLogPanel(width int) string {
	return logStyle.Width(width).Render(m.logView.View())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeGateStyle.Render("Gates:    "))
	sb.WriteString("h Hadamard  x NOT  c CNOT  m Measure  n New circuit")
	sb.WriteString("    ")
	sb.WriteString(activeGateStyle.Render("a"))
	sb.WriteString(" Menu\n")

	sb.WriteString(activeGateStyle.Render("Navigate: "))
	sb.WriteString("↑↓/jk Move qubit  PgUp/PgDn Scroll log  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at
// visible position (x, y). ANSI sequences in either string are preserved.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLineAt replaces the visible columns [x, x+width(overlay)) of bgLine.
func spliceLineAt(bgLine, overlay string, x int) string {
	prefix := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(prefix); w < x {
		prefix += strings.Repeat(" ", x-w)
	}
	suffix := ansi.TruncateLeft(bgLine, x+ansi.StringWidth(overlay), "")
	return prefix + overlay + suffix
}
