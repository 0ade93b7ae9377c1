package main

import (
	"fmt"
	"strings"
)

// menuItem represents a single action in the menu.
type menuItem struct {
	name        string
	action      string
	symbol      string
	key         string
	needsTarget bool
}

// actionMenu lists everything the register panel can do to the session.
var actionMenu = []menuItem{
	{name: "Hadamard", action: "H", symbol: "H", key: "h"},
	{name: "Pauli-X (NOT)", action: "X", symbol: "X", key: "x"},
	{name: "CNOT", action: "CX", symbol: "●─⊕", key: "c", needsTarget: true},
	{name: "Measure all", action: "MEASURE", symbol: "M", key: "m"},
	{name: "New circuit", action: "NEW", symbol: "+", key: "n"},
}

// renderMenu renders the action picker overlay.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Actions"))
	fmt.Fprintf(&sb, "  %s\n\n", dimStyle.Render(fmt.Sprintf("on q[%d]", m.cursorQubit)))

	for i, item := range actionMenu {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(activeGateStyle.Render(fmt.Sprintf("%-4s", item.symbol)))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(dimStyle.Render(fmt.Sprintf("%-4s", item.symbol)))
		}
		sb.WriteString(dimStyle.Render(" [" + item.key + "]"))
		if item.needsTarget {
			sb.WriteString(dimStyle.Render(" →target"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}
