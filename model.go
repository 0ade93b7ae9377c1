package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusRegister focus = iota
	focusMenu
	focusCreate
	focusSelectTarget
)

// Model represents the TUI application state. All session calls happen
// inside Update, so the simulator is only ever touched by one goroutine.
type Model struct {
	sess        *Session
	logs        *logBuffer
	logView     viewport.Model
	createInput textinput.Model
	focus       focus
	cursorQubit int
	targetQubit int
	lastOutcome int // -1 until something is measured
	width       int
	height      int
	statusMsg   string // transient status message (e.g. a rejected gate)

	// Menu state
	menuItem int
}

func initialModel(sess *Session, logs *logBuffer) Model {
	ti := textinput.New()
	ti.Placeholder = "qubits [excited,...]  e.g. 3 0,2"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Width = 32

	m := Model{
		sess:        sess,
		logs:        logs,
		logView:     viewport.New(40, logH),
		createInput: ti,
		focus:       focusRegister,
		lastOutcome: -1,
	}
	m.syncLog()
	return m
}

// syncLog copies the buffered log lines into the log panel and scrolls to
// the newest entry.
func (m *Model) syncLog() {
	m.logView.SetContent(m.logs.String())
	m.logView.GotoBottom()
}

// setError shows err in the status line, if any.
func (m *Model) setError(err error) {
	if err != nil {
		m.statusMsg = err.Error()
	}
}

// runAction performs a menu action on the cursor qubit.
func (m *Model) runAction(action string) {
	switch action {
	case "H":
		m.setError(m.sess.ApplyHadamard(m.cursorQubit))
		m.lastOutcome = -1
	case "X":
		m.setError(m.sess.ApplyNot(m.cursorQubit))
		m.lastOutcome = -1
	case "CX":
		if m.sess.NumQubits() < 2 {
			m.statusMsg = "CNOT needs at least two qubits"
			m.focus = focusRegister
			return
		}
		m.focus = focusSelectTarget
		m.targetQubit = m.cursorQubit + 1
		if m.targetQubit >= m.sess.NumQubits() {
			m.targetQubit = m.cursorQubit - 1
		}
		return
	case "MEASURE":
		outcome := m.sess.Measure()
		m.lastOutcome = int(outcome)
		m.statusMsg = fmt.Sprintf("Measured %d", outcome)
	case "NEW":
		m.createInput.SetValue("")
		m.createInput.Focus()
		m.focus = focusCreate
		return
	}
	m.focus = focusRegister
	m.syncLog()
}

// createCircuit builds a new register from the prompt text.
func (m *Model) createCircuit() {
	numQubits, excited, err := parseCreateInput(m.createInput.Value())
	if err == nil {
		err = m.sess.CreateCircuit(numQubits, excited)
	}
	if err != nil {
		m.statusMsg = err.Error()
		m.syncLog()
		return
	}
	m.cursorQubit = min(m.cursorQubit, numQubits-1)
	m.lastOutcome = -1
	m.createInput.Blur()
	m.focus = focusRegister
	m.statusMsg = fmt.Sprintf("New %d-qubit circuit", numQubits)
	m.syncLog()
}

// parseCreateInput reads "N" or "N q,q,..." into a qubit count and the
// qubits to excite.
func parseCreateInput(s string) (int, []int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, nil, errors.New("enter a qubit count, optionally followed by excited qubits")
	}
	numQubits, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid qubit count %q", fields[0])
	}
	var excited []int
	if len(fields) == 2 {
		if excited, err = parseQubitList(fields[1]); err != nil {
			return 0, nil, err
		}
	}
	return numQubits, excited, nil
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = max(msg.Width-8, 20)
		m.logView.Height = logH
		m.syncLog()

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusRegister:
			m.statusMsg = ""
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.cursorQubit > 0 {
					m.cursorQubit--
				}
			case "down", "j":
				if m.cursorQubit < m.sess.NumQubits()-1 {
					m.cursorQubit++
				}
			case "a":
				m.focus = focusMenu
				m.menuItem = 0
			case "pgup", "pgdown":
				var cmd tea.Cmd
				m.logView, cmd = m.logView.Update(msg)
				cmds = append(cmds, cmd)
			default:
				for _, item := range actionMenu {
					if item.key == key {
						m.runAction(item.action)
						break
					}
				}
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusRegister
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(actionMenu)-1 {
					m.menuItem++
				}
			case "enter":
				m.runAction(actionMenu[m.menuItem].action)
			}

		case focusSelectTarget:
			switch key {
			case "esc":
				m.focus = focusRegister
			case "up", "k":
				for next := m.targetQubit - 1; next >= 0; next-- {
					if next != m.cursorQubit {
						m.targetQubit = next
						break
					}
				}
			case "down", "j":
				for next := m.targetQubit + 1; next < m.sess.NumQubits(); next++ {
					if next != m.cursorQubit {
						m.targetQubit = next
						break
					}
				}
			case "enter":
				m.setError(m.sess.ApplyCNOT(m.cursorQubit, m.targetQubit))
				m.lastOutcome = -1
				m.focus = focusRegister
				m.syncLog()
			}

		case focusCreate:
			switch key {
			case "esc":
				m.createInput.Blur()
				m.focus = focusRegister
			case "enter":
				m.createCircuit()
			default:
				var cmd tea.Cmd
				m.createInput, cmd = m.createInput.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	stateWidth := m.width / 2
	registerWidth := m.width - stateWidth - 4
	controlsHeight := 4
	topHeight := max(m.height-controlsHeight-logH-6, 6)

	registerPanel := m.renderRegisterPanel(registerWidth, topHeight)
	statePanel := m.renderStatePanel(stateWidth, topHeight)
	logPanel := m.renderLogPanel(m.width - 4)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, registerPanel, statePanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, logPanel, controlsPanel)

	switch m.focus {
	case focusMenu:
		frame = overlayAt(frame, m.renderMenu(), 2, 2)
	case focusCreate:
		frame = overlayAt(frame, m.renderCreatePrompt(), 2, 2)
	}

	return frame
}

// renderCreatePrompt renders the new-circuit overlay.
func (m Model) renderCreatePrompt() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("New Circuit"))
	sb.WriteString("\n\n")
	sb.WriteString(m.createInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("Examples: 1, 2 0, 4 1,3   ⏎ Ok  Esc ✕"))
	return menuBorderStyle.Render(sb.String())
}
