package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey dispatches watch-mode key bindings. Digits toggle the Nth
// visible segment, so hiding something is two glances: read its position,
// press the number.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyRunes:
		// fall through to the rune switch below
	default:
		return m, nil
	}
	if len(msg.Runes) == 0 {
		return m, nil
	}

	switch r := msg.Runes[0]; {
	case r == 'q':
		m.quitting = true
		return m, tea.Quit

	case r == '?':
		m.showHelp = !m.showHelp
		return m, nil

	case r == 'r':
		m.engine.ResetToggles()
		return m, nil

	case r == 'g':
		// Manual vcs refresh, same path a host directory hook would take.
		m.engine.Notify("vcs-refresh")
		return m, nil

	case r >= '1' && r <= '9':
		m.toggleByIndex(int(r - '1'))
		return m, nil
	}
	return m, nil
}

// toggleByIndex flips the idx-th segment of the current effective selection.
// Indexes refer to selection order, which is the reverse of reading order on
// the painted line.
func (m Model) toggleByIndex(idx int) {
	names, err := m.engine.Effective(m.ctxFn())
	if err != nil || idx >= len(names) {
		return
	}
	m.engine.Toggle(names[idx])
}

// helpView renders the one-line key legend shown under the tray line.
func (m Model) helpView() string {
	return "1-9 toggle segment · r reset toggles · g refresh git · ? help · q quit"
}
