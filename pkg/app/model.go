package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/echo-tray/pkg/rule"
	"gitlab.com/tinyland/lab/echo-tray/pkg/surface"
	"gitlab.com/tinyland/lab/echo-tray/pkg/tray"
)

// ContextFunc supplies the detector context for a refresh. Called once per
// paint tick; the engine memoizes the detector result by the context key.
type ContextFunc func() rule.Context

// Model is the watch-mode bubbletea model. It owns nothing but the loop:
// the engine does all selection and building, the buffer surface carries the
// width in and the painted line out, and View simply shows the latest line.
type Model struct {
	engine      *tray.Engine
	buf         *surface.Buffer
	ctxFn       ContextFunc
	interval    time.Duration
	updateEvery time.Duration

	line     string
	width    int
	showHelp bool
	quitting bool
}

// NewModel creates the watch-mode model. The engine must already be started.
func NewModel(engine *tray.Engine, buf *surface.Buffer, ctxFn ContextFunc) Model {
	if ctxFn == nil {
		ctxFn = func() rule.Context { return rule.Context{} }
	}
	return Model{
		engine:      engine,
		buf:         buf,
		ctxFn:       ctxFn,
		interval:    engine.Interval(),
		updateEvery: DefaultUpdateInterval,
	}
}

// Init arms both tickers: the fast paint tick and the slower segment-update
// cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(m.interval), UpdateCmd(m.updateEvery))
}

// Update is the bubbletea message dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.buf.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickEvent:
		if line, err := m.engine.Refresh(m.ctxFn()); err == nil {
			m.line = line
		}
		return m, TickCmd(m.interval)

	case SegmentUpdateEvent:
		m.engine.UpdateSegments()
		return m, UpdateCmd(m.updateEvery)
	}
	return m, nil
}

// View renders the current tray line, with the key help underneath when
// toggled on. Empty while quitting so the alternate screen exits clean.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.line == "" {
		return "..."
	}
	if m.showHelp {
		return m.line + "\n" + m.helpView()
	}
	return m.line
}

// Line returns the most recently painted line.
func (m Model) Line() string {
	return m.line
}

// Quitting reports whether a quit key has been pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

// HelpVisible reports whether the key help overlay is showing.
func (m Model) HelpVisible() bool {
	return m.showHelp
}
