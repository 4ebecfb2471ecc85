package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultUpdateInterval is the cadence for re-running segment updates in
// watch mode. Deliberately slower than the paint tick: fetches are cheap
// cache reads, updates may shell out.
const DefaultUpdateInterval = 2 * time.Second

// TickCmd returns a Cmd that sends a TickEvent after the given duration.
// This drives the periodic paint cycle.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// UpdateCmd returns a Cmd that sends a SegmentUpdateEvent after the given
// duration. This drives the slower segment-update cycle.
func UpdateCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return SegmentUpdateEvent{Time: t}
	})
}
