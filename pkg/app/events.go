// Package app provides the Bubbletea program that drives watch mode: a
// tick-driven Elm-architecture loop that refreshes the tray line in place,
// with key bindings for toggling segments and forcing updates.
//
// This package is designed against bubbletea v1.3.x but architected so that
// migrating to v2 requires only import-path changes and minor API adjustments.
package app

import "time"

// TickEvent is sent by the paint ticker; each one triggers a full
// select-build-paint cycle on the engine.
type TickEvent struct {
	Time time.Time
}

// SegmentUpdateEvent is sent by the slower update ticker; each one re-runs
// Update on the activated segments so polled values (cpu, battery, git) stay
// current between host events.
type SegmentUpdateEvent struct {
	Time time.Time
}
