// Package segment defines the status segment descriptor and the registry
// that maps segment names to descriptors. Concrete segments (clock, git,
// battery, sysload) live in pkg/segments and are registered at startup;
// the tray engine looks them up by name when a rule selects them.
package segment

import (
	"fmt"
	"sync"
)

// Segment describes a single named status segment. Fetch produces the
// segment's current text; an empty string means the segment contributes
// nothing this tick. Setup runs at most once, strictly before the first
// Update/Fetch after activation. Update recomputes cached state that Fetch
// reads; the engine runs it once per tick, and host events may run it again
// between ticks.
type Segment struct {
	// Name uniquely identifies the segment (e.g. "git", "clock").
	Name string

	// Fetch returns the segment's current text. Required.
	Fetch func() (string, error)

	// Setup performs one-time initialization. Optional.
	Setup func() error

	// Update refreshes cached state consumed by Fetch. Optional.
	Update func()

	// UpdateHooks names host-side events that should re-run Update. The
	// engine passes these through to the hook binder; it never interprets
	// them itself.
	UpdateHooks []string

	mu        sync.Mutex
	activated bool
	setupErr  error
}

// Activated reports whether the segment has been used at least once.
// Activation flips permanently on first selection, never on registration.
func (s *Segment) Activated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activated
}

// Activate runs the one-time Setup (if present) followed by an initial
// Update, then marks the segment activated. Subsequent calls are no-ops
// that return the original Setup error, if any. Setup never runs twice.
func (s *Segment) Activate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activated {
		return s.setupErr
	}

	if s.Setup != nil {
		if err := s.Setup(); err != nil {
			s.setupErr = fmt.Errorf("segment %q setup: %w", s.Name, err)
		}
	}
	s.activated = true

	if s.setupErr == nil && s.Update != nil {
		s.Update()
	}
	return s.setupErr
}
