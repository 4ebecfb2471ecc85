// Package tray implements the tray engine: the per-tick pipeline that picks
// a width bucket, resolves the active rule through the detector chain and
// toggle overlay, builds the status line from the selected segments, and
// paints it onto the rendering surface.
package tray

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/echo-tray/pkg/rule"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
)

// ErrorPlaceholder is painted for a tick whose line build failed. A single
// broken segment must never take down the whole tray.
const ErrorPlaceholder = "[tray error]"

// DefaultInterval is the refresh tick period.
const DefaultInterval = 300 * time.Millisecond

// DefaultSeparator joins segment texts on the finished line.
const DefaultSeparator = " "

// DefaultEllipsis marks per-segment truncation. Segments that cap their
// text fall back to it when no ellipsis is configured.
const DefaultEllipsis = ".."

// ErrNotStarted is returned by toggle and selection operations invoked
// before Start. This is a user-facing error, surfaced immediately.
var ErrNotStarted = errors.New("tray: engine not started")

// Surface is the rendering sink the engine paints into. The engine treats
// it as opaque: it measures the width every tick, checks liveness, and
// hands over finished lines.
type Surface interface {
	// Width returns the current display width in columns.
	Width() int
	// Live reports whether the surface can currently be painted.
	Live() bool
	// Paint displays the finished line.
	Paint(line string) error
}

// Options configures an Engine.
type Options struct {
	Persistent     rule.Spec  // baseline rule
	Temporary      rule.Spec  // always merged after the baseline
	Detectors      rule.Chain // context overrides, priority order
	Separator      string
	RightPadding   int
	WidthThreshold int
	Interval       time.Duration
	SkipCommands   []string // command names that suspend updates while running
}

// Engine drives the rebuild-and-repaint cycle. Single-threaded and
// cooperative: one Refresh per tick, with per-segment Update calls possibly
// arriving between ticks via host events.
type Engine struct {
	registry *segment.Registry
	surface  Surface
	builder  *Builder
	toggles  *rule.Toggles
	opts     Options
	logger   *slog.Logger
	skip     map[string]struct{}

	mu            sync.Mutex
	started       bool
	paused        bool
	valid         segment.ValidNames
	lastLine      string
	lastEffective []string

	// Detector result, memoized for the lifetime of the current context.
	detectedKey  string
	detectedSpec rule.Spec
	detectedOK   bool
	detectedFor  string // winning detector name, for logging
}

// NewEngine creates an engine over the given registry and surface. A nil
// logger discards log output.
func NewEngine(registry *segment.Registry, surface Surface, opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	if opts.WidthThreshold <= 0 {
		opts.WidthThreshold = rule.DefaultWidthThreshold
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	skip := make(map[string]struct{}, len(opts.SkipCommands))
	for _, cmd := range opts.SkipCommands {
		skip[cmd] = struct{}{}
	}

	return &Engine{
		registry: registry,
		surface:  surface,
		builder:  NewBuilder(registry, opts.Separator, opts.RightPadding, logger),
		toggles:  rule.NewToggles(),
		opts:     opts,
		logger:   logger,
		skip:     skip,
	}
}

// Start snapshots the set of valid segment names and arms the engine.
// Rules are filtered against this snapshot for the rest of the session;
// segments registered afterwards are not picked up.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.valid = e.registry.SnapshotValid()
	e.started = true
	e.logger.Debug("tray engine started", "segments", len(e.valid))
}

// Started reports whether Start has been called.
func (e *Engine) Started() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}

// Interval returns the configured tick period.
func (e *Engine) Interval() time.Duration {
	return e.opts.Interval
}

// Refresh performs one tick: select, build, paint. It returns the line that
// is now showing. Build failures are swallowed into ErrorPlaceholder; when
// the surface is not live the previous successfully built line is reused
// untouched so the display never goes blank.
func (e *Engine) Refresh(ctx rule.Context) (string, error) {
	e.mu.Lock()
	if !e.started {
		e.mu.Unlock()
		return "", ErrNotStarted
	}
	if e.paused {
		line := e.lastLine
		e.mu.Unlock()
		return line, nil
	}
	if !e.surface.Live() {
		line := e.lastLine
		e.mu.Unlock()
		return line, nil
	}

	width := e.surface.Width()
	names := e.effectiveLocked(ctx, width)
	e.lastEffective = names
	e.mu.Unlock()

	line, err := e.builder.Build(names, width)
	if err != nil {
		e.logger.Warn("line build failed", "error", err)
		line = ErrorPlaceholder
	} else {
		e.mu.Lock()
		e.lastLine = line
		e.mu.Unlock()
	}

	if perr := e.surface.Paint(line); perr != nil {
		e.logger.Warn("paint failed", "error", perr)
	}
	return line, nil
}

// Effective returns the segment-name list the next build would use for ctx,
// re-evaluating the width bucket against the current surface width.
func (e *Engine) Effective(ctx rule.Context) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return nil, ErrNotStarted
	}
	names := e.effectiveLocked(ctx, e.surface.Width())
	e.lastEffective = names
	return names, nil
}

// effectiveLocked resolves the ordered segment-name list for one tick.
// Caller holds e.mu.
func (e *Engine) effectiveLocked(ctx rule.Context, width int) []string {
	persistent := e.opts.Persistent

	// Detector result is memoized per context key; a context switch
	// invalidates it.
	if ctx.Key != e.detectedKey || e.detectedKey == "" {
		e.detectedSpec, e.detectedFor, e.detectedOK = e.opts.Detectors.Detect(ctx)
		e.detectedKey = ctx.Key
		if e.detectedOK {
			e.logger.Debug("context detector matched", "detector", e.detectedFor, "context", ctx.Key)
		}
	}
	if e.detectedOK {
		persistent = e.detectedSpec
	}

	merged := rule.Merge(
		rule.Normalize(persistent, e.valid),
		rule.Normalize(e.opts.Temporary, e.valid),
	)

	bucket := rule.SelectBucket(width, e.opts.WidthThreshold)
	return e.toggles.Apply(merged.Bucket(bucket))
}

// Notify re-runs Update on every activated segment subscribed to the named
// hook. Host events (directory change, vcs refresh) arrive through here
// between ticks; the refreshed state is picked up by the next Fetch.
func (e *Engine) Notify(hook string) {
	for _, name := range e.registry.Names() {
		seg, ok := e.registry.Get(name)
		if !ok || !seg.Activated() || seg.Update == nil {
			continue
		}
		for _, h := range seg.UpdateHooks {
			if h == hook {
				seg.Update()
				break
			}
		}
	}
}

// UpdateSegments re-runs Update on every activated segment. Watch mode calls
// this on a slower cadence than the paint tick so polling segments (cpu,
// battery) stay current without a host event source.
func (e *Engine) UpdateSegments() {
	for _, name := range e.registry.Names() {
		seg, ok := e.registry.Get(name)
		if !ok || !seg.Activated() || seg.Update == nil {
			continue
		}
		seg.Update()
	}
}

// Toggle flips the named segment's visibility relative to its current
// effective state: visible becomes hidden, hidden (or absent) becomes shown.
func (e *Engine) Toggle(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return ErrNotStarted
	}
	visible := false
	for _, n := range e.lastEffective {
		if n == name {
			visible = true
			break
		}
	}
	e.toggles.Toggle(name, visible)
	return nil
}

// ResetToggles clears all per-name overrides.
func (e *Engine) ResetToggles() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.started {
		return ErrNotStarted
	}
	e.toggles.Reset()
	return nil
}

// Line returns the most recently built line.
func (e *Engine) Line() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastLine
}

// Suspend runs fn with tray updates paused. The pause flag is cleared on
// every exit path, including a panic inside fn.
func (e *Engine) Suspend(fn func() error) error {
	e.setPaused(true)
	defer e.setPaused(false)
	return fn()
}

// MaybeSuspend runs fn, pausing updates only when command is on the
// configured skip list.
func (e *Engine) MaybeSuspend(command string, fn func() error) error {
	if _, skip := e.skip[command]; skip {
		return e.Suspend(fn)
	}
	return fn()
}

// Paused reports whether updates are currently suspended.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

func (e *Engine) setPaused(p bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = p
}
