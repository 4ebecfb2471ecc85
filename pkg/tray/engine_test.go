package tray

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/echo-tray/pkg/rule"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
)

// fakeSurface is an in-memory Surface recording every painted line.
type fakeSurface struct {
	width  int
	live   bool
	paints []string
}

func newFakeSurface(width int) *fakeSurface {
	return &fakeSurface{width: width, live: true}
}

func (s *fakeSurface) Width() int { return s.width }
func (s *fakeSurface) Live() bool { return s.live }
func (s *fakeSurface) Paint(line string) error {
	s.paints = append(s.paints, line)
	return nil
}

func (s *fakeSurface) lastPaint() string {
	if len(s.paints) == 0 {
		return ""
	}
	return s.paints[len(s.paints)-1]
}

func newTestEngine(t *testing.T, surf Surface, opts Options) (*Engine, *segment.Registry) {
	t.Helper()
	r := segment.NewRegistry()
	r.Register(segment.NewMockSegment("mode", segment.WithText("M")).Descriptor())
	r.Register(segment.NewMockSegment("pos", segment.WithText("1:1")).Descriptor())
	r.Register(segment.NewMockSegment("proc", segment.WithText("")).Descriptor())
	e := NewEngine(r, surf, opts, nil)
	return e, r
}

func TestRefreshEndToEnd(t *testing.T) {
	surf := newFakeSurface(0)
	e, _ := newTestEngine(t, surf, Options{
		Persistent: rule.Spec{Both: []string{"mode", "pos"}},
		Temporary:  rule.Spec{Both: []string{"proc"}},
	})
	e.Start()

	line, err := e.Refresh(rule.Context{Key: "buf"})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	// proc fetches empty and is dropped; remaining output is reversed.
	if line != "1:1 M" {
		t.Errorf("Refresh = %q, want %q", line, "1:1 M")
	}
	if surf.lastPaint() != "1:1 M" {
		t.Errorf("painted %q, want %q", surf.lastPaint(), "1:1 M")
	}
}

func TestRefreshBeforeStart(t *testing.T) {
	e, _ := newTestEngine(t, newFakeSurface(80), Options{})
	if _, err := e.Refresh(rule.Context{}); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("Refresh before Start = %v, want ErrNotStarted", err)
	}
}

func TestRefreshWidthBucketSwitch(t *testing.T) {
	surf := newFakeSurface(100)
	e, _ := newTestEngine(t, surf, Options{
		Persistent:     rule.Spec{Long: []string{"mode", "pos"}, Short: []string{"mode"}},
		WidthThreshold: 120,
	})
	e.Start()

	line, err := e.Refresh(rule.Context{Key: "b"})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if strings.TrimSpace(line) != "M" {
		t.Errorf("at width 100 line = %q, want short bucket output %q", line, "M")
	}

	surf.width = 150
	line, err = e.Refresh(rule.Context{Key: "b"})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if strings.TrimSpace(line) != "1:1 M" {
		t.Errorf("at width 150 line = %q, want long bucket output %q", line, "1:1 M")
	}
}

func TestRefreshDetectorOverridesBaseline(t *testing.T) {
	surf := newFakeSurface(0)
	e, _ := newTestEngine(t, surf, Options{
		Persistent: rule.Spec{Both: []string{"mode", "pos"}},
		Detectors: rule.Chain{
			{Name: "special", Match: func(ctx rule.Context) (rule.Spec, bool) {
				if ctx.Attr("kind") == "special" {
					return rule.Spec{Both: []string{"pos"}}, true
				}
				return rule.Spec{}, false
			}},
		},
	})
	e.Start()

	line, err := e.Refresh(rule.Context{
		Key:   "special-buf",
		Attrs: map[string]string{"kind": "special"},
	})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	// Baseline's "mode" must not appear: the detector rule replaces the
	// baseline entirely.
	if line != "1:1" {
		t.Errorf("Refresh = %q, want %q", line, "1:1")
	}
}

func TestDetectorMemoizedPerContext(t *testing.T) {
	calls := 0
	e, _ := newTestEngine(t, newFakeSurface(0), Options{
		Persistent: rule.Spec{Both: []string{"mode"}},
		Detectors: rule.Chain{
			{Name: "counting", Match: func(rule.Context) (rule.Spec, bool) {
				calls++
				return rule.Spec{}, false
			}},
		},
	})
	e.Start()

	ctx := rule.Context{Key: "same"}
	for i := 0; i < 3; i++ {
		if _, err := e.Refresh(ctx); err != nil {
			t.Fatalf("Refresh failed: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("detector ran %d times for one context, want 1 (memoized)", calls)
	}

	if _, err := e.Refresh(rule.Context{Key: "other"}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("detector ran %d times after context switch, want 2", calls)
	}
}

func TestRefreshFetchErrorPaintsPlaceholderThenRecovers(t *testing.T) {
	surf := newFakeSurface(0)
	r := segment.NewRegistry()
	tick := 0
	r.Register(segment.NewMockSegment("flaky",
		segment.WithFetchFunc(func() (string, error) {
			tick++
			if tick == 2 {
				return "", errors.New("transient scrape failure")
			}
			return "ok", nil
		})).Descriptor())

	e := NewEngine(r, surf, Options{Persistent: rule.Spec{Both: []string{"flaky"}}}, nil)
	e.Start()
	ctx := rule.Context{Key: "b"}

	line, _ := e.Refresh(ctx)
	if line != "ok" {
		t.Fatalf("tick 1 = %q, want %q", line, "ok")
	}

	line, _ = e.Refresh(ctx)
	if line != ErrorPlaceholder {
		t.Errorf("tick 2 = %q, want placeholder %q", line, ErrorPlaceholder)
	}
	// The cached last-good line survives the failed tick.
	if e.Line() != "ok" {
		t.Errorf("cached line = %q, want %q", e.Line(), "ok")
	}

	line, _ = e.Refresh(ctx)
	if line != "ok" {
		t.Errorf("tick 3 = %q, want recovered %q", line, "ok")
	}
}

func TestRefreshNonLiveSurfaceReusesCache(t *testing.T) {
	surf := newFakeSurface(0)
	e, _ := newTestEngine(t, surf, Options{Persistent: rule.Spec{Both: []string{"mode"}}})
	e.Start()
	ctx := rule.Context{Key: "b"}

	if _, err := e.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	painted := len(surf.paints)

	surf.live = false
	line, err := e.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if line != "M" {
		t.Errorf("non-live Refresh = %q, want cached %q", line, "M")
	}
	if len(surf.paints) != painted {
		t.Error("non-live surface must not be painted")
	}
}

func TestToggleHidesAndRestores(t *testing.T) {
	surf := newFakeSurface(0)
	e, _ := newTestEngine(t, surf, Options{Persistent: rule.Spec{Both: []string{"mode", "pos"}}})
	e.Start()
	ctx := rule.Context{Key: "b"}

	if _, err := e.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// "pos" is visible: the first toggle hides it on the next refresh.
	if err := e.Toggle("pos"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	line, _ := e.Refresh(ctx)
	if line != "M" {
		t.Errorf("after toggle line = %q, want %q", line, "M")
	}

	// Second toggle restores visibility.
	if err := e.Toggle("pos"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	line, _ = e.Refresh(ctx)
	if line != "1:1 M" {
		t.Errorf("after second toggle line = %q, want %q", line, "1:1 M")
	}
}

func TestToggleBeforeStart(t *testing.T) {
	e, _ := newTestEngine(t, newFakeSurface(80), Options{})
	if err := e.Toggle("mode"); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Toggle before Start = %v, want ErrNotStarted", err)
	}
	if err := e.ResetToggles(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("ResetToggles before Start = %v, want ErrNotStarted", err)
	}
}

func TestResetTogglesRestoresBaseline(t *testing.T) {
	e, _ := newTestEngine(t, newFakeSurface(0), Options{Persistent: rule.Spec{Both: []string{"mode", "pos"}}})
	e.Start()
	ctx := rule.Context{Key: "b"}

	e.Refresh(ctx)
	e.Toggle("mode")
	e.Toggle("pos")
	if err := e.ResetToggles(); err != nil {
		t.Fatalf("ResetToggles failed: %v", err)
	}

	line, _ := e.Refresh(ctx)
	if line != "1:1 M" {
		t.Errorf("after reset line = %q, want %q", line, "1:1 M")
	}
}

func TestSnapshotFiltersLateRegistrations(t *testing.T) {
	surf := newFakeSurface(0)
	e, r := newTestEngine(t, surf, Options{Persistent: rule.Spec{Both: []string{"mode", "late"}}})
	e.Start()

	// Registered after the Start snapshot: the rule entry stays invalid.
	r.Register(segment.NewMockSegment("late", segment.WithText("L")).Descriptor())

	line, _ := e.Refresh(rule.Context{Key: "b"})
	if line != "M" {
		t.Errorf("Refresh = %q, want %q (late registration filtered)", line, "M")
	}
}

func TestSuspendPausesRefresh(t *testing.T) {
	surf := newFakeSurface(0)
	e, _ := newTestEngine(t, surf, Options{Persistent: rule.Spec{Both: []string{"mode"}}})
	e.Start()
	ctx := rule.Context{Key: "b"}
	e.Refresh(ctx)
	painted := len(surf.paints)

	err := e.Suspend(func() error {
		if !e.Paused() {
			t.Error("engine should report paused inside Suspend")
		}
		line, rerr := e.Refresh(ctx)
		if rerr != nil {
			return rerr
		}
		if line != "M" {
			t.Errorf("suspended Refresh = %q, want cached %q", line, "M")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Suspend failed: %v", err)
	}
	if len(surf.paints) != painted {
		t.Error("suspended Refresh must not repaint")
	}
	if e.Paused() {
		t.Error("pause flag should clear after Suspend returns")
	}
}

func TestSuspendClearsOnPanic(t *testing.T) {
	e, _ := newTestEngine(t, newFakeSurface(80), Options{})
	e.Start()

	func() {
		defer func() { _ = recover() }()
		_ = e.Suspend(func() error { panic("wrapped operation failed") })
	}()

	if e.Paused() {
		t.Error("pause flag must clear even when the wrapped operation panics")
	}
}

func TestMaybeSuspendHonorsSkipList(t *testing.T) {
	e, _ := newTestEngine(t, newFakeSurface(80), Options{
		SkipCommands: []string{"bulk-rename"},
	})
	e.Start()

	var pausedDuringSkipped, pausedDuringOther bool
	e.MaybeSuspend("bulk-rename", func() error {
		pausedDuringSkipped = e.Paused()
		return nil
	})
	e.MaybeSuspend("status", func() error {
		pausedDuringOther = e.Paused()
		return nil
	})

	if !pausedDuringSkipped {
		t.Error("skip-listed command should run with updates paused")
	}
	if pausedDuringOther {
		t.Error("other commands should not pause updates")
	}
}

func TestEffectiveReflectsChain(t *testing.T) {
	e, _ := newTestEngine(t, newFakeSurface(150), Options{
		Persistent: rule.Spec{Both: []string{"mode", "pos"}},
		Temporary:  rule.Spec{Both: []string{"proc"}},
	})
	e.Start()

	names, err := e.Effective(rule.Context{Key: "b"})
	if err != nil {
		t.Fatalf("Effective failed: %v", err)
	}
	want := []string{"mode", "pos", "proc"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Effective = %v, want %v", names, want)
	}
}
