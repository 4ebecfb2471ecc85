package rule

import "sync"

// Toggles records explicit per-name show/hide overrides layered on top of
// whatever the merge/detector chain produced. Overrides are keyed by segment
// name, not position, and persist across ticks until Reset.
type Toggles struct {
	mu        sync.RWMutex
	overrides map[string]bool
	order     []string // names in first-override order, keeps Apply deterministic
}

// NewToggles returns an empty toggle overlay.
func NewToggles() *Toggles {
	return &Toggles{overrides: make(map[string]bool)}
}

// Apply layers the overrides onto base: names forced on are appended if
// absent, names forced off are removed wherever they occur. Forced-on names
// are appended in the order their overrides were first recorded. The input
// slice is not modified.
func (t *Toggles) Apply(base []string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, 0, len(base))
	for _, name := range base {
		if enabled, ok := t.overrides[name]; ok && !enabled {
			continue
		}
		out = append(out, name)
	}

	for _, name := range t.order {
		if t.overrides[name] && !containsName(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// Toggle flips the override for name relative to its current effective
// visibility. The first toggle of a name always inverts its pre-toggle
// state: a visible name becomes hidden and vice versa, regardless of
// whether an override already existed.
func (t *Toggles) Toggle(name string, currentlyVisible bool) {
	t.set(name, !currentlyVisible)
}

// Set records an explicit override without consulting current visibility.
func (t *Toggles) Set(name string, enabled bool) {
	t.set(name, enabled)
}

func (t *Toggles) set(name string, enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, seen := t.overrides[name]; !seen {
		t.order = append(t.order, name)
	}
	t.overrides[name] = enabled
}

// Reset clears all overrides.
func (t *Toggles) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.overrides = make(map[string]bool)
	t.order = nil
}

// Overridden returns the override for name, and whether one exists.
func (t *Toggles) Overridden(name string) (enabled, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	enabled, ok = t.overrides[name]
	return enabled, ok
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
