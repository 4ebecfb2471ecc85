package segment

import (
	"sort"
	"sync"
)

// Registry manages the set of named segments. It is safe for concurrent use.
// Registering a name that already exists replaces the previous descriptor;
// the last registration wins.
type Registry struct {
	mu       sync.RWMutex
	segments map[string]*Segment
}

// NewRegistry returns an empty registry ready for segment registration.
func NewRegistry() *Registry {
	return &Registry{segments: make(map[string]*Segment)}
}

// Register inserts or replaces the segment under its name. Registration
// order has no semantic effect beyond last-wins replacement.
func (r *Registry) Register(s *Segment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segments[s.Name] = s
}

// Get returns the segment with the given name, or false if not registered.
func (r *Registry) Get(name string) (*Segment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.segments[name]
	return s, ok
}

// Names returns a sorted slice of all registered segment names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.segments))
	for name := range r.segments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SnapshotValid captures the set of currently registered names. The engine
// takes one snapshot at start and filters every rule against it, so a rule
// referencing a segment from a disabled integration is silently ignored.
// The snapshot does not track later registrations.
func (r *Registry) SnapshotValid() ValidNames {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v := make(ValidNames, len(r.segments))
	for name := range r.segments {
		v[name] = struct{}{}
	}
	return v
}

// ValidNames is an immutable-by-convention snapshot of registered names.
type ValidNames map[string]struct{}

// Contains reports whether name was registered when the snapshot was taken.
// A nil snapshot considers every name valid.
func (v ValidNames) Contains(name string) bool {
	if v == nil {
		return true
	}
	_, ok := v[name]
	return ok
}
