package segment

import (
	"sync"
	"sync/atomic"
)

// MockSegment builds Segment descriptors for testing. It tracks how many
// times Setup, Update, and Fetch ran, and lets tests swap the fetched text
// or error between ticks.
type MockSegment struct {
	seg *Segment

	mu   sync.RWMutex
	text string
	err  error

	setupCount  atomic.Int64
	updateCount atomic.Int64
	fetchCount  atomic.Int64

	// FetchFunc, if set, overrides the default Fetch behavior so tests can
	// inject dynamic responses (e.g. fail on tick N, recover on tick N+1).
	FetchFunc func() (string, error)
}

// MockSegmentOption configures a MockSegment.
type MockSegmentOption func(*MockSegment)

// WithText sets the text returned by Fetch.
func WithText(text string) MockSegmentOption {
	return func(m *MockSegment) { m.text = text }
}

// WithFetchError sets the error returned by Fetch.
func WithFetchError(err error) MockSegmentOption {
	return func(m *MockSegment) { m.err = err }
}

// WithFetchFunc sets a custom function for Fetch.
func WithFetchFunc(fn func() (string, error)) MockSegmentOption {
	return func(m *MockSegment) { m.FetchFunc = fn }
}

// WithSetupError makes Setup fail with err.
func WithSetupError(err error) MockSegmentOption {
	return func(m *MockSegment) {
		m.seg.Setup = func() error {
			m.setupCount.Add(1)
			return err
		}
	}
}

// NewMockSegment creates a mock segment with the given name and options.
// The returned mock's Descriptor() is what gets registered.
func NewMockSegment(name string, opts ...MockSegmentOption) *MockSegment {
	m := &MockSegment{}
	m.seg = &Segment{
		Name: name,
		Setup: func() error {
			m.setupCount.Add(1)
			return nil
		},
		Update: func() {
			m.updateCount.Add(1)
		},
		Fetch: func() (string, error) {
			m.fetchCount.Add(1)
			if m.FetchFunc != nil {
				return m.FetchFunc()
			}
			m.mu.RLock()
			defer m.mu.RUnlock()
			return m.text, m.err
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Descriptor returns the underlying Segment.
func (m *MockSegment) Descriptor() *Segment { return m.seg }

// SetText updates the text returned by Fetch (thread-safe).
func (m *MockSegment) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// SetError updates the error returned by Fetch (thread-safe).
func (m *MockSegment) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// SetupCount returns how many times Setup ran.
func (m *MockSegment) SetupCount() int64 { return m.setupCount.Load() }

// UpdateCount returns how many times Update ran.
func (m *MockSegment) UpdateCount() int64 { return m.updateCount.Load() }

// FetchCount returns how many times Fetch ran.
func (m *MockSegment) FetchCount() int64 { return m.fetchCount.Load() }
