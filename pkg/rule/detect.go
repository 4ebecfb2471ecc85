package rule

// Context is a snapshot of the environment the tray is rendering for. Key
// identifies the context for memoization (the engine recomputes detection
// only when the key changes). Attrs carries whatever facts detectors match
// on: working directory, repository state, terminal kind.
type Context struct {
	Key   string
	Attrs map[string]string
}

// Attr returns the named attribute, or "" if absent.
func (c Context) Attr(name string) string {
	return c.Attrs[name]
}

// Detector inspects a context and may return a full override rule spec that
// replaces the persistent baseline. Returning ok=false means no opinion and
// the next detector in the chain is consulted.
type Detector struct {
	Name  string
	Match func(ctx Context) (Spec, bool)
}

// Chain is an ordered list of detectors. Order is priority order; the first
// detector that matches wins. Given the same context snapshot, Detect always
// returns the same result.
type Chain []Detector

// Detect runs the chain against ctx. It returns the winning detector's spec
// and name, or ok=false when no detector matched and the configured
// persistent baseline should be used.
func (c Chain) Detect(ctx Context) (spec Spec, name string, ok bool) {
	for _, d := range c {
		if d.Match == nil {
			continue
		}
		if s, matched := d.Match(ctx); matched {
			return s, d.Name, true
		}
	}
	return Spec{}, "", false
}
