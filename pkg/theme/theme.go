// Package theme defines the face palettes segments draw with. A theme maps
// semantic faces (ok, warn, error, accent, dim) to hex colors; segments
// never hardcode colors, they ask the active theme for a face.
package theme

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Theme defines the color palette for the tray line.
type Theme struct {
	Name string `toml:"name"`

	// Base faces
	Foreground string `toml:"foreground"` // hex color e.g. "#d4d4d4"
	Dim        string `toml:"dim"`        // de-emphasized text
	Accent     string `toml:"accent"`     // highlights

	// Status faces
	StatusOK    string `toml:"status_ok"`
	StatusWarn  string `toml:"status_warn"`
	StatusError string `toml:"status_error"`

	// Segment faces
	VCS     string `toml:"vcs"`     // git branch
	Battery string `toml:"battery"` // battery charge
	Clock   string `toml:"clock"`   // clock and date
	Path    string `toml:"path"`    // working directory
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a theme to the registry under its lowercase name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// LoadCustom reads a user theme from a TOML file and registers it. Fields
// left empty inherit from the default theme.
func LoadCustom(path string) (Theme, error) {
	t := Get("default")
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, err
	}
	defer f.Close()
	if _, err := toml.NewDecoder(f).Decode(&t); err != nil {
		return Theme{}, err
	}
	Register(t)
	return t, nil
}
