package segments

import (
	"os"
	"strings"

	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
	"gitlab.com/tinyland/lab/echo-tray/pkg/theme"
)

// NewCwd returns the working-directory segment. The path is re-read on each
// update so directory changes between ticks are picked up.
func NewCwd(th theme.Theme) *segment.Segment {
	var cached string
	update := func() {
		wd, err := os.Getwd()
		if err != nil {
			cached = ""
			return
		}
		cached = abbreviateHome(wd, os.Getenv("HOME"))
	}
	return &segment.Segment{
		Name:        "cwd",
		Update:      update,
		UpdateHooks: []string{"dir-changed"},
		Fetch: func() (string, error) {
			return theme.Face(cached, th.Path), nil
		},
	}
}

// abbreviateHome replaces a leading home directory with "~".
func abbreviateHome(path, home string) string {
	if home == "" || home == "/" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}
