package segments

import (
	"os"
	"os/user"
	"strings"

	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
	"gitlab.com/tinyland/lab/echo-tray/pkg/theme"
)

// NewUser returns the user@host segment. Both values are resolved once at
// setup; they do not change within a session.
func NewUser(th theme.Theme) *segment.Segment {
	var label string
	return &segment.Segment{
		Name: "user",
		Setup: func() error {
			name := "?"
			if u, err := user.Current(); err == nil {
				name = u.Username
			}
			host, err := os.Hostname()
			if err != nil {
				host = "?"
			}
			label = name + "@" + shortHostname(host)
			return nil
		},
		Fetch: func() (string, error) {
			return theme.Face(label, th.Accent), nil
		},
	}
}

// NewSSH returns the remote-session indicator segment. It renders only when
// the process runs inside an SSH session.
func NewSSH(th theme.Theme) *segment.Segment {
	var remote bool
	return &segment.Segment{
		Name: "ssh",
		Setup: func() error {
			remote = os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_TTY") != ""
			return nil
		},
		Fetch: func() (string, error) {
			if !remote {
				return "", nil
			}
			return th.Status("ssh", "warn"), nil
		},
	}
}

// shortHostname strips the domain part of a fully qualified hostname.
func shortHostname(host string) string {
	if i := strings.IndexByte(host, '.'); i > 0 {
		return host[:i]
	}
	return host
}
