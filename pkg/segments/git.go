package segments

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/echo-tray/pkg/config"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
	"gitlab.com/tinyland/lab/echo-tray/pkg/theme"
	"gitlab.com/tinyland/lab/echo-tray/pkg/tray"
)

// dirtyMarker is appended to the branch name when the work tree has
// uncommitted changes.
const dirtyMarker = "*"

// gitState caches the scraped repository state between update and fetch.
type gitState struct {
	mu       sync.Mutex
	cfg      config.GitConfig
	th       theme.Theme
	ellipsis string
	branch   string
	dirty    bool
}

// NewGit returns the git branch segment. Setup verifies the git binary is
// available; update scrapes branch and dirty state; fetch formats the
// cached result. Outside a repository the segment contributes nothing.
// ellipsis marks a capped branch name; empty selects the default.
func NewGit(cfg config.GitConfig, ellipsis string, th theme.Theme) *segment.Segment {
	if ellipsis == "" {
		ellipsis = tray.DefaultEllipsis
	}
	g := &gitState{cfg: cfg, th: th, ellipsis: ellipsis}
	return &segment.Segment{
		Name:        "git",
		Setup:       g.setup,
		Update:      g.update,
		UpdateHooks: []string{"dir-changed", "vcs-refresh"},
		Fetch:       g.fetch,
	}
}

func (g *gitState) setup() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git not on PATH: %w", err)
	}
	return nil
}

func (g *gitState) update() {
	branch := gitOutput("rev-parse", "--abbrev-ref", "HEAD")
	dirty := false
	if branch != "" && g.cfg.ShowDirty {
		dirty = gitOutput("status", "--porcelain") != ""
	}

	g.mu.Lock()
	g.branch = branch
	g.dirty = dirty
	g.mu.Unlock()
}

func (g *gitState) fetch() (string, error) {
	g.mu.Lock()
	branch, dirty := g.branch, g.dirty
	g.mu.Unlock()

	if branch == "" {
		return "", nil
	}
	return theme.Face(formatBranch(branch, dirty, g.cfg.MaxBranchLen, g.ellipsis), g.th.VCS), nil
}

// formatBranch caps the branch name at maxLen cells and appends the dirty
// marker after truncation so the marker always survives.
func formatBranch(branch string, dirty bool, maxLen int, ellipsis string) string {
	if maxLen > 0 {
		branch = tray.TruncateSegment(branch, maxLen, ellipsis)
	}
	if dirty {
		branch += dirtyMarker
	}
	return branch
}

// gitOutput runs git with the given arguments and returns trimmed stdout,
// or "" on any failure (not in a repository, detached worktree, etc).
func gitOutput(args ...string) string {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
