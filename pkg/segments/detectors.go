package segments

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/echo-tray/pkg/rule"
)

// ProjectRuleFile is the name of the per-project override file. When the
// working directory (or an ancestor) contains one, its rule replaces the
// configured persistent baseline entirely.
const ProjectRuleFile = ".echo-tray.yaml"

// projectRule is the on-disk shape of a project override.
type projectRule struct {
	Tray rule.Spec `yaml:"tray"`
}

// BuildContext snapshots the current environment for detector matching.
// The working directory doubles as the memoization key: the engine
// re-detects only when the directory changes.
func BuildContext() rule.Context {
	wd, _ := os.Getwd()
	attrs := map[string]string{"cwd": wd}
	if os.Getenv("SSH_CONNECTION") != "" {
		attrs["ssh"] = "1"
	}
	if p := findProjectRule(wd); p != "" {
		attrs["project_rule"] = p
	}
	return rule.Context{Key: wd, Attrs: attrs}
}

// DefaultDetectors returns the built-in detector chain, highest priority
// first.
func DefaultDetectors() rule.Chain {
	return rule.Chain{
		{Name: "project-rule", Match: matchProjectRule},
	}
}

// matchProjectRule loads a project-local rule override when the context
// carries one. A file that exists but fails to parse is treated as no
// match so a typo cannot blank the tray.
func matchProjectRule(ctx rule.Context) (rule.Spec, bool) {
	path := ctx.Attr("project_rule")
	if path == "" {
		return rule.Spec{}, false
	}
	spec, err := loadProjectRule(path)
	if err != nil {
		return rule.Spec{}, false
	}
	return spec, true
}

// loadProjectRule parses a project override file.
func loadProjectRule(path string) (rule.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rule.Spec{}, err
	}
	var pr projectRule
	if err := yaml.Unmarshal(data, &pr); err != nil {
		return rule.Spec{}, err
	}
	return pr.Tray, nil
}

// findProjectRule walks from dir toward the filesystem root looking for a
// project rule file. Returns "" when none exists.
func findProjectRule(dir string) string {
	for dir != "" {
		path := filepath.Join(dir, ProjectRuleFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
