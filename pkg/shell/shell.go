// Package shell detects the user's shell and generates the prompt
// integration snippets that embed the tray line into it.
package shell

import "fmt"

// ShellType identifies a supported shell.
type ShellType string

const (
	Bash ShellType = "bash"
	Zsh  ShellType = "zsh"
	Fish ShellType = "fish"
	Ksh  ShellType = "ksh"
)

// Parse maps a shell name to a ShellType. "auto" detects the current shell.
func Parse(name string) (ShellType, error) {
	switch name {
	case "auto", "":
		return Detect(), nil
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "ksh":
		return Ksh, nil
	}
	return "", fmt.Errorf("unknown shell %q (supported: bash, zsh, fish, ksh)", name)
}
