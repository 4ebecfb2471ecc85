package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetKnownTheme(t *testing.T) {
	th := Get("gruvbox")
	if th.Name != "gruvbox" {
		t.Errorf("Name = %q, want %q", th.Name, "gruvbox")
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	th := Get("NORD")
	if th.Name != "nord" {
		t.Errorf("Name = %q, want %q", th.Name, "nord")
	}
}

func TestGetUnknownFallsBack(t *testing.T) {
	th := Get("no-such-theme")
	if th.Name != "default" {
		t.Errorf("Name = %q, want fallback %q", th.Name, "default")
	}
}

func TestNamesIncludesBuiltins(t *testing.T) {
	names := Names()
	want := map[string]bool{"default": false, "gruvbox": false, "nord": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("Names missing builtin %q", name)
		}
	}
}

func TestFaceEmptyColorPassthrough(t *testing.T) {
	if got := Face("plain", ""); got != "plain" {
		t.Errorf("Face with empty color = %q, want %q", got, "plain")
	}
}

func TestStatusFaces(t *testing.T) {
	th := Get("default")
	// Status must not return empty output for any band.
	for _, status := range []string{"ok", "warn", "error", "mystery"} {
		if got := th.Status("text", status); got == "" {
			t.Errorf("Status(%q) returned empty", status)
		}
	}
}

func TestLoadCustomTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mytheme.toml")
	content := `
name = "custom"
accent = "#ff00ff"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadCustom(path)
	if err != nil {
		t.Fatalf("LoadCustom failed: %v", err)
	}
	if th.Accent != "#ff00ff" {
		t.Errorf("Accent = %q, want %q", th.Accent, "#ff00ff")
	}
	// Unset fields inherit from default.
	if th.StatusOK != Get("default").StatusOK {
		t.Errorf("StatusOK = %q, want inherited default", th.StatusOK)
	}
	// Registered under its name.
	if got := Get("custom"); got.Accent != "#ff00ff" {
		t.Errorf("registered theme Accent = %q, want %q", got.Accent, "#ff00ff")
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	if _, err := LoadCustom(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("LoadCustom should fail for a missing file")
	}
}
