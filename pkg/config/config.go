// Package config loads the echo-tray TOML configuration, with XDG search
// paths and ECHO_TRAY_* environment overrides.
package config

import (
	"time"

	"gitlab.com/tinyland/lab/echo-tray/pkg/rule"
)

// Config is the top-level echo-tray configuration.
type Config struct {
	Tray     TrayConfig     `toml:"tray"`
	Rules    RulesConfig    `toml:"rules"`
	Segments SegmentsConfig `toml:"segments"`
}

// TrayConfig controls the engine's formatting and timing knobs.
type TrayConfig struct {
	// Separator joins segment texts on the finished line.
	Separator string `toml:"separator"`

	// Ellipsis marks per-segment truncation.
	Ellipsis string `toml:"ellipsis"`

	// RightPadding reserves trailing columns so a message printed after the
	// tray line does not collide with it.
	RightPadding int `toml:"right_padding"`

	// Interval is the refresh tick period.
	Interval Duration `toml:"interval"`

	// WidthThreshold is the column count at which the long rule bucket
	// replaces the short one.
	WidthThreshold int `toml:"width_threshold"`

	// Theme names the face palette applied to segments.
	Theme string `toml:"theme"`

	// SkipCommands lists command names that suspend tray updates for the
	// duration of their execution.
	SkipCommands []string `toml:"skip_commands"`
}

// RulesConfig holds the persistent baseline and the always-merged
// temporary rule, in raw spec form.
type RulesConfig struct {
	Active    rule.Spec `toml:"active"`
	Temporary rule.Spec `toml:"temporary"`
}

// SegmentsConfig carries per-segment settings for the built-in catalog.
type SegmentsConfig struct {
	Clock   ClockConfig   `toml:"clock"`
	Git     GitConfig     `toml:"git"`
	Battery BatteryConfig `toml:"battery"`
	Sys     SysConfig     `toml:"sys"`
}

// ClockConfig configures the clock and date segments.
type ClockConfig struct {
	// Format is a Go time layout string.
	Format     string `toml:"format"`
	DateFormat string `toml:"date_format"`
}

// GitConfig configures the git segment.
type GitConfig struct {
	// ShowDirty appends a marker when the work tree has local changes.
	ShowDirty bool `toml:"show_dirty"`
	// MaxBranchLen truncates long branch names (0 = no cap).
	MaxBranchLen int `toml:"max_branch_len"`
}

// BatteryConfig configures the battery segment.
type BatteryConfig struct {
	// LowPercent is the charge level at or below which the segment switches
	// to the warning face.
	LowPercent int `toml:"low_percent"`
}

// SysConfig configures the cpu/mem/load segments.
type SysConfig struct {
	// WarnPercent is the utilization at or above which the warning face
	// applies.
	WarnPercent int `toml:"warn_percent"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tray: TrayConfig{
			Separator:      " ",
			Ellipsis:       "..",
			RightPadding:   0,
			Interval:       Duration{300 * time.Millisecond},
			WidthThreshold: 120,
			Theme:          "default",
		},
		Rules: RulesConfig{
			Active: rule.Spec{
				Long:  []string{"git", "cwd", "user", "loadavg", "mem", "cpu", "battery", "date", "clock"},
				Short: []string{"git", "cwd", "battery", "clock"},
			},
		},
		Segments: SegmentsConfig{
			Clock:   ClockConfig{Format: "15:04", DateFormat: "Mon Jan 2"},
			Git:     GitConfig{ShowDirty: true, MaxBranchLen: 24},
			Battery: BatteryConfig{LowPercent: 20},
			Sys:     SysConfig{WarnPercent: 80},
		},
	}
}
