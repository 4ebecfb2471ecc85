package segments

import (
	"time"

	"gitlab.com/tinyland/lab/echo-tray/pkg/config"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
	"gitlab.com/tinyland/lab/echo-tray/pkg/theme"
)

const (
	defaultClockFormat = "15:04"
	defaultDateFormat  = "Mon Jan 2"
)

// NewClock returns the wall-clock segment.
func NewClock(cfg config.ClockConfig, th theme.Theme) *segment.Segment {
	format := cfg.Format
	if format == "" {
		format = defaultClockFormat
	}
	return &segment.Segment{
		Name: "clock",
		Fetch: func() (string, error) {
			return theme.Face(time.Now().Format(format), th.Clock), nil
		},
	}
}

// NewDate returns the calendar date segment.
func NewDate(cfg config.ClockConfig, th theme.Theme) *segment.Segment {
	format := cfg.DateFormat
	if format == "" {
		format = defaultDateFormat
	}
	return &segment.Segment{
		Name: "date",
		Fetch: func() (string, error) {
			return theme.Face(time.Now().Format(format), th.Dim), nil
		},
	}
}
