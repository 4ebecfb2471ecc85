// Package segments provides the built-in segment catalog: clock, date,
// working directory, user@host, git, cpu, mem, loadavg, battery, and the
// ssh indicator. Each builder returns a plain segment descriptor; the
// engine never knows how a fetch obtains its data.
package segments

import (
	"gitlab.com/tinyland/lab/echo-tray/pkg/config"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
	"gitlab.com/tinyland/lab/echo-tray/pkg/theme"
)

// RegisterBuiltins registers the full built-in catalog with the registry.
// Registration alone is cheap: no segment touches the system until the
// first rule selects it and the engine activates it. Tray-level formatting
// knobs (the ellipsis) reach the segments that truncate from here.
func RegisterBuiltins(reg *segment.Registry, cfg *config.Config, th theme.Theme) {
	segs := cfg.Segments
	reg.Register(NewClock(segs.Clock, th))
	reg.Register(NewDate(segs.Clock, th))
	reg.Register(NewCwd(th))
	reg.Register(NewUser(th))
	reg.Register(NewSSH(th))
	reg.Register(NewGit(segs.Git, cfg.Tray.Ellipsis, th))
	reg.Register(NewCPU(segs.Sys, th))
	reg.Register(NewMem(segs.Sys, th))
	reg.Register(NewLoadAvg(segs.Sys, th))
	reg.Register(NewBattery(segs.Battery, th))
}
