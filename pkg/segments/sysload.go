package segments

import (
	"fmt"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/echo-tray/pkg/config"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
	"gitlab.com/tinyland/lab/echo-tray/pkg/theme"
)

// defaultSysWarnPercent is the utilization band at which cpu/mem segments
// switch to the warning face.
const defaultSysWarnPercent = 80

// NewCPU returns the CPU utilization segment. The percentage is sampled on
// update and formatted on fetch.
func NewCPU(cfg config.SysConfig, th theme.Theme) *segment.Segment {
	warn := warnPercent(cfg)
	var (
		mu  sync.Mutex
		pct float64
		ok  bool
	)
	return &segment.Segment{
		Name: "cpu",
		Update: func() {
			// Interval 0 compares against the previous sample, so the first
			// tick may read 0; that settles by the second tick.
			percents, err := cpu.Percent(0, false)
			mu.Lock()
			defer mu.Unlock()
			if err != nil || len(percents) == 0 {
				ok = false
				return
			}
			pct, ok = percents[0], true
		},
		Fetch: func() (string, error) {
			mu.Lock()
			defer mu.Unlock()
			if !ok {
				return "", nil
			}
			return th.Status(fmt.Sprintf("cpu:%d%%", int(pct)), utilizationBand(pct, warn)), nil
		},
	}
}

// NewMem returns the memory utilization segment.
func NewMem(cfg config.SysConfig, th theme.Theme) *segment.Segment {
	warn := warnPercent(cfg)
	var (
		mu  sync.Mutex
		pct float64
		ok  bool
	)
	return &segment.Segment{
		Name: "mem",
		Update: func() {
			vm, err := mem.VirtualMemory()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				ok = false
				return
			}
			pct, ok = vm.UsedPercent, true
		},
		Fetch: func() (string, error) {
			mu.Lock()
			defer mu.Unlock()
			if !ok {
				return "", nil
			}
			return th.Status(fmt.Sprintf("mem:%d%%", int(pct)), utilizationBand(pct, warn)), nil
		},
	}
}

// NewLoadAvg returns the 1-minute load average segment.
func NewLoadAvg(_ config.SysConfig, th theme.Theme) *segment.Segment {
	var (
		mu   sync.Mutex
		avg1 float64
		ok   bool
	)
	return &segment.Segment{
		Name: "loadavg",
		Update: func() {
			l, err := load.Avg()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				ok = false
				return
			}
			avg1, ok = l.Load1, true
		},
		Fetch: func() (string, error) {
			mu.Lock()
			defer mu.Unlock()
			if !ok {
				return "", nil
			}
			return theme.Face(fmt.Sprintf("load:%.2f", avg1), th.Dim), nil
		},
	}
}

// utilizationBand maps a percentage to a status face band.
func utilizationBand(pct float64, warnAt int) string {
	switch {
	case pct >= 95:
		return "error"
	case pct >= float64(warnAt):
		return "warn"
	default:
		return "ok"
	}
}

func warnPercent(cfg config.SysConfig) int {
	if cfg.WarnPercent > 0 {
		return cfg.WarnPercent
	}
	return defaultSysWarnPercent
}
