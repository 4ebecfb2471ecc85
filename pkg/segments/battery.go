package segments

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/echo-tray/pkg/config"
	"gitlab.com/tinyland/lab/echo-tray/pkg/segment"
	"gitlab.com/tinyland/lab/echo-tray/pkg/theme"
)

// powerSupplyDir is the sysfs root for battery state on Linux.
const powerSupplyDir = "/sys/class/power_supply"

// defaultBatteryLowPercent marks the warning band when unconfigured.
const defaultBatteryLowPercent = 20

// batteryState caches the sysfs reading between update and fetch.
type batteryState struct {
	mu       sync.Mutex
	cfg      config.BatteryConfig
	th       theme.Theme
	dir      string // battery sysfs dir, "" when no battery exists
	percent  int
	charging bool
	ok       bool
}

// NewBattery returns the battery charge segment. On machines without a
// battery (or non-Linux hosts without sysfs) the segment stays empty.
func NewBattery(cfg config.BatteryConfig, th theme.Theme) *segment.Segment {
	b := &batteryState{cfg: cfg, th: th}
	return &segment.Segment{
		Name:        "battery",
		Setup:       b.setup,
		Update:      b.update,
		UpdateHooks: []string{"power-changed"},
		Fetch:       b.fetch,
	}
}

func (b *batteryState) setup() error {
	b.dir = findBatteryDir(powerSupplyDir)
	return nil
}

func (b *batteryState) update() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dir == "" {
		b.ok = false
		return
	}

	pct, err := readSysfsInt(filepath.Join(b.dir, "capacity"))
	if err != nil {
		b.ok = false
		return
	}
	status, _ := readSysfsString(filepath.Join(b.dir, "status"))

	b.percent = pct
	b.charging = status == "Charging" || status == "Full"
	b.ok = true
}

func (b *batteryState) fetch() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ok {
		return "", nil
	}
	low := b.cfg.LowPercent
	if low <= 0 {
		low = defaultBatteryLowPercent
	}
	return b.th.Status(formatBattery(b.percent, b.charging), batteryBand(b.percent, b.charging, low)), nil
}

// formatBattery renders "85%" or "85%+" while charging.
func formatBattery(percent int, charging bool) string {
	s := strconv.Itoa(percent) + "%"
	if charging {
		s += "+"
	}
	return s
}

// batteryBand picks the face band: charging is always ok, otherwise the
// charge level decides.
func batteryBand(percent int, charging bool, lowAt int) string {
	if charging {
		return "ok"
	}
	switch {
	case percent <= lowAt/2:
		return "error"
	case percent <= lowAt:
		return "warn"
	default:
		return "ok"
	}
}

// findBatteryDir returns the first BAT* directory under root, or "".
func findBatteryDir(root string) string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "BAT") {
			return filepath.Join(root, e.Name())
		}
	}
	return ""
}

func readSysfsInt(path string) (int, error) {
	s, err := readSysfsString(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func readSysfsString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
