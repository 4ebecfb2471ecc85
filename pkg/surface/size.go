package surface

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// measureWidth returns the terminal column count. It tries the TIOCGWINSZ
// ioctl on stdout then stderr (in case stdout is redirected), falls back to
// the COLUMNS environment variable, and finally to 80.
func measureWidth() int {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if cols := widthFromIoctl(fd); cols > 0 {
			return cols
		}
	}
	return envInt("COLUMNS", 80)
}

// widthFromIoctl queries terminal width via TIOCGWINSZ. Returns 0 on failure.
func widthFromIoctl(fd uintptr) int {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}

// envInt reads a positive integer from the named environment variable,
// returning fallback if it is unset, empty, or invalid.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
