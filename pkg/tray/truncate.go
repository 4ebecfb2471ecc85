package tray

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleWidth returns the display width of s in terminal cells. ANSI escape
// sequences are ignored and wide characters (CJK, emoji) count as 2.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// TruncateSegment fits a single segment's text into maxWidth cells. Text that
// already fits is returned trimmed of leading and trailing whitespace,
// otherwise unchanged. Overlong text is cut to maxWidth minus the ellipsis
// width and the ellipsis is appended carrying the styling active at the last
// kept character, followed by a reset so the open style does not bleed into
// the separator.
func TruncateSegment(s string, maxWidth int, ellipsis string) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return strings.TrimSpace(s)
	}

	keep := maxWidth - VisibleWidth(ellipsis)
	if keep < 0 {
		keep = 0
	}
	cut := ansi.Truncate(s, keep, "")

	if style := activeStyle(cut); style != "" {
		return cut + style + ellipsis + "\x1b[0m"
	}
	return cut + ellipsis
}

// activeStyle returns the SGR escape sequence still in effect at the end of
// s, or "" when the text ends unstyled. A reset sequence clears the state;
// any other SGR replaces it.
func activeStyle(s string) string {
	var style string
	for i := 0; i < len(s); i++ {
		if s[i] != '\x1b' || i+1 >= len(s) || s[i+1] != '[' {
			continue
		}
		end := i + 2
		for end < len(s) && !isCSIFinal(s[end]) {
			end++
		}
		if end >= len(s) || s[end] != 'm' {
			i = end
			continue
		}
		seq := s[i : end+1]
		params := s[i+2 : end]
		if params == "" || params == "0" {
			style = ""
		} else {
			style = seq
		}
		i = end
	}
	return style
}

// isCSIFinal reports whether b terminates a CSI sequence.
func isCSIFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
