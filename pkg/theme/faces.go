package theme

import "github.com/charmbracelet/lipgloss"

// Face renders text in the given hex color. An empty color returns the text
// unmodified so unset theme fields degrade to plain output.
func Face(text, hexColor string) string {
	if hexColor == "" || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(text)
}

// Status colors text by a status band: "ok", "warn", "error". Unrecognized
// statuses use the dim face.
func (t Theme) Status(text, status string) string {
	switch status {
	case "ok", "healthy":
		return Face(text, t.StatusOK)
	case "warn", "warning":
		return Face(text, t.StatusWarn)
	case "error", "critical":
		return Face(text, t.StatusError)
	default:
		return Face(text, t.Dim)
	}
}
