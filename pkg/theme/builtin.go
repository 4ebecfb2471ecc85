package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		gruvboxTheme(),
		nordTheme(),
	} {
		Register(t)
	}
}

// defaultTheme returns the dark neutral theme with purple accent.
func defaultTheme() Theme {
	return Theme{
		Name:       "default",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",
		Accent:     "#7C3AED",

		StatusOK:    "#4ec970",
		StatusWarn:  "#e5c07b",
		StatusError: "#e06c75",

		VCS:     "#61afef",
		Battery: "#4ec970",
		Clock:   "#d4d4d4",
		Path:    "#c678dd",
	}
}

// gruvboxTheme returns the warm retro Gruvbox theme.
func gruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		StatusOK:    "#b8bb26",
		StatusWarn:  "#fabd2f",
		StatusError: "#fb4934",

		VCS:     "#83a598",
		Battery: "#b8bb26",
		Clock:   "#ebdbb2",
		Path:    "#d3869b",
	}
}

// nordTheme returns the cool arctic Nord theme.
func nordTheme() Theme {
	return Theme{
		Name:       "nord",
		Foreground: "#d8dee9",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		StatusOK:    "#a3be8c",
		StatusWarn:  "#ebcb8b",
		StatusError: "#bf616a",

		VCS:     "#81a1c1",
		Battery: "#a3be8c",
		Clock:   "#d8dee9",
		Path:    "#b48ead",
	}
}
