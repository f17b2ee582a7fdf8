package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Accent: "#874BFD",

		Overdue: "#FF5F5F",
		DueSoon: "#FFD700",
		OnTrack: "#5FD75F",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Tag:    "#5F87D7",

		Success: "#5FD75F",
		Error:   "#FF0000",
	}
}

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",

		Overdue: "#FFFFFF",
		DueSoon: "#D0D0D0",
		OnTrack: "#8A8A8A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Tag:    "#BCBCBC",

		Success: "#FFFFFF",
		Error:   "#FFFFFF",
	}
}

// Wave returns the kanagawa wave color scheme
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",
		Accent: "#7E9CD8",

		Overdue: "#E82424",
		DueSoon: "#FF9E3B",
		OnTrack: "#98BB6C",

		Title:  "#957FB8",
		Subtle: "#727169",
		Normal: "#DCD7BA",
		Tag:    "#7FB4CA",

		Success: "#98BB6C",
		Error:   "#E82424",
	}
}
