package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for headings and ids)
	Accent string `yaml:"accent"`

	// Due state colors
	Overdue string `yaml:"overdue"`
	DueSoon string `yaml:"due_soon"`
	OnTrack string `yaml:"on_track"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/secondary text
	Normal string `yaml:"normal"`
	Tag    string `yaml:"tag"`

	// Message colors
	Success string `yaml:"success"`
	Error   string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Overdue, preset.Overdue)
	fill(&c.DueSoon, preset.DueSoon)
	fill(&c.OnTrack, preset.OnTrack)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Tag, preset.Tag)
	fill(&c.Success, preset.Success)
	fill(&c.Error, preset.Error)
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Overdue, other.Overdue)
	merge(&c.DueSoon, other.DueSoon)
	merge(&c.OnTrack, other.OnTrack)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Tag, other.Tag)
	merge(&c.Success, other.Success)
	merge(&c.Error, other.Error)
}
