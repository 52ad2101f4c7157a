package models

// Settings represents the tag field configuration file
type Settings struct {
	Field      FieldSettings      `yaml:"field"`
	Validation ValidationSettings `yaml:"validation"`
	Scroll     ScrollSettings     `yaml:"scroll"`
	Log        LogSettings        `yaml:"log"`
}

// FieldSettings controls how input is split and normalized
type FieldSettings struct {
	Separators  []string `yaml:"separators"`
	LetterCase  string   `yaml:"letter_case"` // "unchanged", "lower" or "upper"
	InitialTags []string `yaml:"initial_tags,omitempty"`
	Placeholder string   `yaml:"placeholder"`
	Registry    string   `yaml:"registry"` // tags.yaml path, relative to the workspace
}

// ValidationSettings selects the built-in validators; zero values disable a rule
type ValidationSettings struct {
	MinLength   int      `yaml:"min_length"`
	MaxLength   int      `yaml:"max_length"`
	Pattern     string   `yaml:"pattern,omitempty"`
	StrictNames bool     `yaml:"strict_names"`
	Forbidden   []string `yaml:"forbidden,omitempty"`
}

// ScrollSettings controls the reveal-newest-tag animation
type ScrollSettings struct {
	Direction  string `yaml:"direction"` // "forward" or "backward"
	DurationMs int    `yaml:"duration_ms"`
}

// LogSettings controls the debug log written while the TUI runs
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Field: FieldSettings{
			Separators:  []string{",", " "},
			LetterCase:  "unchanged",
			Placeholder: "type to add tag...",
			Registry:    "tags.yaml",
		},
		Validation: ValidationSettings{},
		Scroll: ScrollSettings{
			Direction:  "forward",
			DurationMs: 150,
		},
		Log: LogSettings{
			Level: "info",
			File:  "tagfield.log",
		},
	}
}
