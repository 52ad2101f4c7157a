package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/pluqqy/tagfield/pkg/files"
	"github.com/pluqqy/tagfield/pkg/models"
	"github.com/pluqqy/tagfield/pkg/tagfield"
)

// CommandContext manages workspace validation and settings for a command
type CommandContext struct {
	WorkspacePath string
	Settings      *models.Settings
	validated     bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		WorkspacePath: files.WorkspaceDir,
	}
}

// ValidateWorkspace ensures the workspace is initialized
func (c *CommandContext) ValidateWorkspace() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.WorkspacePath); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'tagfield init' first", files.WorkspaceDir)
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// ControllerConfig builds controller settings from the loaded settings
func (c *CommandContext) ControllerConfig() (tagfield.Config, error) {
	return ControllerConfig(c.LoadSettingsWithDefault())
}

// ControllerConfig translates a settings file into a controller
// configuration. Host wiring (buffer, focus, callbacks, logger) is left
// to the caller.
func ControllerConfig(settings *models.Settings) (tagfield.Config, error) {
	var cfg tagfield.Config

	separators, err := ParseSeparators(settings.Field.Separators)
	if err != nil {
		return cfg, err
	}

	letterCase, err := tagfield.ParseLetterCase(settings.Field.LetterCase)
	if err != nil {
		return cfg, err
	}

	validator, err := BuildValidator(settings.Validation)
	if err != nil {
		return cfg, err
	}

	direction, err := tagfield.ParseScrollDirection(settings.Scroll.Direction)
	if err != nil {
		return cfg, err
	}
	if settings.Scroll.DurationMs < 0 {
		return cfg, fmt.Errorf("invalid scroll duration: %dms", settings.Scroll.DurationMs)
	}

	cfg = tagfield.Config{
		InitialTags: settings.Field.InitialTags,
		Separators:  separators,
		Validator:   validator,
		LetterCase:  letterCase,
		Scroll: tagfield.ScrollSettings{
			Direction: direction,
			Duration:  time.Duration(settings.Scroll.DurationMs) * time.Millisecond,
		},
	}
	return cfg, nil
}

// BuildValidator chains the validators enabled by the settings. Length
// and pattern checks run before the strict name rules so the more
// specific message is reported first.
func BuildValidator(v models.ValidationSettings) (tagfield.Validator, error) {
	if v.MinLength < 0 || v.MaxLength < 0 {
		return nil, fmt.Errorf("tag length limits cannot be negative")
	}
	if v.MaxLength > 0 && v.MinLength > v.MaxLength {
		return nil, fmt.Errorf("min_length %d is greater than max_length %d", v.MinLength, v.MaxLength)
	}

	var validators []tagfield.Validator
	if v.MinLength > 0 {
		validators = append(validators, tagfield.MinLength(v.MinLength))
	}
	if v.MaxLength > 0 {
		validators = append(validators, tagfield.MaxLength(v.MaxLength))
	}

	re, err := CompilePattern(v.Pattern)
	if err != nil {
		return nil, err
	}
	if re != nil {
		validators = append(validators, tagfield.MatchPattern(re))
	}

	if len(v.Forbidden) > 0 {
		validators = append(validators, tagfield.Forbid(v.Forbidden...))
	}
	if v.StrictNames {
		validators = append(validators, tagfield.Strict())
	}

	return tagfield.Chain(validators...), nil
}
