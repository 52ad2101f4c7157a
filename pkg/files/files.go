package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/tagfield/pkg/models"
)

const (
	WorkspaceDir = ".tagfield"
	SettingsFile = "settings.yaml"
	LogsDir      = "logs"
)

// SettingsPath returns the settings file location inside the workspace
func SettingsPath() string {
	return filepath.Join(WorkspaceDir, SettingsFile)
}

// InitWorkspace creates the workspace folders and writes default settings
// unless a settings file already exists
func InitWorkspace() error {
	dirs := []string{
		WorkspaceDir,
		filepath.Join(WorkspaceDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(SettingsPath()); err == nil {
		return nil
	}

	return WriteSettings(models.DefaultSettings())
}

// ReadSettings loads the settings file on top of the defaults.
// A missing file is not an error: the defaults are returned.
func ReadSettings() (*models.Settings, error) {
	return ReadSettingsFrom(SettingsPath())
}

// ReadSettingsFrom loads settings from an explicit path
func ReadSettingsFrom(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings saves settings into the workspace
func WriteSettings(settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return WriteFileAtomic(SettingsPath(), data)
}

// ResolvePath makes a workspace-relative path usable from the current directory
func ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(WorkspaceDir, path)
}

// WriteFileAtomic writes data to a temp file next to path and renames it into place
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save file %s: %w", path, err)
	}

	return nil
}
