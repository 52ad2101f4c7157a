package models

import (
	"errors"
	"hash/fnv"
	"strings"
)

// Tag-related errors
var (
	ErrEmptyTagName        = errors.New("tag name cannot be empty")
	ErrTagNameTooLong      = errors.New("tag name cannot exceed 50 characters")
	ErrInvalidTagCharacter = errors.New("tag name contains invalid characters")
)

// MaxTagNameLength is the longest tag name ValidateTagName accepts
const MaxTagNameLength = 50

// Tag represents a known tag with display metadata
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// TagRegistry holds all known tags
type TagRegistry struct {
	Tags []Tag `yaml:"tags"`
}

// DefaultColorPalette provides a curated set of chip background colors
// chosen for contrast against white text
var DefaultColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#34495e", // dark gray
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#d35400", // pumpkin
	"#27ae60", // nephritis
	"#2980b9", // belize hole
	"#c0392b", // pomegranate
}

// GetTagColor returns the registry color if set, otherwise a color derived
// from the tag name so the same tag always renders the same way
func GetTagColor(tagName string, registryColor string) string {
	if registryColor != "" {
		return registryColor
	}

	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(tagName)))
	hash := h.Sum32()

	return DefaultColorPalette[int(hash%uint32(len(DefaultColorPalette)))]
}

// NormalizeTagName is the registry key for a tag: lowercase, trimmed,
// inner whitespace collapsed to hyphens
func NormalizeTagName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// ValidateTagName checks a tag against the strict naming rules:
// letters, digits, hyphens, slashes and spaces, at most 50 characters
func ValidateTagName(name string) error {
	if name == "" {
		return ErrEmptyTagName
	}

	if len(name) > MaxTagNameLength {
		return ErrTagNameTooLong
	}

	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '/' || r == ' ') {
			return ErrInvalidTagCharacter
		}
	}

	return nil
}
