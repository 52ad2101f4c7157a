package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations.
// Every variant is accepted; For picks the one shown in help.
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// For returns the shortcut to advertise on os
func (s ShortcutKey) For(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.For(GetOS())
}

// Matches reports whether key is any variant of the shortcut
func (s ShortcutKey) Matches(key string) bool {
	if key == "" {
		return false
	}
	return key == s.Default || key == s.Mac || key == s.Linux || key == s.Windows
}

// WarningFor returns a note for shortcuts a terminal on os may intercept
func (s ShortcutKey) WarningFor(os OSType) string {
	if os != OSLinux {
		return ""
	}
	switch s.For(os) {
	case "ctrl+s":
		return "(may need: stty -ixon)"
	case "ctrl+d":
		return "(caution: EOF signal)"
	}
	return ""
}

// Shortcuts are the tag field key bindings. Linux and Windows advertise
// alt variants for keys a terminal commonly swallows.
var Shortcuts = struct {
	Submit     ShortcutKey
	Complete   ShortcutKey
	RemoveLast ShortcutKey
	ClearAll   ShortcutKey
	Copy       ShortcutKey
	Paste      ShortcutKey
	Save       ShortcutKey
	Cancel     ShortcutKey
}{
	Submit: ShortcutKey{
		Default: "enter",
	},
	Complete: ShortcutKey{
		Default: "tab",
	},
	RemoveLast: ShortcutKey{
		Linux:   "alt+d", // Avoid Ctrl+D EOF signal
		Windows: "alt+d",
		Default: "ctrl+d",
	},
	ClearAll: ShortcutKey{
		Linux:   "alt+x",
		Windows: "alt+x",
		Default: "ctrl+x",
	},
	Copy: ShortcutKey{
		Default: "ctrl+y",
	},
	Paste: ShortcutKey{
		Linux:   "alt+v", // Terminals often bind Ctrl+V themselves
		Default: "ctrl+v",
	},
	Save: ShortcutKey{
		Linux:   "alt+s", // Avoid Ctrl+S terminal conflict (XOFF)
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	Cancel: ShortcutKey{
		Default: "esc",
	},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey, os OSType) string {
	shortcut := key.For(os)
	if os == OSMac {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	} else {
		// M- prefix for Alt is the common terminal convention
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	return shortcut
}

// shortcutHelp returns "key name" for the help line
func shortcutHelp(name string, key ShortcutKey, os OSType) string {
	return FormatShortcutForHelp(key, os) + " " + name
}
