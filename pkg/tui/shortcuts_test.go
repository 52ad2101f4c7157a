package tui

import (
	"runtime"
	"testing"
)

func TestGetOS(t *testing.T) {
	os := GetOS()

	switch runtime.GOOS {
	case "darwin":
		if os != OSMac {
			t.Errorf("Expected OSMac for darwin, got %v", os)
		}
	case "linux":
		if os != OSLinux {
			t.Errorf("Expected OSLinux for linux, got %v", os)
		}
	case "windows":
		if os != OSWindows {
			t.Errorf("Expected OSWindows for windows, got %v", os)
		}
	default:
		if os != OSUnknown {
			t.Errorf("Expected OSUnknown for %s, got %v", runtime.GOOS, os)
		}
	}
}

func TestShortcutKey_For(t *testing.T) {
	key := ShortcutKey{
		Mac:     "cmd+s",
		Linux:   "alt+s",
		Default: "ctrl+s",
	}

	tests := []struct {
		name string
		os   OSType
		want string
	}{
		{"mac", OSMac, "cmd+s"},
		{"linux", OSLinux, "alt+s"},
		{"windows falls back", OSWindows, "ctrl+s"},
		{"unknown falls back", OSUnknown, "ctrl+s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key.For(tt.os); got != tt.want {
				t.Errorf("For(%v) = %q, want %q", tt.os, got, tt.want)
			}
		})
	}
}

func TestShortcutKey_Matches(t *testing.T) {
	for _, key := range []string{"ctrl+s", "alt+s"} {
		if !Shortcuts.Save.Matches(key) {
			t.Errorf("Save should match %q on every OS", key)
		}
	}
	if Shortcuts.Save.Matches("") {
		t.Error("empty key should never match")
	}
	if Shortcuts.Cancel.Matches("alt+s") {
		t.Error("Cancel should not match alt+s")
	}
}

func TestShortcutKey_WarningFor(t *testing.T) {
	raw := ShortcutKey{Default: "ctrl+s"}
	if got := raw.WarningFor(OSLinux); got != "(may need: stty -ixon)" {
		t.Errorf("unexpected warning %q", got)
	}
	if got := raw.WarningFor(OSMac); got != "" {
		t.Errorf("mac should have no warning, got %q", got)
	}
	if got := Shortcuts.Save.WarningFor(OSLinux); got != "" {
		t.Errorf("alt+s needs no warning, got %q", got)
	}
}

func TestFormatShortcutForHelp(t *testing.T) {
	tests := []struct {
		key  ShortcutKey
		os   OSType
		want string
	}{
		{Shortcuts.Save, OSLinux, "M-s"},
		{Shortcuts.Save, OSMac, "^s"},
		{Shortcuts.Copy, OSWindows, "^y"},
		{ShortcutKey{Default: "alt+q"}, OSMac, "⌥q"},
		{Shortcuts.Cancel, OSLinux, "esc"},
	}

	for _, tt := range tests {
		if got := FormatShortcutForHelp(tt.key, tt.os); got != tt.want {
			t.Errorf("FormatShortcutForHelp(%+v, %v) = %q, want %q", tt.key, tt.os, got, tt.want)
		}
	}
}
