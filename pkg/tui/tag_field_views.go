package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/tagfield/pkg/models"
)

// View implements tea.Model
func (tf *TagField) View() string {
	if tf.confirm.Active() {
		return HeaderPaddingStyle.Render(tf.confirm.View())
	}

	var s strings.Builder

	// Header
	heading := HeaderStyle.Render(tf.title)
	count := DimStyle.Render(countLabel(len(tf.controller.Tags())))
	s.WriteString(HeaderPaddingStyle.Render(heading + " " + count))
	s.WriteString("\n")

	// Chips
	border := ActiveBorderStyle
	if tf.controller.HasError() {
		border = ErrorBorderStyle
	}
	s.WriteString(border.Width(tf.chips.Width + 2).Render(tf.chips.View()))
	s.WriteString("\n")

	// Input
	s.WriteString(HeaderPaddingStyle.Render(tf.input.View()))
	s.WriteString("\n")

	// Error or status
	switch {
	case tf.controller.HasError():
		msg := wordwrap.String(tf.controller.ErrorMessage(), tf.chips.Width)
		s.WriteString(HeaderPaddingStyle.Render(ErrorStyle.Render(msg)))
		s.WriteString("\n")
	case tf.status != "":
		style := StatusStyle
		if tf.statusIsErr {
			style = ErrorStyle
		}
		s.WriteString(HeaderPaddingStyle.Render(style.Render(tf.status)))
		s.WriteString("\n")
	}

	// Suggestions
	if len(tf.suggestions) > 0 {
		s.WriteString(HeaderPaddingStyle.Render(DimStyle.Render("tab: ") + SuggestionStyle.Render(strings.Join(tf.suggestions, "  "))))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(HeaderPaddingStyle.Render(tf.renderHelp()))

	return s.String()
}

// renderChips lays tags out in rows no wider than width
func (tf *TagField) renderChips(width int) string {
	current := tf.controller.Tags()
	if len(current) == 0 {
		return DimStyle.Render("(no tags)")
	}

	var rows []string
	var row strings.Builder
	rowWidth := 0

	for _, tag := range current {
		chip := ChipStyle(tf.chipColor(tag)).Render(tag)
		chipWidth := lipgloss.Width(chip)

		if rowWidth > 0 && rowWidth+1+chipWidth > width {
			rows = append(rows, row.String())
			row.Reset()
			rowWidth = 0
		}
		if rowWidth > 0 {
			row.WriteString(" ")
			rowWidth++
		}
		row.WriteString(chip)
		rowWidth += chipWidth
	}
	rows = append(rows, row.String())

	return strings.Join(rows, "\n")
}

func (tf *TagField) chipColor(tag string) string {
	if tf.registry != nil {
		return tf.registry.Color(tag)
	}
	return models.GetTagColor(tag, "")
}

func (tf *TagField) renderHelp() string {
	os := GetOS()
	entries := []struct {
		name string
		key  ShortcutKey
	}{
		{"add", Shortcuts.Submit},
		{"complete", Shortcuts.Complete},
		{"remove last", Shortcuts.RemoveLast},
		{"clear", Shortcuts.ClearAll},
		{"copy", Shortcuts.Copy},
		{"paste", Shortcuts.Paste},
		{"save", Shortcuts.Save},
		{"cancel", Shortcuts.Cancel},
	}

	help := make([]string, 0, len(entries))
	for _, e := range entries {
		item := shortcutHelp(e.name, e.key, os)
		if warning := e.key.WarningFor(os); warning != "" {
			item += " " + warning
		}
		help = append(help, item)
	}
	return HelpStyle.Render(wordwrap.String(strings.Join(help, " • "), tf.width))
}

func countLabel(n int) string {
	return fmt.Sprintf("(%d tag%s)", n, plural(n))
}
