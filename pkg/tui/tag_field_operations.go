package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// HandleInput processes keyboard input for the tag field
func (tf *TagField) HandleInput(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	key := msg.String()
	switch {
	case Shortcuts.Cancel.Matches(key), key == "ctrl+c":
		return true, tf.finish(false)

	case Shortcuts.Save.Matches(key):
		// Pending text is submitted first, like leaving the field
		if strings.TrimSpace(tf.input.Value()) != "" {
			tf.controller.HandleSubmitted(tf.input.Value())
			if tf.controller.HasError() {
				return true, nil
			}
		}
		return true, tf.finish(true)

	case Shortcuts.Submit.Matches(key):
		tf.controller.HandleSubmitted(tf.input.Value())
		tf.updateSuggestions()
		return true, nil

	case Shortcuts.Complete.Matches(key):
		if len(tf.suggestions) > 0 {
			tf.input.SetValue(tf.suggestions[0])
			tf.input.CursorEnd()
			tf.updateSuggestions()
		}
		return true, nil

	case Shortcuts.RemoveLast.Matches(key):
		tf.removeLastTag()
		return true, nil

	case key == "backspace" && tf.input.Value() == "":
		tf.removeLastTag()
		return true, nil

	case Shortcuts.ClearAll.Matches(key):
		tf.confirmClearAll()
		return true, nil

	case Shortcuts.Copy.Matches(key):
		return true, tf.copyTags()

	case Shortcuts.Paste.Matches(key):
		return true, tf.paste()
	}

	before := tf.input.Value()
	tf.input, cmd = tf.input.Update(msg)
	if after := tf.input.Value(); after != before {
		tf.textChanged(after)
	}
	return true, cmd
}

// textChanged feeds the whole buffer to the controller after an edit
func (tf *TagField) textChanged(text string) {
	tf.status = ""
	tf.controller.HandleTextChanged(text)
	tf.updateSuggestions()
}

func (tf *TagField) removeLastTag() {
	current := tf.controller.Tags()
	if len(current) == 0 {
		return
	}
	tf.controller.RemoveTag(current[len(current)-1])
}

func (tf *TagField) confirmClearAll() {
	if !tf.controller.HasTags() && !tf.controller.HasError() {
		return
	}

	count := len(tf.controller.Tags())
	tf.confirm.Show(ConfirmationConfig{
		Title:       "Clear Tags",
		Message:     fmt.Sprintf("Remove all %d tag%s?", count, plural(count)),
		Warning:     "Text you are typing is kept.",
		YesLabel:    "Clear",
		NoLabel:     "Cancel",
		Destructive: true,
		Type:        ConfirmTypeDialog,
		Width:       tf.width - 4,
	}, func() tea.Cmd {
		tf.controller.ClearAll()
		tf.log.Info().Int("count", count).Msg("tags cleared")
		return nil
	}, nil)
}

func (tf *TagField) copyTags() tea.Cmd {
	current := tf.controller.Tags()
	if len(current) == 0 {
		return nil
	}

	joiner := ", "
	if seps := tf.controller.Separators(); len(seps) > 0 && seps[0] != " " {
		joiner = seps[0] + " "
	}
	text := strings.Join(current, joiner)
	write := tf.writeClipboard

	return func() tea.Msg {
		if err := write(text); err != nil {
			return statusMsg{text: fmt.Sprintf("Copy failed: %v", err), isErr: true}
		}
		return statusMsg{text: fmt.Sprintf("Copied %d tag%s", len(current), plural(len(current)))}
	}
}

// paste appends clipboard text to the buffer as one edit, so a pasted
// list commits only the segment before its last separator
func (tf *TagField) paste() tea.Cmd {
	text, err := tf.readClipboard()
	if err != nil {
		tf.log.Warn().Err(err).Msg("clipboard read failed")
		tf.status = "Paste failed"
		tf.statusIsErr = true
		return nil
	}

	text = strings.ReplaceAll(text, "\n", " ")
	if text == "" {
		return nil
	}

	tf.input.SetValue(tf.input.Value() + text)
	tf.input.CursorEnd()
	tf.textChanged(tf.input.Value())
	return nil
}

// finish ends the session and releases the controller
func (tf *TagField) finish(saved bool) tea.Cmd {
	tf.result = TagFieldResult{
		Saved:    saved,
		Canceled: !saved,
		Tags:     tf.controller.Tags(),
		Error:    tf.controller.ErrorMessage(),
	}
	tf.done = true
	tf.pendingScrolls = nil

	tf.log.Info().
		Bool("saved", saved).
		Strs("tags", tf.result.Tags).
		Msg("tag field closed")

	tf.controller.Dispose()
	return tea.Quit
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
