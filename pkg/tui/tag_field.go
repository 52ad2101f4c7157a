package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/tagfield/internal/logging"
	"github.com/pluqqy/tagfield/pkg/tagfield"
	"github.com/pluqqy/tagfield/pkg/tags"
)

// TagField is a Bubble Tea component hosting a tagfield.Controller.
// The text input is the controller's pending buffer and focus handle;
// the viewport is the scroll surface that reveals newly added chips.
type TagField struct {
	controller *tagfield.Controller
	input      textinput.Model
	chips      viewport.Model
	confirm    *ConfirmationModel
	registry   *tags.Registry
	log        *logging.Logger

	title    string
	width    int
	chipRows int

	callbacks      TagFieldCallbacks
	pendingScrolls []tagfield.ScrollRequest
	scroll         scrollAnimation
	suggestions    []string

	status      string
	statusIsErr bool

	done   bool
	result TagFieldResult

	// clipboard access, replaceable in tests
	readClipboard  func() (string, error)
	writeClipboard func(string) error
}

// NewTagField creates a focused tag field
func NewTagField(config TagFieldConfig, callbacks TagFieldCallbacks) *TagField {
	tf := &TagField{
		confirm:        NewConfirmation(),
		registry:       config.Registry,
		log:            config.Logger,
		title:          config.Title,
		callbacks:      callbacks,
		chipRows:       config.ChipRows,
		readClipboard:  clipboard.ReadAll,
		writeClipboard: clipboard.WriteAll,
	}
	if tf.log == nil {
		tf.log = logging.Nop()
	}
	if tf.title == "" {
		tf.title = "TAGS"
	}
	if tf.chipRows <= 0 {
		tf.chipRows = defaultChipRows
	}

	tf.input = textinput.New()
	tf.input.Prompt = "› "
	tf.input.Placeholder = config.Placeholder
	tf.input.Focus()

	tf.chips = viewport.New(defaultFieldWidth, tf.chipRows)

	ctrlConfig := config.Controller
	ctrlConfig.Buffer = &tf.input
	ctrlConfig.Focus = &tf.input
	ctrlConfig.Logger = tf.log.Zerolog()
	ctrlConfig.Callbacks = tagfield.Callbacks{
		OnTagAdded:    tf.callbacks.OnTagAdded,
		OnTagRemoved:  tf.callbacks.OnTagRemoved,
		OnTagsChanged: tf.callbacks.OnTagsChanged,
		OnScroll: func(req tagfield.ScrollRequest) {
			tf.pendingScrolls = append(tf.pendingScrolls, req)
		},
	}
	tf.controller = tagfield.New(ctrlConfig)
	tf.controller.AddListener(tf.refresh)

	width := config.Width
	if width <= 0 {
		width = defaultFieldWidth
	}
	tf.SetSize(width)

	return tf
}

// Controller exposes the hosted controller for read access
func (tf *TagField) Controller() *tagfield.Controller {
	return tf.controller
}

// Value returns the pending, uncommitted text
func (tf *TagField) Value() string {
	return tf.input.Value()
}

// Done reports whether the user saved or canceled
func (tf *TagField) Done() bool {
	return tf.done
}

// Result returns the outcome once Done is true
func (tf *TagField) Result() TagFieldResult {
	return tf.result
}

// Suggestions returns the registry matches for the pending text
func (tf *TagField) Suggestions() []string {
	return tf.suggestions
}

// ScrollOffset returns the current vertical offset of the chip area
func (tf *TagField) ScrollOffset() int {
	return tf.chips.YOffset
}

// SetSize updates the width of the field and relays out the chips
func (tf *TagField) SetSize(width int) {
	tf.width = width
	inner := width - 4
	if inner < 10 {
		inner = 10
	}
	tf.chips.Width = inner
	tf.chips.Height = tf.chipRows
	tf.input.Width = inner - 2
	tf.refresh()
}

// Init implements tea.Model
func (tf *TagField) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (tf *TagField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tf.done {
		return tf, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tf.SetSize(msg.Width)
		return tf, nil

	case scrollRequestMsg:
		return tf, tf.startScroll(msg.req)

	case scrollFrameMsg:
		return tf, tf.stepScroll(msg)

	case statusMsg:
		tf.status = msg.text
		tf.statusIsErr = msg.isErr
		return tf, nil

	case tea.KeyMsg:
		if tf.confirm.Active() {
			cmd := tf.confirm.Update(msg)
			return tf, tea.Batch(cmd, tf.flushScrollRequests())
		}

		_, cmd := tf.HandleInput(msg)
		return tf, tea.Batch(cmd, tf.flushScrollRequests())
	}

	// Cursor blink and other input internals
	var cmd tea.Cmd
	tf.input, cmd = tf.input.Update(msg)
	return tf, cmd
}

// refresh rebuilds derived view state after any controller change
func (tf *TagField) refresh() {
	tf.chips.SetContent(tf.renderChips(tf.chips.Width))
	tf.updateSuggestions()
}

func (tf *TagField) updateSuggestions() {
	if tf.registry == nil {
		tf.suggestions = nil
		return
	}
	tf.suggestions = tf.registry.Suggest(tf.input.Value(), tf.controller.Tags(), MaxSuggestions)
}

// flushScrollRequests turns the queued controller request into a message
// that arrives after the current update has been rendered. Each request
// replaces the previous animation, so only the newest one is kept.
func (tf *TagField) flushScrollRequests() tea.Cmd {
	if len(tf.pendingScrolls) == 0 {
		return nil
	}

	req := tf.pendingScrolls[len(tf.pendingScrolls)-1]
	tf.pendingScrolls = nil

	return func() tea.Msg {
		return scrollRequestMsg{req: req}
	}
}
