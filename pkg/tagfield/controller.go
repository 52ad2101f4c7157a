// Package tagfield holds the state controller behind a tag input field: it
// splits typed text into tags on separators, normalizes and validates each
// candidate, and notifies listeners whenever the tags or the error change.
//
// A Controller is driven from a single UI event loop and does no locking.
package tagfield

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// ErrDisposed is the panic value raised when a disposed controller is used
var ErrDisposed = errors.New("tagfield: controller used after dispose")

// DefaultRejectMessage is stored when a validator rejects a tag with an empty error
const DefaultRejectMessage = "invalid tag"

// State is the observable error mode of a controller
type State int

const (
	StateClean State = iota
	StateErroring
)

func (s State) String() string {
	if s == StateErroring {
		return "erroring"
	}
	return "clean"
}

// Buffer is the externally owned pending-text buffer
type Buffer interface {
	Reset()
}

// Focus is the externally owned focus handle released on dispose
type Focus interface {
	Blur()
}

// Callbacks are invoked synchronously after the corresponding mutation
type Callbacks struct {
	OnTagAdded    func(tag string)
	OnTagRemoved  func(tag string)
	OnTagsChanged func(tags []string)

	// OnScroll receives the request to reveal the newest tag. The host
	// should perform it after its next redraw, not synchronously.
	OnScroll func(req ScrollRequest)
}

// Config contains everything a controller needs; nothing is set later
type Config struct {
	InitialTags []string
	Separators  []string
	Validator   Validator
	LetterCase  LetterCase
	Buffer      Buffer
	Focus       Focus
	Callbacks   Callbacks
	Scroll      ScrollSettings
	Logger      *zerolog.Logger
}

// Controller owns the tag collection and the last validation error
type Controller struct {
	Notifier

	tags       []string
	separators []string
	validator  Validator
	letterCase LetterCase
	errMsg     string

	buffer    Buffer
	focus     Focus
	callbacks Callbacks
	scroll    ScrollSettings
	log       zerolog.Logger

	disposed bool
}

// New creates a controller ready for input: empty buffer, no error
func New(cfg Config) *Controller {
	c := &Controller{
		tags:       make([]string, len(cfg.InitialTags)),
		validator:  cfg.Validator,
		letterCase: cfg.LetterCase,
		buffer:     cfg.Buffer,
		focus:      cfg.Focus,
		callbacks:  cfg.Callbacks,
		scroll:     cfg.Scroll,
		log:        zerolog.Nop(),
	}
	copy(c.tags, cfg.InitialTags)

	for _, sep := range cfg.Separators {
		if sep != "" {
			c.separators = append(c.separators, sep)
		}
	}

	if c.validator == nil {
		c.validator = AcceptAll
	}
	if c.scroll.Duration <= 0 {
		c.scroll.Duration = DefaultScrollDuration
	}
	if cfg.Logger != nil {
		c.log = cfg.Logger.With().Str("component", "tagfield").Logger()
	}

	return c
}

// Tags returns a copy of the current tags in insertion order
func (c *Controller) Tags() []string {
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// ErrorMessage returns the last validation error, or "" when there is none
func (c *Controller) ErrorMessage() string {
	return c.errMsg
}

func (c *Controller) HasError() bool {
	return c.errMsg != ""
}

func (c *Controller) HasTags() bool {
	return len(c.tags) > 0
}

// State returns StateErroring while an error is stored
func (c *Controller) State() State {
	if c.HasError() {
		return StateErroring
	}
	return StateClean
}

// Separators returns a copy of the configured separators
func (c *Controller) Separators() []string {
	out := make([]string, len(c.separators))
	copy(out, c.separators)
	return out
}

func (c *Controller) LetterCase() LetterCase {
	return c.letterCase
}

func (c *Controller) Disposed() bool {
	return c.disposed
}

// HandleTextChanged is called with the full buffer text after every edit.
// When a separator occurs past the first position, the text just before it
// is committed. A separator at position 0 never triggers a commit.
func (c *Controller) HandleTextChanged(text string) {
	c.mustBeAlive()

	sep, ok := c.findSeparator(text)
	if !ok {
		return
	}

	segments := strings.Split(text, sep)
	// The segment preceding the separator, not the remainder after it
	index := len(segments) - 1
	if len(segments) > 1 {
		index = len(segments) - 2
	}

	candidate := strings.TrimSpace(c.letterCase.Apply(segments[index]))
	c.commit(candidate)
}

// HandleSubmitted commits the text regardless of separators
func (c *Controller) HandleSubmitted(text string) {
	c.mustBeAlive()
	c.commit(strings.TrimSpace(c.letterCase.Apply(text)))
}

// AddTag normalizes, validates and appends tag exactly like a submit
func (c *Controller) AddTag(tag string) {
	c.HandleSubmitted(tag)
}

// RemoveTag removes the first tag equal to tag. Absent tags are ignored.
func (c *Controller) RemoveTag(tag string) {
	c.mustBeAlive()

	index := -1
	for i, existing := range c.tags {
		if existing == tag {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}

	c.tags = append(c.tags[:index], c.tags[index+1:]...)
	c.log.Debug().Str("tag", tag).Int("count", len(c.tags)).Msg("tag removed")

	if c.callbacks.OnTagRemoved != nil {
		c.callbacks.OnTagRemoved(tag)
	}
	c.tagsChanged()
	c.NotifyListeners()
}

// SetError stores an externally produced error. An empty message clears it.
func (c *Controller) SetError(message string) {
	c.mustBeAlive()
	c.errMsg = message
	c.NotifyListeners()
}

// ClearAll removes every tag and the error. The pending buffer is kept.
func (c *Controller) ClearAll() {
	c.mustBeAlive()
	c.tags = c.tags[:0]
	c.errMsg = ""
	c.log.Debug().Msg("tags cleared")
	c.NotifyListeners()
}

// AddListener registers fn on a live controller
func (c *Controller) AddListener(fn func()) (remove func()) {
	c.mustBeAlive()
	return c.Notifier.AddListener(fn)
}

func (c *Controller) NotifyListeners() {
	c.mustBeAlive()
	c.Notifier.NotifyListeners()
}

// Dispose releases the buffer and focus and drops every listener.
// The controller panics with ErrDisposed on any later mutation.
func (c *Controller) Dispose() {
	c.mustBeAlive()

	if c.buffer != nil {
		c.buffer.Reset()
	}
	if c.focus != nil {
		c.focus.Blur()
	}
	c.removeAllListeners()
	c.callbacks = Callbacks{}
	c.buffer = nil
	c.focus = nil
	c.disposed = true

	c.log.Debug().Int("count", len(c.tags)).Msg("controller disposed")
}

func (c *Controller) commit(candidate string) {
	if candidate == "" {
		return
	}

	if c.buffer != nil {
		c.buffer.Reset()
	}

	if err := c.validator(candidate); err != nil {
		c.errMsg = err.Error()
		if c.errMsg == "" {
			c.errMsg = DefaultRejectMessage
		}
		c.log.Debug().Str("tag", candidate).Str("error", c.errMsg).Msg("tag rejected")
		c.NotifyListeners()
		return
	}

	c.errMsg = ""
	c.tags = append(c.tags, candidate)
	c.log.Debug().Str("tag", candidate).Int("count", len(c.tags)).Msg("tag added")

	if c.callbacks.OnTagAdded != nil {
		c.callbacks.OnTagAdded(candidate)
	}
	c.tagsChanged()

	if c.callbacks.OnScroll != nil {
		c.callbacks.OnScroll(ScrollRequest{
			Direction: c.scroll.Direction,
			Duration:  c.scroll.Duration,
		})
	}

	c.NotifyListeners()
}

func (c *Controller) tagsChanged() {
	if c.callbacks.OnTagsChanged != nil {
		c.callbacks.OnTagsChanged(c.Tags())
	}
}

func (c *Controller) findSeparator(text string) (string, bool) {
	for _, sep := range c.separators {
		if strings.Index(text, sep) > 0 {
			return sep, true
		}
	}
	return "", false
}

func (c *Controller) mustBeAlive() {
	if c.disposed {
		panic(ErrDisposed)
	}
}
