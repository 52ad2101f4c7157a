package tui

import (
	"time"

	"github.com/pluqqy/tagfield/internal/logging"
	"github.com/pluqqy/tagfield/pkg/tagfield"
	"github.com/pluqqy/tagfield/pkg/tags"
)

// TagFieldConfig contains configuration for the tag field
type TagFieldConfig struct {
	Title       string
	Placeholder string
	Width       int
	ChipRows    int // visible rows of chips before scrolling

	// Controller settings; Buffer, Focus and OnScroll are wired by the field
	Controller tagfield.Config

	// Registry supplies suggestions and chip colors (optional)
	Registry *tags.Registry

	Logger *logging.Logger
}

// TagFieldCallbacks lets the parent view react to tag changes
type TagFieldCallbacks struct {
	OnTagAdded    func(tag string)
	OnTagRemoved  func(tag string)
	OnTagsChanged func(tags []string)
}

// TagFieldResult represents the result of an editing session
type TagFieldResult struct {
	Saved    bool
	Canceled bool
	Tags     []string
	Error    string
}

// MaxSuggestions is the number of registry suggestions shown under the input
const MaxSuggestions = 5

const (
	defaultChipRows     = 3
	defaultFieldWidth   = 60
	scrollFrameInterval = 16 * time.Millisecond
)

// scrollRequestMsg delivers a controller scroll request after the redraw
// that follows the commit, once the new chip has been laid out
type scrollRequestMsg struct {
	req tagfield.ScrollRequest
}

// scrollFrameMsg advances a running scroll animation
type scrollFrameMsg struct {
	id int
}

// statusMsg replaces the transient status line
type statusMsg struct {
	text  string
	isErr bool
}
