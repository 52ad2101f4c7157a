package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/tagfield/pkg/tagfield"
)

// scrollAnimation moves the chip viewport from one offset to another in
// evenly spaced frames
type scrollAnimation struct {
	id     int
	from   int
	to     int
	frame  int
	frames int
}

func (a scrollAnimation) running() bool {
	return a.frames > 0 && a.frame < a.frames
}

func (a scrollAnimation) offset() int {
	if a.frames == 0 {
		return a.to
	}
	return a.from + (a.to-a.from)*a.frame/a.frames
}

// maxScrollOffset is the last offset that still fills the viewport
func (tf *TagField) maxScrollOffset() int {
	limit := tf.chips.TotalLineCount() - tf.chips.Height
	if limit < 0 {
		return 0
	}
	return limit
}

// scrollTarget resolves a request against the laid out chip content
func (tf *TagField) scrollTarget(req tagfield.ScrollRequest) int {
	target := 0
	switch {
	case req.TargetOffset != nil:
		target = *req.TargetOffset
	case req.Direction == tagfield.ScrollForward:
		target = tf.maxScrollOffset()
	}

	if target < 0 {
		target = 0
	}
	if limit := tf.maxScrollOffset(); target > limit {
		target = limit
	}
	return target
}

// startScroll begins animating toward the request target, replacing any
// animation still in flight
func (tf *TagField) startScroll(req tagfield.ScrollRequest) tea.Cmd {
	target := tf.scrollTarget(req)
	from := tf.chips.YOffset

	frames := int(req.Duration / scrollFrameInterval)
	if frames < 1 || target == from {
		tf.scroll = scrollAnimation{id: tf.scroll.id + 1}
		tf.chips.SetYOffset(target)
		return nil
	}

	tf.scroll = scrollAnimation{
		id:     tf.scroll.id + 1,
		from:   from,
		to:     target,
		frames: frames,
	}
	tf.log.Debug().
		Str("direction", req.Direction.String()).
		Int("from", from).
		Int("to", target).
		Dur("duration", req.Duration).
		Msg("scroll requested")

	return tf.nextScrollFrame()
}

func (tf *TagField) stepScroll(msg scrollFrameMsg) tea.Cmd {
	// Frames from a replaced animation are dropped
	if msg.id != tf.scroll.id || !tf.scroll.running() {
		return nil
	}

	tf.scroll.frame++
	tf.chips.SetYOffset(tf.scroll.offset())

	if tf.scroll.running() {
		return tf.nextScrollFrame()
	}
	return nil
}

func (tf *TagField) nextScrollFrame() tea.Cmd {
	id := tf.scroll.id
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{id: id}
	})
}
