package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagfield/pkg/tagfield"
)

// newScrollField returns a field whose chips need three rows but show one.
// At width 20 the chips wrap as "alpha bravo", "charlie", "delta".
func newScrollField(t *testing.T, scroll tagfield.ScrollSettings) *TagField {
	t.Helper()
	tf := NewTagField(TagFieldConfig{
		Width:    20,
		ChipRows: 1,
		Controller: tagfield.Config{
			InitialTags: []string{"alpha", "bravo", "charlie", "delta"},
			Separators:  []string{","},
			Scroll:      scroll,
		},
	}, TagFieldCallbacks{})
	require.Equal(t, 16, tf.chips.Width)
	return tf
}

func TestTagField_CommitQueuesScrollAfterRender(t *testing.T) {
	tf := newScrollField(t, tagfield.ScrollSettings{Duration: time.Millisecond})

	tf.HandleInput(keyRunes("d"))
	tf.HandleInput(keyRunes("e"))
	tf.HandleInput(keyRunes(","))

	require.Len(t, tf.pendingScrolls, 1)
	assert.Equal(t, 0, tf.ScrollOffset(), "nothing scrolls until the request message arrives")

	cmd := tf.flushScrollRequests()
	require.NotNil(t, cmd)
	assert.Empty(t, tf.pendingScrolls)

	msg, ok := cmd().(scrollRequestMsg)
	require.True(t, ok)
	assert.Equal(t, tagfield.ScrollForward, msg.req.Direction)
	assert.True(t, msg.req.ToEnd())

	// A duration shorter than one frame jumps straight to the end
	_, next := tf.Update(msg)
	assert.Nil(t, next)
	assert.Equal(t, tf.maxScrollOffset(), tf.ScrollOffset())
	assert.Equal(t, 2, tf.ScrollOffset())
}

func TestTagField_FlushKeepsNewestRequest(t *testing.T) {
	tf := newScrollField(t, tagfield.ScrollSettings{})
	target := 1
	tf.pendingScrolls = []tagfield.ScrollRequest{
		{Direction: tagfield.ScrollForward},
		{Direction: tagfield.ScrollBackward, TargetOffset: &target},
	}

	msg := tf.flushScrollRequests()().(scrollRequestMsg)

	assert.Equal(t, tagfield.ScrollBackward, msg.req.Direction)
	assert.Equal(t, &target, msg.req.TargetOffset)
	assert.Nil(t, tf.flushScrollRequests())
}

func TestTagField_ScrollAnimation(t *testing.T) {
	tf := newScrollField(t, tagfield.ScrollSettings{})

	cmd := tf.startScroll(tagfield.ScrollRequest{
		Direction: tagfield.ScrollForward,
		Duration:  3 * scrollFrameInterval,
	})
	require.NotNil(t, cmd)
	assert.Equal(t, 0, tf.ScrollOffset())

	id := tf.scroll.id
	var offsets []int
	for i := 0; i < 3; i++ {
		_, next := tf.Update(scrollFrameMsg{id: id})
		offsets = append(offsets, tf.ScrollOffset())
		if i < 2 {
			assert.NotNil(t, next, "frame %d should schedule another", i)
		} else {
			assert.Nil(t, next, "last frame stops the animation")
		}
	}

	assert.Equal(t, []int{0, 1, 2}, offsets)
}

func TestTagField_ScrollStaleFramesIgnored(t *testing.T) {
	tf := newScrollField(t, tagfield.ScrollSettings{})

	tf.startScroll(tagfield.ScrollRequest{Duration: 10 * scrollFrameInterval})
	stale := tf.scroll.id
	tf.startScroll(tagfield.ScrollRequest{Duration: 0})
	offset := tf.ScrollOffset()

	assert.Nil(t, tf.stepScroll(scrollFrameMsg{id: stale}))
	assert.Equal(t, offset, tf.ScrollOffset())
}

func TestTagField_ScrollTargets(t *testing.T) {
	tf := newScrollField(t, tagfield.ScrollSettings{})
	tf.chips.SetYOffset(2)

	one, huge, negative := 1, 99, -5
	tests := []struct {
		name string
		req  tagfield.ScrollRequest
		want int
	}{
		{"forward to end", tagfield.ScrollRequest{Direction: tagfield.ScrollForward}, 2},
		{"backward to start", tagfield.ScrollRequest{Direction: tagfield.ScrollBackward}, 0},
		{"explicit offset", tagfield.ScrollRequest{TargetOffset: &one}, 1},
		{"offset clamped to end", tagfield.ScrollRequest{TargetOffset: &huge}, 2},
		{"offset clamped to start", tagfield.ScrollRequest{TargetOffset: &negative}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tf.scrollTarget(tt.req))
		})
	}
}

func TestTagField_ScrollBackwardAfterCommit(t *testing.T) {
	tf := newScrollField(t, tagfield.ScrollSettings{Direction: tagfield.ScrollBackward})
	tf.chips.SetYOffset(2)

	_, cmd := tf.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "blank submit does not request a scroll")

	tf.input.SetValue("echo")
	tf.HandleInput(tea.KeyMsg{Type: tea.KeyEnter})
	msg := tf.flushScrollRequests()().(scrollRequestMsg)
	msg.req.Duration = 0
	tf.Update(msg)

	assert.Equal(t, 0, tf.ScrollOffset())
}

func TestScrollAnimation_Offset(t *testing.T) {
	a := scrollAnimation{from: 10, to: 0, frames: 4}
	assert.True(t, a.running())
	a.frame = 2
	assert.Equal(t, 5, a.offset())
	a.frame = 4
	assert.Equal(t, 0, a.offset())
	assert.False(t, a.running())

	assert.Equal(t, 7, scrollAnimation{to: 7}.offset())
}
