package tagfield

import (
	"fmt"
	"strings"
	"time"
)

// ScrollDirection is the direction the host scroll surface should move in
type ScrollDirection int

const (
	ScrollForward ScrollDirection = iota
	ScrollBackward
)

func (d ScrollDirection) String() string {
	if d == ScrollBackward {
		return "backward"
	}
	return "forward"
}

// ParseScrollDirection converts a settings or flag value to a ScrollDirection
func ParseScrollDirection(s string) (ScrollDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward", "end":
		return ScrollForward, nil
	case "backward", "start":
		return ScrollBackward, nil
	default:
		return ScrollForward, fmt.Errorf("invalid scroll direction: %s (must be: forward or backward)", s)
	}
}

// DefaultScrollDuration is used when ScrollSettings.Duration is zero
const DefaultScrollDuration = 150 * time.Millisecond

// ScrollSettings configures the reveal-newest-tag request sent after a commit
type ScrollSettings struct {
	Direction ScrollDirection
	Duration  time.Duration
}

// ScrollRequest asks the host scroll surface to move after its next redraw.
// A nil TargetOffset means the end of the content in Direction.
type ScrollRequest struct {
	Direction    ScrollDirection
	Duration     time.Duration
	TargetOffset *int
}

// ToEnd reports whether the request targets the end of the content
func (r ScrollRequest) ToEnd() bool {
	return r.TargetOffset == nil
}
