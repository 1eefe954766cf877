package input

import (
	"time"

	"github.com/agiangrant/ctdinput/retained"
)

// clickHistory remembers the last single click per button. The position is
// shared by all buttons.
type clickHistory struct {
	lastTime []time.Duration
	seen     []bool
	lastPos  retained.Point
}

func newClickHistory(buttons int) clickHistory {
	return clickHistory{
		lastTime: make([]time.Duration, buttons),
		seen:     make([]bool, buttons),
	}
}

// classify reports whether a button transition is a double click, and
// records single presses. Releases never touch the history. The caller
// guarantees button is in range.
func (c *clickHistory) classify(button retained.MouseButton, down bool, pos retained.Point, now, speed time.Duration) bool {
	if !down {
		return false
	}

	double := c.seen[button] &&
		pos == c.lastPos &&
		now-c.lastTime[button] < speed
	if !double {
		c.lastTime[button] = now
		c.seen[button] = true
		c.lastPos = pos
	}
	return double
}
