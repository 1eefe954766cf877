package input

import (
	"time"

	"github.com/agiangrant/ctdinput/retained"
)

// ============================================================================
// Key State Tracker
// ============================================================================

type keySlot struct {
	down       bool
	nextRepeat time.Duration
}

// keyState tracks which keys are held, when each should next repeat, and
// the widget that owned keyboard focus when the latest key went down.
type keyState struct {
	keys   [retained.KeyCount]keySlot
	target retained.Ref

	leftMouseDown  bool
	rightMouseDown bool
}

func (s *keyState) isKeyDown(key retained.Key) bool {
	if key >= retained.KeyCount {
		return false
	}
	return s.keys[key].down
}

// setKeyDown records a key transition and reports whether it was an edge.
// A down edge schedules the first repeat at now+delay and binds target as
// the repeat owner. The up edge deliberately leaves the owner untouched.
func (s *keyState) setKeyDown(key retained.Key, down bool, now, delay time.Duration, target retained.Ref) bool {
	if key >= retained.KeyCount {
		return false
	}
	slot := &s.keys[key]
	if slot.down == down {
		return false
	}
	slot.down = down
	if down {
		slot.nextRepeat = now + delay
		s.target = target
	}
	return true
}

// advance runs one repeat tick. focus is consulted per key because a
// pulse may move keyboard focus. Keys held for some other target are
// released without notice; due keys are rescheduled at now+rate and
// passed to pulse.
func (s *keyState) advance(now, rate time.Duration, focus func() retained.Ref, pulse func(retained.Key)) {
	for i := range s.keys {
		slot := &s.keys[i]
		if !slot.down {
			continue
		}
		if s.target != focus() {
			slot.down = false
			continue
		}
		if now > slot.nextRepeat {
			slot.nextRepeat = now + rate
			pulse(retained.Key(i))
		}
	}
}

// setMouseDown tracks the left and right buttons; other indices are ignored.
func (s *keyState) setMouseDown(button retained.MouseButton, down bool) {
	switch button {
	case retained.MouseButtonLeft:
		s.leftMouseDown = down
	case retained.MouseButtonRight:
		s.rightMouseDown = down
	}
}
