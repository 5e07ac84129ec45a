package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// holdTracker synthesizes key releases. Terminals report a held key as a
// stream of repeated presses and never report the release, so a key counts
// as released once no repeat arrives within its hold window.
//
// Only one movement key is held at a time; pressing another replaces it.
type holdTracker struct {
	initial  time.Duration // Window after the first press, covers the repeat delay
	repeat   time.Duration // Window after each repeat
	action   core.Action
	deadline time.Time
	held     bool
}

func newHoldTracker(initial, repeat time.Duration) holdTracker {
	return holdTracker{initial: initial, repeat: repeat}
}

// Press records a press of a at now and reports whether it starts a new hold.
func (h *holdTracker) Press(a core.Action, now time.Time) bool {
	if h.held && h.action == a {
		h.deadline = now.Add(h.repeat)
		return false
	}
	h.action = a
	h.held = true
	h.deadline = now.Add(h.initial)
	return true
}

// Expire returns the held action once its window has passed.
func (h *holdTracker) Expire(now time.Time) (core.Action, bool) {
	if !h.held || now.Before(h.deadline) {
		return core.ActionNone, false
	}
	h.held = false
	return h.action, true
}

// Reset forgets any held key.
func (h *holdTracker) Reset() {
	h.held = false
	h.action = core.ActionNone
}
