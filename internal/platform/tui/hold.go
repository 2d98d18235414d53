package tui

import "github.com/vovakirdan/iced/internal/core"

// HoldTracker turns terminal key events into held actions.
// Terminals report presses and auto-repeats but never releases, so a key counts
// as held for a while after each event. The first press lasts long enough to
// bridge the auto-repeat delay; repeats only need to bridge the repeat interval.
type HoldTracker struct {
	initial float64
	repeat  float64
	left    map[core.Action]float64 // Seconds of hold remaining per action
}

// NewHoldTracker creates a tracker with the given hold windows in seconds.
func NewHoldTracker(initial, repeat float64) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		left:    make(map[core.Action]float64),
	}
}

// opposite returns the direction that a press of a releases.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a key event for a.
func (h *HoldTracker) Press(a core.Action) {
	if o := opposite(a); o != core.ActionNone {
		delete(h.left, o)
	}
	if h.left[a] > 0 {
		h.left[a] = h.repeat
		return
	}
	h.left[a] = h.initial
}

// Advance ages every hold by dt seconds and drops the expired ones.
func (h *HoldTracker) Advance(dt float64) {
	for a, t := range h.left {
		t -= dt
		if t <= 0 {
			delete(h.left, a)
			continue
		}
		h.left[a] = t
	}
}

// IsHeld reports whether a is currently held.
func (h *HoldTracker) IsHeld(a core.Action) bool {
	return h.left[a] > 0
}

// Apply marks every held action on the frame.
func (h *HoldTracker) Apply(f *core.InputFrame) {
	for a := range h.left {
		f.Hold(a)
	}
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.left)
}
