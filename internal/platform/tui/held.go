package tui

import "github.com/vovakirdan/zone-arcade/internal/core"

// heldKeys turns key presses into per-tick input frames.
// Terminals report presses and auto-repeats but never releases, so a
// movement or fire action stays held for a few ticks after its last
// press. Every other action is momentary and lasts one frame.
type heldKeys struct {
	hold      int
	remaining map[core.Action]int
	once      map[core.Action]bool
}

// holdTicks is how long a press keeps an action held: about 150ms,
// which bridges the gap between keyboard auto-repeats.
func holdTicks(tickRate int) int {
	return max(tickRate*3/20, 1)
}

func newHeldKeys(hold int) *heldKeys {
	return &heldKeys{
		hold:      max(hold, 1),
		remaining: make(map[core.Action]int),
		once:      make(map[core.Action]bool),
	}
}

func holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a key press.
func (h *heldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !holdable(a) {
		h.once[a] = true
		return
	}
	// Reversing direction releases the old one at once.
	delete(h.remaining, opposite(a))
	h.remaining[a] = h.hold
}

// Frame returns the input for the next tick and ages held actions.
func (h *heldKeys) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range h.remaining {
		f.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	for a := range h.once {
		f.Set(a)
		delete(h.once, a)
	}
	return f
}

// Reset releases everything.
func (h *heldKeys) Reset() {
	clear(h.remaining)
	clear(h.once)
}
