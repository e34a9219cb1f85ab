package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-hopper/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ":
		return core.ActionJump, false
	case "up", "w":
		return core.ActionUp, false
	case "down", "s":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "l":
		return core.ActionLevelSelect, false
	case "esc", "b":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// levelDigit returns the 0-based level a digit key picks.
func levelDigit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// MapKeyToFrame updates an input frame based on a key message. Movement
// keys also refresh the hold tracker, since terminals report presses but
// not releases. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, hold *HoldTracker) bool {
	if idx, ok := levelDigit(msg); ok {
		frame.SelectLevel(idx)
		return false
	}

	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
		return isQuit
	case core.ActionLeft, core.ActionRight:
		if hold != nil {
			hold.Press(action)
		}
	}
	frame.Set(action)
	return isQuit
}

// HoldTracker emulates held movement keys. A press keeps the direction held
// for a window of ticks; key repeat refreshes it. Pressing the opposite
// direction releases the other one at once.
type HoldTracker struct {
	window    int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker with the given hold window in ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window:    window,
		remaining: make(map[core.Action]int, 2),
	}
}

// Press starts or refreshes the hold on a movement action.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	default:
		return
	}
	h.remaining[a] = h.window
}

// Release drops every hold.
func (h *HoldTracker) Release() {
	clear(h.remaining)
}

// Apply writes the held state into frame and counts one tick down.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for _, a := range [...]core.Action{core.ActionLeft, core.ActionRight} {
		n := h.remaining[a]
		frame.SetHeld(a, n > 0)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}
