package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A - move left / previous level in selector
	ActionRight              // Right arrow, D - move right / next level in selector
	ActionUp                 // Up, W - cursor up in selector, jump while playing
	ActionDown               // Down in selector
	ActionJump               // Space - jump or double jump
	ActionConfirm            // Enter - start, pick level, acknowledge
	ActionLevelSelect        // L - open level selector from the menu
	ActionBack               // Escape - cancel selector, abort run
	ActionRestart            // R - restart current level
	ActionPause              // P - pause/resume
	ActionQuit               // Q, Ctrl+C - exit program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionLevelSelect:
		return "LevelSelect"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
//
// Actions holds edge-triggered presses that arrived this frame. Held holds
// level-triggered state (movement keys currently down), which the platform
// layer keeps set for as long as it considers the key pressed.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool

	// pick carries a direct level pick, stored 1-based so the zero value means none.
	pick int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetHeld marks an action as held down for this frame.
func (f *InputFrame) SetHeld(a Action, on bool) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	if on {
		f.Held[a] = true
		return
	}
	delete(f.Held, a)
}

// IsHeld returns true if the given action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// SelectLevel records a direct (0-based) level pick for this frame.
func (f *InputFrame) SelectLevel(index int) {
	if index < 0 {
		return
	}
	f.pick = index + 1
}

// Selected returns the level picked this frame, if any.
func (f InputFrame) Selected() (int, bool) {
	if f.pick == 0 {
		return 0, false
	}
	return f.pick - 1, true
}

// Clear resets edge-triggered actions and level picks for the next frame.
// Held state is owned by the platform layer and survives.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pick = 0
}
