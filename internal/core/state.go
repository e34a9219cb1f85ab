package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt its view to the screen size and tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarizes the game for the platform layer.
// Returned by State() and in every StepResult.
type GameState struct {
	Mode   string // Run controller state name ("menu", "playing", ...)
	Level  int    // Current level index (0-based)
	Score  int    // Current score
	Deaths int    // Deaths in the current run
	Paused bool   // Whether the simulation is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventLevelComplete EventKind = iota // A level's goal was reached
	EventFullRun                        // The last level was finished during a full run
	EventDeath                          // The player hit a hazard
	EventRunEnded                       // A run ended (finished or aborted to the menu)
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLevelComplete:
		return "level_complete"
	case EventFullRun:
		return "full_run"
	case EventDeath:
		return "death"
	case EventRunEnded:
		return "run_ended"
	default:
		return "unknown"
	}
}

// Event is emitted by a tick for the platform layer (persistence, logging).
type Event struct {
	Kind   EventKind
	Level  int
	Time   time.Duration // Completion or full-run time; zero when untimed
	Tokens int
	Deaths int
	Score  int

	Finished bool // EventRunEnded only: the run reached the end of the set
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
