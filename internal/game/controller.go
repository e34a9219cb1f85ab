// Package game is the run controller: the top-level state machine that
// gates when the simulation runs, plus the frame driver, render snapshot
// and screen renderer built on it.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-hopper/internal/config"
	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/level"
	"github.com/vovakirdan/star-hopper/internal/session"
)

// Mode is the controller state.
type Mode int

const (
	ModeMenu Mode = iota
	ModeLevelSelect
	ModePlaying
	ModePaused
	ModeComplete
)

// String returns the state name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeLevelSelect:
		return "level_select"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for transitions and run events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithSessionOptions passes options through to the session.
func WithSessionOptions(opts ...session.Option) Option {
	return func(c *Controller) {
		c.sessOpts = append(c.sessOpts, opts...)
	}
}

// Controller drives a session through menu, level select, play, pause and
// the completion screen. Only ModePlaying advances the simulation.
type Controller struct {
	mode     Mode
	sess     *session.Session
	log      *log.Logger
	sessOpts []session.Option

	cursor  int    // Highlighted row in the level selector
	tick    uint64 // Simulated ticks, used to seed particle bursts
	pending []core.Event

	particles []Particle
	lastRun   *RunSummary
	banner    string
	bannerTTL int
}

// New creates a controller in the menu over a fresh session.
func New(set level.Set, cfg config.Config, opts ...Option) (*Controller, error) {
	c := &Controller{mode: ModeMenu}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}

	sess, err := session.New(set, cfg, c.sessOpts...)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	c.sess = sess
	return c, nil
}

// Mode returns the current state.
func (c *Controller) Mode() Mode { return c.mode }

// Session exposes the underlying session (read accessors for stats UIs).
func (c *Controller) Session() *session.Session { return c.sess }

// Cursor returns the highlighted level in the selector.
func (c *Controller) Cursor() int { return c.cursor }

func (c *Controller) setMode(m Mode) {
	if m == c.mode {
		return
	}
	c.log.Debug("transition", "from", c.mode, "to", m)
	c.mode = m
}

// Start begins a run at the first level. Menu only.
func (c *Controller) Start() {
	if c.mode != ModeMenu {
		return
	}
	c.beginRun(0)
}

// OpenLevelSelect shows the level selector. Menu only.
func (c *Controller) OpenLevelSelect() {
	if c.mode != ModeMenu {
		return
	}
	c.cursor = 0
	c.setMode(ModeLevelSelect)
}

// SelectLevel starts a run at index from the selector. An index outside
// the set is rejected and nothing changes.
func (c *Controller) SelectLevel(index int) bool {
	if c.mode != ModeLevelSelect {
		return false
	}
	if index < 0 || index >= c.sess.LevelCount() {
		c.log.Debug("level selection rejected", "index", index)
		return false
	}
	c.cursor = index
	c.beginRun(index)
	return true
}

// MoveCursor shifts the selector highlight, wrapping around the set.
func (c *Controller) MoveCursor(delta int) {
	if c.mode != ModeLevelSelect {
		return
	}
	n := c.sess.LevelCount()
	c.cursor = ((c.cursor+delta)%n + n) % n
}

// Back cancels the selector, aborts a run, or leaves the completion screen.
func (c *Controller) Back() {
	switch c.mode {
	case ModeLevelSelect, ModeComplete:
		c.setMode(ModeMenu)
	case ModePlaying:
		c.log.Info("run aborted", "level", c.sess.Current(), "score", c.sess.Score(), "deaths", c.sess.Deaths())
		c.emit(core.Event{
			Kind:   core.EventRunEnded,
			Level:  c.sess.Current(),
			Score:  c.sess.Score(),
			Deaths: c.sess.Deaths(),
		})
		c.sess.ClearRun()
		c.releaseMovement()
		c.particles = nil
		c.setMode(ModeMenu)
	}
}

// Pause freezes the simulation.
func (c *Controller) Pause() {
	if c.mode == ModePlaying {
		c.releaseMovement()
		c.setMode(ModePaused)
	}
}

// Resume continues a paused run. Pause has no other exit.
func (c *Controller) Resume() {
	if c.mode == ModePaused {
		c.setMode(ModePlaying)
	}
}

// Confirm is the generic accept key: start from the menu, pick the
// highlighted level, resume, or acknowledge the completion screen.
func (c *Controller) Confirm() {
	switch c.mode {
	case ModeMenu:
		c.Start()
	case ModeLevelSelect:
		c.SelectLevel(c.cursor)
	case ModePaused:
		c.Resume()
	case ModeComplete:
		c.lastRun = nil
		c.setMode(ModeMenu)
	}
}

// MoveLeft sets the left intent while playing. Releases always go through.
func (c *Controller) MoveLeft(on bool) {
	if on && c.mode != ModePlaying {
		return
	}
	c.sess.MoveLeft(on)
}

// MoveRight sets the right intent while playing. Releases always go through.
func (c *Controller) MoveRight(on bool) {
	if on && c.mode != ModePlaying {
		return
	}
	c.sess.MoveRight(on)
}

// Jump jumps or double jumps while playing.
func (c *Controller) Jump() {
	if c.mode == ModePlaying {
		c.sess.Jump()
	}
}

// Restart reloads the current level without counting a death.
func (c *Controller) Restart() {
	if c.mode != ModePlaying {
		return
	}
	c.log.Debug("restart", "level", c.sess.Current())
	c.sess.Restart()
	c.particles = nil
}

func (c *Controller) beginRun(index int) {
	if err := c.sess.StartRun(index); err != nil {
		c.log.Error("start run", "index", index, "err", err)
		return
	}
	c.particles = nil
	c.banner = ""
	c.log.Info("run started", "level", index)
	c.setMode(ModePlaying)
}

func (c *Controller) releaseMovement() {
	c.sess.MoveLeft(false)
	c.sess.MoveRight(false)
}

func (c *Controller) emit(ev core.Event) {
	c.pending = append(c.pending, ev)
}

// Events returns and clears the events emitted since the last call.
func (c *Controller) Events() []core.Event {
	ev := c.pending
	c.pending = nil
	return ev
}
