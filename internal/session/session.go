// Package session owns one player's progress through a level set: the live
// world of the current attempt, level and full-run timers, the death
// counter and the in-memory best times.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/star-hopper/internal/config"
	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/level"
	"github.com/vovakirdan/star-hopper/internal/physics"
)

// ErrLevelIndex is returned when a level index is outside the set.
var ErrLevelIndex = errors.New("level index out of range")

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock used by the level and run timers.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithStats shares an existing record book, e.g. across restarts of the UI.
func WithStats(st *Stats) Option {
	return func(s *Session) {
		s.stats = st
	}
}

// Session is the explicit simulation state. It is not safe for concurrent
// use; the frame loop owns it.
type Session struct {
	set   level.Set
	cfg   config.Config
	prm   physics.Params
	spawn core.Vec2
	now   func() time.Time

	current int
	world   *physics.World
	player  *physics.Player

	levelStarted bool
	levelStart   time.Time
	runActive    bool // Full run in progress
	runStart     time.Time

	deaths int
	stats  *Stats
}

// New creates a session over set with the first level loaded.
// The set must already be valid.
func New(set level.Set, cfg config.Config, opts ...Option) (*Session, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		set:   set,
		cfg:   cfg,
		prm:   physics.ParamsFromConfig(cfg),
		spawn: core.Vec2{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.stats == nil {
		s.stats = NewStats()
	}

	s.player = physics.NewPlayer(s.spawn, cfg.Player.Width, cfg.Player.Height)
	if err := s.Load(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Load rebuilds the world of level index from its definition and respawns
// the player. The attempt's timer is cleared until the next input.
// An out-of-range index leaves the session untouched.
func (s *Session) Load(index int) error {
	if !s.set.Valid(index) {
		return fmt.Errorf("session: load %d of %d: %w", index, s.set.Len(), ErrLevelIndex)
	}

	s.current = index
	s.world = physics.BuildWorld(s.set.Levels[index], s.cfg)
	s.player.Respawn(s.spawn)
	s.levelStarted = false
	s.levelStart = time.Time{}
	return nil
}

// StartRun begins a fresh run at index: score and deaths are reset.
func (s *Session) StartRun(index int) error {
	if err := s.Load(index); err != nil {
		return err
	}
	s.deaths = 0
	s.player.Score = 0
	s.runActive = false
	s.runStart = time.Time{}
	return nil
}

// Restart reloads the current level without counting a death.
func (s *Session) Restart() {
	_ = s.Load(s.current)
}

// Die counts a death and reloads the current level.
func (s *Session) Die() {
	s.deaths++
	_ = s.Load(s.current)
}

// NoteInput starts the level timer on the first input of an attempt, and
// the full-run timer when that attempt is on the first level.
func (s *Session) NoteInput() {
	if s.levelStarted {
		return
	}
	now := s.now()
	s.levelStarted = true
	s.levelStart = now
	if s.current == 0 {
		s.runActive = true
		s.runStart = now
	}
}

// MoveLeft forwards the left intent; pressing counts as input.
func (s *Session) MoveLeft(on bool) {
	if on {
		s.NoteInput()
	}
	s.player.MoveLeft(on)
}

// MoveRight forwards the right intent; pressing counts as input.
func (s *Session) MoveRight(on bool) {
	if on {
		s.NoteInput()
	}
	s.player.MoveRight(on)
}

// Jump starts the timer and applies a jump or double jump.
func (s *Session) Jump() bool {
	s.NoteInput()
	return s.player.Jump(s.prm)
}

// RecordCompletion updates the best record of the current level iff t is
// strictly faster or no record exists.
func (s *Session) RecordCompletion(t time.Duration, tokens int) bool {
	return s.stats.Record(s.current, t, tokens)
}

// Advance loads the next level. After the last level it finalizes the full
// run (if one was in progress), resets to the first level and reports
// finished. Callers return to the menu on finished.
func (s *Session) Advance() (bool, error) {
	finished, _, err := s.advance()
	return finished, err
}

func (s *Session) advance() (bool, *FullRun, error) {
	if s.current < s.set.Len()-1 {
		return false, nil, s.Load(s.current + 1)
	}

	var run *FullRun
	if s.runActive {
		t := s.now().Sub(s.runStart)
		run = &FullRun{Time: t, NewBest: s.stats.RecordFullRun(t)}
	}
	s.ClearRun()
	return true, run, nil
}

// ClearRun abandons the full-run timer and rewinds to the first level.
func (s *Session) ClearRun() {
	s.runActive = false
	s.runStart = time.Time{}
	_ = s.Load(0)
}

// Completion describes a reached goal.
type Completion struct {
	Level   int
	Time    time.Duration
	Timed   bool // False when the goal was reached before any input
	Tokens  int
	NewBest bool
}

// FullRun describes a finished uninterrupted run.
type FullRun struct {
	Time    time.Duration
	NewBest bool
}

// Report summarizes one simulated tick.
type Report struct {
	Collected  []*physics.Collectible
	Died       bool
	Completion *Completion // Goal reached this tick
	FullRun    *FullRun    // Set with Finished when a full run ended
	Finished   bool        // The last level was completed
}

// Step simulates one tick: platform motion, integration, collision, then
// death and goal bookkeeping.
func (s *Session) Step() (Report, error) {
	s.world.Update(s.cfg.Entities.TickMillis)
	s.player.Integrate(s.prm)
	out := physics.Resolve(s.player, s.world, s.prm)

	rep := Report{Collected: out.Collected}
	if out.Died {
		rep.Died = true
		s.Die()
		return rep, nil
	}
	if !out.GoalReached {
		return rep, nil
	}

	tokens, _ := s.world.Count(physics.KindToken)
	c := &Completion{Level: s.current, Tokens: tokens}
	if s.levelStarted {
		c.Time = s.now().Sub(s.levelStart)
		c.Timed = true
		c.NewBest = s.RecordCompletion(c.Time, tokens)
	}
	rep.Completion = c

	finished, run, err := s.advance()
	if err != nil {
		return rep, err
	}
	rep.Finished = finished
	rep.FullRun = run
	return rep, nil
}

// Current returns the index of the loaded level.
func (s *Session) Current() int { return s.current }

// Definition returns the loaded level's definition.
func (s *Session) Definition() level.Definition { return s.set.Levels[s.current] }

// Set returns the level set being played.
func (s *Session) Set() level.Set { return s.set }

// LevelCount returns the number of levels in the set.
func (s *Session) LevelCount() int { return s.set.Len() }

// World returns the live world of the current attempt.
func (s *Session) World() *physics.World { return s.world }

// Player returns the player.
func (s *Session) Player() *physics.Player { return s.player }

// Params returns the kinematics constants in use.
func (s *Session) Params() physics.Params { return s.prm }

// Config returns the game configuration in use.
func (s *Session) Config() config.Config { return s.cfg }

// Deaths returns the deaths in the current run.
func (s *Session) Deaths() int { return s.deaths }

// Score returns the player's score.
func (s *Session) Score() int { return s.player.Score }

// Stats returns the record book.
func (s *Session) Stats() *Stats { return s.stats }

// BestFullRun returns the fastest full run.
func (s *Session) BestFullRun() (time.Duration, bool) { return s.stats.BestFullRun() }

// SegmentedBest returns the sum of per-level bests once every level has one.
func (s *Session) SegmentedBest() (time.Duration, bool) {
	return s.stats.SegmentedBest(s.set.Len())
}

// LevelStarted reports whether the current attempt has received input.
func (s *Session) LevelStarted() bool { return s.levelStarted }

// LevelElapsed returns the time since the attempt's first input.
func (s *Session) LevelElapsed() time.Duration {
	if !s.levelStarted {
		return 0
	}
	return s.now().Sub(s.levelStart)
}

// RunElapsed returns the full-run time so far.
func (s *Session) RunElapsed() (time.Duration, bool) {
	if !s.runActive {
		return 0, false
	}
	return s.now().Sub(s.runStart), true
}
