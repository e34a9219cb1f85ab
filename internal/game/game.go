package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/physics"
	"github.com/vovakirdan/star-hopper/internal/session"
)

const (
	burstSize     = 20 // Particles per token burst
	particleLife  = 50 // Ticks
	bannerTicks   = 120
	particleDrag  = 0.97
	particleSpeed = 2.0
)

// Particle is a purely visual spark from a collected token.
type Particle struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life int // Ticks left
}

// RunSummary is what the completion screen shows.
type RunSummary struct {
	FullRun *session.FullRun // Nil when the run did not start at the first level
	Score   int
	Deaths  int
}

// Step maps one frame of input to intents, advances one tick and returns
// the resulting state and events.
func (c *Controller) Step(in core.InputFrame) core.StepResult {
	c.applyInput(in)
	c.Tick()
	return core.StepResult{
		State:  c.State(),
		Events: c.Events(),
	}
}

func (c *Controller) applyInput(in core.InputFrame) {
	switch c.mode {
	case ModeMenu:
		switch {
		case in.Has(core.ActionLevelSelect):
			c.OpenLevelSelect()
		case in.Has(core.ActionConfirm), in.Has(core.ActionJump):
			c.Start()
		}

	case ModeLevelSelect:
		if idx, ok := in.Selected(); ok {
			c.SelectLevel(idx)
			return
		}
		switch {
		case in.Has(core.ActionBack):
			c.Back()
		case in.Has(core.ActionConfirm), in.Has(core.ActionJump):
			c.Confirm()
		case in.Has(core.ActionUp), in.Has(core.ActionLeft):
			c.MoveCursor(-1)
		case in.Has(core.ActionDown), in.Has(core.ActionRight):
			c.MoveCursor(1)
		}

	case ModePlaying:
		switch {
		case in.Has(core.ActionBack):
			c.Back()
			return
		case in.Has(core.ActionPause):
			c.Pause()
			return
		case in.Has(core.ActionRestart):
			c.Restart()
		}
		c.MoveLeft(in.IsHeld(core.ActionLeft))
		c.MoveRight(in.IsHeld(core.ActionRight))
		// Up doubles as jump while playing
		if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
			c.Jump()
		}

	case ModePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			c.Resume()
		}

	case ModeComplete:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) || in.Has(core.ActionBack) {
			c.Confirm()
		}
	}
}

// Tick advances the simulation by one fixed step. Outside ModePlaying it
// does nothing.
func (c *Controller) Tick() {
	if c.mode != ModePlaying {
		return
	}
	c.tick++
	c.updateParticles()
	if c.bannerTTL > 0 {
		c.bannerTTL--
		if c.bannerTTL == 0 {
			c.banner = ""
		}
	}

	rep, err := c.sess.Step()
	if err != nil {
		c.log.Error("step", "err", err)
		return
	}

	for _, col := range rep.Collected {
		if col.Kind == physics.KindToken {
			x, y := col.Box.Center()
			c.spawnBurst(core.Vec2{X: x, Y: y})
		}
	}

	if rep.Died {
		c.log.Info("death", "level", c.sess.Current(), "deaths", c.sess.Deaths())
		c.particles = nil
		c.emit(core.Event{
			Kind:   core.EventDeath,
			Level:  c.sess.Current(),
			Deaths: c.sess.Deaths(),
			Score:  c.sess.Score(),
		})
		return
	}

	if comp := rep.Completion; comp != nil {
		c.onCompletion(*comp)
	}
	if run := rep.FullRun; run != nil {
		c.log.Info("full run", "time", session.FormatTime(run.Time), "best", run.NewBest)
		c.emit(core.Event{
			Kind:   core.EventFullRun,
			Time:   run.Time,
			Deaths: c.sess.Deaths(),
			Score:  c.sess.Score(),
		})
	}
	if rep.Finished {
		c.finishRun(rep.FullRun)
	}
}

func (c *Controller) onCompletion(comp session.Completion) {
	c.log.Info("level complete",
		"level", comp.Level,
		"timed", comp.Timed,
		"time", session.FormatTime(comp.Time),
		"tokens", comp.Tokens,
		"best", comp.NewBest)

	c.banner = fmt.Sprintf("Level %d cleared", comp.Level+1)
	if comp.Timed {
		c.banner += " in " + session.FormatTime(comp.Time)
		if comp.NewBest {
			c.banner += " - new best!"
		}
		c.emit(core.Event{
			Kind:   core.EventLevelComplete,
			Level:  comp.Level,
			Time:   comp.Time,
			Tokens: comp.Tokens,
			Deaths: c.sess.Deaths(),
			Score:  c.sess.Score(),
		})
	}
	c.bannerTTL = bannerTicks
	c.particles = nil
}

func (c *Controller) finishRun(run *session.FullRun) {
	c.lastRun = &RunSummary{
		FullRun: run,
		Score:   c.sess.Score(),
		Deaths:  c.sess.Deaths(),
	}
	c.emit(core.Event{
		Kind:     core.EventRunEnded,
		Level:    c.sess.LevelCount() - 1,
		Score:    c.sess.Score(),
		Deaths:   c.sess.Deaths(),
		Finished: true,
	})
	c.log.Info("run complete", "score", c.sess.Score(), "deaths", c.sess.Deaths())
	c.releaseMovement()
	c.banner = ""
	c.bannerTTL = 0
	c.setMode(ModeComplete)
}

// LastRun returns the summary of the run that reached the completion screen.
func (c *Controller) LastRun() *RunSummary { return c.lastRun }

// State returns the summary the platform layer needs.
func (c *Controller) State() core.GameState {
	return core.GameState{
		Mode:   c.mode.String(),
		Level:  c.sess.Current(),
		Score:  c.sess.Score(),
		Deaths: c.sess.Deaths(),
		Paused: c.mode == ModePaused,
	}
}

// spawnBurst emits a ring of particles. Angles and speeds derive from the
// tick counter so replays are identical.
func (c *Controller) spawnBurst(at core.Vec2) {
	offset := float64(c.tick%7) * 0.3
	for i := 0; i < burstSize; i++ {
		angle := offset + 2*math.Pi*float64(i)/burstSize
		speed := particleSpeed + float64((uint64(i)*7+c.tick)%5)*0.5
		c.particles = append(c.particles, Particle{
			Pos:  at,
			Vel:  core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life: particleLife,
		})
	}
}

func (c *Controller) updateParticles() {
	alive := c.particles[:0]
	for _, p := range c.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = core.Vec2{X: p.Vel.X * particleDrag, Y: p.Vel.Y * particleDrag}
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	c.particles = alive
}
