// Package physics implements the per-tick simulation core: player
// kinematics, platform motion and collision resolution. Everything here is
// deterministic and driven by an explicit tick; nothing reads the clock.
package physics

import (
	"github.com/vovakirdan/star-hopper/internal/config"
	"github.com/vovakirdan/star-hopper/internal/core"
)

// Params holds the kinematics constants for one simulation.
type Params struct {
	Gravity         float64
	JumpForce       float64 // Negative = upward
	DoubleJumpForce float64 // Negative = upward
	MoveSpeed       float64
	AirResistance   float64
	GroundFriction  float64
	WorldW, WorldH  float64
}

// ParamsFromConfig extracts kinematics constants from the game config.
func ParamsFromConfig(cfg config.Config) Params {
	return Params{
		Gravity:         cfg.Physics.Gravity,
		JumpForce:       cfg.Physics.JumpForce,
		DoubleJumpForce: cfg.Physics.DoubleJumpForce,
		MoveSpeed:       cfg.Physics.MoveSpeed,
		AirResistance:   cfg.Physics.AirResistance,
		GroundFriction:  cfg.Physics.GroundFriction,
		WorldW:          cfg.World.Width,
		WorldH:          cfg.World.Height,
	}
}

// Player is the controlled entity.
type Player struct {
	Pos  core.Vec2 // Top-left corner
	Vel  core.Vec2 // Per tick
	W, H float64

	FacingRight   bool
	IsJumping     bool // Airborne; false means resting on the floor or a platform
	HasDoubleJump bool
	MovingLeft    bool
	MovingRight   bool

	Score int // Never decreases within a run
}

// NewPlayer creates a player at spawn, facing right with a zero score.
func NewPlayer(spawn core.Vec2, w, h float64) *Player {
	p := &Player{W: w, H: h}
	p.Respawn(spawn)
	return p
}

// Respawn resets the pose to spawn. Score and held intents are kept.
// The spawn point may sit above the ground, so the player starts airborne
// and is grounded by the first landing or the floor clamp.
func (p *Player) Respawn(spawn core.Vec2) {
	p.Pos = spawn
	p.Vel = core.Vec2{}
	p.FacingRight = true
	p.IsJumping = true
	p.HasDoubleJump = true
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// MoveLeft sets the left intent. Turning it on turns right off.
func (p *Player) MoveLeft(on bool) {
	p.MovingLeft = on
	if on {
		p.MovingRight = false
	}
}

// MoveRight sets the right intent. Turning it on turns left off.
func (p *Player) MoveRight(on bool) {
	p.MovingRight = on
	if on {
		p.MovingLeft = false
	}
}

// Integrate advances velocity and position by one tick and applies the
// world bounds. The player is considered airborne until the floor clamp
// here or a platform landing in Resolve says otherwise.
func (p *Player) Integrate(prm Params) {
	p.IsJumping = true

	p.Vel.Y += prm.Gravity
	p.Vel.Y *= prm.AirResistance

	switch {
	case p.MovingLeft:
		p.Vel.X = -prm.MoveSpeed
	case p.MovingRight:
		p.Vel.X = prm.MoveSpeed
	default:
		p.Vel.X *= prm.GroundFriction
	}

	p.Pos.Y += p.Vel.Y
	p.Pos.X += p.Vel.X

	// Floor
	if p.Pos.Y+p.H > prm.WorldH {
		p.LandOn(prm.WorldH)
	}

	p.clampHorizontal(prm.WorldW)

	if p.MovingLeft {
		p.FacingRight = false
	} else if p.MovingRight {
		p.FacingRight = true
	}
}

// Jump applies the ground impulse, or the double-jump impulse when already
// airborne. Returns false when no impulse was available.
func (p *Player) Jump(prm Params) bool {
	switch {
	case !p.IsJumping:
		p.Vel.Y = prm.JumpForce
		p.IsJumping = true
		p.HasDoubleJump = true
		return true
	case p.HasDoubleJump:
		p.Vel.Y = prm.DoubleJumpForce
		p.HasDoubleJump = false
		return true
	default:
		return false
	}
}

// LandOn snaps the player's bottom edge to top and grounds it.
func (p *Player) LandOn(top float64) {
	p.Pos.Y = top - p.H
	p.Vel.Y = 0
	p.IsJumping = false
	p.HasDoubleJump = true
}

// clampHorizontal keeps the player inside [0, worldW].
func (p *Player) clampHorizontal(worldW float64) {
	if p.Pos.X < 0 {
		p.Pos.X = 0
		p.Vel.X = 0
	}
	if p.Pos.X+p.W > worldW {
		p.Pos.X = worldW - p.W
		p.Vel.X = 0
	}
}
