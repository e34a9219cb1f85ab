// Package config provides YAML-based game configuration loading and
// difficulty presets for Star Hopper.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the simulation.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Entities EntitiesConfig `yaml:"entities"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Input    InputConfig    `yaml:"input"`
}

// WorldConfig defines the world boundary in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines kinematics parameters.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	JumpForce       float64 `yaml:"jump_force"`        // Negative = upward
	DoubleJumpForce float64 `yaml:"double_jump_force"` // Negative = upward
	MoveSpeed       float64 `yaml:"move_speed"`
	AirResistance   float64 `yaml:"air_resistance"`  // Vertical damping, applied every tick
	GroundFriction  float64 `yaml:"ground_friction"` // Horizontal decay without intent
}

// PlayerConfig defines the player's spawn pose and size.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EntitiesConfig defines the fixed sizes of level entities.
type EntitiesConfig struct {
	PlatformHeight  float64 `yaml:"platform_height"`
	CoinSize        float64 `yaml:"coin_size"`
	SpikeSize       float64 `yaml:"spike_size"`
	GoalWidth       float64 `yaml:"goal_width"`
	GoalHeight      float64 `yaml:"goal_height"`
	DisappearMillis int     `yaml:"disappear_ms"` // Default disappearing platform lifetime
	TickMillis      int     `yaml:"tick_ms"`      // Simulated time per tick for platform decay
	SpeedScale      float64 `yaml:"speed_scale"`  // Multiplier on dynamic platform speeds
}

// ScoringConfig defines collectible values.
type ScoringConfig struct {
	Coin  int `yaml:"coin"`
	Token int `yaml:"token"`
}

// InputConfig tunes the terminal input emulation.
type InputConfig struct {
	// HoldTicks is how long a movement key counts as held after its last
	// key event. Terminals report presses (and auto-repeat) but no releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.World.Width > 0 && c.World.Height > 0, "world size must be positive"},
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.JumpForce < 0, "physics.jump_force must be negative (upward)"},
		{c.Physics.DoubleJumpForce < 0, "physics.double_jump_force must be negative (upward)"},
		{c.Physics.MoveSpeed > 0, "physics.move_speed must be positive"},
		{c.Physics.AirResistance > 0 && c.Physics.AirResistance <= 1, "physics.air_resistance must be in (0, 1]"},
		{c.Physics.GroundFriction >= 0 && c.Physics.GroundFriction <= 1, "physics.ground_friction must be in [0, 1]"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Entities.PlatformHeight > 0, "entities.platform_height must be positive"},
		{c.Entities.CoinSize > 0 && c.Entities.SpikeSize > 0, "entity sizes must be positive"},
		{c.Entities.GoalWidth > 0 && c.Entities.GoalHeight > 0, "goal size must be positive"},
		{c.Entities.DisappearMillis > 0, "entities.disappear_ms must be positive"},
		{c.Entities.TickMillis > 0, "entities.tick_ms must be positive"},
		{c.Entities.SpeedScale > 0, "entities.speed_scale must be positive"},
		{c.Scoring.Coin >= 0 && c.Scoring.Token >= 0, "scoring values must not be negative"},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %w: %s", ErrInvalid, chk.what)
		}
	}
	return nil
}
