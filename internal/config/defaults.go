package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Values match the embedded defaults/platformer.yaml.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  1200,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:         0.55,
			JumpForce:       -16,
			DoubleJumpForce: -8,
			MoveSpeed:       6,
			AirResistance:   0.98,
			GroundFriction:  0.80,
		},
		Player: PlayerConfig{
			SpawnX: 50,
			SpawnY: 700,
			Width:  30,
			Height: 40,
		},
		Entities: EntitiesConfig{
			PlatformHeight:  32,
			CoinSize:        15,
			SpikeSize:       20,
			GoalWidth:       60,
			GoalHeight:      100,
			DisappearMillis: 1000,
			TickMillis:      16, // Assumes 60fps
			SpeedScale:      1.0,
		},
		Scoring: ScoringConfig{
			Coin:  100,
			Token: 500,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump`.
func DefaultYAML() []byte {
	return defaultYAML
}
