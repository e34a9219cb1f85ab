package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScaling holds the multipliers a preset applies.
type presetScaling struct {
	speed     float64 // Dynamic platform speed
	disappear float64 // Disappearing platform lifetime
}

func scalingFor(preset DifficultyPreset) presetScaling {
	switch preset {
	case DifficultyEasy:
		return presetScaling{speed: 0.75, disappear: 1.5}
	case DifficultyHard:
		return presetScaling{speed: 1.25, disappear: 0.6}
	default:
		return presetScaling{speed: 1.0, disappear: 1.0}
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	s := scalingFor(preset)
	cfg.Entities.SpeedScale *= s.speed

	ms := int(math.Round(float64(cfg.Entities.DisappearMillis) * s.disappear))
	if ms < cfg.Entities.TickMillis {
		ms = cfg.Entities.TickMillis // At least one tick of grace
	}
	cfg.Entities.DisappearMillis = ms
}
