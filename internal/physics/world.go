package physics

import (
	"github.com/vovakirdan/star-hopper/internal/config"
	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/level"
)

// Spike is a hazard; any overlap kills the player.
type Spike struct {
	Box core.Rect
}

// Kind distinguishes collectible variants.
type Kind int

const (
	KindCoin  Kind = iota // Required to open the goal
	KindToken             // Challenge token, bonus score only
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindToken:
		return "token"
	default:
		return "unknown"
	}
}

// Collectible is a coin or challenge token. Collected only goes false -> true.
type Collectible struct {
	Box       core.Rect
	Kind      Kind
	Value     int
	Collected bool
}

// Goal is the level exit.
type Goal struct {
	Box core.Rect
}

// World is the mutable entity set of one level attempt.
// It is built from a definition and thrown away on reload.
type World struct {
	// Platforms in collision order: static, moving, vertical, disappearing.
	Platforms    []Platform
	Spikes       []Spike
	Collectibles []*Collectible // Coins first, then tokens
	Goal         Goal
}

// BuildWorld constructs a fresh world from a level definition.
// Entity sizes come from cfg; dynamic platform speeds are scaled by
// entities.speed_scale.
func BuildWorld(def level.Definition, cfg config.Config) *World {
	ent := cfg.Entities
	w := &World{
		Platforms:    make([]Platform, 0, def.PlatformCount()),
		Spikes:       make([]Spike, 0, len(def.Spikes)),
		Collectibles: make([]*Collectible, 0, len(def.Coins)+len(def.ChallengeTokens)),
	}

	for _, p := range def.Platforms {
		w.Platforms = append(w.Platforms, NewStatic(p.X, p.Y, p.Width, ent.PlatformHeight))
	}
	for _, p := range def.MovingPlatforms {
		w.Platforms = append(w.Platforms, NewMoving(p.X, p.Y, p.Width, ent.PlatformHeight, p.XRange, p.Speed*ent.SpeedScale))
	}
	for _, p := range def.VerticalPlatforms {
		w.Platforms = append(w.Platforms, NewVertical(p.X, p.Y, p.Width, ent.PlatformHeight, p.YRange, p.Speed*ent.SpeedScale))
	}
	for _, p := range def.DisappearingPlatforms {
		duration := p.Duration
		if duration == 0 {
			duration = ent.DisappearMillis
		}
		w.Platforms = append(w.Platforms, NewDisappearing(p.X, p.Y, p.Width, ent.PlatformHeight, duration))
	}

	for _, s := range def.Spikes {
		w.Spikes = append(w.Spikes, Spike{Box: core.NewRect(s.X, s.Y, ent.SpikeSize, ent.SpikeSize)})
	}
	for _, c := range def.Coins {
		w.Collectibles = append(w.Collectibles, &Collectible{
			Box:   core.NewRect(c.X, c.Y, ent.CoinSize, ent.CoinSize),
			Kind:  KindCoin,
			Value: cfg.Scoring.Coin,
		})
	}
	for _, t := range def.ChallengeTokens {
		w.Collectibles = append(w.Collectibles, &Collectible{
			Box:   core.NewRect(t.X, t.Y, ent.CoinSize, ent.CoinSize),
			Kind:  KindToken,
			Value: cfg.Scoring.Token,
		})
	}

	if def.Goal != nil {
		w.Goal = Goal{Box: core.NewRect(def.Goal.X, def.Goal.Y, ent.GoalWidth, ent.GoalHeight)}
	}
	return w
}

// Update advances every platform by one tick.
func (w *World) Update(tickMillis int) {
	for _, p := range w.Platforms {
		p.Update(tickMillis)
	}
}

// AllCoinsCollected reports whether every coin is collected.
// Tokens never count. A level without coins is always open.
func (w *World) AllCoinsCollected() bool {
	for _, c := range w.Collectibles {
		if c.Kind == KindCoin && !c.Collected {
			return false
		}
	}
	return true
}

// GoalActive reports whether the goal currently accepts the player.
func (w *World) GoalActive() bool {
	return w.AllCoinsCollected()
}

// Count returns how many collectibles of kind exist and how many are collected.
func (w *World) Count(kind Kind) (collected, total int) {
	for _, c := range w.Collectibles {
		if c.Kind != kind {
			continue
		}
		total++
		if c.Collected {
			collected++
		}
	}
	return collected, total
}
