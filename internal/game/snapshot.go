package game

import (
	"math"
	"time"

	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/physics"
)

// PlatformKind tags a platform in the snapshot.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformMoving
	PlatformVertical
	PlatformDisappearing
)

// PlatformView is one platform as the renderer sees it.
type PlatformView struct {
	Box     core.Rect
	Kind    PlatformKind
	Visible bool
	Life    float64 // Remaining lifetime fraction; 1 for permanent platforms
	Touched bool
}

// CollectibleView is one coin or token.
type CollectibleView struct {
	Box       core.Rect
	Kind      physics.Kind
	Collected bool
}

// PlayerView is the player's pose.
type PlayerView struct {
	Box         core.Rect
	FacingRight bool
	Airborne    bool
	Moving      bool
}

// Snapshot is the per-frame render boundary: every live entity's position
// and flags plus HUD data. It holds copies and is safe to keep.
type Snapshot struct {
	Tick       uint64
	Mode       Mode
	Level      int
	LevelName  string
	LevelCount int
	Cursor     int

	Player       PlayerView
	Platforms    []PlatformView
	Spikes       []core.Rect
	Collectibles []CollectibleView
	Goal         core.Rect
	GoalActive   bool
	Particles    []Particle

	Score     int
	Deaths    int
	LevelTime time.Duration
	RunTime   time.Duration
	RunActive bool
	Banner    string
}

// Snapshot captures the current frame.
func (c *Controller) Snapshot() Snapshot {
	w := c.sess.World()
	p := c.sess.Player()
	def := c.sess.Definition()

	snap := Snapshot{
		Tick:       c.tick,
		Mode:       c.mode,
		Level:      c.sess.Current(),
		LevelName:  def.Name,
		LevelCount: c.sess.LevelCount(),
		Cursor:     c.cursor,

		Player: PlayerView{
			Box:         p.Bounds(),
			FacingRight: p.FacingRight,
			Airborne:    p.IsJumping,
			Moving:      p.MovingLeft || p.MovingRight,
		},
		Platforms:    make([]PlatformView, 0, len(w.Platforms)),
		Spikes:       make([]core.Rect, 0, len(w.Spikes)),
		Collectibles: make([]CollectibleView, 0, len(w.Collectibles)),
		Goal:         w.Goal.Box,
		GoalActive:   w.GoalActive(),
		Particles:    append([]Particle(nil), c.particles...),

		Score:     c.sess.Score(),
		Deaths:    c.sess.Deaths(),
		LevelTime: c.sess.LevelElapsed(),
		Banner:    c.banner,
	}
	snap.RunTime, snap.RunActive = c.sess.RunElapsed()

	for _, pl := range w.Platforms {
		view := PlatformView{Box: pl.Bounds(), Visible: pl.Visible(), Life: 1}
		switch v := pl.(type) {
		case *physics.Static:
			view.Kind = PlatformStatic
		case *physics.Moving:
			view.Kind = PlatformMoving
		case *physics.Vertical:
			view.Kind = PlatformVertical
		case *physics.Disappearing:
			view.Kind = PlatformDisappearing
			view.Life = v.Fraction()
			view.Touched = v.Touched
		}
		snap.Platforms = append(snap.Platforms, view)
	}
	for _, s := range w.Spikes {
		snap.Spikes = append(snap.Spikes, s.Box)
	}
	for _, col := range w.Collectibles {
		snap.Collectibles = append(snap.Collectibles, CollectibleView{
			Box:       col.Box,
			Kind:      col.Kind,
			Collected: col.Collected,
		})
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Timers are excluded since they depend on the clock.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(uint64(snap.Mode))   //#nosec G115 -- hash computation
	mix(uint64(snap.Level))  //#nosec G115 -- hash computation
	mix(uint64(snap.Score))  //#nosec G115 -- hash computation
	mix(uint64(snap.Deaths)) //#nosec G115 -- hash computation
	mixF(snap.Player.Box.X)
	mixF(snap.Player.Box.Y)
	mixB(snap.Player.Airborne)
	for _, p := range snap.Platforms {
		mixF(p.Box.X)
		mixF(p.Box.Y)
		mixF(p.Life)
		mixB(p.Visible)
	}
	for _, col := range snap.Collectibles {
		mixB(col.Collected)
	}
	for _, p := range snap.Particles {
		mixF(p.Pos.X)
		mixF(p.Pos.Y)
	}
	return h
}
