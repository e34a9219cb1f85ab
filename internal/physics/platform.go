package physics

import "github.com/vovakirdan/star-hopper/internal/core"

// Platform is a surface the player can land on from above.
// Implemented only by *Static, *Moving, *Vertical and *Disappearing;
// callers switch on the concrete type for variant behaviour.
type Platform interface {
	Bounds() core.Rect
	Solid() bool   // Takes part in collision
	Visible() bool // Drawn
	Update(tickMillis int)
	Reset()

	platform()
}

// Static never moves.
type Static struct {
	Box core.Rect
}

// NewStatic creates a static platform.
func NewStatic(x, y, w, h float64) *Static {
	return &Static{Box: core.NewRect(x, y, w, h)}
}

func (s *Static) Bounds() core.Rect { return s.Box }
func (s *Static) Solid() bool       { return true }
func (s *Static) Visible() bool     { return true }
func (s *Static) Update(int)        {}
func (s *Static) Reset()            {}
func (s *Static) platform()         {}

// oscillator moves a coordinate back and forth around an origin.
// The direction flips only after the bound is exceeded, so the position
// can overshoot origin ± Range by up to one step of Speed.
type oscillator struct {
	Origin    float64
	Range     float64
	Speed     float64
	Direction float64 // +1 or -1
}

// step advances pos by one tick and returns the new value.
func (o *oscillator) step(pos float64) float64 {
	pos += o.Speed * o.Direction
	if core.AbsF(pos-o.Origin) > o.Range {
		o.Direction = -o.Direction
	}
	return pos
}

// Delta returns the displacement applied on the next tick.
func (o *oscillator) Delta() float64 {
	return o.Speed * o.Direction
}

// Moving oscillates horizontally and carries a player standing on it.
type Moving struct {
	Box core.Rect
	oscillator
}

// NewMoving creates a horizontally oscillating platform starting at its origin.
func NewMoving(x, y, w, h, xRange, speed float64) *Moving {
	return &Moving{
		Box:        core.NewRect(x, y, w, h),
		oscillator: oscillator{Origin: x, Range: xRange, Speed: speed, Direction: 1},
	}
}

func (m *Moving) Bounds() core.Rect { return m.Box }
func (m *Moving) Solid() bool       { return true }
func (m *Moving) Visible() bool     { return true }
func (m *Moving) Update(int)        { m.Box.X = m.step(m.Box.X) }
func (m *Moving) platform()         {}

// Reset returns the platform to its origin, heading right.
func (m *Moving) Reset() {
	m.Box.X = m.Origin
	m.Direction = 1
}

// Vertical oscillates vertically.
type Vertical struct {
	Box core.Rect
	oscillator
}

// NewVertical creates a vertically oscillating platform starting at its origin.
func NewVertical(x, y, w, h, yRange, speed float64) *Vertical {
	return &Vertical{
		Box:        core.NewRect(x, y, w, h),
		oscillator: oscillator{Origin: y, Range: yRange, Speed: speed, Direction: 1},
	}
}

func (v *Vertical) Bounds() core.Rect { return v.Box }
func (v *Vertical) Solid() bool       { return true }
func (v *Vertical) Visible() bool     { return true }
func (v *Vertical) Update(int)        { v.Box.Y = v.step(v.Box.Y) }
func (v *Vertical) platform()         {}

// Reset returns the platform to its origin, heading down.
func (v *Vertical) Reset() {
	v.Box.Y = v.Origin
	v.Direction = 1
}

// Disappearing is solid until touched, then decays over Duration
// milliseconds of simulated time.
type Disappearing struct {
	Box       core.Rect
	Duration  int // Milliseconds
	Remaining int // Milliseconds
	Touched   bool
}

// NewDisappearing creates an untouched disappearing platform.
func NewDisappearing(x, y, w, h float64, durationMillis int) *Disappearing {
	return &Disappearing{
		Box:       core.NewRect(x, y, w, h),
		Duration:  durationMillis,
		Remaining: durationMillis,
	}
}

func (d *Disappearing) Bounds() core.Rect { return d.Box }
func (d *Disappearing) Solid() bool       { return d.Remaining > 0 }
func (d *Disappearing) Visible() bool     { return d.Remaining > 0 }
func (d *Disappearing) platform()         {}

// Touch starts the decay. Touching again has no further effect.
func (d *Disappearing) Touch() {
	d.Touched = true
}

// Update decrements the remaining lifetime by one tick once touched.
func (d *Disappearing) Update(tickMillis int) {
	if d.Touched && d.Remaining > 0 {
		d.Remaining -= tickMillis
	}
}

// Reset restores the full lifetime and clears the touch.
func (d *Disappearing) Reset() {
	d.Remaining = d.Duration
	d.Touched = false
}

// Fraction returns the remaining lifetime in [0, 1].
func (d *Disappearing) Fraction() float64 {
	if d.Duration <= 0 {
		return 0
	}
	return core.ClampF(float64(d.Remaining)/float64(d.Duration), 0, 1)
}
