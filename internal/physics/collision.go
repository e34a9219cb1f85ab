package physics

// Outcome reports what a collision pass did to the player.
type Outcome struct {
	Landed      Platform       // Platform landed on this tick, nil if none
	Died        bool           // A spike was hit; nothing after the hazard check ran
	Collected   []*Collectible // Collected this tick, in world order
	GoalReached bool
}

// Resolve checks the player's post-integration bounds against the world in
// order: platforms, hazards, collectibles, goal. It mutates the player and
// world but leaves reloads and timers to the caller.
func Resolve(p *Player, w *World, prm Params) Outcome {
	var out Outcome

	resolvePlatforms(p, w, prm, &out)

	// A death short-circuits the rest of the tick
	box := p.Bounds()
	for _, s := range w.Spikes {
		if box.Intersects(s.Box) {
			out.Died = true
			return out
		}
	}

	for _, c := range w.Collectibles {
		if c.Collected || !box.Intersects(c.Box) {
			continue
		}
		c.Collected = true
		p.Score += c.Value
		out.Collected = append(out.Collected, c)
	}

	if w.GoalActive() && box.Intersects(w.Goal.Box) {
		out.GoalReached = true
	}
	return out
}

// resolvePlatforms applies one-sided landing: only a descending player
// overlapping a solid platform is snapped onto its top. Side and underside
// contact is ignored. The first landing zeroes Vel.Y, so no other platform
// resolves in the same tick.
func resolvePlatforms(p *Player, w *World, prm Params, out *Outcome) {
	for _, pl := range w.Platforms {
		if !pl.Solid() || p.Vel.Y <= 0 {
			continue
		}
		top := pl.Bounds()
		if !p.Bounds().Intersects(top) {
			continue
		}

		p.LandOn(top.Y)
		out.Landed = pl

		switch v := pl.(type) {
		case *Moving:
			p.Pos.X += v.Delta()
			p.clampHorizontal(prm.WorldW)
		case *Disappearing:
			v.Touch()
		}
	}
}
