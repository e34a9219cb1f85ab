package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/star-hopper/internal/config"
	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/level"
	"github.com/vovakirdan/star-hopper/internal/session"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newController(t *testing.T, set level.Set) *Controller {
	t.Helper()
	clk := &stepClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c, err := New(set, config.Default(), WithSessionOptions(session.WithClock(clk.Now)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func ground() level.PlatformSpec {
	return level.PlatformSpec{X: 0, Y: 750, Width: 1200}
}

// spawnGoalSet has one level whose open goal covers the spawn point.
func spawnGoalSet() level.Set {
	return level.Set{ID: "short", Levels: []level.Definition{{
		ID:        "only",
		Name:      "Only",
		Platforms: []level.PlatformSpec{ground()},
		Goal:      &level.Point{X: 40, Y: 680},
	}}}
}

func kinds(events []core.Event) []core.EventKind {
	out := make([]core.EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestStartsInMenu(t *testing.T) {
	c := newController(t, level.Classic())
	if c.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", c.Mode())
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		actions func(c *Controller)
		want    Mode
	}{
		{"start", func(c *Controller) { c.Start() }, ModePlaying},
		{"open selector", func(c *Controller) { c.OpenLevelSelect() }, ModeLevelSelect},
		{"cancel selector", func(c *Controller) { c.OpenLevelSelect(); c.Back() }, ModeMenu},
		{"pick level", func(c *Controller) { c.OpenLevelSelect(); c.SelectLevel(2) }, ModePlaying},
		{"pause", func(c *Controller) { c.Start(); c.Pause() }, ModePaused},
		{"resume", func(c *Controller) { c.Start(); c.Pause(); c.Resume() }, ModePlaying},
		{"no abort from pause", func(c *Controller) { c.Start(); c.Pause(); c.Back() }, ModePaused},
		{"abort run", func(c *Controller) { c.Start(); c.Back() }, ModeMenu},
		{"pause ignored in menu", func(c *Controller) { c.Pause() }, ModeMenu},
		{"select ignored in menu", func(c *Controller) { c.SelectLevel(1) }, ModeMenu},
		{"start ignored while playing", func(c *Controller) { c.Start(); c.Start() }, ModePlaying},
		{"confirm starts", func(c *Controller) { c.Confirm() }, ModePlaying},
		{"confirm picks cursor", func(c *Controller) { c.OpenLevelSelect(); c.MoveCursor(1); c.Confirm() }, ModePlaying},
		{"confirm resumes", func(c *Controller) { c.Start(); c.Pause(); c.Confirm() }, ModePlaying},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newController(t, level.Classic())
			tc.actions(c)
			if c.Mode() != tc.want {
				t.Errorf("Mode() = %v, expected %v", c.Mode(), tc.want)
			}
		})
	}
}

func TestSelectLevelRejectsOutOfRange(t *testing.T) {
	c := newController(t, level.Classic())
	c.OpenLevelSelect()

	for _, idx := range []int{-1, 8, 42} {
		if c.SelectLevel(idx) {
			t.Errorf("SelectLevel(%d) accepted", idx)
		}
	}
	if c.Mode() != ModeLevelSelect {
		t.Errorf("Mode() = %v, expected to stay in level select", c.Mode())
	}

	if !c.SelectLevel(5) {
		t.Fatal("SelectLevel(5) rejected")
	}
	if c.Session().Current() != 5 {
		t.Errorf("Current() = %d, expected 5", c.Session().Current())
	}
}

func TestCursorWraps(t *testing.T) {
	c := newController(t, level.Classic())
	c.OpenLevelSelect()
	c.MoveCursor(-1)
	if c.Cursor() != 7 {
		t.Errorf("Cursor() = %d, expected 7", c.Cursor())
	}
	c.MoveCursor(2)
	if c.Cursor() != 1 {
		t.Errorf("Cursor() = %d, expected 1", c.Cursor())
	}
}

func TestAbortResetsRun(t *testing.T) {
	c := newController(t, level.Classic())
	c.OpenLevelSelect()
	c.SelectLevel(4)
	c.MoveRight(true)

	c.Back()

	if c.Session().Current() != 0 {
		t.Errorf("Current() = %d, expected 0 after abort", c.Session().Current())
	}
	if _, ok := c.Session().RunElapsed(); ok {
		t.Error("full-run timer should be cleared on abort")
	}
	if c.Session().Player().MovingRight {
		t.Error("movement should be released on abort")
	}
	ev := c.Events()
	if len(ev) != 1 || ev[0].Kind != core.EventRunEnded || ev[0].Level != 4 || ev[0].Finished {
		t.Errorf("events = %+v, expected one unfinished run_ended at level 4", ev)
	}
}

func TestOnlyPlayingSimulates(t *testing.T) {
	c := newController(t, level.Classic())
	c.Start()
	c.Pause()

	before := c.Snapshot()
	for i := 0; i < 30; i++ {
		c.Tick()
	}
	after := c.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("paused controller changed the world")
	}

	c.Resume()
	c.Tick()
	if got := c.Snapshot(); got.Hash() == after.Hash() {
		t.Error("playing controller did not advance")
	}
}

func TestMovementIgnoredOutsidePlay(t *testing.T) {
	c := newController(t, level.Classic())
	c.MoveLeft(true)
	c.Jump()
	if c.Session().Player().MovingLeft || c.Session().LevelStarted() {
		t.Error("intents in the menu should not reach the session")
	}
}

func TestStepInputMapping(t *testing.T) {
	c := newController(t, level.Classic())

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := c.Step(in)
	if res.State.Mode != "playing" {
		t.Fatalf("Mode = %q, expected playing", res.State.Mode)
	}

	x0 := c.Session().Player().Pos.X
	in = core.NewInputFrame()
	in.SetHeld(core.ActionRight, true)
	for i := 0; i < 10; i++ {
		c.Step(in)
	}
	if c.Session().Player().Pos.X <= x0 {
		t.Error("holding right should move the player right")
	}
	if !c.Session().LevelStarted() {
		t.Error("movement should start the level timer")
	}

	// Released: friction takes over
	c.Step(core.NewInputFrame())
	if c.Session().Player().MovingRight {
		t.Error("empty frame should release movement")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	if res := c.Step(in); !res.State.Paused {
		t.Error("pause action should pause")
	}
}

func TestStepLevelSelectPick(t *testing.T) {
	c := newController(t, level.Classic())

	in := core.NewInputFrame()
	in.Set(core.ActionLevelSelect)
	c.Step(in)

	in = core.NewInputFrame()
	in.SelectLevel(3)
	res := c.Step(in)

	if res.State.Mode != "playing" || res.State.Level != 3 {
		t.Errorf("state = %+v, expected playing level 3", res.State)
	}
}

func TestFinishingLastLevelCompletes(t *testing.T) {
	c := newController(t, spawnGoalSet())
	c.Start()
	c.MoveRight(true)

	c.Tick()

	if c.Mode() != ModeComplete {
		t.Fatalf("Mode() = %v, expected complete", c.Mode())
	}
	events := c.Events()
	if n := len(events); n == 0 || !events[n-1].Finished {
		t.Errorf("last event = %+v, expected a finished run_ended", events)
	}
	got := kinds(events)
	want := []core.EventKind{core.EventLevelComplete, core.EventFullRun, core.EventRunEnded}
	if len(got) != len(want) {
		t.Fatalf("events = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, expected %v", i, got[i], want[i])
		}
	}

	run := c.LastRun()
	if run == nil || run.FullRun == nil || !run.FullRun.NewBest {
		t.Errorf("LastRun() = %+v, expected a new best full run", run)
	}
	if _, ok := c.Session().Stats().Best(0); !ok {
		t.Error("completion should be recorded")
	}

	c.Confirm()
	if c.Mode() != ModeMenu || c.LastRun() != nil {
		t.Errorf("Confirm on completion: mode=%v lastRun=%v", c.Mode(), c.LastRun())
	}
}

func TestUntimedCompletionEmitsNoLevelEvent(t *testing.T) {
	c := newController(t, spawnGoalSet())
	c.Start()

	c.Tick() // No input yet: completion is untimed

	got := kinds(c.Events())
	if len(got) != 1 || got[0] != core.EventRunEnded {
		t.Errorf("events = %v, expected only run_ended", got)
	}
}

func TestDeathEvent(t *testing.T) {
	set := level.Set{ID: "spiky", Levels: []level.Definition{{
		ID:        "spike",
		Platforms: []level.PlatformSpec{ground()},
		Spikes:    []level.Point{{X: 55, Y: 730}},
		Goal:      &level.Point{X: 1100, Y: 700},
	}}}
	c := newController(t, set)
	c.Start()

	// The spike overlaps the spawn point
	var deaths []core.Event
	for i := 0; i < 120 && len(deaths) == 0; i++ {
		for _, ev := range c.Step(core.NewInputFrame()).Events {
			if ev.Kind == core.EventDeath {
				deaths = append(deaths, ev)
			}
		}
	}
	if len(deaths) != 1 || deaths[0].Deaths != 1 {
		t.Fatalf("deaths = %+v, expected one death event", deaths)
	}
	if c.State().Deaths != 1 || c.Mode() != ModePlaying {
		t.Errorf("state = %+v, expected still playing with 1 death", c.State())
	}
}

func TestTokenSpawnsParticles(t *testing.T) {
	set := level.Set{ID: "shiny", Levels: []level.Definition{{
		ID:              "token",
		Platforms:       []level.PlatformSpec{ground()},
		ChallengeTokens: []level.Point{{X: 55, Y: 710}},
		Coins:           []level.Point{{X: 900, Y: 700}},
		Goal:            &level.Point{X: 1100, Y: 700},
	}}}
	c := newController(t, set)
	c.Start()
	c.Tick()

	snap := c.Snapshot()
	if len(snap.Particles) != burstSize {
		t.Fatalf("particles = %d, expected %d", len(snap.Particles), burstSize)
	}
	if snap.Score != config.Default().Scoring.Token {
		t.Errorf("Score = %d, expected token value", snap.Score)
	}

	for i := 0; i < particleLife; i++ {
		c.Tick()
	}
	if n := len(c.Snapshot().Particles); n != 0 {
		t.Errorf("particles = %d after their lifetime, expected 0", n)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%40 < 25:
			inputs[i].SetHeld(core.ActionRight, true)
		case i%40 < 30:
			inputs[i].SetHeld(core.ActionLeft, true)
		}
		if i%33 == 5 || i%33 == 15 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() uint64 {
		c := newController(t, level.Classic())
		for _, in := range inputs {
			c.Step(in)
		}
		snap := c.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("determinism failed: %d != %d", a, b)
	}
}

func TestRender(t *testing.T) {
	c := newController(t, level.Classic())
	scr := core.NewScreen(80, 24)

	c.Render(scr)
	if !strings.Contains(scr.String(), "S T A R") {
		t.Error("menu should show the title")
	}

	c.OpenLevelSelect()
	c.Render(scr)
	if !strings.Contains(scr.String(), "Tutorial") || !strings.Contains(scr.String(), "> 1.") {
		t.Error("level select should list levels with a cursor")
	}

	c.SelectLevel(0)
	c.Tick()
	c.Render(scr)
	if !strings.HasPrefix(strings.TrimSpace(scr.Row(0)), "Lv 1/8") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.ContainsRune(scr.String(), glyphPlayer) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(scr.String(), glyphCoin) {
		t.Error("coins not drawn")
	}

	c.Pause()
	c.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause box missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	c := newController(t, level.Classic())
	scr := core.NewScreen(20, 6)
	c.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Error("expected a too-small message")
	}
}
