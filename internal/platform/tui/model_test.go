package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-hopper/internal/config"
	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/game"
	"github.com/vovakirdan/star-hopper/internal/level"
)

func newTestModel(t *testing.T) (Model, *game.Controller) {
	t.Helper()
	ctrl, err := game.New(level.Classic(), config.Default())
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	return NewModel(ctrl, nil, core.DefaultConfig(), WithHoldTicks(4)), ctrl
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelStartsRunOnEnter(t *testing.T) {
	m, ctrl := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if ctrl.Mode() != game.ModeMenu {
		t.Fatal("keys only apply on the next tick")
	}

	m, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if ctrl.Mode() != game.ModePlaying {
		t.Fatalf("mode = %v, want playing", ctrl.Mode())
	}
	if m.State().Mode != "playing" {
		t.Errorf("State().Mode = %q, want playing", m.State().Mode)
	}
}

func TestModelHeldMovement(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})

	startX := ctrl.Session().Player().Pos.X
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 4; i++ {
		m, _ = send(t, m, TickMsg{})
	}
	if x := ctrl.Session().Player().Pos.X; x <= startX {
		t.Errorf("x = %v, want > %v while right is held", x, startX)
	}

	// The hold window has passed
	m, _ = send(t, m, TickMsg{})
	if ctrl.Session().Player().MovingRight {
		t.Error("right intent should be released after the hold window")
	}
	_ = m
}

func TestModelLevelPick(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = send(t, m, runeKey('l'))
	m, _ = send(t, m, TickMsg{})
	if ctrl.Mode() != game.ModeLevelSelect {
		t.Fatalf("mode = %v, want level select", ctrl.Mode())
	}

	m, _ = send(t, m, runeKey('3'))
	_, _ = send(t, m, TickMsg{})
	if ctrl.Mode() != game.ModePlaying || ctrl.Session().Current() != 2 {
		t.Errorf("mode=%v level=%d, want playing level 2", ctrl.Mode(), ctrl.Session().Current())
	}
}

func TestModelQuitAbortsRun(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, TickMsg{})

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false")
	}
	if ctrl.Mode() != game.ModeMenu {
		t.Errorf("mode = %v, want menu after aborting", ctrl.Mode())
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	if !strings.Contains(view, "S T A R") {
		t.Errorf("menu view missing title:\n%s", view)
	}
	if got := strings.Count(view, "\n") + 1; got != 30 {
		t.Errorf("view has %d lines, want 30", got)
	}
}
