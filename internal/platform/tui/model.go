package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/game"
	"github.com/vovakirdan/star-hopper/internal/storage"
)

// DefaultHoldTicks is the hold window used when none is configured.
const DefaultHoldTicks = 8

// Model is the Bubble Tea model for one Star Hopper session.
type Model struct {
	ctrl       *game.Controller
	screen     *core.Screen
	renderer   *ScreenRenderer
	recorder   *EventRecorder
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	hold       *HoldTracker
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*modelOptions)

type modelOptions struct {
	player    string
	holdTicks int
	logger    *log.Logger
	renderer  *ScreenRenderer
}

// WithPlayer sets the name recorded in the run log.
func WithPlayer(name string) ModelOption {
	return func(o *modelOptions) { o.player = name }
}

// WithHoldTicks sets how long a movement key stays held after a press.
func WithHoldTicks(n int) ModelOption {
	return func(o *modelOptions) { o.holdTicks = n }
}

// WithLogger sets the logger for recorded events.
func WithLogger(l *log.Logger) ModelOption {
	return func(o *modelOptions) { o.logger = l }
}

// WithRenderer sets the screen renderer, e.g. one bound to an SSH session.
func WithRenderer(r *ScreenRenderer) ModelOption {
	return func(o *modelOptions) { o.renderer = r }
}

// NewModel creates a new Bubble Tea model around a controller.
func NewModel(ctrl *game.Controller, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	o := modelOptions{holdTicks: DefaultHoldTicks}
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = defaultRenderer
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	setID := ctrl.Session().Set().ID
	return Model{
		ctrl:       ctrl,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   o.renderer,
		recorder:   NewEventRecorder(store, setID, o.player, o.logger),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		hold:       NewHoldTracker(o.holdTicks),
		keyMapper:  NewKeyMapper(),
		gameState:  ctrl.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.hold) {
		// Log the abandoned run before leaving
		if mode := m.ctrl.Mode(); mode == game.ModePlaying || mode == game.ModePaused {
			m.ctrl.Resume()
			m.ctrl.Back()
			m.recorder.Record(m.ctrl.Events())
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Pausing or leaving play drops any emulated hold
	if m.inputFrame.Has(core.ActionPause) || m.inputFrame.Has(core.ActionBack) {
		m.hold.Release()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)

	result := m.ctrl.Step(m.inputFrame)
	m.gameState = result.State
	m.recorder.Record(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.ctrl.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".starhopper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("level%02d_%s.txt", m.gameState.Level+1, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// State returns the last state reported by the controller.
func (m Model) State() core.GameState { return m.gameState }

// IsQuitting returns true once the user asked to quit.
func (m Model) IsQuitting() bool { return m.quitting }

// Run starts the Bubble Tea program with the given controller.
func Run(ctrl *game.Controller, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(ctrl, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
