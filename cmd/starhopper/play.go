package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/game"
	"github.com/vovakirdan/star-hopper/internal/platform/tui"
	"github.com/vovakirdan/star-hopper/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level set",
	Long: `Start Star Hopper on the selected level set.

Controls:
  Left/Right, A/D   - Move
  Space, Up, W      - Jump (again in mid-air for a double jump)
  Enter             - Start / confirm
  L                 - Level select (from the menu)
  1-9               - Pick a level in the selector
  P                 - Pause / resume
  R                 - Restart the level
  Esc               - Back to the menu
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower platforms, disappearing platforms last longer
  normal - Default tuning
  hard   - Faster platforms, disappearing platforms vanish sooner

Examples:
  starhopper play
  starhopper play --level 4
  starhopper play --difficulty hard
  starhopper play --config ./my-physics.yaml --log-file debug.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (1-based)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	set, err := selectedSet()
	if err != nil {
		return fmt.Errorf("%w\nRun 'starhopper levels' to see available sets", err)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := openLogFile()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctrl, err := game.New(set, cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	if flagLevel != 0 {
		ctrl.OpenLevelSelect()
		if !ctrl.SelectLevel(flagLevel - 1) {
			return fmt.Errorf("level %d out of range (set %q has %d levels)", flagLevel, set.ID, set.Len())
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open the run log
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(ctrl, store, rt,
		tui.WithHoldTicks(cfg.Input.HoldTicks),
		tui.WithLogger(logger),
	); err != nil {
		if logger != nil {
			logger.Error("game stopped", "error", err)
		}
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
