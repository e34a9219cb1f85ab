package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/star-hopper/internal/level"
	"github.com/vovakirdan/star-hopper/internal/registry"
)

func resetFlags(t *testing.T) {
	t.Helper()
	flagSet, flagDifficulty, flagConfig, loadedDirSet = "", "", "", ""
	t.Cleanup(func() {
		flagSet, flagDifficulty, flagConfig, loadedDirSet = "", "", "", ""
	})
}

func TestSelectedSetDefault(t *testing.T) {
	resetFlags(t)

	set, err := selectedSet()
	if err != nil {
		t.Fatalf("selectedSet() failed: %v", err)
	}
	if set.ID != registry.DefaultSet {
		t.Errorf("set = %q, want %q", set.ID, registry.DefaultSet)
	}
}

func TestSelectedSetUnknown(t *testing.T) {
	resetFlags(t)
	flagSet = "no-such-set"

	if _, err := selectedSet(); err == nil {
		t.Error("expected an error for an unknown set")
	}
}

func TestRegisterLevelsDir(t *testing.T) {
	resetFlags(t)

	dir := filepath.Join(t.TempDir(), "pack-one")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, def := range level.Classic().Levels[:2] {
		data, err := level.MarshalYAML(def)
		if err != nil {
			t.Fatalf("MarshalYAML() failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, def.ID+".yaml"), data, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	if err := registerLevelsDir(dir); err != nil {
		t.Fatalf("registerLevelsDir() failed: %v", err)
	}

	set, err := selectedSet()
	if err != nil {
		t.Fatalf("selectedSet() failed: %v", err)
	}
	if set.ID != "pack-one" || set.Len() != 2 {
		t.Errorf("set = %q with %d levels, want pack-one with 2", set.ID, set.Len())
	}

	// Registering the same directory again clashes
	if err := registerLevelsDir(dir); err == nil {
		t.Error("expected a clash registering the same set twice")
	}
}

func TestLoadGameConfigDifficulty(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())

	normal, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}

	flagDifficulty = "hard"
	hard, err := loadGameConfig()
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if hard.Entities.SpeedScale <= normal.Entities.SpeedScale {
		t.Errorf("hard speed scale %v, want above %v", hard.Entities.SpeedScale, normal.Entities.SpeedScale)
	}

	flagDifficulty = "impossible"
	if _, err := loadGameConfig(); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestPlayLevelOutOfRangeReturnsError(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	logPath := filepath.Join(t.TempDir(), "debug.log")
	flagLogFile, flagLevel = logPath, 99
	t.Cleanup(func() { flagLogFile, flagLevel = "", 0 })

	err := runPlay(playCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("runPlay() error = %v, want level out of range", err)
	}
	if _, statErr := os.Stat(logPath); statErr != nil {
		t.Errorf("log file not created: %v", statErr)
	}
}

func TestScoresUnknownSetReturnsError(t *testing.T) {
	resetFlags(t)
	flagDBPath = filepath.Join(t.TempDir(), "runs.db")
	t.Cleanup(func() { flagDBPath = "" })

	err := runScores(scoresCmd, []string{"no-such-set"})
	if !errors.Is(err, registry.ErrUnknownSet) {
		t.Errorf("runScores() error = %v, want ErrUnknownSet", err)
	}
}
