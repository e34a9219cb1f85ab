package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-hopper/internal/config"
	"github.com/vovakirdan/star-hopper/internal/level"
	"github.com/vovakirdan/star-hopper/internal/registry"
)

// loadedDirSet is the ID of the set registered from --levels-dir.
var loadedDirSet string

// registerLevelsDir loads a level directory and registers it as a set.
// A broken level file stops the program with its diagnostic.
func registerLevelsDir(dir string) error {
	if dir == "" {
		return nil
	}
	set, err := level.LoadDir(dir)
	if err != nil {
		return err
	}
	if registry.Exists(set.ID) {
		return fmt.Errorf("level set %q from %s clashes with a registered set", set.ID, dir)
	}
	registry.Register(set.ID, func() level.Set { return set })
	loadedDirSet = set.ID
	return nil
}

// selectedSet resolves --set, falling back to the --levels-dir set and
// then the built-in default.
func selectedSet() (level.Set, error) {
	id := flagSet
	if id == "" {
		id = loadedDirSet
	}
	if id == "" {
		id = registry.DefaultSet
	}
	return registry.Get(id)
}

// loadGameConfig loads the physics config and applies --difficulty.
func loadGameConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openLogFile returns a debug logger writing logfmt to --log-file, or nil
// when no file was requested. The caller closes the returned file.
func openLogFile() (*log.Logger, *os.File, error) {
	if flagLogFile == "" {
		return nil, nil, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Formatter:       log.LogfmtFormatter,
		Prefix:          "starhopper",
	})
	return logger, f, nil
}
