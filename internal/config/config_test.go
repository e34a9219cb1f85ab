package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestParseLayersOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.8\nscoring:\n  token: 1000\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %v, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Scoring.Token != 1000 {
		t.Errorf("token = %d, expected 1000", cfg.Scoring.Token)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpForce != -16 {
		t.Errorf("jump_force = %v, expected default -16", cfg.Physics.JumpForce)
	}
	if cfg.World.Width != 1200 {
		t.Errorf("world.width = %v, expected default 1200", cfg.World.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"positive jump force", "physics:\n  jump_force: 5\n"},
		{"zero gravity", "physics:\n  gravity: 0\n"},
		{"air resistance above one", "physics:\n  air_resistance: 1.5\n"},
		{"zero world", "world:\n  width: 0\n"},
		{"zero tick", "entities:\n  tick_ms: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("physics: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  move_speed: 9\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.MoveSpeed != 9 {
		t.Errorf("move_speed = %v, expected 9", cfg.Physics.MoveSpeed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != Default() {
		t.Error("normal preset should not change the config")
	}

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Entities.DisappearMillis != 1500 {
		t.Errorf("easy disappear_ms = %d, expected 1500", easy.Entities.DisappearMillis)
	}
	if easy.Entities.SpeedScale != 0.75 {
		t.Errorf("easy speed_scale = %v, expected 0.75", easy.Entities.SpeedScale)
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Entities.DisappearMillis != 600 {
		t.Errorf("hard disappear_ms = %d, expected 600", hard.Entities.DisappearMillis)
	}
	if hard.Entities.SpeedScale <= 1 {
		t.Errorf("hard speed_scale = %v, expected > 1", hard.Entities.SpeedScale)
	}
}
