package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != DefaultIcedConfig() {
		t.Errorf("embedded YAML and DefaultIcedConfig differ:\n yaml:    %+v\n builtin: %+v", cfg, DefaultIcedConfig())
	}
}

func TestDefaultPhysicsValues(t *testing.T) {
	p := DefaultIcedConfig().Physics

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"gravity", p.Gravity, 1200},
		{"jump force", p.JumpForce, -700},
		{"move accel", p.MoveAccel, 800},
		{"air accel", p.AirAccel, 600},
		{"ice friction", p.IceFriction, 120},
		{"max speed", p.MaxSpeed, 250},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  max_speed: 300\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Physics.MaxSpeed != 300 {
		t.Errorf("MaxSpeed = %v, expected 300", cfg.Physics.MaxSpeed)
	}
	if cfg.Physics.Gravity != 1200 {
		t.Errorf("Gravity should keep its default, got %v", cfg.Physics.Gravity)
	}
	if cfg.Player.Width != 30 {
		t.Errorf("Player width should keep its default, got %v", cfg.Player.Width)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero width", "player:\n  width: 0\n", "player.width"},
		{"upward gravity", "physics:\n  gravity: -5\n", "physics.gravity"},
		{"downward jump", "physics:\n  jump_force: 700\n", "physics.jump_force"},
		{"no tick rate", "frontend:\n  tick_rate: 0\n", "frontend.tick_rate"},
		{"broken yaml", "physics: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.wantErr != "" && !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultIcedConfig()
	cfg.World.Width = 0
	cfg.World.Height = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, field := range []string{"world.width", "world.height"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should mention %s", err, field)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iced.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 1024\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.World.Width != 1024 {
		t.Errorf("World width = %v, expected 1024", cfg.World.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultIcedConfig())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "ice_friction: 120") {
		t.Errorf("marshaled YAML should use yaml tags, got:\n%s", data)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error: %v", err)
	}
	if cfg != DefaultIcedConfig() {
		t.Error("marshaled config should parse back to the same values")
	}
}
