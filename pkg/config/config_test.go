package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"screen_width", config.Screen.Width, 1280.0},
		{"screen_height", config.Screen.Height, 720.0},
		{"tick_rate", config.Simulation.TickRate, 60},
		{"hazard_limit", config.Hazards.Limit, 26},
		{"initial_hazards", config.Hazards.Initial, 20},
		{"lives", config.Rules.Lives, 3},
		{"score_per_tier", config.Rules.ScorePerTier, 100},
		{"rarity", config.Hazards.Rarity, 85.0},
		{"craft_max_speed", config.Craft.MaxSpeed, 500.0},
		{"projectile_boost", config.Projectile.Boost, 200.0},
		{"projectile_radius", config.Projectile.Radius, 5.0},
		{"dilation_slow", config.Simulation.DilationSlow, 0.1},
		{"dilation_fast", config.Simulation.DilationFast, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}

	if err := config.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestGameConfig_Derived(t *testing.T) {
	config := DefaultConfig()

	if d := config.TickDuration(); d != 1.0/60 {
		t.Errorf("TickDuration() = %v, want 1/60", d)
	}
	if b := config.Bounds(); b.Width != 1280 || b.Height != 720 {
		t.Errorf("Bounds() = %+v", b)
	}
	if s := config.SpawnSettings(); s.Scale != 40 || s.SpawnUnit != 60 || s.SpeedBase != 50 {
		t.Errorf("SpawnSettings() = %+v", s)
	}
	if c := config.CraftStats(); c.TurnRate != 4 || c.Acceleration != 150 || c.Size != 20 {
		t.Errorf("CraftStats() = %+v", c)
	}
}

func TestLoadConfig_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "game.json",
			content: `{"hazards": {"limit": 40}, "rules": {"lives": 5}}`,
		},
		{
			name:    "toml",
			file:    "game.toml",
			content: "[hazards]\nlimit = 40\n\n[rules]\nlives = 5\n",
		},
		{
			name:    "yaml",
			file:    "game.yaml",
			content: "hazards:\n  limit: 40\nrules:\n  lives: 5\n",
		},
		{
			name:    "yml",
			file:    "game.yml",
			content: "hazards:\n  limit: 40\nrules:\n  lives: 5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			config, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if config.Hazards.Limit != 40 || config.Rules.Lives != 5 {
				t.Errorf("overrides not applied: limit=%d lives=%d", config.Hazards.Limit, config.Rules.Lives)
			}
			// Fields absent from the file keep their defaults.
			if config.Hazards.Initial != 20 || config.Screen.Width != 1280 {
				t.Errorf("defaults lost: initial=%d width=%v", config.Hazards.Initial, config.Screen.Width)
			}
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	ini := filepath.Join(dir, "game.ini")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ini, []byte("x=1"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{bad, ini, filepath.Join(dir, "missing.toml")} {
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("LoadConfig(%s) expected error", filepath.Base(path))
		}
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".toml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game"+ext)

			config := DefaultConfig()
			config.Hazards.Limit = 12
			config.Hazards.Assets = "assets/asteroids"
			if err := SaveConfig(config, path); err != nil {
				t.Fatalf("SaveConfig() error = %v", err)
			}

			loaded, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if *loaded != *config {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, config)
			}
		})
	}

	if err := SaveConfig(DefaultConfig(), filepath.Join(t.TempDir(), "game.xml")); err == nil {
		t.Error("SaveConfig(.xml) expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero_width", func(c *GameConfig) { c.Screen.Width = 0 }},
		{"zero_tick_rate", func(c *GameConfig) { c.Simulation.TickRate = 0 }},
		{"zero_limit", func(c *GameConfig) { c.Hazards.Limit = 0 }},
		{"rarity_over_100", func(c *GameConfig) { c.Hazards.Rarity = 101 }},
		{"rarity_zero", func(c *GameConfig) { c.Hazards.Rarity = 0 }},
		{"empty_turn_range", func(c *GameConfig) { c.Hazards.TurnRateMin = 1.5 }},
		{"inverted_multiplier", func(c *GameConfig) { c.Hazards.MultiplierMin = 2 }},
		{"no_lives", func(c *GameConfig) { c.Rules.Lives = 0 }},
		{"infinite_fast_dilation", func(c *GameConfig) { c.Simulation.DilationFast = math.Inf(1) }},
		{"infinite_width", func(c *GameConfig) { c.Screen.Width = math.Inf(1) }},
		{"nan_rarity", func(c *GameConfig) { c.Hazards.Rarity = math.NaN() }},
		{"negative_infinite_boost", func(c *GameConfig) { c.Projectile.Boost = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate_RejectsInfiniteTOMLValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("[simulation]\ndilation_fast = inf\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !math.IsInf(config.Simulation.DilationFast, 1) {
		t.Fatalf("DilationFast = %v, want +Inf from the file", config.Simulation.DilationFast)
	}
	if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}
