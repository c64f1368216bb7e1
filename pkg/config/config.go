// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/spawn"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig contains every tunable of an asteroids run
type GameConfig struct {
	Screen     ScreenConfig     `json:"screen" toml:"screen" yaml:"screen"`
	Simulation SimulationConfig `json:"simulation" toml:"simulation" yaml:"simulation"`
	Hazards    HazardConfig     `json:"hazards" toml:"hazards" yaml:"hazards"`
	Craft      CraftConfig      `json:"craft" toml:"craft" yaml:"craft"`
	Projectile ProjectileConfig `json:"projectile" toml:"projectile" yaml:"projectile"`
	Rules      RulesConfig      `json:"rules" toml:"rules" yaml:"rules"`
	Logging    LoggingConfig    `json:"logging" toml:"logging" yaml:"logging"`
}

// ScreenConfig contains the playfield size
type ScreenConfig struct {
	Width      float64 `json:"width" toml:"width" yaml:"width"`
	Height     float64 `json:"height" toml:"height" yaml:"height"`
	Fullscreen bool    `json:"fullscreen" toml:"fullscreen" yaml:"fullscreen"`
}

// SimulationConfig contains loop timing
type SimulationConfig struct {
	TickRate        int     `json:"tickRate" toml:"tick_rate" yaml:"tick_rate"` // fixed ticks per second
	MaxCatchUpTicks int     `json:"maxCatchUpTicks" toml:"max_catch_up_ticks" yaml:"max_catch_up_ticks"`
	Seed            uint64  `json:"seed" toml:"seed" yaml:"seed"` // 0 = seeded from the clock
	DilationSlow    float64 `json:"dilationSlow" toml:"dilation_slow" yaml:"dilation_slow"`
	DilationFast    float64 `json:"dilationFast" toml:"dilation_fast" yaml:"dilation_fast"`
}

// HazardConfig contains hazard population and generation settings
type HazardConfig struct {
	Limit         int     `json:"limit" toml:"limit" yaml:"limit"`
	Initial       int     `json:"initial" toml:"initial" yaml:"initial"`
	Scale         float64 `json:"scale" toml:"scale" yaml:"scale"`
	SpawnUnit     float64 `json:"spawnUnit" toml:"spawn_unit" yaml:"spawn_unit"`
	SpeedBase     float64 `json:"speedBase" toml:"speed_base" yaml:"speed_base"`
	MultiplierMin float64 `json:"multiplierMin" toml:"multiplier_min" yaml:"multiplier_min"`
	MultiplierMax float64 `json:"multiplierMax" toml:"multiplier_max" yaml:"multiplier_max"`
	TurnRateMin   float64 `json:"turnRateMin" toml:"turn_rate_min" yaml:"turn_rate_min"`
	TurnRateMax   float64 `json:"turnRateMax" toml:"turn_rate_max" yaml:"turn_rate_max"`
	Rarity        float64 `json:"rarity" toml:"rarity" yaml:"rarity"`
	Assets        string  `json:"assets" toml:"assets" yaml:"assets"` // directory or YAML manifest
}

// CraftConfig contains the player craft handling
type CraftConfig struct {
	MaxSpeed       float64 `json:"maxSpeed" toml:"max_speed" yaml:"max_speed"`
	TurnRate       float64 `json:"turnRate" toml:"turn_rate" yaml:"turn_rate"`
	Acceleration   float64 `json:"acceleration" toml:"acceleration" yaml:"acceleration"`
	OpposingFactor float64 `json:"opposingFactor" toml:"opposing_factor" yaml:"opposing_factor"`
	Size           float64 `json:"size" toml:"size" yaml:"size"`
}

// ProjectileConfig contains missile settings
type ProjectileConfig struct {
	Boost  float64 `json:"boost" toml:"boost" yaml:"boost"`
	Radius float64 `json:"radius" toml:"radius" yaml:"radius"`
}

// RulesConfig contains scoring and lives
type RulesConfig struct {
	Lives        int `json:"lives" toml:"lives" yaml:"lives"`
	ScorePerTier int `json:"scorePerTier" toml:"score_per_tier" yaml:"score_per_tier"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level  string `json:"level" toml:"level" yaml:"level"`
	Format string `json:"format" toml:"format" yaml:"format"` // "json" or "console"
	Output string `json:"output" toml:"output" yaml:"output"` // file path; empty for stderr
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	craft := entity.DefaultCraftStats()
	hazards := spawn.DefaultSettings()

	return &GameConfig{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Simulation: SimulationConfig{
			TickRate:        60,
			MaxCatchUpTicks: 240,
			DilationSlow:    0.1,
			DilationFast:    10,
		},
		Hazards: HazardConfig{
			Limit:         26,
			Initial:       20,
			Scale:         hazards.Scale,
			SpawnUnit:     hazards.SpawnUnit,
			SpeedBase:     hazards.SpeedBase,
			MultiplierMin: hazards.MultiplierMin,
			MultiplierMax: hazards.MultiplierMax,
			TurnRateMin:   hazards.TurnRateMin,
			TurnRateMax:   hazards.TurnRateMax,
			Rarity:        hazards.Rarity,
		},
		Craft: CraftConfig{
			MaxSpeed:       craft.MaxSpeed,
			TurnRate:       craft.TurnRate,
			Acceleration:   craft.Acceleration,
			OpposingFactor: craft.OpposingFactor,
			Size:           craft.Size,
		},
		Projectile: ProjectileConfig{
			Boost:  200,
			Radius: 5,
		},
		Rules: RulesConfig{
			Lives:        3,
			ScorePerTier: 100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads a configuration file over the defaults. The format is
// chosen by extension: .json, .toml, .yaml or .yml.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves a configuration to a file in the format implied by
// its extension
func SaveConfig(config *GameConfig, path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	case ".toml":
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(config)
		data = []byte(sb.String())
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// TickDuration returns the fixed tick length in seconds
func (c *GameConfig) TickDuration() float64 {
	return 1 / float64(c.Simulation.TickRate)
}

// Bounds returns the playfield rectangle
func (c *GameConfig) Bounds() physics.Bounds {
	return physics.Bounds{Width: c.Screen.Width, Height: c.Screen.Height}
}

// SpawnSettings returns the hazard generation tunables
func (c *GameConfig) SpawnSettings() spawn.Settings {
	h := c.Hazards
	return spawn.Settings{
		Scale:         h.Scale,
		SpawnUnit:     h.SpawnUnit,
		SpeedBase:     h.SpeedBase,
		MultiplierMin: h.MultiplierMin,
		MultiplierMax: h.MultiplierMax,
		TurnRateMin:   h.TurnRateMin,
		TurnRateMax:   h.TurnRateMax,
		Rarity:        h.Rarity,
	}
}

// CraftStats returns the craft handling values
func (c *GameConfig) CraftStats() entity.CraftStats {
	return entity.CraftStats{
		MaxSpeed:       c.Craft.MaxSpeed,
		TurnRate:       c.Craft.TurnRate,
		Acceleration:   c.Craft.Acceleration,
		OpposingFactor: c.Craft.OpposingFactor,
		Size:           c.Craft.Size,
	}
}

// Validate checks that the configuration can drive a run
func (c *GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	for _, f := range c.floatFields() {
		check(!math.IsNaN(f.value) && !math.IsInf(f.value, 0), "%s is not finite", f.name)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size %vx%v", c.Screen.Width, c.Screen.Height)
	check(c.Simulation.TickRate > 0, "tick rate %d", c.Simulation.TickRate)
	check(c.Simulation.MaxCatchUpTicks > 0, "max catch-up ticks %d", c.Simulation.MaxCatchUpTicks)
	check(c.Simulation.DilationSlow >= 0 && c.Simulation.DilationFast >= 0, "negative dilation preset")
	check(c.Hazards.Limit >= 1, "hazard limit %d", c.Hazards.Limit)
	check(c.Hazards.Initial >= 0, "initial hazards %d", c.Hazards.Initial)
	check(c.Hazards.Scale > 0, "hazard scale %v", c.Hazards.Scale)
	check(c.Hazards.SpawnUnit > 0, "spawn unit %v", c.Hazards.SpawnUnit)
	check(c.Hazards.MultiplierMin <= c.Hazards.MultiplierMax, "speed multiplier range [%v, %v]", c.Hazards.MultiplierMin, c.Hazards.MultiplierMax)
	check(c.Hazards.TurnRateMin < c.Hazards.TurnRateMax, "turn rate range [%v, %v)", c.Hazards.TurnRateMin, c.Hazards.TurnRateMax)
	check(c.Hazards.Rarity > 0 && c.Hazards.Rarity <= 100, "rarity %v", c.Hazards.Rarity)
	check(c.Craft.MaxSpeed > 0, "craft max speed %v", c.Craft.MaxSpeed)
	check(c.Craft.Size > 0, "craft size %v", c.Craft.Size)
	check(c.Projectile.Radius >= 0, "projectile radius %v", c.Projectile.Radius)
	check(c.Rules.Lives >= 1, "lives %d", c.Rules.Lives)

	return errors.Join(errs...)
}

type floatField struct {
	name  string
	value float64
}

func (c *GameConfig) floatFields() []floatField {
	return []floatField{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"simulation.dilation_slow", c.Simulation.DilationSlow},
		{"simulation.dilation_fast", c.Simulation.DilationFast},
		{"hazards.scale", c.Hazards.Scale},
		{"hazards.spawn_unit", c.Hazards.SpawnUnit},
		{"hazards.speed_base", c.Hazards.SpeedBase},
		{"hazards.multiplier_min", c.Hazards.MultiplierMin},
		{"hazards.multiplier_max", c.Hazards.MultiplierMax},
		{"hazards.turn_rate_min", c.Hazards.TurnRateMin},
		{"hazards.turn_rate_max", c.Hazards.TurnRateMax},
		{"hazards.rarity", c.Hazards.Rarity},
		{"craft.max_speed", c.Craft.MaxSpeed},
		{"craft.turn_rate", c.Craft.TurnRate},
		{"craft.acceleration", c.Craft.Acceleration},
		{"craft.opposing_factor", c.Craft.OpposingFactor},
		{"craft.size", c.Craft.Size},
		{"projectile.boost", c.Projectile.Boost},
		{"projectile.radius", c.Projectile.Radius},
	}
}
