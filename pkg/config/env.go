// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed           = "ASTEROIDS_SEED"
	EnvHazardLimit    = "ASTEROIDS_HAZARD_LIMIT"
	EnvInitialHazards = "ASTEROIDS_INITIAL_HAZARDS"
	EnvLives          = "ASTEROIDS_LIVES"
	EnvScreenWidth    = "ASTEROIDS_SCREEN_WIDTH"
	EnvScreenHeight   = "ASTEROIDS_SCREEN_HEIGHT"
	EnvTickRate       = "ASTEROIDS_TICK_RATE"
	EnvAssets         = "ASTEROIDS_ASSETS"
)

// ApplyEnv overrides fields from ASTEROIDS_* environment variables.
// Unset variables leave the field alone.
func ApplyEnv(cfg *GameConfig) error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Simulation.Seed = seed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvHazardLimit, &cfg.Hazards.Limit},
		{EnvInitialHazards, &cfg.Hazards.Initial},
		{EnvLives, &cfg.Rules.Lives},
		{EnvTickRate, &cfg.Simulation.TickRate},
	}
	for _, f := range ints {
		v, ok := os.LookupEnv(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = n
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvScreenWidth, &cfg.Screen.Width},
		{EnvScreenHeight, &cfg.Screen.Height},
	}
	for _, f := range floats {
		v, ok := os.LookupEnv(f.key)
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v, ok := os.LookupEnv(EnvAssets); ok {
		cfg.Hazards.Assets = v
	}

	return nil
}
