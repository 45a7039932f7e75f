package game

import (
	"os"
	"strconv"

	"github.com/samdwyer/isoworld/internal/world"
)

// DefaultBaseSpeed is the player's speed in tiles per second on grass.
const DefaultBaseSpeed = 4.0

// Config holds game configuration options.
type Config struct {
	// Seed for terrain generation. A seed of 0 means derive one from
	// the clock at startup.
	Seed int64

	Width  int
	Height int
	Params world.GenerationParams

	BaseSpeed float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
		Params:    world.DefaultParams(),
		BaseSpeed: DefaultBaseSpeed,
	}
}

// ConfigFromEnv builds a config from ISOWORLD_* environment variables,
// falling back to defaults for anything unset or unparseable. main loads
// a .env file first, so these can come from either place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Seed = envInt64("ISOWORLD_SEED", cfg.Seed)
	cfg.Width = envInt("ISOWORLD_WIDTH", cfg.Width)
	cfg.Height = envInt("ISOWORLD_HEIGHT", cfg.Height)
	cfg.Params.WaterFraction = envFloat("ISOWORLD_WATER_FRACTION", cfg.Params.WaterFraction)
	cfg.Params.SwampFraction = envFloat("ISOWORLD_SWAMP_FRACTION", cfg.Params.SwampFraction)
	cfg.Params.NoiseFraction = envFloat("ISOWORLD_NOISE_FRACTION", cfg.Params.NoiseFraction)
	cfg.Params.SmoothingPasses = envInt("ISOWORLD_SMOOTHING_PASSES", cfg.Params.SmoothingPasses)
	cfg.BaseSpeed = envFloat("ISOWORLD_BASE_SPEED", cfg.BaseSpeed)
	return cfg
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}
