package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation
type Config struct {
	Width               uint32        `json:"width" env:"GOL_WIDTH"`
	Height              uint32        `json:"height" env:"GOL_HEIGHT"`
	FrameRate           time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	MaxGenerations      int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	UpdateMode          string        `json:"update_mode" env:"GOL_UPDATE_MODE"`
	Seed                string        `json:"seed" env:"GOL_SEED"`
	RandomDensity       float64       `json:"random_density" env:"GOL_RANDOM_DENSITY"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"GOL_STAGNATION_THRESHOLD"`
	AutoRestart         bool          `json:"auto_restart" env:"GOL_AUTO_RESTART"`
	UseMemoryPool       bool          `json:"use_memory_pool" env:"GOL_USE_MEMORY_POOL"`
	Debug               bool          `json:"debug" env:"GOL_DEBUG"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               128,
		Height:              64,
		FrameRate:           50 * time.Millisecond,
		MaxGenerations:      500,
		UpdateMode:          "synchronous",
		Seed:                "alternating",
		RandomDensity:       0.15,
		StagnationThreshold: 5,
		AutoRestart:         false,
		UseMemoryPool:       true,
		Debug:               false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides config fields with any GOL_* environment variables that are set
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with.
// Mode and seed names are checked by the model parsers.
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return errors.Errorf("[Validate] board dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	if c.StagnationThreshold < 0 {
		return errors.Errorf("[Validate] stagnation threshold must not be negative, got %d", c.StagnationThreshold)
	}
	return nil
}
