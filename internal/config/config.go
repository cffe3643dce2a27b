package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxLevel is the level cap used when the config does not set one.
	DefaultMaxLevel = 100

	// MaxLevelCeiling is the highest level cap any configuration may set.
	MaxLevelCeiling = 255
)

// Config holds growth rate tool settings.
// Values come from the YAML file first, then GROWTHRATE_* environment variables.
type Config struct {
	LogLevel string `yaml:"log_level" env:"GROWTHRATE_LOG_LEVEL"` // debug, info, warn, error
	MaxLevel int    `yaml:"max_level" env:"GROWTHRATE_MAX_LEVEL"`
	Locale   string `yaml:"locale" env:"GROWTHRATE_LOCALE"` // BCP 47 tag, e.g. en-US
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		MaxLevel: DefaultMaxLevel,
		Locale:   "en-US",
	}
}

// Load loads config from a YAML file and applies environment overrides.
// If the file doesn't exist, defaults are used as the base.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := checkMaxLevel(c.MaxLevel); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.Locale == "" {
		return fmt.Errorf("locale must not be empty")
	}
	return nil
}

func checkMaxLevel(level int) error {
	if level < 1 || level > MaxLevelCeiling {
		return fmt.Errorf("max_level %d: must be in [1, %d]", level, MaxLevelCeiling)
	}
	return nil
}
