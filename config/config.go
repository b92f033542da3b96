// Package config loads lavaworld settings from an optional file and from
// LAVAWORLD_* environment variables.
//
// Nothing is required: with no file and no environment the defaults below
// apply, so the plain `lavaworld < input` invocation needs no setup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lavaworld/generator"
	"github.com/katalvlaran/lavaworld/logger"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`       // debug, info, warn, error
	Encoding string `mapstructure:"encoding" yaml:"encoding"` // json or console
}

// GeneratorConfig holds defaults for the generate command.
type GeneratorConfig struct {
	Seed    int64 `mapstructure:"seed" yaml:"seed"`
	Islands int   `mapstructure:"islands" yaml:"islands"`
	Queries int   `mapstructure:"queries" yaml:"queries"`
	Bounds  int   `mapstructure:"bounds" yaml:"bounds"`
	MaxSide int   `mapstructure:"max_side" yaml:"max_side"`
}

// Config wraps the entire lavaworld configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v, err := newFileViper(filePath)
	if err != nil {
		return nil, err
	}

	return unmarshal(v)
}

// LoadLenient loads like Load but never fails on values: unusable log
// settings are reset to their defaults, an undecodable environment falls back
// to the defaults entirely, and the generator section is left for its
// consumer to validate. Each fallback yields one warning. Only an unreadable
// config file is an error.
func LoadLenient(filePath string) (*Config, []string, error) {
	v, err := newFileViper(filePath)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	cfg, err := decode(v)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("config ignored, using defaults: %v", err))
		cfg = &Config{}
		if err := newViper().Unmarshal(cfg); err != nil {
			return nil, nil, err
		}
	}
	if err := cfg.Log.Validate(); err != nil {
		warnings = append(warnings, fmt.Sprintf("%v, using level %q encoding %q", err, defaultLogLevel, defaultLogEncoding))
		cfg.Log = LogConfig{Level: defaultLogLevel, Encoding: defaultLogEncoding}
	}

	return cfg, warnings, nil
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	return unmarshal(newViper())
}

// newFileViper reads filePath into a defaults-seeded viper when the file
// exists. An empty path means environment only.
func newFileViper(filePath string) (*viper.Viper, error) {
	v := newViper()
	if filePath == "" {
		return v, nil
	}
	v.SetConfigFile(filePath)
	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", filePath, err)
		}
	}

	return v, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// decode binds the environment and unmarshals without validating.
func decode(v *viper.Viper) (*Config, error) {
	if err := bindEnvs(v); err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}

	return c.Generator.Validate()
}

// Validate checks the level name and the encoding.
func (l LogConfig) Validate() error {
	if _, err := logger.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, l.Level)
	}
	if l.Encoding != "json" && l.Encoding != "console" {
		return fmt.Errorf("%w: log.encoding %q (want json or console)", ErrInvalidConfig, l.Encoding)
	}

	return nil
}

// Validate checks counts and sizes against what the generator accepts.
func (g GeneratorConfig) Validate() error {
	if g.Islands < 0 || g.Queries < 0 || g.MaxSide < 0 || g.MaxSide > generator.MaxCoord ||
		g.Bounds < 1 || g.Bounds > generator.MaxCoord {
		return fmt.Errorf("%w: generator islands=%d queries=%d bounds=%d max_side=%d",
			ErrInvalidConfig, g.Islands, g.Queries, g.Bounds, g.MaxSide)
	}

	return nil
}

// Logger builds the runtime logger described by c.Log.
func (c *Config) Logger() (logger.Logger, error) {
	lvl, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	lc := logger.Config{Level: lvl, Encoding: c.Log.Encoding}

	return lc.New()
}

const (
	defaultLogLevel    = "info"
	defaultLogEncoding = "json"
)

var (
	defaults = map[string]any{
		"log.level":          defaultLogLevel,
		"log.encoding":       defaultLogEncoding,
		"generator.seed":     generator.DefaultSeed,
		"generator.islands":  generator.DefaultIslands,
		"generator.queries":  generator.DefaultQueries,
		"generator.bounds":   generator.DefaultBounds,
		"generator.max_side": generator.DefaultMaxSide,
	}

	// envBindings maps config keys to the environment variables that can set them.
	envBindings = map[string][]string{
		"log.level":          {"LAVAWORLD_LOG_LEVEL"},
		"log.encoding":       {"LAVAWORLD_LOG_ENCODING"},
		"generator.seed":     {"LAVAWORLD_GENERATOR_SEED"},
		"generator.islands":  {"LAVAWORLD_GENERATOR_ISLANDS"},
		"generator.queries":  {"LAVAWORLD_GENERATOR_QUERIES"},
		"generator.bounds":   {"LAVAWORLD_GENERATOR_BOUNDS"},
		"generator.max_side": {"LAVAWORLD_GENERATOR_MAX_SIDE"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the config key to the start of the arguments
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
