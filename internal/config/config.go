// Package config loads betafn settings from defaults, an optional YAML file
// and BETAFN_* environment variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ieee0824/betafn-go/internal/logging"
	"github.com/ieee0824/betafn-go/special"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "betafn"

// Config holds all betafn configuration.
type Config struct {
	Eval    EvalConfig `yaml:"eval"`
	Log     LogConfig  `yaml:"log"`
	Workers int        `yaml:"workers" envconfig:"WORKERS"` // 0 means GOMAXPROCS
}

// EvalConfig holds continued-fraction parameters.
type EvalConfig struct {
	Epsilon       float64 `yaml:"epsilon" envconfig:"EPSILON"`
	MaxIterations int     `yaml:"max_iterations" envconfig:"MAX_ITERATIONS"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	Development bool   `yaml:"development" envconfig:"DEV"`
}

// Default returns the built-in configuration.
func Default() *Config {
	sc := special.DefaultConfig()
	return &Config{
		Eval: EvalConfig{
			Epsilon:       sc.Epsilon,
			MaxIterations: sc.MaxIterations,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and then with the environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := decodeYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	if err := c.Special().Validate(); err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Special returns the evaluation parameters in the form the special
// package consumes.
func (c *Config) Special() special.Config {
	return special.Config{
		Epsilon:       c.Eval.Epsilon,
		MaxIterations: c.Eval.MaxIterations,
	}
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:       c.Log.Level,
		Development: c.Log.Development,
	}
}

// Describe renders the effective configuration as YAML.
func (c *Config) Describe() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
