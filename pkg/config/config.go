// Package config loads the optional YAML configuration of the caesar command.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no explicit configuration file is given.
const DefaultPath = "caesar.yaml"

// Frontend modes.
const (
	ModeAuto = "auto" // form on a terminal, line otherwise
	ModeLine = "line"
	ModeForm = "form"
)

// Color settings.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the top-level configuration.
type Config struct {
	Mode       string    `yaml:"mode"`
	Color      string    `yaml:"color"`
	Accessible bool      `yaml:"accessible"` // form mode: line-based prompts for screen readers
	AltScreen  bool      `yaml:"alt_screen"` // form mode: draw forms on the alternate screen
	Banner     bool      `yaml:"banner"`
	Width      int       `yaml:"width"` // max display width of brute-force rows (0 = unlimited)
	Log        LogConfig `yaml:"log"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Mode:   ModeAuto,
		Color:  ColorAuto,
		Banner: true,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a YAML file on top of Default. Environment variables referenced
// as ${VAR} or $VAR are expanded before parsing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Resolve loads path when it is set. Otherwise DefaultPath is tried and a
// missing default file yields Default.
func Resolve(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}

	cfg, err := Load(DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks that every setting has a known value.
func (c Config) Validate() error {
	if !slices.Contains([]string{ModeAuto, ModeLine, ModeForm}, c.Mode) {
		return fmt.Errorf("config: unknown mode %q (want auto, line or form)", c.Mode)
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("config: unknown color %q (want auto, always or never)", c.Color)
	}
	if c.Width < 0 {
		return fmt.Errorf("config: width must not be negative, got %d", c.Width)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}
