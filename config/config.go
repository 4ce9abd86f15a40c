// ABOUTME: Startup configuration for sortstudy loaded from a YAML file and SORTSTUDY_* environment variables.
// ABOUTME: CLI flags are layered on top by cmd/sortstudy; this package owns defaults, file, and env.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/2389-research/sortstudy/deck"
	"github.com/2389-research/sortstudy/review"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownCommand indicates a key override names a command that does not exist.
	ErrUnknownCommand = errors.New("unknown command in key bindings")

	// ErrInvalidMaxLineChars indicates a negative max_line_chars setting.
	ErrInvalidMaxLineChars = errors.New("max_line_chars must not be negative")
)

// Config holds every startup setting that can come from the config file or environment.
type Config struct {
	Shuffle      bool                `yaml:"shuffle"`
	NoBorders    bool                `yaml:"no_borders"`
	Flip         bool                `yaml:"flip"`
	NoColor      bool                `yaml:"no_color"`
	LogFile      string              `yaml:"log_file"`
	MaxLineChars int                 `yaml:"max_line_chars"`
	Keys         map[string][]string `yaml:"keys"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxLineChars: deck.DefaultMaxLineChars,
	}
}

// Load reads the config file at path on top of the defaults. An empty path
// means SORTSTUDY_CONFIG or else the default location; only a missing file
// at the default location is tolerated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("SORTSTUDY_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := decode(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// decode unmarshals YAML strictly so misspelled keys are reported.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from SORTSTUDY_* environment variables.
func (c *Config) ApplyEnv() error {
	bools := []struct {
		key string
		dst *bool
	}{
		{"SORTSTUDY_SHUFFLE", &c.Shuffle},
		{"SORTSTUDY_NO_BORDERS", &c.NoBorders},
		{"SORTSTUDY_FLIP", &c.Flip},
		{"SORTSTUDY_NO_COLOR", &c.NoColor},
	}
	for _, b := range bools {
		v := os.Getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", b.key, v, err)
		}
		*b.dst = parsed
	}

	if v := os.Getenv("SORTSTUDY_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate checks settings that YAML decoding cannot.
func (c *Config) Validate() error {
	if c.MaxLineChars < 0 {
		return ErrInvalidMaxLineChars
	}
	for name := range c.Keys {
		if _, ok := review.ParseCommand(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
		}
	}
	return nil
}
