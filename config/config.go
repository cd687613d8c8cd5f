// Package config loads the optional YAML settings file of the aoc23 command.
//
// A missing file is not an error: every field has a default.
//
//	input_dir: inputs
//	input_pattern: day%02d.txt
//	log_level: info
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned for unreadable, malformed or invalid settings.
var ErrConfig = errors.New("config: invalid configuration")

// Config holds the command settings.
type Config struct {
	// InputDir is searched for puzzle inputs when none is given explicitly.
	InputDir string `yaml:"input_dir"`
	// InputPattern names the input file of a day; it receives the day number.
	InputPattern string `yaml:"input_pattern"`
	// LogLevel is any level name logrus understands.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InputDir:     "inputs",
		InputPattern: "day%02d.txt",
		LogLevel:     "info",
	}
}

// Load reads path over the defaults. Fields absent from the file keep
// their default value. An empty path or a missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the log level parses and the pattern takes a day.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if !strings.Contains(c.InputPattern, "%") {
		return fmt.Errorf("%w: input_pattern %q has no day verb", ErrConfig, c.InputPattern)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log_level: %v", ErrConfig, err)
	}

	return lvl, nil
}

// InputPath returns the input file location for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf(c.InputPattern, day))
}
