// SPDX-License-Identifier: MIT
// Package config loads the solver's YAML configuration.
//
// A file only needs the keys it changes; everything else keeps Default():
//
//	solver:
//	  strategy: bnb        # exhaustive | bnb | heldkarp
//	  tie_break: last      # last | first
//	  workers: 4
//	  time_limit: 30s
//	  precheck: true
//	log:
//	  level: verbose       # normal | verbose | debug | silent
//	  format: json         # text | json
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/salesman/tour"
)

// ErrInvalid marks a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Verbosity names accepted by Log.Level.
const (
	LevelNormal  = "normal"
	LevelVerbose = "verbose"
	LevelDebug   = "debug"
	LevelSilent  = "silent"
)

// Log formats accepted by Log.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root of the YAML document.
type Config struct {
	Solver Solver `yaml:"solver"`
	Log    Log    `yaml:"log"`
}

// Solver holds the search knobs.
type Solver struct {
	Strategy  string        `yaml:"strategy"`
	TieBreak  string        `yaml:"tie_break"`
	Workers   int           `yaml:"workers"`
	TimeLimit time.Duration `yaml:"time_limit"`
	Precheck  bool          `yaml:"precheck"`
}

// Log holds the logging knobs.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver: Solver{
			Strategy: tour.Exhaustive.String(),
			TieBreak: tour.TieLast.String(),
			Workers:  1,
		},
		Log: Log{
			Level:  LevelNormal,
			Format: FormatText,
		},
	}
}

// Load reads path on top of Default() and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document on top of Default() and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := tour.ParseStrategy(c.Solver.Strategy); err != nil {
		return fmt.Errorf("%w: solver.strategy: %w", ErrInvalid, err)
	}
	if _, err := tour.ParseTieBreak(c.Solver.TieBreak); err != nil {
		return fmt.Errorf("%w: solver.tie_break: %w", ErrInvalid, err)
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("%w: solver.workers=%d must be ≥ 0", ErrInvalid, c.Solver.Workers)
	}
	if c.Solver.TimeLimit < 0 {
		return fmt.Errorf("%w: solver.time_limit=%s must be ≥ 0", ErrInvalid, c.Solver.TimeLimit)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format=%q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// TourOptions converts the solver section into tour options.
// It assumes Validate has passed.
func (c Config) TourOptions() []tour.Option {
	st, _ := tour.ParseStrategy(c.Solver.Strategy)
	tb, _ := tour.ParseTieBreak(c.Solver.TieBreak)

	return []tour.Option{
		tour.WithStrategy(st),
		tour.WithTieBreak(tb),
		tour.WithWorkers(c.Solver.Workers),
		tour.WithTimeLimit(c.Solver.TimeLimit),
		tour.WithPrecheck(c.Solver.Precheck),
	}
}

// ParseLevel maps a verbosity name to the slog threshold:
// normal → Warn, verbose → Info, debug → Debug, silent → Error.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelNormal, "":
		return slog.LevelWarn, nil
	case LevelVerbose:
		return slog.LevelInfo, nil
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelSilent:
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log.level=%q", ErrInvalid, name)
	}
}
