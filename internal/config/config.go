// SPDX-License-Identifier: MIT

// Package config holds the CLI defaults and loads them from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/cholesky/cholesky"
	"github.com/katalvlaran/cholesky/matrixio"
)

// Output formats accepted by the factor report writer, besides the matrixio ones.
const FormatText = "text"

// Defaults.
const (
	DefaultFormat    = FormatText
	DefaultPrecision = 4
	DefaultLogLevel  = "info"
	MaxPrecision     = 17
)

// ErrInvalidConfig reports a value that cannot be applied.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the set of CLI defaults. Flags given on the command line win.
type Config struct {
	Jitter        float64 `toml:"jitter" yaml:"jitter" json:"jitter"`
	CheckSymmetry bool    `toml:"check_symmetry" yaml:"check_symmetry" json:"check_symmetry"`
	Format        string  `toml:"format" yaml:"format" json:"format"`
	Precision     int     `toml:"precision" yaml:"precision" json:"precision"`
	Plain         bool    `toml:"plain" yaml:"plain" json:"plain"`
	LogLevel      string  `toml:"log_level" yaml:"log_level" json:"log_level"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Jitter:        cholesky.DefaultJitter,
		CheckSymmetry: cholesky.DefaultCheckSymmetry,
		Format:        DefaultFormat,
		Precision:     DefaultPrecision,
		LogLevel:      DefaultLogLevel,
	}
}

// Load returns Default overlaid with the file at path. Keys missing from the
// file keep their defaults. An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := matrixio.LoadInto(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if math.IsNaN(c.Jitter) || math.IsInf(c.Jitter, 0) || c.Jitter < 0 {
		return fmt.Errorf("%w: jitter %v", ErrInvalidConfig, c.Jitter)
	}
	if _, err := ParseOutputFormat(c.Format); err != nil {
		return err
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d not in [0,%d]", ErrInvalidConfig, c.Precision, MaxPrecision)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseOutputFormat normalizes a report format name: "text" or a matrixio format.
func ParseOutputFormat(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == FormatText {
		return n, nil
	}
	f, err := matrixio.ParseFormat(n)
	if err != nil || f == matrixio.FormatAuto {
		return "", fmt.Errorf("%w: format %q", ErrInvalidConfig, name)
	}

	return f.String(), nil
}

// ParseLogLevel maps debug|info|warn|error to a slog level.
func ParseLogLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, name)
	}

	return lvl, nil
}
