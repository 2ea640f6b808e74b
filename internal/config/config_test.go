// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cholesky/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.Zero(t, cfg.Jitter)
	require.True(t, cfg.CheckSymmetry)
	require.Equal(t, "text", cfg.Format)
	require.Equal(t, 4, cfg.Precision)
	require.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_TOMLOverrides(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "cholesky.toml", `
jitter = 1e-6
check_symmetry = false
format = "yaml"
log_level = "debug"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1e-6, cfg.Jitter)
	require.False(t, cfg.CheckSymmetry)
	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	require.Equal(t, config.DefaultPrecision, cfg.Precision)
	require.False(t, cfg.Plain)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "cholesky.yml", "precision: 8\nplain: true\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Precision)
	require.True(t, cfg.Plain)
	require.True(t, cfg.CheckSymmetry)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeFile(t, "bad.toml", "jitter = -1.0\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "bad.yaml", "format: csv\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"nan jitter", func(c *config.Config) { c.Jitter = math.NaN() }},
		{"inf jitter", func(c *config.Config) { c.Jitter = math.Inf(1) }},
		{"negative precision", func(c *config.Config) { c.Precision = -1 }},
		{"huge precision", func(c *config.Config) { c.Precision = 40 }},
		{"auto format", func(c *config.Config) { c.Format = "auto" }},
		{"log level", func(c *config.Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"TEXT": "text", "json": "json", "yml": "yaml", " toml ": "toml"} {
		got, err := config.ParseOutputFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := config.ParseLogLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}
}
