// SPDX-License-Identifier: MIT

// Package cli implements the cholesky command tree.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cholesky/internal/config"
	"github.com/katalvlaran/cholesky/internal/render"
)

var (
	cfgFile     string
	logLevel    string
	plainOutput bool

	// settings are the effective defaults after config file and global flags.
	settings = config.Default()
	logger   = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "cholesky",
	Short: "Validated Cholesky factorization of symmetric positive-definite matrices",
	Long: `cholesky factorizes A = L·Lᵀ for a symmetric positive-definite matrix A.

The input is checked for squareness and symmetry, optionally regularized
with jitter·I, and factorized. Matrices are read from JSON, YAML or TOML
documents of the form {"matrix": [[...], ...]}.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "disable styled output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// loadSettings merges the config file and the global flags into settings.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("plain") {
		cfg.Plain = plainOutput
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	settings = cfg
	logger = newLogger(cmd.ErrOrStderr(), level)
	logger.Debug("settings loaded", "config", cfgFile, "format", cfg.Format, "jitter", cfg.Jitter)

	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRenderer() *render.Renderer {
	return render.New(settings.Plain, settings.Precision)
}
