// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cholesky/internal/watch"
)

var watchOpts factorFlags

func init() {
	watchOpts.register(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run factor every time the input file changes",
	Long: `watch runs factor once, then again after every change to the input file.
Bursts of writes are coalesced (500ms). Failures are reported and watching
continues. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWatch(cmd, &watchOpts)
	},
}

func runWatch(cmd *cobra.Command, f *factorFlags) error {
	// Bad flags fail fast instead of on every change.
	if _, err := f.resolve(cmd); err != nil {
		return err
	}

	rerun := func(context.Context) {
		if err := runFactor(cmd, f); err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), newRenderer().Error("Error: "+err.Error()))
		}
	}

	w, err := watch.New(f.input, rerun, watch.WithDebounce(watch.DefaultDebounce), watch.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("watching", "path", w.Path())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rerun(ctx)

	return w.Run(ctx)
}
