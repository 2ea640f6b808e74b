// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cholesky/cholesky"
	"github.com/katalvlaran/cholesky/internal/config"
	"github.com/katalvlaran/cholesky/internal/render"
	"github.com/katalvlaran/cholesky/matrix"
	"github.com/katalvlaran/cholesky/matrixio"
)

// factorFlags are shared by the factor and watch commands.
type factorFlags struct {
	input      string
	output     string
	format     string
	jitter     float64
	noCheckSym bool
	covariance bool
}

func (f *factorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "matrix document (.json, .yaml, .toml)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().StringVar(&f.format, "format", "", "report format: text, json, yaml, toml")
	cmd.Flags().Float64Var(&f.jitter, "jitter", 0, "add jitter·I before factorizing (>= 0)")
	cmd.Flags().BoolVar(&f.noCheckSym, "no-check-sym", false, "skip the symmetry check (only the lower triangle is read)")
	cmd.Flags().BoolVar(&f.covariance, "covariance", false, "factorize the sample covariance of the input rows")
	_ = cmd.MarkFlagRequired("input")
}

var factorOpts factorFlags

func init() {
	factorOpts.register(factorCmd)
	rootCmd.AddCommand(factorCmd)
}

var factorCmd = &cobra.Command{
	Use:   "factor",
	Short: "Factorize a matrix document and write a report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFactor(cmd, &factorOpts)
	},
}

// factorRun is one resolved factor invocation.
type factorRun struct {
	jitter     float64
	check      bool
	format     string
	covariance bool
}

// resolve overlays the flags the user actually set onto settings.
func (f *factorFlags) resolve(cmd *cobra.Command) (factorRun, error) {
	run := factorRun{
		jitter:     settings.Jitter,
		check:      settings.CheckSymmetry,
		format:     settings.Format,
		covariance: f.covariance,
	}
	flags := cmd.Flags()
	if flags.Changed("jitter") {
		run.jitter = f.jitter
	}
	if flags.Changed("no-check-sym") {
		run.check = !f.noCheckSym
	}
	switch {
	case f.format != "":
		run.format = f.format
	case f.output != "":
		if ff := matrixio.DetectFormat(f.output); ff != matrixio.FormatAuto {
			run.format = ff.String()
		}
	}

	format, err := config.ParseOutputFormat(run.format)
	if err != nil {
		return factorRun{}, err
	}
	run.format = format

	return run, nil
}

func runFactor(cmd *cobra.Command, f *factorFlags) error {
	run, err := f.resolve(cmd)
	if err != nil {
		return err
	}

	A, err := matrixio.Load(f.input)
	if err != nil {
		return err
	}
	var a matrix.Matrix = A
	if run.covariance {
		if a, _, err = matrix.Covariance(A); err != nil {
			return fmt.Errorf("covariance: %w", err)
		}
	}

	L, err := cholesky.Decompose(a, cholesky.WithJitter(run.jitter), cholesky.WithSymmetryCheck(run.check))
	if err != nil {
		if errors.Is(err, cholesky.ErrNotPositiveDefinite) {
			hintJitter(a)
		}
		return err
	}
	report, err := matrixio.NewReport(a, L, run.jitter)
	if err != nil {
		return err
	}
	logger.Info("factorized", "input", f.input, "size", report.Size, "jitter", run.jitter, "max_abs_error", report.MaxAbsError)

	if f.output == "" {
		return writeReport(cmd.OutOrStdout(), run.format, report, a, L, newRenderer())
	}

	return saveReport(f.output, run.format, report, a, L)
}

// suggestJitterMargin is the target smallest eigenvalue relative to the
// largest diagonal entry.
const suggestJitterMargin = 1e-10

// hintJitter logs the smallest eigenvalue of a and a jitter that would let
// the factorization pass.
func hintJitter(a matrix.Matrix) {
	lmin, err := cholesky.MinEigenvalue(a)
	if err != nil {
		logger.Debug("eigenvalue hint unavailable", "err", err)
		return
	}
	j, err := cholesky.SuggestJitter(a, suggestJitterMargin)
	if err != nil {
		logger.Debug("eigenvalue hint unavailable", "err", err)
		return
	}
	logger.Warn("matrix is not positive definite", "min_eigenvalue", lmin, "suggested_jitter", j)
}

func writeReport(w io.Writer, format string, report *matrixio.Report, a matrix.Matrix, L *matrix.Dense, r *render.Renderer) error {
	if format == config.FormatText {
		text, err := textReport(report, a, L, r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, text)

		return err
	}

	ff, err := matrixio.ParseFormat(format)
	if err != nil {
		return err
	}

	return matrixio.Encode(w, ff, report)
}

// saveReport replaces path with the report; a failed run leaves the previous
// file in place.
func saveReport(path, format string, report *matrixio.Report, a matrix.Matrix, L *matrix.Dense) error {
	if format == config.FormatText {
		// Files never get terminal styling.
		text, err := textReport(report, a, L, render.New(true, settings.Precision))
		if err != nil {
			return err
		}

		return matrixio.WriteFile(path, []byte(text))
	}

	ff, err := matrixio.ParseFormat(format)
	if err != nil {
		return err
	}

	return matrixio.Save(path, ff, report)
}

func textReport(report *matrixio.Report, a matrix.Matrix, L *matrix.Dense, r *render.Renderer) (string, error) {
	LLt, err := cholesky.Reconstruct(L)
	if err != nil {
		return "", err
	}

	return r.Matrix("A", a) +
		r.Matrix("L", L) +
		r.Matrix("L·Lᵀ", LLt) +
		r.Residual("max abs error", report.MaxAbsError), nil
}
