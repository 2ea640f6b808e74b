// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cholesky/cholesky"
	"github.com/katalvlaran/cholesky/matrix"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoRows is a small SPD matrix with a hand-checkable factor
// L = [[2,0,0],[1,2,0],[1,0,√2]].
var demoRows = [][]float64{
	{4, 2, 2},
	{2, 5, 1},
	{2, 1, 3},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Factorize a fixed 3×3 sample and show the reconstruction",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	A, err := matrix.NewDenseFromRows(demoRows)
	if err != nil {
		return err
	}
	L, err := cholesky.Decompose(A)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	LLt, err := cholesky.Reconstruct(L)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	maxErr, err := matrix.MaxAbsDiff(A, LLt)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}

	r := newRenderer()
	_, err = fmt.Fprint(cmd.OutOrStdout(),
		r.Matrix("A", A)+
			r.Matrix("L", L)+
			r.Matrix("L·Lᵀ", LLt)+
			r.Residual("max abs error", maxErr))

	return err
}
