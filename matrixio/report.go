// SPDX-License-Identifier: MIT

package matrixio

import (
	"github.com/katalvlaran/cholesky/cholesky"
	"github.com/katalvlaran/cholesky/matrix"
)

const opNewReport = "NewReport"

// Tolerances of Report.Reconstructs: |A − L·Lᵀ| ≤ atol + rtol·|L·Lᵀ| element-wise.
const (
	ReconstructionRelTol = 1e-9
	ReconstructionAbsTol = 1e-8
)

// Report is the result of one factorization as written by the CLI.
type Report struct {
	Size           int         `json:"size" yaml:"size" toml:"size"`
	Jitter         float64     `json:"jitter" yaml:"jitter" toml:"jitter"`
	MaxAbsError    float64     `json:"max_abs_error" yaml:"max_abs_error" toml:"max_abs_error"`
	Reconstructs   bool        `json:"reconstructs" yaml:"reconstructs" toml:"reconstructs"`
	Factor         [][]float64 `json:"factor" yaml:"factor" toml:"factor"`
	Reconstruction [][]float64 `json:"reconstruction" yaml:"reconstruction" toml:"reconstruction"`
}

// NewReport builds the report of factor L computed from a with the given jitter.
// MaxAbsError and Reconstructs are measured against a itself, so a positive
// jitter shows up in them.
func NewReport(a matrix.Matrix, L *matrix.Dense, jitter float64) (*Report, error) {
	LLt, err := cholesky.Reconstruct(L)
	if err != nil {
		return nil, ioErrorf(opNewReport, err)
	}
	maxErr, err := matrix.MaxAbsDiff(a, LLt)
	if err != nil {
		return nil, ioErrorf(opNewReport, err)
	}
	reconstructs, err := matrix.AllClose(a, LLt, ReconstructionRelTol, ReconstructionAbsTol)
	if err != nil {
		return nil, ioErrorf(opNewReport, err)
	}

	return &Report{
		Size:           L.Rows(),
		Jitter:         jitter,
		MaxAbsError:    maxErr,
		Reconstructs:   reconstructs,
		Factor:         L.ToRows(),
		Reconstruction: toRows(LLt),
	}, nil
}

// toRows copies any Matrix into a fresh [][]float64.
func toRows(m matrix.Matrix) [][]float64 {
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows()
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			out[i][j], _ = m.At(i, j)
		}
	}

	return out
}
