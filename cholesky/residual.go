// SPDX-License-Identifier: MIT

package cholesky

import (
	"fmt"

	"github.com/katalvlaran/cholesky/matrix"
)

const (
	opReconstruct    = "Reconstruct"
	opMaxAbsResidual = "MaxAbsResidual"
)

// Reconstruct returns L·Lᵀ.
// Errors: matrix.ErrNilMatrix; matrix.ErrNonSquare or matrix.ErrBadShape for a
// non-square or empty factor.
func Reconstruct(L matrix.Matrix) (matrix.Matrix, error) {
	if err := validateShape(L); err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	Lt, err := matrix.Transpose(L)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	LLt, err := matrix.Mul(L, Lt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return LLt, nil
}

// MaxAbsResidual returns max |A − L·Lᵀ|, the reconstruction error of a factor.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
func MaxAbsResidual(a, L matrix.Matrix) (float64, error) {
	LLt, err := Reconstruct(L)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMaxAbsResidual, err)
	}
	d, err := matrix.MaxAbsDiff(a, LLt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMaxAbsResidual, err)
	}

	return d, nil
}
