// SPDX-License-Identifier: MIT

package cholesky

import (
	"fmt"

	"github.com/katalvlaran/cholesky/matrix"
)

// Operation tags for error wrapping.
const (
	opDecompose     = "Decompose"
	opDecomposeRows = "DecomposeRows"
)

// Decompose returns the lower-triangular Cholesky factor L with A = L·Lᵀ.
// MAIN DESCRIPTION:
//   - Validate, optionally regularize, then delegate to the dense factorizer.
//
// Implementation:
//   - Stage 1: a must be non-nil, square and non-empty (checked before anything else).
//   - Stage 2: entries must be finite; options must be valid (jitter >= 0).
//   - Stage 3: unless disabled, a must be symmetric within
//     SymmetryAbsTol + SymmetryRelTol·|Aᵀ|.
//   - Stage 4: jitter > 0 ⇒ A ← A + jitter·I (on a copy).
//   - Stage 5: factorize the lower triangle.
//
// Behavior highlights:
//   - a is never mutated.
//   - The returned factor has a strictly positive diagonal and exact zeros above it.
//
// Inputs:
//   - a: n×n matrix; *matrix.Dense avoids one interface-dispatch copy.
//   - opts: WithJitter, WithSymmetryCheck.
//
// Returns:
//   - *matrix.Dense: the factor L.
//
// Errors:
//   - ErrInvalidInput together with matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     matrix.ErrBadShape (0×0), matrix.ErrNaNInf, ErrInvalidJitter or
//     matrix.ErrAsymmetry.
//   - ErrNumerical together with ErrNotPositiveDefinite.
//
// Complexity:
//   - Time O(n³) (factorization) + O(n²) validation, Space O(n²).
func Decompose(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	if err := validateShape(a); err != nil {
		return nil, invalidInputf(opDecompose, err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, invalidInputf(opDecompose, err)
	}
	if err := o.validate(); err != nil {
		return nil, invalidInputf(opDecompose, err)
	}
	if o.checkSymmetry {
		if err := matrix.ValidateSymmetric(a, SymmetryRelTol, SymmetryAbsTol); err != nil {
			return nil, invalidInputf(opDecompose, err)
		}
	}

	work := a
	if o.jitter > 0 {
		shifted, err := matrix.AddScaledIdentity(a, o.jitter)
		if err != nil {
			return nil, invalidInputf(opDecompose, err)
		}
		work = shifted
	}

	L, err := factorLower(work)
	if err != nil {
		return nil, numericalf(opDecompose, err)
	}

	return L, nil
}

// validateShape requires a non-nil, square matrix with at least one row.
// Foreign Matrix implementations may report 0×0, which the factorizer cannot take.
func validateShape(a matrix.Matrix) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return err
	}
	if a.Rows() <= 0 {
		return fmt.Errorf("%d×%d: %w", a.Rows(), a.Cols(), matrix.ErrBadShape)
	}

	return nil
}

// DecomposeRows is Decompose over a raw row-major 2-D slice.
// Empty or ragged input is rejected as ErrInvalidInput with matrix.ErrBadShape;
// a rectangular non-square input fails with matrix.ErrNonSquare.
func DecomposeRows(rows [][]float64, opts ...Option) ([][]float64, error) {
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, invalidInputf(opDecomposeRows, err)
	}
	L, err := Decompose(a, opts...)
	if err != nil {
		return nil, err
	}

	return L.ToRows(), nil
}
