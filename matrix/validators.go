// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the strict upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// Validator tags (no magic strings at call sites).
const (
	tagNotNil          = "ValidateNotNil"
	tagSameShape       = "ValidateSameShape"
	tagSquare          = "ValidateSquare"
	tagMulCompatible   = "ValidateMulCompatible"
	tagSymmetric       = "ValidateSymmetric"
	tagFinite          = "ValidateFinite"
	tagBinarySameShape = "ValidateBinarySameShape"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or a typed-nil *Dense held by one.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil, including a nil
// *Dense stored in the interface.
// Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(tagSameShape, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if isNil(m) {
		return validatorErrorf(tagSquare, ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(tagSquare, ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tagBinarySameShape, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tagBinarySameShape, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf(tagBinarySameShape, err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tagMulCompatible, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tagMulCompatible, err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(tagMulCompatible, ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Matrices built under the default numeric policy already satisfy this; the
// check matters for relaxed *Dense values and foreign Matrix implementations.
//
// Errors: ErrNilMatrix, ErrNaNInf (wrapped with the offending coordinates).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tagFinite, err)
	}

	r, c := m.Rows(), m.Cols()
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tagFinite, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s(%d,%d): %w", tagFinite, i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks that m is symmetric in the AllClose sense:
// |A[i,j] - A[j,i]| ≤ atol + rtol*|A[j,i]| for every ordered pair (i,j).
// MAIN DESCRIPTION:
//   - Equivalent to AllClose(A, Aᵀ, rtol, atol) without materializing Aᵀ.
//
// Implementation:
//   - Stage 1: nil → square → tolerance sanity (finite; negatives are abs-ed).
//   - Stage 2: scan the strict upper triangle; each pair is tested in both
//     orientations, so the effective bound is atol + rtol*min(|aij|,|aji|).
//
// Behavior highlights:
//   - A NaN entry is never "close" to anything: NaN fails the check.
//   - Diagonal entries are compared with themselves and only fail on NaN.
//   - Infinities are close only to the same infinity.
//
// Inputs:
//   - m: square matrix.
//   - rtol, atol: relative and absolute tolerances (finite).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (structure), ErrNaNInf (bad tolerance),
//     ErrAsymmetry (violation).
//
// Complexity:
//   - Time O(n²), Space O(1).
func ValidateSymmetric(m Matrix, rtol, atol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tagSymmetric, err)
	}
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return validatorErrorf(tagSymmetric, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		aij, _ = m.At(i, i) // bounds are guaranteed by the square check
		if !isClose(aij, aij, rtol, atol) {
			return validatorErrorf(tagSymmetric, ErrAsymmetry)
		}
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if !isClose(aij, aji, rtol, atol) || !isClose(aji, aij, rtol, atol) {
				return validatorErrorf(tagSymmetric, ErrAsymmetry)
			}
		}
	}

	return nil
}

// isClose reports |a-b| ≤ atol + rtol*|b|. NaN on either side yields false.
// Equal infinities are close (mirrors AllClose).
func isClose(a, b, rtol, atol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
