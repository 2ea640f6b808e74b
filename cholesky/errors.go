// SPDX-License-Identifier: MIT

package cholesky

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the kind of every validation failure: shape, values,
	// symmetry or options. The specific cause is wrapped alongside it.
	ErrInvalidInput = errors.New("cholesky: invalid input")

	// ErrNumerical is the kind of every failure raised by the factorizer.
	ErrNumerical = errors.New("cholesky: numerical error")

	// ErrNotPositiveDefinite reports that the (possibly jittered) matrix has a
	// non-positive pivot, i.e. it is not positive definite.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive definite")

	// ErrInvalidJitter reports a NaN, infinite or negative jitter.
	ErrInvalidJitter = errors.New("cholesky: jitter must be finite and >= 0")
)

// invalidInputf tags cause with the operation and the ErrInvalidInput kind.
func invalidInputf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, cause)
}

// numericalf tags cause with the operation and the ErrNumerical kind.
func numericalf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNumerical, cause)
}
