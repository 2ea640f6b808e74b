// SPDX-License-Identifier: MIT

// Package cholesky computes the Cholesky factorization A = L·Lᵀ of a symmetric
// positive-definite matrix.
//
// Decompose validates the input (square, finite, symmetric within
// rtol=1e-10 / atol=1e-12 unless the check is disabled), optionally
// regularizes it with a diagonal shift A + jitter·I, and delegates the
// factorization itself to gonum's dense Cholesky (LAPACK dpotrf semantics).
// Only the lower triangle of the (shifted) input is read by the factorizer.
//
// Errors fall into two kinds, both matched with errors.Is:
//
//   - ErrInvalidInput: nil, non-square, ragged, non-finite or asymmetric input,
//     or an invalid jitter. The precise cause (matrix.ErrNonSquare,
//     matrix.ErrAsymmetry, ErrInvalidJitter, ...) is wrapped as well.
//   - ErrNumerical: the matrix (after jitter) is not positive definite
//     (ErrNotPositiveDefinite).
//
// The call is pure: inputs are never mutated and no state is kept between calls.
package cholesky
