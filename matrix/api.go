// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Comparison ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// MaxAbsDiff returns max |a[i,j] - b[i,j]| over identical shapes (NaN propagates).
// Time: O(r*c). Space: O(1).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	return ewMaxAbsDiff(a, b)
}

// ---------- Statistics ----------

// Covariance returns the sample covariance (c×c, divisor r−1) of the columns of X
// and the column means. Requires at least two rows.
// Time: O(r*c²). Space: O(c²).
// The result can be passed to cholesky.Decompose to draw correlated samples
// x = μ + L·z.
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }
