// SPDX-License-Identifier: MIT

package cholesky

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultJitter disables regularization.
	DefaultJitter = 0.0

	// DefaultCheckSymmetry enables the symmetry check.
	DefaultCheckSymmetry = true
)

// Symmetry tolerances: |A[i,j] - A[j,i]| ≤ SymmetryAbsTol + SymmetryRelTol·|A[j,i]|.
// They are fixed; only the check itself can be switched off.
const (
	SymmetryRelTol = 1e-10
	SymmetryAbsTol = 1e-12
)

// Option mutates the decomposition options. Setters run in order (last-writer-wins).
type Option func(*options)

type options struct {
	jitter        float64 // >= 0, finite; DefaultJitter
	checkSymmetry bool    // DefaultCheckSymmetry
}

// WithJitter adds jitter·I to the input before factorization.
// A small positive jitter (e.g. 1e-6 times the diagonal scale) turns a matrix that
// is positive definite only up to rounding into a numerically safe one.
// Zero means no regularization. NaN, ±Inf or negative values make Decompose
// fail with ErrInvalidInput / ErrInvalidJitter.
func WithJitter(jitter float64) Option {
	return func(o *options) { o.jitter = jitter }
}

// WithSymmetryCheck toggles the symmetry check. When off, the factorizer reads
// only the lower triangle, so asymmetric input is treated as its lower triangle
// mirrored.
func WithSymmetryCheck(on bool) Option {
	return func(o *options) { o.checkSymmetry = on }
}

func gatherOptions(user ...Option) options {
	o := options{
		jitter:        DefaultJitter,
		checkSymmetry: DefaultCheckSymmetry,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate reports option values that cannot be applied.
func (o options) validate() error {
	if math.IsNaN(o.jitter) || math.IsInf(o.jitter, 0) || o.jitter < 0 {
		return ErrInvalidJitter
	}

	return nil
}
