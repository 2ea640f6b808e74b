// SPDX-License-Identifier: MIT

package cholesky

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cholesky/matrix"
)

const opMinEigenvalue = "MinEigenvalue"

// ErrEigenFailed is returned when the symmetric eigensolver does not converge.
var ErrEigenFailed = errors.New("cholesky: eigen decomposition did not converge")

// MinEigenvalue returns the smallest eigenvalue of the symmetric matrix formed
// by the lower triangle of a, the same matrix the factorizer sees.
// A negative or zero result explains ErrNotPositiveDefinite; -λmin is then a
// lower bound for a jitter that makes the factorization succeed.
//
// Errors: ErrInvalidInput with matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrBadShape or matrix.ErrNaNInf; ErrNumerical with ErrEigenFailed.
// Complexity: O(n³).
func MinEigenvalue(a matrix.Matrix) (float64, error) {
	if err := validateShape(a); err != nil {
		return 0, invalidInputf(opMinEigenvalue, err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return 0, invalidInputf(opMinEigenvalue, err)
	}

	sym, err := lowerSym(a)
	if err != nil {
		return 0, numericalf(opMinEigenvalue, err)
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return 0, numericalf(opMinEigenvalue, ErrEigenFailed)
	}

	return es.Values(nil)[0], nil // ascending
}

// SuggestJitter returns a jitter that lifts the smallest eigenvalue of a to
// roughly margin times its largest diagonal magnitude. It returns 0 when a
// is already comfortably positive definite.
func SuggestJitter(a matrix.Matrix, margin float64) (float64, error) {
	lmin, err := MinEigenvalue(a)
	if err != nil {
		return 0, err
	}
	n := a.Rows()
	var scale float64
	for i := 0; i < n; i++ {
		v, _ := a.At(i, i)
		if v < 0 {
			v = -v
		}
		if v > scale {
			scale = v
		}
	}
	floor := margin * scale
	if lmin >= floor {
		return 0, nil
	}

	return floor - lmin, nil
}

// lowerSym copies the lower triangle of a square m into a gonum SymDense.
func lowerSym(m matrix.Matrix) (*mat.SymDense, error) {
	n := m.Rows()
	sym := mat.NewSymDense(n, nil)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			sym.SetSym(i, j, v) // mirrors into (j,i)
		}
	}

	return sym, nil
}
