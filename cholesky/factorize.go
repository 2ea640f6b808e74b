// SPDX-License-Identifier: MIT

package cholesky

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cholesky/matrix"
)

// factorLower hands the lower triangle of a square, finite m to gonum's dense
// Cholesky and copies the factor back into a *matrix.Dense.
// Entries above the diagonal of the result are exact zeros.
func factorLower(m matrix.Matrix) (*matrix.Dense, error) {
	sym, err := lowerSym(m)
	if err != nil {
		return nil, err
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, ErrNotPositiveDefinite
	}
	var tri mat.TriDense
	chol.LTo(&tri)

	n := m.Rows()
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			if err = L.Set(i, j, tri.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return L, nil
}
