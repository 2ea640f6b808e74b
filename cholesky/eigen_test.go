// SPDX-License-Identifier: MIT

package cholesky_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cholesky/cholesky"
	"github.com/katalvlaran/cholesky/matrix"
)

func TestMinEigenvalue(t *testing.T) {
	t.Parallel()

	// Eigenvalues of [[1,2],[2,1]] are -1 and 3.
	l, err := cholesky.MinEigenvalue(mustRows(t, [][]float64{{1, 2}, {2, 1}}))
	require.NoError(t, err)
	require.InDelta(t, -1.0, l, 1e-12)

	l, err = cholesky.MinEigenvalue(hide{mustRows(t, [][]float64{{2, 0}, {0, 5}})})
	require.NoError(t, err)
	require.InDelta(t, 2.0, l, 1e-12)

	// The upper triangle is ignored, as in Decompose.
	l, err = cholesky.MinEigenvalue(mustRows(t, [][]float64{{1, 100}, {0, 1}}))
	require.NoError(t, err)
	require.InDelta(t, 1.0, l, 1e-12)

	_, err = cholesky.MinEigenvalue(emptyMatrix{})
	require.ErrorIs(t, err, cholesky.ErrInvalidInput)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = cholesky.MinEigenvalue((*matrix.Dense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = cholesky.SuggestJitter(emptyMatrix{}, 1e-6)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = cholesky.MinEigenvalue(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, cholesky.ErrInvalidInput)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSuggestJitter(t *testing.T) {
	t.Parallel()

	A := mustRows(t, [][]float64{{1, 2}, {2, 1}})
	j, err := cholesky.SuggestJitter(A, 1e-6)
	require.NoError(t, err)
	require.InDelta(t, 1+1e-6, j, 1e-12)

	_, err = cholesky.Decompose(A, cholesky.WithJitter(j))
	require.NoError(t, err)

	j, err = cholesky.SuggestJitter(mustRows(t, [][]float64{{4, 2, 2}, {2, 5, 1}, {2, 1, 3}}), 1e-6)
	require.NoError(t, err)
	require.Zero(t, j)
}
