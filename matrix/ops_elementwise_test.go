// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cholesky/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	tests := []struct {
		name       string
		b          [][]float64
		rtol, atol float64
		want       bool
	}{
		{"identical", [][]float64{{1, 2}, {3, 4}}, 0, 0, true},
		{"within atol", [][]float64{{1, 2}, {3, 4 + 1e-13}}, 0, 1e-12, true},
		{"within rtol", [][]float64{{1, 2}, {3, 4 + 1e-7}}, 1e-6, 0, true},
		{"outside", [][]float64{{1, 2}, {3, 4.1}}, 1e-6, 1e-6, false},
		{"negative tolerances normalized", [][]float64{{1, 2}, {3, 4 + 1e-13}}, 0, -1e-12, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b := FromRows(t, tc.b)
			got, err := matrix.AllClose(a, b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			got, err = matrix.AllClose(hide{a}, b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got, "fallback path")
		})
	}
}

func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.AllClose(MustDense(t, 2, 2), MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(nil, MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose(MustDense(t, 1, 1), MustDense(t, 1, 1), math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllClose_NaNNeverClose(t *testing.T) {
	t.Parallel()

	n, err := matrix.NewDenseFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err := matrix.AllClose(n, n, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	inf, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err = matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := FromRows(t, [][]float64{{1, 2.5}, {2, 4}})

	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	d, err = matrix.MaxAbsDiff(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	d, err = matrix.MaxAbsDiff(a, a)
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = matrix.MaxAbsDiff(a, MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMaxAbsDiff_NaNPropagates(t *testing.T) {
	t.Parallel()

	n, err := matrix.NewDenseFromRows([][]float64{{math.NaN(), 0}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	d, err := matrix.MaxAbsDiff(n, MustDense(t, 1, 2))
	require.NoError(t, err)
	require.True(t, math.IsNaN(d))
}
