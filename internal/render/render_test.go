// SPDX-License-Identifier: MIT

package render_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cholesky/internal/render"
	"github.com/katalvlaran/cholesky/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestMatrix_Plain(t *testing.T) {
	t.Parallel()

	r := render.New(true, 2)
	got := r.Matrix("L", mustRows(t, [][]float64{{2, 0}, {-1.5, 12}}))
	want := "L\n" +
		" 2.00   0.00\n" +
		"-1.50  12.00\n"
	require.Equal(t, want, got)
	require.True(t, r.Plain())
}

func TestMatrix_PlainNegativeZero(t *testing.T) {
	t.Parallel()

	got := render.New(true, 1).Matrix("Z", mustRows(t, [][]float64{{math.Copysign(0, -1)}}))
	require.Equal(t, "Z\n0.0\n", got)
}

func TestMatrix_Styled(t *testing.T) {
	t.Parallel()

	got := render.New(false, 4).Matrix("L", mustRows(t, [][]float64{{2, 0}, {1, math.Sqrt2}}))
	require.Contains(t, got, "L")
	require.Contains(t, got, "╭")
	require.Contains(t, got, "╯")
	for _, s := range []string{"2.0000", "0.0000", "1.0000", "1.4142"} {
		require.Contains(t, got, s)
	}
	require.Len(t, strings.Split(strings.TrimRight(got, "\n"), "\n"), 5, "title, top border, 2 rows, bottom border")
}

func TestMatrix_Nil(t *testing.T) {
	t.Parallel()

	require.Equal(t, "A: <nil>\n", render.New(true, 2).Matrix("A", nil))
}

func TestResidual(t *testing.T) {
	t.Parallel()

	require.Equal(t, "max abs error: 4.441e-16\n", render.New(true, 4).Residual("max abs error", 4.440892098500626e-16))

	styled := render.New(false, 4).Residual("max abs error", 1)
	require.Contains(t, styled, "1.000e+00")
	require.Contains(t, styled, "max abs error:")
}

func TestError(t *testing.T) {
	t.Parallel()

	require.Equal(t, "boom\n", render.New(true, 0).Error("boom"))
	require.Contains(t, render.New(false, 0).Error("boom"), "boom")
}
