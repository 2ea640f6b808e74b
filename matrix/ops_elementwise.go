// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison micro-kernels used by tests, residual checks and
//     the symmetry validator: AllClose and MaxAbsDiff.
//
// Determinism:
//   - Flat index walk on *Dense, fixed i→j order in the fallback.

package matrix

import "math"

const (
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
)

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is never close; equal infinities are close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |x|.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !isClose(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !isClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ewMaxAbsDiff returns max_{i,j} |a[i,j] - b[i,j]| for identical shapes.
// A NaN difference propagates as NaN so that callers never mistake it for a
// small residual.
func ewMaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var maxDiff, d float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				d = math.Abs(da.data[idx] - db.data[idx])
				if math.IsNaN(d) {
					return math.NaN(), nil
				}
				if d > maxDiff {
					maxDiff = d
				}
			}

			return maxDiff, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			d = math.Abs(av - bv)
			if math.IsNaN(d) {
				return math.NaN(), nil
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
	}

	return maxDiff, nil
}
