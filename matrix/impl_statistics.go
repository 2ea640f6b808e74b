// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column centering and sample covariance as compositions over the canonical
//     kernels (Transpose/Mul/Scale). Covariance matrices are the most common
//     source of symmetric positive-(semi)definite input for the factorization.
//
// Exposed API (api.go):
//   - centerColumns(X) -> (Xc, means)   // subtract per-column mean (internal)
//   - Covariance(X)    -> (Cov, means)  // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on row-major flat buffers.

package matrix

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means in one deterministic pass.
//   - Stage 3: Write X[i,j] - mean[j] into a fresh Dense.
//
// Returns:
//   - Matrix: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix; wrapped At/Set errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means := make([]float64, c)

	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		var i, j, base int
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
		for j = 0; j < c; j++ {
			means[j] /= float64(r)
		}
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - means[j]
			}
		}

		return out, means, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, err)
			}
			means[j] += v
		}
	}
	for j := 0; j < c; j++ {
		means[j] /= float64(r)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, err)
			}
			if err = out.Set(i, j, v-means[j]); err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, err)
			}
		}
	}

	return out, means, nil
}

// covariance computes the sample covariance of the columns of X (observations
// in rows, features in columns): Cov = (Xcᵀ Xc)/(r-1).
// Implementation:
//   - Stage 1: Validate X and require r>=2.
//   - Stage 2: Center columns; Cov = Scale(Mul(Transpose(Xc), Xc), 1/(r-1)).
//   - Stage 3: Mirror the strict lower triangle into the upper one so the result
//     is exactly symmetric (the product is symmetric only up to rounding).
//
// Returns:
//   - Matrix: Covariance (c×c), symmetric positive semi-definite on finite data.
//   - []float64: column means used for centering.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), wrapped kernel errors.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
//
// Notes:
//   - With r <= c the covariance is singular; factorizing it needs jitter.
func covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	cd := Cov.(*Dense) // Scale always allocates a *Dense
	c := cd.c
	for i := 0; i < c; i++ {
		for j := 0; j < i; j++ {
			cd.data[j*c+i] = cd.data[i*c+j]
		}
	}

	return cd, means, nil
}
