// Package matrix provides the dense linear-algebra substrate of the cholesky
// module.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy (NaN/±Inf rejected by default).
//   - Central validators (ValidateSquare, ValidateSymmetric, ...) returning
//     sentinel errors that callers match with errors.Is.
//   - The kernels a factorization pipeline needs: Mul, Transpose, Scale,
//     AddScaledIdentity, AllClose, MaxAbsDiff.
//   - Column statistics (Covariance) producing symmetric
//     positive semi-definite input.
//
// Every kernel takes the Matrix interface and has a *Dense fast-path over the
// flat buffer; pass *Dense operands to hit it.
package matrix
