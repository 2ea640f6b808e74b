// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cholesky/matrix"
)

// ExampleCovariance builds the sample covariance of four observations of two
// features and checks that it is symmetric.
func ExampleCovariance() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{2, 4},
		{3, 6},
		{4, 9},
	})

	cov, means, _ := matrix.Covariance(X)
	fmt.Printf("means: %.2f\n", means)
	for _, row := range cov.(*matrix.Dense).ToRows() {
		fmt.Printf("%.4f\n", row)
	}
	fmt.Println("symmetric:", matrix.ValidateSymmetric(cov, 0, 0) == nil)

	// Output:
	// means: [2.50 5.25]
	// [1.6667 3.8333]
	// [3.8333 8.9167]
	// symmetric: true
}
