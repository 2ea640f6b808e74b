// SPDX-License-Identifier: MIT

// Command cholesky factorizes symmetric positive-definite matrices.
package main

import "github.com/katalvlaran/cholesky/internal/cli"

func main() {
	cli.Execute()
}
