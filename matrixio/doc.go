// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrix documents and factor reports.
//
// A matrix document holds one matrix under the "matrix" key:
//
//	{"matrix": [[4, 2], [2, 5]]}          # JSON
//	matrix: [[4, 2], [2, 5]]              # YAML
//	matrix = [[4.0, 2.0], [2.0, 5.0]]     # TOML
//
// The format is chosen explicitly (Decode, Encode) or from the file
// extension (Load, Save): .json, .yaml/.yml, .toml.
package matrixio
