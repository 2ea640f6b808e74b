// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for unsupported or unresolvable formats.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrDecode wraps parser failures of the underlying codec.
	ErrDecode = errors.New("matrixio: decode failed")
)

func ioErrorf(op string, err error) error {
	return fmt.Errorf("matrixio: %s: %w", op, err)
}
