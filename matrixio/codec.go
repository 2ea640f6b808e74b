// SPDX-License-Identifier: MIT

package matrixio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	opDecodeInto = "DecodeInto"
	opEncode     = "Encode"
)

// DecodeInto parses one document of format f from r into v.
// An empty YAML or JSON stream leaves v untouched.
func DecodeInto(r io.Reader, f Format, v any) error {
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(v)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(v)
	default:
		return ioErrorf(opDecodeInto, fmt.Errorf("%w: %s", ErrUnknownFormat, f))
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return ioErrorf(opDecodeInto, fmt.Errorf("%w: %s: %w", ErrDecode, f, err))
	}

	return nil
}

// Encode writes v to w in format f.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return ioErrorf(opEncode, err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return ioErrorf(opEncode, err)
		}
		if err := enc.Close(); err != nil {
			return ioErrorf(opEncode, err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return ioErrorf(opEncode, err)
		}
	default:
		return ioErrorf(opEncode, fmt.Errorf("%w: %s", ErrUnknownFormat, f))
	}

	return nil
}
