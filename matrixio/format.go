// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the serialization format of a document.
type Format int

const (
	// FormatAuto resolves the format from the file extension.
	FormatAuto Format = iota

	// FormatJSON is encoding/json with two-space indentation.
	FormatJSON

	// FormatYAML is YAML 1.2 via gopkg.in/yaml.v3.
	FormatYAML

	// FormatTOML is TOML v1.0 via github.com/BurntSushi/toml.
	FormatTOML
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat maps a user-supplied name ("json", "yaml", "yml", "toml", "auto")
// to a Format. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DetectFormat derives the format from the extension of path.
// Unknown extensions yield FormatAuto.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatAuto
	}
}

// resolve turns FormatAuto into a concrete format using path.
func resolve(f Format, path string) (Format, error) {
	if f == FormatAuto {
		f = DetectFormat(path)
	}
	if f == FormatAuto {
		return FormatAuto, fmt.Errorf("%w: cannot infer from %q", ErrUnknownFormat, filepath.Base(path))
	}

	return f, nil
}
