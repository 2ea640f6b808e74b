// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/cholesky/matrix"
)

const (
	opDecode = "Decode"
	opLoad   = "Load"
	opSave   = "Save"
)

// Document is the on-disk shape of a single matrix.
type Document struct {
	Matrix [][]float64 `json:"matrix" yaml:"matrix" toml:"matrix"`
}

// NewDocument snapshots m into a Document.
func NewDocument(m *matrix.Dense) Document {
	return Document{Matrix: m.ToRows()}
}

// Decode reads a matrix document of format f and builds a *matrix.Dense.
// A missing or empty "matrix" key and ragged rows fail with matrix.ErrBadShape;
// NaN or ±Inf entries fail with matrix.ErrNaNInf.
func Decode(r io.Reader, f Format) (*matrix.Dense, error) {
	var doc Document
	if err := DecodeInto(r, f, &doc); err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFromRows(doc.Matrix)
	if err != nil {
		return nil, ioErrorf(opDecode, err)
	}

	return m, nil
}

// Load reads the matrix document at path; the format comes from the extension.
func Load(path string) (*matrix.Dense, error) {
	f, err := resolve(FormatAuto, path)
	if err != nil {
		return nil, ioErrorf(opLoad, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opLoad, err)
	}
	defer file.Close()

	return Decode(file, f)
}

// LoadInto decodes the file at path into v; the format comes from the extension.
func LoadInto(path string, v any) error {
	f, err := resolve(FormatAuto, path)
	if err != nil {
		return ioErrorf(opLoad, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ioErrorf(opLoad, err)
	}

	return DecodeInto(bytes.NewReader(data), f, v)
}

// Save encodes v into path using format f (FormatAuto: by extension).
// The file is written in full or not replaced; see WriteFile.
func Save(path string, f Format, v any) error {
	f, err := resolve(f, path)
	if err != nil {
		return ioErrorf(opSave, err)
	}
	var buf bytes.Buffer
	if err = Encode(&buf, f, v); err != nil {
		return err
	}

	return WriteFile(path, buf.Bytes())
}

// WriteFile writes data to a temporary file next to path and renames it over
// path, so readers (and watchers) never see a truncated file.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return ioErrorf(opSave, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return ioErrorf(opSave, err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return ioErrorf(opSave, err)
	}
	if err = tmp.Close(); err != nil {
		return ioErrorf(opSave, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return ioErrorf(opSave, err)
	}

	return nil
}
