// SPDX-License-Identifier: MIT

// Package render formats matrices and scalar results for the terminal,
// either styled with lipgloss or as plain aligned text.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/cholesky/matrix"
)

// ResidualWarnThreshold is the reconstruction error above which Residual
// is highlighted as a warning.
const ResidualWarnThreshold = 1e-8

// Renderer turns matrices into text. The zero value renders plain text with
// precision 0; use New.
type Renderer struct {
	plain     bool
	precision int
}

// New returns a Renderer printing entries with the given number of decimals.
func New(plain bool, precision int) *Renderer {
	if precision < 0 {
		precision = 0
	}

	return &Renderer{plain: plain, precision: precision}
}

// Plain reports whether styling is disabled.
func (r *Renderer) Plain() bool { return r.plain }

// Matrix renders m under title. Columns are right-aligned to a common width.
func (r *Renderer) Matrix(title string, m matrix.Matrix) string {
	if m == nil {
		return r.Error(title + ": <nil>")
	}
	cells, width := r.cells(m)

	var b strings.Builder
	for i, row := range cells {
		for j, s := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			pad := strings.Repeat(" ", width-len(s))
			if r.plain {
				b.WriteString(pad + s)
				continue
			}
			v, _ := m.At(i, j)
			style := cellStyle
			if v == 0 {
				style = zeroCellStyle
			}
			b.WriteString(pad + style.Render(s))
		}
		if i < len(cells)-1 {
			b.WriteByte('\n')
		}
	}

	if r.plain {
		return title + "\n" + b.String() + "\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), boxStyle.Render(b.String())) + "\n"
}

// Residual renders the reconstruction error line.
func (r *Renderer) Residual(label string, v float64) string {
	s := fmt.Sprintf("%.3e", v)
	if r.plain {
		return label + ": " + s + "\n"
	}
	style := okStyle
	if !(v <= ResidualWarnThreshold) {
		style = warnStyle
	}

	return labelStyle.Render(label+":") + " " + style.Render(s) + "\n"
}

// Error renders a failure message.
func (r *Renderer) Error(msg string) string {
	if r.plain {
		return msg + "\n"
	}

	return errorStyle.Render(msg) + "\n"
}

// cells formats every entry and returns the widest one.
func (r *Renderer) cells(m matrix.Matrix) ([][]string, int) {
	rows, cols := m.Rows(), m.Cols()
	out := make([][]string, rows)
	width := 0
	for i := 0; i < rows; i++ {
		out[i] = make([]string, cols)
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			s := fmt.Sprintf("%.*f", r.precision, v)
			if v == 0 {
				s = fmt.Sprintf("%.*f", r.precision, 0.0) // no "-0"
			}
			out[i][j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	return out, width
}
