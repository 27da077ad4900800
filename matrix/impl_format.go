// SPDX-License-Identifier: MIT
// Package matrix - text form and YAML encoding.
//
// Text layout (String / Format / Parse):
//
//	[[1.00, 2.00]
//	[3.00, 4.00]]
//
//   - rows joined by "\n", each wrapped in brackets, the whole wrapped once more;
//   - every value fixed-point with two fractional digits, rounded half-to-even
//     on the binary value; negative zero keeps its sign ("-0.00");
//   - non-finite values print as NaN, +Inf, -Inf.
//
// Parse reads that layout back (precision is whatever the text holds), so
// Parse(m.String()).String() == m.String() for every m.

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtRowBreak = "\n"
	_fmtSep      = ", "
	_fmtPrec     = 2
)

// Compile-time assertions for YAML conformance.
var (
	_ yaml.Marshaler   = (*Dense)(nil)
	_ yaml.Unmarshaler = (*Dense)(nil)
)

// formatValue renders one cell.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', _fmtPrec, 64)
}

// String renders the matrix in the two-decimal text layout.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowBreak)
		}
		b.WriteString(_fmtOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(formatValue(m.data[base+j]))
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Format renders any Matrix in the String layout.
func Format(m Matrix) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", err
	}
	d, err := asDense(m)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

// Parse reads the String layout back into a matrix.
//
// Implementation:
//   - Stage 1: join rows with ", " so the text is one YAML flow sequence.
//   - Stage 2: decode cells as raw scalars and convert with strconv, which
//     also accepts NaN / +Inf / -Inf.
//   - Stage 3: build with New (ragged rows are rejected).
//
// Errors:
//   - ErrParse (wrapped) for malformed text or cells.
//   - *ShapeError "Row not the same size." for ragged rows.
func Parse(s string, opts ...Option) (*Dense, error) {
	text := strings.TrimSpace(s)
	if !strings.HasPrefix(text, _fmtOpen) || !strings.HasSuffix(text, _fmtClose) {
		return nil, matrixErrorf(opParse, ErrParse)
	}
	text = strings.ReplaceAll(text, _fmtClose+_fmtRowBreak+_fmtOpen, _fmtClose+_fmtSep+_fmtOpen)

	var cells [][]string
	if err := yaml.Unmarshal([]byte(text), &cells); err != nil {
		return nil, matrixErrorf(opParse, fmt.Errorf("%w: %v", ErrParse, err))
	}

	rows := make([][]float64, len(cells))
	for i, row := range cells {
		rows[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, matrixErrorf(opParse, fmt.Errorf("cell (%d,%d) %q: %w", i, j, cell, ErrParse))
			}
			rows[i][j] = v
		}
	}

	m, err := New(rows, opts...)
	if err != nil {
		return nil, opError(opParse, err)
	}

	return m, nil
}

// MarshalYAML encodes the matrix as a sequence of rows.
func (m *Dense) MarshalYAML() (interface{}, error) {
	return m.Values(), nil
}

// UnmarshalYAML decodes a sequence of rows through New, so ragged input is
// rejected with the same *ShapeError. Options of the receiver are kept when
// it was already constructed.
func (m *Dense) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]float64
	if err := value.Decode(&rows); err != nil {
		return err
	}

	var opts []Option
	if m.opts.logger != nil { // receiver was constructed: keep its policy
		opts = append(opts, withResolved(m.opts))
	}
	built, err := New(rows, opts...)
	if err != nil {
		return err
	}
	*m = *built

	return nil
}
