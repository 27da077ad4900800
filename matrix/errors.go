// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the ShapeError type.
// All operations MUST return these sentinels (possibly wrapped) and tests MUST
// check them via errors.Is / errors.As. No operation panics on user input.

package matrix

import (
	"errors"
	"strings"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every sentinel message is prefixed with "matrix: ..." for grep-ability.
// Non-shape failures are wrapped with an operation tag (matrixErrorf) or with
// coordinates (denseErrorf); callers still match them with errors.Is.
//
// Shape violations are the exception: they surface as *ShapeError, returned
// UNWRAPPED by every public operation, so that err.Error() is byte-exact:
//
//	Row not the same size.
//	Operands could not be broadcast together with shape (2, 3) (3, 3).
//	Operands could not be broadcast together with shape (2, 3).

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals construction input whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows differ in length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (New/Set under WithValidateNaNInf, invalid tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned by Inverse for a zero determinant, but only when
	// the operand was built with WithValidateNaNInf.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrParse signals text that is not in the String() layout.
	ErrParse = errors.New("matrix: malformed matrix text")
)

// Message literals kept verbatim; tests compare them byte for byte.
const (
	msgRowSize   = "Row not the same size."
	msgBroadcast = "Operands could not be broadcast together with shape"
)

// ShapeError reports a structural violation: ragged construction input or
// operand shapes that do not fit the requested operation.
//
// Error() yields the exact message; Unwrap() yields the sentinel kind
// (ErrRaggedRows, ErrDimensionMismatch or ErrNonSquare).
type ShapeError struct {
	Op     string  // operation tag (opAdd, opMul, ...)
	Shapes []Shape // operand shapes in argument order; empty for ragged rows
	Row    int     // first offending row for ragged input, else -1
	kind   error
}

// Error implements error.
func (e *ShapeError) Error() string {
	if e.kind == ErrRaggedRows {
		return msgRowSize
	}
	var b strings.Builder
	b.WriteString(msgBroadcast)
	for _, s := range e.Shapes {
		b.WriteByte(' ')
		b.WriteString(s.String())
	}
	b.WriteByte('.')

	return b.String()
}

// Unwrap exposes the sentinel kind for errors.Is.
func (e *ShapeError) Unwrap() error { return e.kind }

// raggedRowsError builds the construction-time error for row i.
func raggedRowsError(op string, row int) *ShapeError {
	return &ShapeError{Op: op, Row: row, kind: ErrRaggedRows}
}

// broadcastError builds a dimension-mismatch error over the given operands.
func broadcastError(op string, kind error, shapes ...Shape) *ShapeError {
	return &ShapeError{Op: op, Shapes: shapes, Row: -1, kind: kind}
}
