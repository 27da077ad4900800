// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
package matrix

import "fmt"

// Shape is the (rows, columns) extent of a matrix.
// Its String form, "(r, c)", is embedded verbatim in ShapeError messages.
type Shape struct {
	Rows int // number of rows (>= 0)
	Cols int // number of columns (>= 0)
}

// String renders the shape as a tuple, e.g. "(2, 3)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Square reports whether Rows == Cols.
func (s Shape) Square() bool { return s.Rows == s.Cols }

// ShapeOf returns the shape of any Matrix.
// Complexity: O(1).
func ShapeOf(m Matrix) Shape {
	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// Matrix represents a two-dimensional mutable array of float64 values.
// Shape is fixed at construction; only element values can change.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
