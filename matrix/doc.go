// SPDX-License-Identifier: MIT

// Package matrix provides a dense float64 matrix value type and the classical
// operations over it.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix that owns its buffer and never shares it with
//     results derived from it (View is the one documented exception).
//   - Shape-checked arithmetic: Add, Sub, Scale, Transpose and Mul.
//   - Laplace-expansion algebra: Det, Minor, Cofactor, Adjugate and Inverse.
//   - Extraction: SelectRows, SelectColumns and SubMatrix.
//   - A fixed two-decimal text form (String) and its inverse (Parse).
//
// Shape violations are reported as *ShapeError whose message embeds the
// operand shapes as (rows, columns) tuples, for example:
//
//	Operands could not be broadcast together with shape (2, 3) (3, 3).
//
// Det runs in O(n!) time. It is exact and easy to audit on small matrices
// and unusable on large ones; attach a logger with WithLogger to get a warning
// when an expansion exceeds WithLaplaceWarnOrder.
//
// Singular matrices are not rejected by Inverse by default: 1/det follows
// IEEE-754 and the result carries ±Inf or NaN cells. Build the operand with
// WithValidateNaNInf to turn that into ErrSingular.
//
// See the examples in this package for usage patterns.
package matrix
