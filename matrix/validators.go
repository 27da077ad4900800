// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for the precondition checks
//     every operation runs before it allocates or writes anything.
//   - Shape guards return *ShapeError (exact message, sentinel via Unwrap);
//     other guards return plain sentinels so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and O(1), except ValidateRowLengths (O(rows)).
//
// Note:
//   - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRowLengths ensures every row of a construction input has the length
// of the first row. Empty input is accepted.
//
// Errors: *ShapeError "Row not the same size." (ErrRaggedRows).
// Complexity: O(rows).
func ValidateRowLengths(rows [][]float64) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return raggedRowsError(ctxNew, i)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal (rows, columns).
// Assumes a and b are not nil.
//
// Errors: *ShapeError with both shapes (ErrDimensionMismatch).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	sa, sb := ShapeOf(a), ShapeOf(b)
	if sa != sb {
		return broadcastError("ValidateSameShape", ErrDimensionMismatch, sa, sb)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows (non-nil operands first).
//
// Errors: ErrNilMatrix; *ShapeError with both shapes (ErrDimensionMismatch).
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return broadcastError("ValidateMulCompatible", ErrDimensionMismatch, ShapeOf(a), ShapeOf(b))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
//
// Errors: *ShapeError with the single shape (ErrNonSquare).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if s := ShapeOf(m); !s.Square() {
		return broadcastError("ValidateSquare", ErrNonSquare, s)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateSubMatrix ensures the top-left block of rowCount rows and colCount
// columns, starting at column fromCol, lies inside m: rowCount <= Rows and
// colCount+fromCol <= Cols. Negative arguments are rejected the same way.
//
// Errors: ErrNilMatrix; *ShapeError with m's shape (ErrDimensionMismatch).
// Complexity: O(1).
func ValidateSubMatrix(m Matrix, rowCount, colCount, fromCol int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	s := ShapeOf(m)
	// colCount+fromCol may overflow int; compare against the remaining columns.
	if rowCount < 0 || colCount < 0 || fromCol < 0 ||
		rowCount > s.Rows || colCount > s.Cols-fromCol {
		return broadcastError("ValidateSubMatrix", ErrDimensionMismatch, s)
	}

	return nil
}

// ValidateFiniteTolerance rejects NaN/±Inf tolerances for comparisons.
func ValidateFiniteTolerance(tol ...float64) error {
	for _, t := range tol {
		if isNonFinite(t) {
			return validatorErrorf("ValidateFiniteTolerance", ErrNaNInf)
		}
	}

	return nil
}
