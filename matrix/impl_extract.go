// SPDX-License-Identifier: MIT
// Package matrix - row, column and block extraction.
//
// Index-list policy (SelectRows / SelectColumns):
//   - duplicates collapse to one occurrence;
//   - the retained set is emitted in ascending index order;
//   - an index strictly greater than the extent is dropped silently;
//   - an index equal to the extent, or a negative one, is kept by the filter
//     and then fails with ErrOutOfRange. The bound is inclusive on purpose:
//     callers that relied on silently dropping index == extent must not start
//     receiving truncated results.
//
// All results are independent copies; see Dense.View for a no-copy window.

package matrix

import "slices"

// retainIndices deduplicates, sorts ascending and drops every index > bound.
func retainIndices(indices []int, bound int) []int {
	// 1) Filter: only indices strictly above bound are dropped.
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx <= bound {
			out = append(out, idx)
		}
	}
	// 2) Sort ascending so duplicates become adjacent and output order is fixed.
	slices.Sort(out)

	// 3) Collapse duplicates in place.
	return slices.Compact(out)
}

// allIndices returns 0..n-1.
func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// SelectRows copies the rows named by indices into a new matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (wrapped with "SelectRows").
//
// Complexity: O(k log k + k*c) for k indices.
func SelectRows(m Matrix, indices []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opError(opRows, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRows, err)
	}

	res, err := d.Induced(retainIndices(indices, d.r), allIndices(d.c))
	if err != nil {
		return nil, matrixErrorf(opRows, err)
	}

	return res, nil
}

// SelectColumns copies, for every row, the columns named by indices.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (wrapped with "SelectColumns").
//
// Complexity: O(k log k + r*k) for k indices.
func SelectColumns(m Matrix, indices []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opError(opColumns, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opColumns, err)
	}

	res, err := d.Induced(allIndices(d.r), retainIndices(indices, d.c))
	if err != nil {
		return nil, matrixErrorf(opColumns, err)
	}

	return res, nil
}

// SubMatrix copies the block of rowCount rows (always starting at row 0) and
// colCount columns starting at column fromCol.
//
// Errors:
//   - ErrNilMatrix (wrapped).
//   - *ShapeError "Operands could not be broadcast together with shape (r, c)."
//     when rowCount > Rows or colCount+fromCol > Cols.
//
// Complexity: O(rowCount*colCount).
func SubMatrix(m Matrix, rowCount, colCount, fromCol int) (*Dense, error) {
	if err := ValidateSubMatrix(m, rowCount, colCount, fromCol); err != nil {
		return nil, opError(opSubMatrix, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}

	v, err := d.View(0, fromCol, rowCount, colCount)
	if err != nil {
		return nil, opError(opSubMatrix, err)
	}

	return v.Dense(), nil
}
