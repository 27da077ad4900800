// SPDX-License-Identifier: MIT
// Package matrix - determinant, cofactor, adjugate and inverse by Laplace
// (cofactor) expansion.
//
// Purpose:
//   - Exact, auditable results on small matrices: integer input keeps every
//     cofactor integral, so Det of an integer matrix is exact.
//
// Complexity:
//   - Det is O(n!) time and O(n^2) space per recursion level. Cofactor,
//     Adjugate and Inverse run n^2 determinants of order n-1.
//   - This is a ceiling, not a bug: use an LU-based library beyond ~10 rows.
//     WithLogger + WithLaplaceWarnOrder surface oversized calls.
//
// Determinism:
//   - Expansion is always along row 0, columns ascending.
//   - Products are rounded before accumulation (explicit float64 conversion
//     forbids fused multiply-add), so results are bit-identical everywhere.

package matrix

import "go.uber.org/zap"

// squareOperand runs the square precondition and returns the flat operand.
func squareOperand(op string, m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opError(op, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	return d, nil
}

// warnExpensive logs once per public call when the order exceeds the
// configured Laplace warning order.
func (m *Dense) warnExpensive(op string) {
	if m.r <= m.opts.laplaceWarnOrder {
		return
	}
	m.opts.logger.Warn("laplace expansion on large matrix",
		zap.String("op", op),
		zap.Int("order", m.r),
		zap.Int("warn_order", m.opts.laplaceWarnOrder),
	)
}

// alternating returns (-1)^k.
func alternating(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// minorData copies the (n-1)×(n-1) buffer of a without row and column col.
// Internal: callers guarantee 0 <= row, col < n.
func minorData(a []float64, n, row, col int) []float64 {
	out := make([]float64, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			out = append(out, a[i*n+j])
		}
	}

	return out
}

// laplaceDet evaluates the determinant of the n×n row-major buffer a.
//
// Base cases: 0×0 → 1 (empty product), 1×1 → a00, 2×2 → a00*a11 - a10*a01.
// Otherwise expands along row 0, skipping zero leading entries (their term
// is zero anyway).
func laplaceDet(a []float64, n int) float64 {
	// 1) Closed forms end the recursion.
	switch n {
	case 0:
		return 1 // empty product
	case 1:
		return a[0]
	case 2:
		return float64(a[0]*a[3]) - float64(a[2]*a[1]) // a00*a11 - a10*a01
	}

	// 2) Expand along row 0: a[j] is the leading entry of column j.
	det := ZeroSum
	for j := 0; j < n; j++ {
		// 2.1) A zero leading entry contributes a zero term.
		if a[j] == 0 {
			continue
		}
		// 2.2) Signed term: (-1)^j * a0j * det(minor(0, j)), rounded before accumulation.
		det += float64(alternating(j) * a[j] * laplaceDet(minorData(a, n, 0, j), n-1))
	}

	return det
}

// cofactorDense computes cof[i][j] = (-1)^(i+j) * det(minor(i, j)) for every cell.
func cofactorDense(d *Dense) *Dense {
	// 1) Square result inheriting the operand's options.
	n := d.r
	res := newDenseLike(d, n, n)
	var i, j int
	// 2) Every cell, no zero-skip: each needs its own minor determinant.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// 2.1) Checkerboard sign times det of the minor without row i, column j.
			res.data[i*n+j] = float64(alternating(i+j) * laplaceDet(minorData(d.data, n, i, j), n-1))
		}
	}

	return res
}

// Det returns the determinant of a square matrix by Laplace expansion.
//
// Errors:
//   - ErrNilMatrix (wrapped).
//   - *ShapeError "Operands could not be broadcast together with shape (r, c)."
//     (ErrNonSquare) for non-square input.
//
// Complexity: O(n!).
func Det(m Matrix) (float64, error) {
	d, err := squareOperand(opDet, m)
	if err != nil {
		return 0, err
	}
	d.warnExpensive(opDet)

	return laplaceDet(d.data, d.r), nil
}

// Minor returns a copy of m without row i and column j.
// m need not be square.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (wrapped with "Minor").
//
// Complexity: O(r*c).
func Minor(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opError(opMinor, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, i, j, ErrOutOfRange))
	}

	res, err := d.Induced(skipIndex(d.r, i), skipIndex(d.c, j))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// skipIndex returns 0..n-1 without k.
func skipIndex(n, k int) []int {
	out := make([]int, 0, n-1)
	for x := 0; x < n; x++ {
		if x != k {
			out = append(out, x)
		}
	}

	return out
}

// Cofactor returns the cofactor matrix: (-1)^(i+j) times the determinant of
// minor (i, j), for every cell.
//
// Errors: as Det.
// Complexity: O(n^2 * (n-1)!).
func Cofactor(m Matrix) (Matrix, error) {
	d, err := squareOperand(opCofactor, m)
	if err != nil {
		return nil, err
	}
	d.warnExpensive(opCofactor)

	return cofactorDense(d), nil
}

// Adjugate returns the transpose of the cofactor matrix.
//
// Errors: as Det.
func Adjugate(m Matrix) (Matrix, error) {
	d, err := squareOperand(opAdjugate, m)
	if err != nil {
		return nil, err
	}
	d.warnExpensive(opAdjugate)

	return transposeDense(cofactorDense(d)), nil
}

// Inverse returns Adjugate(m) scaled by 1/Det(m).
//
// Behavior highlights:
//   - Default policy: a zero determinant is not an error. 1/0 is +Inf (or
//     -Inf for -0) and the result carries ±Inf/NaN cells. With a logger
//     attached a Warn is emitted.
//   - WithValidateNaNInf on m: a zero determinant returns ErrSingular.
//
// Errors:
//   - as Det; ErrSingular (wrapped, validating policy only).
//
// Complexity: O(n^2 * (n-1)! + n!).
func Inverse(m Matrix) (Matrix, error) {
	d, err := squareOperand(opInverse, m)
	if err != nil {
		return nil, err
	}
	d.warnExpensive(opInverse)

	adj := transposeDense(cofactorDense(d))
	det := laplaceDet(d.data, d.r)
	if det == 0 {
		if d.opts.validateNaNInf {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		d.opts.logger.Warn("singular matrix: inverse carries non-finite values",
			zap.String("op", opInverse),
			zap.Float64("det", det),
		)
	}

	res, err := scaleDense(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}
