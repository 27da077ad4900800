// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin entry points named after the classic operation vocabulary
//     (mult, mult_scalar, cof, adj, inv, get_rows, ...) for discoverability.
//   - Each facade delegates to the canonical kernel.

package matrix

// ---------- Constructors & Utilities ----------

// ZerosLike returns a new zero matrix with the same shape (and, for *Dense,
// the same options) as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return newDenseLike(d, d.r, d.c), nil
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, opError("IdentityLike", err)
	}
	var id *Dense
	if d, ok := m.(*Dense); ok {
		id = newDenseLike(d, d.r, d.c)
	} else {
		id, _ = NewDense(m.Rows(), m.Cols()) // shape already validated
	}
	for i := 0; i < id.r; i++ {
		id.data[i*id.c+i] = 1
	}

	return id, nil
}

// GetSize returns the (rows, columns) shape of m.
func GetSize(m Matrix) Shape { return ShapeOf(m) }

// ---------- Arithmetic ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Mult is an alias for Mul: matrix product a × b.
func Mult(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// MultScalar is an alias for Scale: element-wise m * k.
func MultScalar(m Matrix, k float64) (Matrix, error) { return Scale(m, k) }

// T is an alias for Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ---------- Laplace algebra ----------

// Cof is an alias for Cofactor.
func Cof(m Matrix) (Matrix, error) { return Cofactor(m) }

// Adj is an alias for Adjugate.
func Adj(m Matrix) (Matrix, error) { return Adjugate(m) }

// Inv is an alias for Inverse.
func Inv(m Matrix) (Matrix, error) { return Inverse(m) }

// ---------- Extraction ----------

// GetRows is an alias for SelectRows.
func GetRows(m Matrix, indices []int) (*Dense, error) { return SelectRows(m, indices) }

// GetColumns is an alias for SelectColumns.
func GetColumns(m Matrix, indices []int) (*Dense, error) { return SelectColumns(m, indices) }

// GetSubMatrix is an alias for SubMatrix.
func GetSubMatrix(m Matrix, rowCount, colCount, fromCol int) (*Dense, error) {
	return SubMatrix(m, rowCount, colCount, fromCol)
}

// ---------- Comparison ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN is close to nothing; ±Inf is close only to itself.
//
// Errors: ErrNilMatrix, ErrNaNInf (non-finite tolerance), *ShapeError.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports whether a and b have the same shape and identical cells.
func Equal(a, b Matrix) bool { return ewEqual(a, b) }
