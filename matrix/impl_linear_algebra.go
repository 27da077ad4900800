// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose and
// scalar scaling. All functions perform fail-fast validation before any
// allocation and always return a freshly allocated *Dense.
//
// Notes:
//   - Operands that are not *Dense are copied once through At (asDense);
//     the loops below only ever see flat row-major buffers.
//   - Results inherit options (policy, logger) from the left operand.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for sums of products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opDet       = "Det"
	opMinor     = "Minor"
	opCofactor  = "Cofactor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
	opRows      = "SelectRows"
	opColumns   = "SelectColumns"
	opSubMatrix = "SubMatrix"
	opAllClose  = "AllClose"
	opParse     = "Parse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// opError stamps op on a *ShapeError and returns it unwrapped, so its message
// stays exact; any other error is wrapped with matrixErrorf.
func opError(op string, err error) error {
	if se, ok := err.(*ShapeError); ok {
		se.Op = op
		return se
	}

	return matrixErrorf(op, err)
}

// denseOperands converts both operands for a binary kernel.
func denseOperands(op string, a, b Matrix) (*Dense, *Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(op, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, nil, matrixErrorf(op, err)
	}

	return da, db, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes; operands are not mutated.
// Complexity: O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, opError(opTag, err)
	}
	da, db, err := denseOperands(opTag, a, b)
	if err != nil {
		return nil, err
	}

	res := newDenseLike(da, da.r, da.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (wrapped, nil input).
//   - *ShapeError "Operands could not be broadcast together with shape (r1, c1) (r2, c2)."
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B; same contract as Add.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate non-nil operands and A.Cols == B.Rows.
//   - Stage 2: plain i→j→n triple loop; each cell starts at ZeroSum.
//
// Behavior highlights:
//   - Every product is rounded before it is accumulated (no fused multiply-add),
//     so results are bit-identical across architectures.
//
// Errors:
//   - ErrNilMatrix (wrapped).
//   - *ShapeError "Operands could not be broadcast together with shape (r1, c1) (r2, c2)."
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opError(opMul, err)
	}
	da, db, err := denseOperands(opMul, a, b)
	if err != nil {
		return nil, err
	}

	rows, inner, cols := da.r, da.c, db.c
	res := newDenseLike(da, rows, cols)
	var (
		i, j, n int
		sum     float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for n = 0; n < inner; n++ {
				sum += float64(da.data[i*inner+n] * db.data[n*cols+j])
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Shape (r, c) becomes (c, r). Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opError(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transposeDense(d), nil
}

// transposeDense is the kernel shared by Transpose and Adjugate.
func transposeDense(d *Dense) *Dense {
	res := newDenseLike(d, d.c, d.r)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res
}

// Scale returns a new matrix whose elements are m[i,j] * k.
// No shape check applies. Under WithValidateNaNInf a non-finite product is
// rejected with ErrNaNInf; the operand is never touched either way.
// Complexity: O(r*c).
func Scale(m Matrix, k float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opError(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return scaleDense(d, k)
}

// scaleDense scales a private clone of d so a policy failure leaves no trace.
func scaleDense(d *Dense, k float64) (*Dense, error) {
	res := d.Clone().(*Dense)
	if err := res.Apply(func(_, _ int, v float64) float64 { return v * k }); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}
