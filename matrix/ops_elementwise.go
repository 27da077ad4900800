// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison kernels shared by AllClose and Equal.
//
// Determinism & Performance:
//   - Single flat loop 0..n-1 over both buffers; early exit on first mismatch.
//   - Time O(r*c), Space O(1) beyond the optional asDense copy.

package matrix

import "math"

// ewAllClose checks |a-b| ≤ atol + rtol*|b| for every cell.
// NaN is close to nothing; an infinity is close only to the same infinity.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateFiniteTolerance(rtol, atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, opError(opAllClose, err)
	}
	da, db, err := denseOperands(opAllClose, a, b)
	if err != nil {
		return false, err
	}

	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			if av != bv {
				return false, nil
			}
			continue
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// ewEqual reports exact cell equality; shape mismatch and nil operands are
// simply unequal.
func ewEqual(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, db, err := denseOperands("Equal", a, b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if da.data[idx] != db.data[idx] {
			return false
		}
	}

	return true
}
