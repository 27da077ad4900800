// Package lvlmat is a small dense-matrix toolkit: one value type and the
// classical operations a linear-algebra course starts with.
//
// What is inside?
//
//	matrix/    the Dense row-major matrix, shape-checked arithmetic
//	           (Add, Sub, Mul, Scale, Transpose), row/column/block extraction,
//	           Laplace-expansion Det, Cofactor, Adjugate and Inverse,
//	           the two-decimal text form and YAML encoding.
//	examples/  runnable programs: power iteration (spectral) and a
//	           3×3 linear solve with zap logging (linsolve).
//
// Why Laplace expansion?
//
//   - Exact on small integer matrices: cofactors of integer input stay integral.
//   - Transparent: every number can be traced back to a minor.
//   - Deliberately not scalable: cost grows as O(n!). For anything beyond
//     a handful of rows use an LU-based library.
//
// Quick example:
//
//	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}})
//	d, _ := matrix.Det(a)    // -2
//	inv, _ := matrix.Inverse(a)
//	fmt.Println(inv)         // [[-2.00, 1.00]
//	                         // [1.50, -0.50]]
//
//	go get github.com/katalvlaran/lvlmat
package lvlmat
