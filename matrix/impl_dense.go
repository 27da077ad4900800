// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own the buffer exclusively: constructors copy their input, derived results never alias.
//   - Support no-copy views (MatrixView) and copy-based submatrix extraction (Induced).
//
// Complexity quicksheet:
//   - New: O(r*c) copy; NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     View: O(1); Induced: O(r'*c').

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxApply  = "Apply"   // method tag used in error wrappers
	ctxNew    = "New"     // ctor tag for New
	ctxView   = "View"    // ctor tag for Dense.View
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts carries the numeric policy and logger resolved at construction.
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c)
	opts Options   // resolved options; inherited by Clone and derived results
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New builds a matrix from nested rows, copying every value.
//
// Implementation:
//   - Stage 1: rows = len(initial); cols = len(initial[0]) when non-empty.
//   - Stage 2: every later row must have cols elements, else *ShapeError
//     "Row not the same size." (ErrRaggedRows).
//   - Stage 3: copy into a flat buffer, enforcing the numeric policy.
//
// Behavior highlights:
//   - Empty input yields the 0×0 matrix; k empty rows yield a k×0 matrix.
//   - The caller's slices are never retained.
//
// Errors:
//   - *ShapeError (ErrRaggedRows), ErrNaNInf under WithValidateNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(initial [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateRowLengths(initial); err != nil {
		return nil, err // *ShapeError, unwrapped
	}

	rows := len(initial)
	cols := 0
	if rows > 0 {
		cols = len(initial[0])
	}

	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols), opts: o}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if o.validateNaNInf && isNonFinite(initial[i][j]) {
				return nil, denseErrorf(ctxNew, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*cols:(i+1)*cols], initial[i])
	}

	return m, nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// Zero-sized shapes are legal; negative ones return ErrInvalidDimensions.
// Complexity: O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols), // make() zero-fills deterministically
		opts: gatherOptions(opts...),
	}, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// newDenseLike allocates an r×c zero result that inherits policy from src.
// Internal: callers guarantee r, c >= 0.
func newDenseLike(src *Dense, rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), opts: src.opts}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, columns). Complexity: O(1).
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Options returns the resolved options the matrix was built with.
func (m *Dense) Options() Options { return m.opts }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same options).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// Values returns the matrix as freshly allocated nested rows.
// Mutating the result never affects m.
// Complexity: O(r*c).
func (m *Dense) Values() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
//
// Behavior highlights:
//   - Respects the numeric policy (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//     For all-or-nothing semantics transform a Clone.
//
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.opts.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Behavior highlights:
//   - Writes via the view reflect in the base; policy is inherited.
//   - Zero-area windows are legal.
//
// Errors:
//   - *ShapeError (ErrDimensionMismatch) with the base shape when the window
//     does not fit.
//
// Complexity: O(1).
func (m *Dense) View(r0, c0, rows, cols int) (*MatrixView, error) {
	// r0+rows and c0+cols may overflow int; compare against the remaining extent.
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || rows > m.r-r0 || cols > m.c-c0 {
		return nil, broadcastError(ctxView, ErrDimensionMismatch, m.Shape())
	}

	return &MatrixView{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced materializes a copy using explicit index lists (duplicates allowed,
// order preserved).
//
// Errors:
//   - ErrOutOfRange when an index falls outside the base.
//
// Complexity: O(len(rowsIdx)*len(colsIdx)).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	res := newDenseLike(m, rp, cp)

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}
	// A zero-row selection still has to validate the column indices.
	if rp == 0 {
		for _, cj = range colsIdx {
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
		}
	}

	return res, nil
}

// MatrixView is a non-owning window into a Dense (shared storage).
// It does not implement Matrix (no Clone) so kernels never receive an alias.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	r    int    // view height
	c    int    // view width
}

// Rows returns the number of rows in the view.
func (v *MatrixView) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView) Cols() int { return v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
func (v *MatrixView) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes element (i,j) through to the base, honoring the base numeric policy.
func (v *MatrixView) Set(i, j int, val float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if v.base.opts.validateNaNInf && isNonFinite(val) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}

// Dense copies the window into an independent matrix (one copy per row).
// Complexity: O(r*c).
func (v *MatrixView) Dense() *Dense {
	res := newDenseLike(v.base, v.r, v.c)
	var src int
	for i := 0; i < v.r; i++ {
		src = (v.r0+i)*v.base.c + v.c0
		copy(res.data[i*v.c:(i+1)*v.c], v.base.data[src:src+v.c])
	}

	return res
}

// asDense returns m itself when it is a *Dense, or a *Dense copy of any
// other Matrix read through At. Kernels run on the flat buffer only.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
