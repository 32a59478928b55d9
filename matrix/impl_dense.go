// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Own one contiguous buffer per matrix with the explicit index formula i + j*rows.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Provide value semantics on top of a pointer type: Copy/Clone are deep,
//     Move transfers the buffer and empties the source, CopyFrom replaces contents.
//   - Keep zero-element shapes free of any allocation (data == nil).
//
// AI-Hints:
//   - Kernels in impl_multiply.go operate on the flat data slice directly when both
//     operands are *Dense; any other Matrix goes through At/Set.
//   - RawData aliases the buffer; BufferVector is a snapshot.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Copy/Clone: O(r*c); Move: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxBufferAt = "BufferAt" // linear accessor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>", preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete column-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in column-major order (offset = i + j*r);
//     it is nil exactly when r*c == 0.
//   - finiteOnly enables NaN/Inf rejection on writes (see WithFiniteOnly).
//
// A Dense exclusively owns data: no two values returned by this package share
// a buffer, except through RawData which is documented as aliasing.
type Dense struct {
	r, c       int       // row and column counts (>= 0)
	data       []float64 // contiguous column-major storage (len == r*c)
	finiteOnly bool      // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// allocBuffer obtains a zero-filled buffer for a rows×cols shape.
// MAIN DESCRIPTION:
//   - Single allocation site of the package; enforces the element cap and
//     maps allocator refusals to ErrAllocationFailure.
//
// Implementation:
//   - Stage 1: reject negative dimensions (ErrInvalidDimensions).
//   - Stage 2: zero-element shapes return a nil buffer.
//   - Stage 3: rows > limit/cols catches both int overflow and the cap.
//   - Stage 4: make() under recover; a runtime "len out of range" panic
//     becomes ErrAllocationFailure.
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
func allocBuffer(rows, cols, limit int) (buf []float64, err error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if rows == 0 || cols == 0 {
		return nil, nil
	}
	if rows > limit/cols {
		return nil, ErrAllocationFailure
	}
	defer func() {
		if recover() != nil {
			buf, err = nil, ErrAllocationFailure
		}
	}()

	return make([]float64, rows*cols), nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// NewDense creates an r×c zero matrix using column-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation and option-driven numeric policy.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: allocate via allocBuffer (nil buffer for 0×n / n×0).
//
// Behavior highlights:
//   - Elements start at +0; callers may rely on it.
//   - 0×0, 0×n and n×0 are legal and allocate nothing.
//
// Errors:
//   - ErrInvalidDimensions (negative rows/cols).
//   - ErrAllocationFailure (overflowing shape or above WithMaxElements cap).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	buf, err := allocBuffer(rows, cols, o.maxElements)
	if err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: buf, finiteOnly: o.finiteOnly}, nil
}

// NewDenseFrom creates an r×c matrix populated from a ROW-MAJOR flat slice:
// values[i*cols+j] lands at position (i, j), i.e. at buffer offset i + j*rows.
//
// Validation happens before allocation, so a failing call returns a nil
// matrix and allocates nothing.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocationFailure as in NewDense.
//   - ErrShapeMismatch when len(values) != rows*cols.
//   - ErrNaNInf when WithFiniteOnly is set and values hold NaN/±Inf.
func NewDenseFrom(rows, cols int, values []float64, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if err := ValidateValuesLen(values, rows, cols); err != nil {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", rows, cols, err)
	}
	o := gatherOptions(opts...)
	if o.finiteOnly {
		if err := ValidateFinite(values); err != nil {
			return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", rows, cols, err)
		}
	}
	buf, err := allocBuffer(rows, cols, o.maxElements)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", rows, cols, err)
	}
	m := &Dense{r: rows, c: cols, data: buf, finiteOnly: o.finiteOnly}
	m.fillRowMajor(values)

	return m, nil
}

// fillRowMajor scatters a row-major slice into the column-major buffer.
// Assumes len(values) == r*c.
func (m *Dense) fillRowMajor(values []float64) {
	var i, j, k int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			m.data[i+j*m.r] = values[k]
			k++
		}
	}
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Size returns Rows()*Cols(), which always equals the buffer length.
func (m *Dense) Size() int { return m.r * m.c }

// FiniteOnly reports whether writes reject NaN/±Inf.
func (m *Dense) FiniteOnly() bool { return m.finiteOnly }

// indexOf bounds-checks (row, col) and returns the column-major offset
// row + col*r, or ErrOutOfRange. Public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Column-major offset: i + j*r.
	return row + col*m.r, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns (0, wrapped sentinel).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf under WithFiniteOnly.
//
// The cell is left untouched on error. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.finiteOnly && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// BufferAt returns the element at linear column-major offset k.
// Errors: ErrOutOfRange unless 0 <= k < Size().
func (m *Dense) BufferAt(k int) (float64, error) {
	if k < 0 || k >= len(m.data) {
		return 0, fmt.Errorf("Dense.%s(%d): %w", ctxBufferAt, k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// RawData exposes the column-major backing slice WITHOUT copying.
// Writes through the slice are visible in m; the slice is nil for an empty
// matrix. Intended for kernels and benchmarks; use BufferVector for a snapshot.
func (m *Dense) RawData() []float64 { return m.data }

// BufferVector returns a copy of the buffer in stored (column-major) order.
// The result always has length Size() and is never nil.
// Complexity: O(r*c).
func (m *Dense) BufferVector() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Copy returns a deep copy (new buffer, same numeric policy).
// Mutations on either value never affect the other.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	var cp []float64
	if len(m.data) > 0 {
		cp = make([]float64, len(m.data))
		copy(cp, m.data)
	}

	return &Dense{r: m.r, c: m.c, data: cp, finiteOnly: m.finiteOnly}
}

// Clone returns a deep copy as a Matrix; the dynamic type is *Dense.
func (m *Dense) Clone() Matrix { return m.Copy() }

// Move transfers buffer ownership to a new value and leaves m as an empty
// 0×0 matrix with a nil buffer. The numeric policy stays on both values.
// Complexity: O(1), no element copies.
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data, finiteOnly: m.finiteOnly}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// CopyFrom replaces m with a deep copy of src.
// MAIN DESCRIPTION:
//   - Assignment from another value: shape, elements and numeric policy.
//
// Implementation:
//   - Stage 1: nil guard; self-assignment is a no-op.
//   - Stage 2: reallocate only when the shape differs; the new buffer is
//     obtained before the old one is dropped, so m is unchanged on failure.
//   - Stage 3: copy elements.
//
// Errors:
//   - ErrNilMatrix when src is nil; ErrAllocationFailure from allocBuffer.
//
// Complexity:
//   - Time O(r*c); Space O(r*c) only when the shape changes.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return fmt.Errorf("Dense.CopyFrom: %w", ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if m.r != src.r || m.c != src.c {
		buf, err := allocBuffer(src.r, src.c, math.MaxInt)
		if err != nil {
			return fmt.Errorf("Dense.CopyFrom(%dx%d): %w", src.r, src.c, err)
		}
		m.r, m.c, m.data = src.r, src.c, buf
	}
	copy(m.data, src.data)
	m.finiteOnly = src.finiteOnly

	return nil
}

// SetValues overwrites every element from a ROW-MAJOR flat slice
// (values[i*Cols()+j] → (i, j)). The shape never changes.
//
// Errors:
//   - ErrShapeMismatch when len(values) != Size(); m is untouched.
//   - ErrNaNInf under WithFiniteOnly; checked before any write.
//
// Complexity: O(r*c).
func (m *Dense) SetValues(values []float64) error {
	if err := ValidateValuesLen(values, m.r, m.c); err != nil {
		return fmt.Errorf("Dense.SetValues: %w", err)
	}
	if m.finiteOnly {
		if err := ValidateFinite(values); err != nil {
			return fmt.Errorf("Dense.SetValues: %w", err)
		}
	}
	m.fillRowMajor(values)

	return nil
}

// Equal reports whether o has the same shape and bit-equal elements
// (plain == per element, so NaN makes a matrix unequal to itself).
func (m *Dense) Equal(o Matrix) bool { return Equal(m, o) }

// String provides a readable row-wise dump for diagnostics.
// Rows are rendered as "[a, b]\n" regardless of the column-major storage.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[i+j*m.r]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
