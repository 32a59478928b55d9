// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i+i*n] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix returns a deep copy of m (same type if m is *Dense).
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// ---------- Multiplication ----------

// MultiplyNaive is a long-name alias of MulNaive.
func MultiplyNaive(a, b Matrix) (*Dense, error) { return MulNaive(a, b) }

// MultiplyTile is a long-name alias of MulTile.
func MultiplyTile(a, b Matrix, tsize int, opts ...Option) (*Dense, error) {
	return MulTile(a, b, tsize, opts...)
}

// MulTileDefault runs MulTile with DefaultTileSize().
func MulTileDefault(a, b Matrix, opts ...Option) (*Dense, error) {
	return MulTile(a, b, DefaultTileSize(), opts...)
}
