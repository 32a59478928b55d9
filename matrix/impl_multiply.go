// SPDX-License-Identifier: MIT

// Package matrix - matrix-matrix multiplication kernels.
//
// Purpose:
//   - MulNaive: triply nested dot-product kernel, one output cell at a time.
//   - MulTile : six-deep cache-blocked kernel with a caller-chosen tile size.
//
// Both kernels accept any Matrix, validate through validators.go, allocate
// exactly one zero-filled result and never write through their inputs, so
// passing the same matrix twice is safe. When both operands are *Dense the
// loops index the column-major buffers directly; otherwise they read through
// At with the same loop order.
//
// Determinism:
//   - Sums run left to right in ascending inner index from +0; no reordering,
//     no parallelism. MulTile with tsize >= a.Cols() is bit-identical to MulNaive.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMulNaive = "MulNaive"
	opMulTile  = "MulTile"
)

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulNaive performs C = A × B with the straightforward triple loop.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, a.Cols == b.Rows).
//   - Stage 2: allocate C (a.Rows × b.Cols).
//   - Stage 3: loop i → k → j; accumulate Σ_j A(i,j)·B(j,k) in a scalar and
//     write C(i,k) once. For *Dense, column k of B is contiguous.
//
// Behavior highlights:
//   - a.Cols == 0 yields an all-zero a.Rows × b.Cols result (empty sums).
//   - Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrAllocationFailure (wrapped with "MulNaive").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulNaive(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}

	var (
		i, j, k int
		v       float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i + j*rows; db.data layout: j + k*inner.
			var colB []float64
			for i = 0; i < rows; i++ {
				for k = 0; k < cols; k++ {
					colB = db.data[k*inner : (k+1)*inner]
					v = ZeroSum
					for j = 0; j < inner; j++ {
						v += da.data[i+j*rows] * colB[j]
					}
					res.data[i+k*rows] = v
				}
			}

			return res, nil
		}
	}

	// Fallback: same i → k → j order through the interface.
	var av, bv float64
	for i = 0; i < rows; i++ {
		for k = 0; k < cols; k++ {
			v = ZeroSum
			for j = 0; j < inner; j++ {
				if av, err = a.At(i, j); err != nil {
					return nil, matrixErrorf(opMulNaive, err)
				}
				if bv, err = b.At(j, k); err != nil {
					return nil, matrixErrorf(opMulNaive, err)
				}
				v += av * bv
			}
			res.data[i+k*rows] = v
		}
	}

	return res, nil
}

// MulTile performs C = A × B with a cache-blocked loop nest.
// Implementation:
//   - Stage 1: ValidateNotNil ×2, ValidateTileSize, then shape compatibility.
//   - Stage 2: allocate zero C; partition rows, cols and the inner (K) range
//     into spans of width ≤ tsize (ragged last span clamped to the bound).
//   - Stage 3: tile triple rt → ct → kt; inside, i → j → k with a scalar
//     accumulator v = Σ_{k∈kt} A(i,k)·B(k,j), then one store per (i,j,kt).
//
// Cross-K-tile policy:
//   - Default: C(i,j) += v, so C is the true product for every tsize.
//   - WithKTileOverwrite(): C(i,j) = v; only the last K-tile survives, which
//     matches the product only when tsize >= a.Cols().
//
// Behavior highlights:
//   - tsize is used verbatim (no rounding, no fallback); see DefaultTileSize.
//   - With a single K-tile, 0 + v == v exactly, so the result is bit-identical
//     to MulNaive in both policies.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidArgument (tsize < 1), ErrShapeMismatch,
//     ErrAllocationFailure (wrapped with "MulTile").
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) plus O((r+c+n)/tsize) for the span tables.
func MulTile(a, b Matrix, tsize int, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulTile, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulTile, err)
	}
	if err := ValidateTileSize(tsize); err != nil {
		return nil, matrixErrorf(opMulTile, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulTile, err)
	}
	o := gatherOptions(opts...)

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMulTile, err)
	}
	if rows == 0 || cols == 0 || inner == 0 {
		return res, nil // empty result or empty sum: already all zeros
	}
	rowTiles := tileSpans(rows, tsize)
	colTiles := tileSpans(cols, tsize)
	kTiles := tileSpans(inner, tsize)

	var (
		i, j, k   int
		v         float64
		off, colB int
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for _, rt := range rowTiles {
				for _, ct := range colTiles {
					for _, kt := range kTiles {
						for i = rt.lo; i < rt.hi; i++ {
							for j = ct.lo; j < ct.hi; j++ {
								colB = j * inner
								v = ZeroSum
								for k = kt.lo; k < kt.hi; k++ {
									v += da.data[i+k*rows] * db.data[k+colB]
								}
								off = i + j*rows
								if o.kTileOverwrite {
									res.data[off] = v
								} else {
									res.data[off] += v
								}
							}
						}
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: identical tile and loop order through the interface.
	var av, bv float64
	for _, rt := range rowTiles {
		for _, ct := range colTiles {
			for _, kt := range kTiles {
				for i = rt.lo; i < rt.hi; i++ {
					for j = ct.lo; j < ct.hi; j++ {
						v = ZeroSum
						for k = kt.lo; k < kt.hi; k++ {
							if av, err = a.At(i, k); err != nil {
								return nil, matrixErrorf(opMulTile, err)
							}
							if bv, err = b.At(k, j); err != nil {
								return nil, matrixErrorf(opMulTile, err)
							}
							v += av * bv
						}
						off = i + j*rows
						if o.kTileOverwrite {
							res.data[off] = v
						} else {
							res.data[off] += v
						}
					}
				}
			}
		}
	}

	return res, nil
}
