// Package matrix provides a dense, column-major float64 matrix and two
// matrix-matrix multiplication kernels that differ only in memory-access
// pattern, so they can be measured against each other on identical inputs.
//
// The matrix package provides:
//
//   - Dense: one exclusively owned buffer per value, element (i, j) stored at
//     offset i + j*Rows(). Copy/Clone are deep, Move empties the source,
//     CopyFrom and SetValues assign in place. At/Set are bounds-checked.
//   - Equal: exact shape and element-wise == comparison (NaN != NaN).
//   - MulNaive: triple loop, one output cell per complete dot product.
//   - MulTile: rows, columns and the inner dimension cut into tiles of a
//     caller-chosen size; see WithKTileOverwrite for the reference
//     (overwrite-per-K-tile) behaviour.
//
// Flat input slices (NewDenseFrom, SetValues) are ROW-MAJOR; the stored
// buffer (RawData, BufferVector, BufferAt) is COLUMN-MAJOR.
//
// All operations are synchronous and allocate only their result. Distinct
// values may be used from distinct goroutines; a single value must not be
// written concurrently with any other access.
package matrix
