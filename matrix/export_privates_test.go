// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose unexported tiling and allocation helpers to matrix_test ONLY.
//   - Lives in a _test.go file, so it never reaches production builds.

// TileSpans_TestOnly returns tileSpans(n, tsize) as [lo, hi) pairs.
func TileSpans_TestOnly(n, tsize int) [][2]int {
	spans := tileSpans(n, tsize)
	out := make([][2]int, len(spans))
	for k, s := range spans {
		out[k] = [2]int{s.lo, s.hi}
	}

	return out
}

// AllocBuffer_TestOnly forwards to allocBuffer.
func AllocBuffer_TestOnly(rows, cols, limit int) ([]float64, error) {
	return allocBuffer(rows, cols, limit)
}
