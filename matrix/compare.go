// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether a and b have identical shapes and every element
// compares equal with ==. There is no tolerance: NaN != NaN, so a matrix
// holding NaN is unequal to itself, while +0 and -0 compare equal.
//
// Two nil matrices are equal; a nil and a non-nil one are not.
// Fast path: both *Dense → one flat walk over the column-major buffers.
// Complexity: O(r*c), no allocations.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range da.data {
				if da.data[k] != db.data[k] {
					return false
				}
			}

			return true
		}
	}

	// Fallback: fixed i→j order through the interface.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}
