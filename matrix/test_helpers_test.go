// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and the kernels.
//   • Keep generated data integer-valued so products are exact in float64
//     and kernels can be compared with ==.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"

	"github.com/katalvlaran/tilemul/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// Seq returns 1, 2, ..., n as float64.
func Seq(n int) []float64 {
	return lo.Times(n, func(k int) float64 { return float64(k + 1) })
}

// RandIntDense returns an r×c *Dense with integer entries in [-5, 5],
// deterministic per seed.
func RandIntDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := lo.Times(r*c, func(int) float64 { return float64(rng.Intn(11) - 5) })

	return NewFilledDense(t, r, c, vals)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RowMajor reads m back into a row-major flat slice through At.
func RowMajor(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out = append(out, MustAt(t, m, i, j))
		}
	}

	return out
}

// ReferenceProduct computes a×b over [][]float64 with the textbook formula,
// independently of the package kernels. Returned row-major.
func ReferenceProduct(t testing.TB, a, b matrix.Matrix) []float64 {
	t.Helper()
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			var s float64
			for j := 0; j < inner; j++ {
				s += MustAt(t, a, i, j) * MustAt(t, b, j, k)
			}
			out[i*cols+k] = s
		}
	}

	return out
}
