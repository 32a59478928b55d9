// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilemul/matrix"
)

// ExampleMulNaive multiplies a 2×3 by a 3×2 matrix.
func ExampleMulNaive() {
	a, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b, _ := matrix.NewDenseFrom(3, 2, []float64{7, 8, 9, 10, 11, 12})

	c, err := matrix.MulNaive(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleMulTile compares the tiled kernel with the naive one.
func ExampleMulTile() {
	a, _ := matrix.NewDenseFrom(2, 4, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	b, _ := matrix.NewDenseFrom(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})

	naive, _ := matrix.MulNaive(a, b)
	tiled, _ := matrix.MulTile(a, b, 2)
	lastK, _ := matrix.MulTile(a, b, 2, matrix.WithKTileOverwrite())

	fmt.Println(matrix.Equal(naive, tiled))
	fmt.Println(matrix.Equal(naive, lastK))
	fmt.Print(lastK)
	// Output:
	// true
	// false
	// [43, 50]
	// [91, 106]
}

// ExampleDense_BufferVector shows row-major input and column-major storage.
func ExampleDense_BufferVector() {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	fmt.Println(m.BufferVector())
	// Output:
	// [1 4 2 5 3 6]
}

// ExampleDense_Move transfers a buffer and leaves the source empty.
func ExampleDense_Move() {
	src, _ := matrix.NewDenseFrom(1, 2, []float64{3, 4})
	dst := src.Move()
	fmt.Println(src.Rows(), src.Cols(), dst.Rows(), dst.Cols())
	// Output:
	// 0 0 1 2
}

// ExampleNewDenseFrom_shapeMismatch shows the error contract.
func ExampleNewDenseFrom_shapeMismatch() {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	fmt.Println(errors.Is(err, matrix.ErrShapeMismatch))
	// Output:
	// true
}
