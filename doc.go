// Package tilemul is a small laboratory for comparing matrix-multiplication
// kernels whose only difference is their memory-access pattern.
//
// Everything lives in the matrix subpackage:
//
//	matrix/  column-major Dense value type, Equal, MulNaive, MulTile
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := matrix.NewDenseFrom(3, 2, []float64{7, 8, 9, 10, 11, 12})
//	c, _ := matrix.MulTile(a, b, matrix.DefaultTileSize())
//	// c = [58 64; 139 154]
//
// Run `go test -bench . ./matrix` to compare the kernels across sizes and
// tile edges on identical inputs.
package tilemul
