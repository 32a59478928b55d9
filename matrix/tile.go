// SPDX-License-Identifier: MIT

// Package matrix - tile partitioning and tile-size hints for MulTile.
//
// A dimension of length n is cut into consecutive half-open spans
// [s, min(s+tsize, n)) for s = 0, tsize, 2*tsize, ...; the last span is
// ragged when tsize does not divide n.

package matrix

import (
	"math"
	"unsafe"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// l1DataBytes is the L1 data cache size DefaultTileSize plans for (32 KiB is
// the common floor across amd64 and arm64 cores).
const l1DataBytes = 32 << 10

// tilesInFlight is the number of square tiles (A, B and C) a tile triple touches.
const tilesInFlight = 3

// float64Bytes is unsafe.Sizeof(float64(0)).
const float64Bytes = int(unsafe.Sizeof(float64(0)))

// tileSpan is one half-open index range [lo, hi) of a tiled dimension.
type tileSpan struct {
	lo, hi int
}

// tileSpans partitions [0, n) into spans of width at most tsize.
// Returns an empty slice for n <= 0. Assumes tsize >= 1 (validated upstream).
// No intermediate value exceeds n, so n near math.MaxInt cannot overflow.
// Complexity: O(n/tsize).
func tileSpans(n, tsize int) []tileSpan {
	if n <= 0 {
		return nil
	}
	count := (n-1)/tsize + 1

	return lo.Times(count, func(t int) tileSpan {
		start := t * tsize // t <= (n-1)/tsize, so start <= n-1

		return tileSpan{lo: start, hi: start + min(tsize, n-start)}
	})
}

// DefaultTileSize suggests a MulTile edge: the largest multiple of the
// per-architecture cache line size (in float64 elements, fixed at build time
// by GOARCH; the running CPU is not probed) such that three square tiles fit
// in a 32 KiB L1 data cache. Never less than one cache line.
func DefaultTileSize() int {
	lineElems := int(unsafe.Sizeof(cpu.CacheLinePad{})) / float64Bytes
	if lineElems < 1 {
		lineElems = 1
	}
	edge := int(math.Sqrt(float64(l1DataBytes) / float64(tilesInFlight*float64Bytes)))
	edge -= edge % lineElems
	if edge < lineElems {
		edge = lineElems
	}

	return edge
}
