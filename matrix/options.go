// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options are per call; a Dense keeps only its numeric policy.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFiniteOnly toggles rejection of NaN/±Inf on element writes.
	// Off by default: NaN is a legal element and makes a matrix unequal to itself.
	DefaultFiniteOnly = false

	// DefaultKTileOverwrite selects the cross-K-tile policy of MulTile.
	// false ⇒ every K-tile partial sum is added into C(i,j) (true product).
	DefaultKTileOverwrite = false

	// DefaultMaxElements caps Rows*Cols of a single buffer
	// (2^40 doubles on 64-bit platforms, math.MaxInt elsewhere).
	DefaultMaxElements = min(1<<40, math.MaxInt)
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxElementsInvalid = "matrix: WithMaxElements: limit must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	finiteOnly     bool // DefaultFiniteOnly
	kTileOverwrite bool // DefaultKTileOverwrite
	maxElements    int  // DefaultMaxElements
}

// WithFiniteOnly makes constructed matrices reject NaN and ±Inf in Set,
// SetValues and NewDenseFrom with ErrNaNInf. The policy travels with the
// Dense through Clone, Copy, Move and CopyFrom.
func WithFiniteOnly() Option {
	return func(o *Options) { o.finiteOnly = true }
}

// WithKTileOverwrite makes MulTile store each K-tile partial sum into C(i,j)
// instead of adding it, so only the last K-tile survives. This reproduces the
// reference tiling kernel that MulTile is benchmarked against; the result is
// the true product only when tsize >= a.Cols().
func WithKTileOverwrite() Option {
	return func(o *Options) { o.kTileOverwrite = true }
}

// WithMaxElements caps the number of elements a single buffer may hold.
// Requests above the cap fail with ErrAllocationFailure instead of reaching
// the allocator.
//
// Panics when limit < 0.
func WithMaxElements(limit int) Option {
	if limit < 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = limit }
}

// NewMatrixOptions resolves opts over the defaults. Exposed for callers that
// want to inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// FiniteOnly reports whether the finite-only numeric policy is enabled.
func (o Options) FiniteOnly() bool { return o.finiteOnly }

// KTileOverwrite reports whether MulTile overwrites C(i,j) per K-tile.
func (o Options) KTileOverwrite() bool { return o.kTileOverwrite }

// MaxElements reports the per-buffer element cap.
func (o Options) MaxElements() int { return o.maxElements }

// gatherOptions applies user setters in order over the documented defaults;
// last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		finiteOnly:     DefaultFiniteOnly,
		kTileOverwrite: DefaultKTileOverwrite,
		maxElements:    DefaultMaxElements,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
