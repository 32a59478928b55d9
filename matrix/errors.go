// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; option constructors panic on
// nonsensical parameters (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// attach the offending dimensions or length with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> tile size -> shape mismatch -> allocation.

var (
	// ErrShapeMismatch is returned when a flat value sequence does not have
	// exactly Rows*Cols elements, or when a product is requested with
	// a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidArgument is returned for nonsensical scalar arguments,
	// e.g. a tile size below 1.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrAllocationFailure is returned when a buffer of the requested size
	// cannot be obtained (overflowing shape, size above MaxElements, or a
	// runtime refusal to allocate).
	ErrAllocationFailure = errors.New("matrix: allocation failure")

	// ErrOutOfRange indicates that an index (row, column or linear offset)
	// is outside valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that a requested dimension is negative.
	// Zero is legal and yields an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
