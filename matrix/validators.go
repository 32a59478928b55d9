// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for argument checks.
//  - Keep kernels minimal by delegating nil/shape/tile-size checks here.
//  - Return sentinel errors tagged with the validator name and the offending
//    dimensions, so call sites can wrap uniformly and callers use errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate only on the error path.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible ensures both operands exist and a.Cols == b.Rows.
// The error message names both shapes.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d × %dx%d: a.Cols %d != b.Rows %d",
				a.Rows(), a.Cols(), b.Rows(), b.Cols(), a.Cols(), b.Rows()),
			ErrShapeMismatch)
	}

	return nil
}

// ValidateTileSize ensures tsize >= 1.
// Errors: ErrInvalidArgument.
func ValidateTileSize(tsize int) error {
	if tsize < 1 {
		return validatorErrorf(fmt.Sprintf("ValidateTileSize: tsize=%d, want >= 1", tsize), ErrInvalidArgument)
	}

	return nil
}

// ValidateValuesLen ensures a flat value sequence fills a rows×cols shape exactly.
// A nil slice is accepted for zero-element shapes.
//
// Errors: ErrShapeMismatch.
func ValidateValuesLen(values []float64, rows, cols int) error {
	if len(values) != rows*cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateValuesLen: got %d values, want %d for %dx%d", len(values), rows*cols, rows, cols),
			ErrShapeMismatch)
	}

	return nil
}

// ValidateFinite rejects the first NaN/±Inf in values, reporting its index.
// Errors: ErrNaNInf. Complexity: O(n).
func ValidateFinite(values []float64) error {
	for k, v := range values {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: values[%d]=%g", k, v), ErrNaNInf)
		}
	}

	return nil
}
