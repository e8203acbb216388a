// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep Add/Populate minimal by delegating nil/shape/variant checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Note:
//  - Composite checks follow a fixed sequence: NotNil -> Variant -> Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed nil
// pointers to the package's own variants.
// Returns ErrNilMatrix on violation. Complexity: O(1).
func ValidateNotNil[T Element](m Matrix[T]) error {
	nilRef := m == nil
	switch v := m.(type) {
	case *Dynamic[T]:
		nilRef = v == nil
	case *Fixed[T]:
		nilRef = v == nil
	}
	if nilRef {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil. Returns wrapped ErrShapeMismatch.
func ValidateSameShape[T Element](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateSameVariant ensures a and b share a storage variant.
// For fixed matrices the shape is part of the variant, so two fixed
// matrices of different shapes are incompatible as well.
// Assumes a and b are not nil. Returns wrapped ErrIncompatibleVariant.
func ValidateSameVariant[T Element](a, b Matrix[T]) error {
	if a.Kind() != b.Kind() {
		return validatorErrorf("ValidateSameVariant: Kind", ErrIncompatibleVariant)
	}
	if a.Kind() == KindFixed && (a.Rows() != b.Rows() || a.Cols() != b.Cols()) {
		return validatorErrorf("ValidateSameVariant: FixedShape", ErrIncompatibleVariant)
	}

	return nil
}
