// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with method context, e.g.
// "Dynamic.At(3,0): matrix: index out of range"; callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> variant -> shape -> index -> numeric policy.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative dimensions or ragged row input).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands, or a
	// requested shape that differs from a fixed matrix's own shape.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIncompatibleVariant indicates that the operands' storage strategies
	// cannot be combined under the strict addition policy.
	ErrIncompatibleVariant = errors.New("matrix: incompatible matrix variant")

	// ErrInputExhausted signals that a value source ran out of values.
	ErrInputExhausted = errors.New("matrix: value source exhausted")

	// ErrInvalidFormat signals that a value source produced something that
	// is not a valid element.
	ErrInvalidFormat = errors.New("matrix: invalid value format")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (Set, Populate, Add).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilSource indicates that Populate was called without a value source.
	ErrNilSource = errors.New("matrix: nil value source")
)

// BACKWARD-COMPATIBILITY ALIASES.
// They are semantically identical sentinels, so errors.Is matches either name.

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
//
// Deprecated: use ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange

// ErrDimensionMismatch names the same condition as ErrShapeMismatch.
//
// Deprecated: use ErrShapeMismatch.
var ErrDimensionMismatch = ErrShapeMismatch
