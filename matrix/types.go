// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by both storage variants.
// This file contains ONLY the element constraint, the variant tag, the
// Matrix contract and the value-source contract. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Element is the set of numeric types a matrix may hold.
// Every member supports + and has a usable zero value.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind tags the concrete storage strategy behind a Matrix.
type Kind uint8

const (
	// KindDynamic marks a matrix whose shape is chosen at construction
	// and may change through copy or move assignment.
	KindDynamic Kind = iota + 1

	// KindFixed marks a matrix whose shape is part of its identity.
	KindFixed
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindDynamic:
		return "dynamic"
	case KindFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Matrix is a two-dimensional grid of T values.
// Each method enforces bounds checking and returns sentinel errors on misuse.
//
// Complexity notes: all methods are O(1) except NewSameKind, Populate, Add
// and Clone, which are O(rows*cols).
type Matrix[T Element] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Shape packs Rows() and Cols() into a single call.
	Shape() (rows, cols int)

	// Kind reports the concrete storage strategy.
	Kind() Kind

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid. ErrNaNInf is returned
	// only when the matrix opted into WithValidateNaNInf.
	Set(i, j int, v T) error

	// NewSameKind returns a zero-filled rows×cols matrix of the same
	// variant as the receiver, carrying the receiver's options.
	NewSameKind(rows, cols int) (Matrix[T], error)

	// Populate fills every cell from src in row-major order.
	// The receiver is left untouched when src fails.
	Populate(src Source[T]) error

	// Add returns the element-wise sum of the receiver and other.
	// Neither operand is modified.
	Add(other Matrix[T]) (Matrix[T], error)

	// Clone returns a deep copy of the matrix.
	Clone() Matrix[T]
}

// Source supplies element values during Populate.
// Next is called exactly once per cell, in row-major order.
// Implementations report ErrInputExhausted or ErrInvalidFormat (wrapped or not).
type Source[T Element] interface {
	Next(i, j int) (T, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[T Element] func(i, j int) (T, error)

// Next calls f(i, j).
func (f SourceFunc[T]) Next(i, j int) (T, error) { return f(i, j) }
