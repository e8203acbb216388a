// SPDX-License-Identifier: MIT

// Package matrix - Fixed: shape bound to the value for its whole lifetime.
//
// Purpose:
//   - Allocate storage exactly once, at construction, and never resize it.
//   - Treat (rows, cols) as part of the variant identity: NewSameKind and
//     CopyFrom refuse any other shape with ErrShapeMismatch.
//
// Notes:
//   - Go generics cannot carry integer constants, so the shape is fixed at
//     construction rather than in the type. No method mutates r, c or the
//     backing slice header after NewFixed returns.

package matrix

import "fmt"

// Fixed is a matrix whose shape cannot change after construction.
// The zero value is an empty 0×0 fixed matrix.
//
// A Fixed must not be copied after first use: pass *Fixed and duplicate
// with Copy or Clone. A plain struct copy would share the buffer.
type Fixed[T Element] struct {
	_ noCopy
	grid[T]
}

var (
	_ Matrix[float64] = (*Fixed[float64])(nil)
	_ Matrix[int]     = (*Fixed[int])(nil)
	_ fmt.Stringer    = (*Fixed[float64])(nil)
)

// NewFixed creates a zero-filled rows×cols fixed matrix.
// Negative dimensions return ErrBadShape.
// Complexity: Time O(r*c), Space O(r*c).
func NewFixed[T Element](rows, cols int, opts ...Option) (*Fixed[T], error) {
	g, err := newGrid[T](rows, cols, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("NewFixed(%d,%d): %w", rows, cols, err)
	}

	return &Fixed[T]{grid: g}, nil
}

// NewFixedFromRows builds a fixed matrix whose shape is taken from rows.
// Ragged rows return ErrBadShape.
func NewFixedFromRows[T Element](rows [][]T, opts ...Option) (*Fixed[T], error) {
	g, err := gridFromRows(rows, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("NewFixedFromRows: %w", err)
	}

	return &Fixed[T]{grid: g}, nil
}

// Kind reports KindFixed.
func (m *Fixed[T]) Kind() Kind { return KindFixed }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Fixed[T]) At(row, col int) (T, error) { return m.at(KindFixed, row, col) }

// Set stores v at (row, col) or returns ErrOutOfRange.
// ErrNaNInf is possible only under WithValidateNaNInf.
func (m *Fixed[T]) Set(row, col int, v T) error { return m.set(KindFixed, row, col, v) }

// NewSameKind returns a zero-filled Fixed of the receiver's own shape.
// Any other (rows, cols) fails with ErrShapeMismatch.
func (m *Fixed[T]) NewSameKind(rows, cols int) (Matrix[T], error) {
	if rows != m.r || cols != m.c {
		return nil, variantErrorf(KindFixed, ctxNewSameKind, rows, cols, ErrShapeMismatch)
	}
	g, err := newGrid[T](rows, cols, m.opts)
	if err != nil {
		return nil, variantErrorf(KindFixed, ctxNewSameKind, rows, cols, err)
	}

	return &Fixed[T]{grid: g}, nil
}

// Populate fills the matrix from src; see the package-level Populate.
func (m *Fixed[T]) Populate(src Source[T]) error { return Populate[T](m, src) }

// Add returns m + other; see the package-level Add.
func (m *Fixed[T]) Add(other Matrix[T]) (Matrix[T], error) { return Add[T](m, other) }

// Clone returns a deep copy as a Matrix.
func (m *Fixed[T]) Clone() Matrix[T] { return m.Copy() }

// Copy returns an independent deep duplicate with the same shape.
func (m *Fixed[T]) Copy() *Fixed[T] {
	return &Fixed[T]{grid: m.clone()}
}

// CopyFrom overwrites the receiver's elements with src's, in place.
// The shapes must match; otherwise ErrShapeMismatch is returned and the
// receiver is untouched. Self-copy is a no-op. Options are not copied:
// they belong to the receiver's identity just like its shape.
func (m *Fixed[T]) CopyFrom(src *Fixed[T]) error {
	if src == nil {
		return fmt.Errorf("Fixed.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if src.r != m.r || src.c != m.c {
		return variantErrorf(KindFixed, ctxCopyFrom, src.r, src.c, ErrShapeMismatch)
	}
	// Validate everything first so a rejected value leaves the receiver untouched.
	for idx, v := range src.data {
		if err := m.check(v); err != nil {
			return variantErrorf(KindFixed, ctxCopyFrom, idx/m.c, idx%m.c, err)
		}
	}
	copy(m.data, src.data)

	return nil
}

// SameShape reports whether other is a Fixed with the receiver's shape,
// i.e. whether both belong to the same fixed variant.
func (m *Fixed[T]) SameShape(other *Fixed[T]) bool {
	return other != nil && m.r == other.r && m.c == other.c
}
