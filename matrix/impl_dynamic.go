// SPDX-License-Identifier: MIT

// Package matrix - Dynamic: run-time shape with value semantics.
//
// Purpose:
//   - Own exactly one row-major buffer sized rows*cols at construction.
//   - Provide explicit copy (deep duplicate) and move (ownership transfer)
//     so no two live values ever share storage.
//
// Lifecycle:
//   - NewDynamic / NewDynamicFromRows allocate and zero-fill.
//   - Copy / Clone duplicate; CopyFrom replaces contents, reallocating
//     whenever the source has a different shape.
//   - Move / MoveFrom hand the buffer over and leave the source empty (0×0).
//   - Reset drops the buffer; the value stays valid and reusable.
//
// Complexity quicksheet:
//   - NewDynamic, Copy, CopyFrom: O(r*c); At/Set, Move, MoveFrom, Reset: O(1).

package matrix

import "fmt"

// Dynamic is a matrix whose shape is chosen when the value is created.
// The zero value is an empty 0×0 matrix with default options.
//
// A Dynamic must not be copied after first use: pass *Dynamic and duplicate
// with Copy or Clone. A plain struct copy would share the buffer.
type Dynamic[T Element] struct {
	_ noCopy
	grid[T]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dynamic[float64])(nil)
	_ Matrix[int]     = (*Dynamic[int])(nil)
	_ fmt.Stringer    = (*Dynamic[float64])(nil)
)

// NewDynamic creates a zero-filled rows×cols matrix.
//
// Implementation:
//   - Stage 1: resolve options against defaults.
//   - Stage 2: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 3: allocate a contiguous buffer; make() zero-fills it.
//
// A zero dimension is legal and yields a matrix with no elements.
// Complexity: Time O(r*c), Space O(r*c).
func NewDynamic[T Element](rows, cols int, opts ...Option) (*Dynamic[T], error) {
	return newDynamic[T](rows, cols, gatherOptions(opts...))
}

func newDynamic[T Element](rows, cols int, o Options) (*Dynamic[T], error) {
	g, err := newGrid[T](rows, cols, o)
	if err != nil {
		return nil, fmt.Errorf("NewDynamic(%d,%d): %w", rows, cols, err)
	}

	return &Dynamic[T]{grid: g}, nil
}

// NewDynamicFromRows builds a matrix from rectangular row data.
// The input is copied; ragged rows return ErrBadShape. With WithValidateNaNInf,
// NaN or ±Inf values return ErrNaNInf.
func NewDynamicFromRows[T Element](rows [][]T, opts ...Option) (*Dynamic[T], error) {
	g, err := gridFromRows(rows, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("NewDynamicFromRows: %w", err)
	}

	return &Dynamic[T]{grid: g}, nil
}

// Kind reports KindDynamic.
func (m *Dynamic[T]) Kind() Kind { return KindDynamic }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dynamic[T]) At(row, col int) (T, error) { return m.at(KindDynamic, row, col) }

// Set stores v at (row, col) or returns ErrOutOfRange.
// ErrNaNInf is possible only under WithValidateNaNInf.
func (m *Dynamic[T]) Set(row, col int, v T) error { return m.set(KindDynamic, row, col, v) }

// NewSameKind returns a zero-filled rows×cols Dynamic with the receiver's options.
// Any non-negative shape is accepted.
func (m *Dynamic[T]) NewSameKind(rows, cols int) (Matrix[T], error) {
	g, err := newGrid[T](rows, cols, m.opts)
	if err != nil {
		return nil, variantErrorf(KindDynamic, ctxNewSameKind, rows, cols, err)
	}

	return &Dynamic[T]{grid: g}, nil
}

// Populate fills the matrix from src; see the package-level Populate.
func (m *Dynamic[T]) Populate(src Source[T]) error { return Populate[T](m, src) }

// Add returns m + other; see the package-level Add.
func (m *Dynamic[T]) Add(other Matrix[T]) (Matrix[T], error) { return Add[T](m, other) }

// Clone returns a deep copy as a Matrix.
func (m *Dynamic[T]) Clone() Matrix[T] { return m.Copy() }

// Copy returns an independent deep duplicate.
// Mutating the copy never affects the receiver and vice versa.
func (m *Dynamic[T]) Copy() *Dynamic[T] {
	return &Dynamic[T]{grid: m.clone()}
}

// CopyFrom makes the receiver a deep copy of src (copy-assignment).
//
// Implementation:
//   - Stage 1: self-assignment is a no-op.
//   - Stage 2: nil src empties the receiver.
//   - Stage 3: drop the old buffer when the shapes differ, then copy shape,
//     data and options.
//
// Returns the receiver for chaining.
// Complexity: Time O(r*c).
func (m *Dynamic[T]) CopyFrom(src *Dynamic[T]) *Dynamic[T] {
	if m == src {
		return m
	}
	if src == nil {
		m.Reset()
		return m
	}
	if m.r != src.r || m.c != src.c {
		m.data = make([]T, len(src.data))
	}
	copy(m.data, src.data)
	m.r, m.c = src.r, src.c
	m.opts = src.opts

	return m
}

// Move transfers the receiver's storage into a new value and leaves the
// receiver empty (0×0, no storage). The receiver keeps its options.
// Complexity: O(1).
func (m *Dynamic[T]) Move() *Dynamic[T] {
	out := &Dynamic[T]{grid: m.grid}
	m.Reset()

	return out
}

// MoveFrom takes ownership of src's storage (move-assignment) and resets src
// to the empty state. The receiver's previous buffer is released.
// Self-move and nil src are no-ops. Returns the receiver.
// Complexity: O(1).
func (m *Dynamic[T]) MoveFrom(src *Dynamic[T]) *Dynamic[T] {
	if m == src || src == nil {
		return m
	}
	m.grid = src.grid
	src.Reset()

	return m
}

// Reset releases the storage and leaves a valid empty 0×0 matrix.
func (m *Dynamic[T]) Reset() {
	m.r, m.c = 0, 0
	m.data = nil
}

// Empty reports whether the matrix holds no elements.
func (m *Dynamic[T]) Empty() bool { return m.r == 0 || m.c == 0 }
