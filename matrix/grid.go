// SPDX-License-Identifier: MIT

// Package matrix - shared row-major storage & safe accessors.
//
// Purpose:
//   - Provide the single flat buffer both variants embed, with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Enforce the opt-in numeric policy (rejection of NaN/Inf) from one place.
//
// Complexity quicksheet:
//   - newGrid: O(r*c) zero-init; at/set: O(1); clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"          // method tag used in error wrappers
	ctxSet         = "Set"         // method tag used in error wrappers
	ctxNewSameKind = "NewSameKind" // ctor tag
	ctxCopyFrom    = "CopyFrom"    // assignment tag
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// variantErrorf wraps a sentinel with a uniform "<Variant>.<method>(row,col)" context.
func variantErrorf(k Kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", variantName(k), method, row, col, err)
}

// variantName maps a Kind to its exported type name for error messages.
func variantName(k Kind) string {
	switch k {
	case KindDynamic:
		return "Dynamic"
	case KindFixed:
		return "Fixed"
	default:
		return "Matrix"
	}
}

// grid is the row-major buffer embedded by Dynamic and Fixed.
//   - r,c hold dimensions (>= 0; a zero dimension means no elements).
//   - data has length r*c; offset = i*c + j.
//   - opts carries the numeric policy, addition policy and logger.
type grid[T Element] struct {
	r, c int     // row and column counts
	data []T     // contiguous row-major storage (len == r*c)
	opts Options // per-value configuration
}

// noCopy makes go vet's copylocks check report by-value copies of the
// types that embed it. Dynamic and Fixed own their buffer, so a struct copy
// would alias it; use Copy, Clone or Move instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// rowMajor is implemented by every matrix backed by a grid.
// Add and Populate use it to skip per-element bounds checks.
type rowMajor[T Element] interface {
	buffer() []T
	options() Options
}

// newGrid allocates a zero-filled r×c grid. Negative dimensions are rejected.
func newGrid[T Element](rows, cols int, opts Options) (grid[T], error) {
	if rows < 0 || cols < 0 {
		return grid[T]{}, ErrBadShape
	}

	return grid[T]{r: rows, c: cols, data: make([]T, rows*cols), opts: opts}, nil
}

// gridFromRows copies a rectangular [][]T into a fresh grid.
// Ragged input returns ErrBadShape.
func gridFromRows[T Element](rows [][]T, opts Options) (grid[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	g, err := newGrid[T](r, c, opts)
	if err != nil {
		return grid[T]{}, err
	}
	for i, row := range rows {
		if len(row) != c {
			return grid[T]{}, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		for j, v := range row {
			if err = g.check(v); err != nil {
				return grid[T]{}, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
		}
		copy(g.data[i*c:(i+1)*c], row)
	}

	return g, nil
}

// Rows returns the row count. No side effects.
func (g *grid[T]) Rows() int { return g.r }

// Cols returns the column count. No side effects.
func (g *grid[T]) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *grid[T]) Shape() (rows, cols int) { return g.r, g.c }

// Options returns a snapshot of the value's configuration.
func (g *grid[T]) Options() Options { return g.opts }

func (g *grid[T]) buffer() []T      { return g.data }
func (g *grid[T]) options() Options { return g.opts }

// indexOf bounds-checks (row,col) and returns the flat offset or ErrOutOfRange.
// Callers wrap the sentinel with their own method context.
func (g *grid[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	return row*g.c + col, nil
}

// check applies the numeric policy to a single value.
func (g *grid[T]) check(v T) error {
	if !g.opts.validateNaNInf {
		return nil
	}

	return checkFinite(v)
}

// checkFinite rejects NaN and ±Inf. Integers always pass.
func checkFinite[T Element](v T) error {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNaNInf
	}

	return nil
}

// at reads (row,col), tagging errors with the owning variant.
func (g *grid[T]) at(k Kind, row, col int) (T, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, variantErrorf(k, ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// set writes (row,col) after bounds and numeric policy checks.
func (g *grid[T]) set(k Kind, row, col int, v T) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return variantErrorf(k, ctxSet, row, col, err)
	}
	if err = g.check(v); err != nil {
		return variantErrorf(k, ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// clone returns an independent grid with identical shape, data and options.
func (g *grid[T]) clone() grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return grid[T]{r: g.r, c: g.c, data: cp, opts: g.opts}
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Not for hot paths; see package render for presentation.
func (g *grid[T]) String() string {
	var b strings.Builder
	for i := 0; i < g.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * g.c
		for j := 0; j < g.c; j++ {
			fmt.Fprintf(&b, "%v", g.data[base+j])
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
