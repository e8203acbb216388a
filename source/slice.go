// SPDX-License-Identifier: MIT

package source

import (
	"fmt"

	"github.com/katalvlaran/polymat/matrix"
)

// SliceSource yields a fixed sequence of values.
type SliceSource[T matrix.Element] struct {
	vals []T
	pos  int
}

var _ matrix.Source[float64] = (*SliceSource[float64])(nil)

// Slice returns a source that yields vals in order. The slice is copied.
func Slice[T matrix.Element](vals ...T) *SliceSource[T] {
	cp := make([]T, len(vals))
	copy(cp, vals)

	return &SliceSource[T]{vals: cp}
}

// Next returns the next value, or ErrInputExhausted once all were consumed.
func (s *SliceSource[T]) Next(i, j int) (T, error) {
	if s.pos >= len(s.vals) {
		var zero T
		return zero, fmt.Errorf("source: cell (%d,%d): %w", i, j, matrix.ErrInputExhausted)
	}
	v := s.vals[s.pos]
	s.pos++

	return v, nil
}

// Remaining reports how many values have not been handed out yet.
func (s *SliceSource[T]) Remaining() int { return len(s.vals) - s.pos }
