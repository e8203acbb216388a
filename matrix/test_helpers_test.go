// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for both storage variants.
//   • Keep all data finite so the numeric policy never interferes by accident.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/polymat/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the generic At/Set fallback paths in Add and Populate.
type hide[T matrix.Element] struct{ matrix.Matrix[T] }

// MustDynamic builds a *Dynamic from row data or fails the test.
func MustDynamic[T matrix.Element](t *testing.T, rows [][]T, opts ...matrix.Option) *matrix.Dynamic[T] {
	t.Helper()
	m, err := matrix.NewDynamicFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustFixed builds a *Fixed from row data or fails the test.
func MustFixed[T matrix.Element](t *testing.T, rows [][]T, opts ...matrix.Option) *matrix.Fixed[T] {
	t.Helper()
	m, err := matrix.NewFixedFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// RowsOf reads m back into [][]T through At, failing the test on any error.
func RowsOf[T matrix.Element](t *testing.T, m matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// seq returns a Source yielding vals in order, then ErrInputExhausted.
func seq[T matrix.Element](vals ...T) matrix.Source[T] {
	pos := 0
	return matrix.SourceFunc[T](func(i, j int) (T, error) {
		if pos >= len(vals) {
			var zero T
			return zero, matrix.ErrInputExhausted
		}
		v := vals[pos]
		pos++
		return v, nil
	})
}
