// SPDX-License-Identifier: MIT

// Package render draws a matrix as text, one row per line, with values
// separated by a vertical bar:
//
//	| 2.00 | 3.00 |
//	| 2.00 | 4.00 |
//
// Floating-point elements are printed with a fixed precision; integer
// elements are printed as-is. Rendering only reads through At and never
// mutates the matrix.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/polymat/matrix"
)

const (
	// DefaultPrecision is the number of decimals printed for floats.
	DefaultPrecision = 2

	// DefaultDelimiter separates cells and closes each row.
	DefaultDelimiter = "|"
)

// Option configures rendering.
type Option func(*config)

type config struct {
	precision int
	delim     string
}

// WithPrecision sets the number of decimals for floating-point elements.
// Panics if n is negative.
func WithPrecision(n int) Option {
	if n < 0 {
		panic("render: WithPrecision: n must be >= 0")
	}

	return func(c *config) { c.precision = n }
}

// WithDelimiter replaces the vertical bar.
func WithDelimiter(d string) Option {
	return func(c *config) { c.delim = d }
}

// Write renders m to w.
// A nil matrix returns matrix.ErrNilMatrix; write errors are returned as-is.
func Write[T matrix.Element](w io.Writer, m matrix.Matrix[T], opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	cfg := config{precision: DefaultPrecision, delim: DefaultDelimiter}
	for _, opt := range opts {
		opt(&cfg)
	}
	format := formatter[T](cfg.precision)

	var line strings.Builder
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		line.Reset()
		line.WriteString(cfg.delim)
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			line.WriteByte(' ')
			line.WriteString(format(v))
			line.WriteByte(' ')
			line.WriteString(cfg.delim)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}

	return nil
}

// String renders m into a string.
func String[T matrix.Element](m matrix.Matrix[T], opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(&b, m, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

// formatter picks integer or fixed-precision float formatting for T.
func formatter[T matrix.Element](precision int) func(T) string {
	if isInteger[T]() {
		return func(v T) string { return fmt.Sprint(v) }
	}

	return func(v T) string { return strconv.FormatFloat(float64(v), 'f', precision, 64) }
}

// isInteger reports whether T truncates division, i.e. is an integer type.
func isInteger[T matrix.Element]() bool {
	var one T = 1

	return one/2 == 0
}
