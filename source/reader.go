// SPDX-License-Identifier: MIT

package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/polymat/matrix"
)

// Reader parses whitespace-separated tokens from an io.Reader.
type Reader[T matrix.Element] struct {
	sc *bufio.Scanner
}

var _ matrix.Source[int] = (*Reader[int])(nil)

// NewReader returns a Reader consuming r token by token.
func NewReader[T matrix.Element](r io.Reader) *Reader[T] {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader[T]{sc: sc}
}

// Next parses the next token as T.
// EOF reports matrix.ErrInputExhausted; an unparsable token reports
// matrix.ErrInvalidFormat and is consumed.
func (r *Reader[T]) Next(i, j int) (T, error) {
	var zero T
	tok, err := r.token()
	if err != nil {
		return zero, fmt.Errorf("source: cell (%d,%d): %w", i, j, err)
	}
	v, err := Parse[T](tok)
	if err != nil {
		return zero, fmt.Errorf("source: cell (%d,%d): %w", i, j, err)
	}

	return v, nil
}

// token returns the next word, matrix.ErrInputExhausted at EOF, or the
// underlying read error.
func (r *Reader[T]) token() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", fmt.Errorf("read: %w", err)
	}

	return "", matrix.ErrInputExhausted
}

// ---------- interactive prompting ----------

// DefaultPromptFormat is written before every read; it receives (i, j).
const DefaultPromptFormat = "Value [%d][%d]: "

// PromptOption configures a Prompt.
type PromptOption func(*promptConfig)

type promptConfig struct {
	format  string
	retries int
}

// WithPromptFormat replaces DefaultPromptFormat. The format receives (i, j).
func WithPromptFormat(format string) PromptOption {
	return func(c *promptConfig) { c.format = format }
}

// WithRetries lets the prompt ask again up to n times after an unparsable
// answer. Panics if n is negative.
func WithRetries(n int) PromptOption {
	if n < 0 {
		panic("source: WithRetries: n must be >= 0")
	}

	return func(c *promptConfig) { c.retries = n }
}

// Prompt asks for each value on out and reads the answer from in.
type Prompt[T matrix.Element] struct {
	Reader[T]
	out io.Writer
	cfg promptConfig
}

var _ matrix.Source[float64] = (*Prompt[float64])(nil)

// NewPrompt returns an interactive source. Without options it asks once per
// cell using DefaultPromptFormat.
func NewPrompt[T matrix.Element](in io.Reader, out io.Writer, opts ...PromptOption) *Prompt[T] {
	cfg := promptConfig{format: DefaultPromptFormat}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Prompt[T]{Reader: *NewReader[T](in), out: out, cfg: cfg}
}

// Next writes the prompt for (i, j) and parses the answer.
// Unparsable answers are retried as configured; the last error is returned
// when attempts run out.
func (p *Prompt[T]) Next(i, j int) (T, error) {
	var (
		v   T
		err error
	)
	for attempt := 0; attempt <= p.cfg.retries; attempt++ {
		if _, werr := fmt.Fprintf(p.out, p.cfg.format, i, j); werr != nil {
			return v, fmt.Errorf("source: prompt: %w", werr)
		}
		v, err = p.Reader.Next(i, j)
		if !errors.Is(err, matrix.ErrInvalidFormat) {
			return v, err
		}
	}

	return v, err
}
