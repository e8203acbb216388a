package source_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/polymat/matrix"
	"github.com/katalvlaran/polymat/source"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	vals := []int{1, 2, 3}
	s := source.Slice(vals...)
	vals[0] = 100 // the source keeps its own copy

	require.Equal(t, 3, s.Remaining())
	v, err := s.Next(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 2, s.Remaining())

	_, _ = s.Next(0, 1)
	_, _ = s.Next(0, 2)
	_, err = s.Next(1, 0)
	require.ErrorIs(t, err, matrix.ErrInputExhausted)
	require.EqualError(t, err, "source: cell (1,0): matrix: value source exhausted")
}

func TestParse(t *testing.T) {
	i8, err := source.Parse[int8]("-128")
	require.NoError(t, err)
	require.Equal(t, int8(-128), i8)

	_, err = source.Parse[int8]("128")
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)
	require.Contains(t, err.Error(), "value out of range")

	_, err = source.Parse[uint]("-1")
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)

	f, err := source.Parse[float32]("2.5")
	require.NoError(t, err)
	require.Equal(t, float32(2.5), f)

	_, err = source.Parse[float64]("abc")
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)
	require.EqualError(t, err, `parse "abc": invalid syntax: matrix: invalid value format`)

	type celsius float64
	c, err := source.Parse[celsius]("36.6")
	require.NoError(t, err)
	require.Equal(t, celsius(36.6), c)
}

func TestReader_PopulatesMatrix(t *testing.T) {
	m, err := matrix.NewDynamic[float64](3, 2)
	require.NoError(t, err)

	in := strings.NewReader("1.5 2.0\n0.0 1.0\n\t4.5   3.0\n")
	require.NoError(t, m.Populate(source.NewReader[float64](in)))
	require.Equal(t, "[1.5, 2]\n[0, 1]\n[4.5, 3]\n", m.String())
}

func TestReader_Errors(t *testing.T) {
	m, err := matrix.NewFixed[int](2, 2)
	require.NoError(t, err)

	err = m.Populate(source.NewReader[int](strings.NewReader("1 2 3")))
	require.ErrorIs(t, err, matrix.ErrInputExhausted)

	err = m.Populate(source.NewReader[int](strings.NewReader("1 two 3 4")))
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)
	require.Contains(t, err.Error(), `"two"`)

	// the failed populations left the matrix untouched
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := m.At(i, j)
			require.Zero(t, v)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReader_ReadError(t *testing.T) {
	_, err := source.NewReader[int](failingReader{}).Next(0, 0)
	require.Error(t, err)
	require.False(t, errors.Is(err, matrix.ErrInputExhausted))
	require.Contains(t, err.Error(), "disk on fire")
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	p := source.NewPrompt[int](strings.NewReader("1 2\n3 4\n"), &out)

	m, err := matrix.NewDynamic[int](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Populate(p))

	require.Equal(t, "Value [0][0]: Value [0][1]: Value [1][0]: Value [1][1]: ", out.String())
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestPrompt_Retries(t *testing.T) {
	var out bytes.Buffer
	p := source.NewPrompt[float64](strings.NewReader("x 7.5"), &out,
		source.WithRetries(1), source.WithPromptFormat("(%d,%d)> "))

	v, err := p.Next(0, 1)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
	require.Equal(t, "(0,1)> (0,1)> ", out.String())

	strict := source.NewPrompt[float64](strings.NewReader("x 7.5"), &out)
	_, err = strict.Next(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)
}

func TestWithRetries_Negative(t *testing.T) {
	require.Panics(t, func() { source.WithRetries(-1) })
}
