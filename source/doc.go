// Package source provides value sources for matrix.Populate.
//
// A value source hands out one element per cell in row-major order:
//
//   - Slice replays a fixed sequence (fixtures, tests, flags).
//   - Reader parses whitespace-separated numbers from an io.Reader.
//   - Prompt does the same interactively, writing "Value [i][j]: " before
//     each read.
//
// Running out of input reports matrix.ErrInputExhausted; text that does not
// parse as the element type reports matrix.ErrInvalidFormat.
package source
