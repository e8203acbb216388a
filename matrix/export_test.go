// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box)
//
// Exposes the backing buffer of grid-backed matrices so matrix_test can assert
// storage identity (no aliasing, no reallocation) without widening the API.

// BufferOf returns the backing slice of a Dynamic or Fixed, nil otherwise.
func BufferOf[T Element](m Matrix[T]) []T {
	if rm, ok := m.(rowMajor[T]); ok {
		return rm.buffer()
	}

	return nil
}

// PanicNilLogger_TestOnly exports the WithLogger panic message.
const PanicNilLogger_TestOnly = panicNilLogger
