// SPDX-License-Identifier: MIT

package source

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/katalvlaran/polymat/matrix"
)

// Parse converts a token into T using the parser that matches T's
// underlying kind and bit size. Values that do not parse, or do not fit,
// return an error wrapping matrix.ErrInvalidFormat.
func Parse[T matrix.Element](tok string) (T, error) {
	var zero T
	typ := reflect.TypeOf(zero)
	bits := typ.Bits()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tok, 10, bits)
		if err != nil {
			return zero, invalid(tok, err)
		}
		return T(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(tok, 10, bits)
		if err != nil {
			return zero, invalid(tok, err)
		}
		return T(n), nil
	default:
		f, err := strconv.ParseFloat(tok, bits)
		if err != nil {
			return zero, invalid(tok, err)
		}
		return T(f), nil
	}
}

func invalid(tok string, cause error) error {
	var numErr *strconv.NumError
	reason := cause.Error()
	if errors.As(cause, &numErr) {
		reason = numErr.Err.Error()
	}

	return fmt.Errorf("parse %q: %s: %w", tok, reason, matrix.ErrInvalidFormat)
}
