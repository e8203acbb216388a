// Package matrix provides the operations written once over the Matrix
// contract: element-wise addition, population from a value source and
// equality. All functions validate fail-fast and never mutate an operand
// on failure.
package matrix

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opPopulate = "Populate"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// optionsOf returns the configuration carried by m, or the defaults for
// implementations outside this package.
func optionsOf[T Element](m Matrix[T]) Options {
	if rm, ok := m.(rowMajor[T]); ok {
		return rm.options()
	}

	return gatherOptions()
}

// describe renders "kind RxC" for log fields.
func describe[T Element](m Matrix[T]) string {
	return fmt.Sprintf("%s %dx%d", m.Kind(), m.Rows(), m.Cols())
}

// Add returns a new Matrix holding the element-wise sum a + b.
//
// Stage 1 (Validate): nil checks, then the variant check under PolicyStrict,
// then the shape check. Nothing is allocated before these pass.
// Stage 2 (Prepare): allocate the result with a.NewSameKind, so the result
// has a's variant and options.
// Stage 3 (Execute): flat-buffer fast path when all three matrices are
// grid-backed; otherwise a row-major At/Set loop.
// Stage 4 (Finalize): return the result, or nil and an error.
//
// The receiver's addition policy (a's options) decides variant compatibility.
// With WithValidateNaNInf on the result, a NaN or ±Inf sum discards the
// result with ErrNaNInf; by default such sums are stored as-is.
// Complexity: O(r·c) time and memory.
func Add[T Element](a, b Matrix[T]) (Matrix[T], error) {
	// Stage 1: Validate
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	o := optionsOf(a)
	if o.policy == PolicyStrict {
		if err := ValidateSameVariant(a, b); err != nil {
			logRejected(o, a, b, err)
			return nil, matrixErrorf(opAdd, err)
		}
	}
	if err := ValidateSameShape(a, b); err != nil {
		logRejected(o, a, b, err)
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 2: Allocate result of the receiver's variant
	rows, cols := a.Shape()
	res, err := a.NewSameKind(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 3: Fast path over the flat buffers
	if ra, okA := a.(rowMajor[T]); okA {
		if rb, okB := b.(rowMajor[T]); okB {
			if rr, okR := res.(rowMajor[T]); okR {
				ad, bd, dst := ra.buffer(), rb.buffer(), rr.buffer()
				validate := rr.options().ValidateNaNInf()
				for idx := range dst {
					sum := ad[idx] + bd[idx]
					if validate {
						if err = checkFinite(sum); err != nil {
							return nil, fmt.Errorf("%s(%d,%d): %w", opAdd, idx/cols, idx%cols, err)
						}
					}
					dst[idx] = sum
				}

				return res, nil
			}
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		av, bv T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
		}
	}

	// Stage 4: Return result
	return res, nil
}

// logRejected records a refused addition at debug level.
func logRejected[T Element](o Options, a, b Matrix[T], err error) {
	o.sink().WithFields(log.Fields{
		"op":     opAdd,
		"lhs":    describe(a),
		"rhs":    describe(b),
		"policy": o.policy.String(),
	}).WithError(err).Debug("matrix: addition rejected")
}

// Populate fills every cell of m with values from src, row-major.
//
// Stage 1 (Validate): nil checks.
// Stage 2 (Stage): request one value per cell into a scratch buffer. For
// Dynamic and Fixed the receiver's numeric policy is applied here.
// Stage 3 (Commit): copy the scratch buffer into m. Other implementations
// are committed through m.Set, which applies their own policy; a Set failure
// there may leave earlier cells written.
//
// When src fails (ErrInputExhausted, ErrInvalidFormat, ...) the error is
// wrapped with the cell coordinates and m keeps its previous contents.
// Complexity: O(r·c) time, O(r·c) scratch memory.
func Populate[T Element](m Matrix[T], src Source[T]) error {
	// Stage 1: Validate
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opPopulate, err)
	}
	if src == nil {
		return matrixErrorf(opPopulate, ErrNilSource)
	}
	o := optionsOf(m)
	rm, gridBacked := m.(rowMajor[T])
	validate := gridBacked && rm.options().ValidateNaNInf()
	rows, cols := m.Shape()

	// Stage 2: Stage values
	staged := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := src.Next(i, j)
			if err == nil && validate {
				err = checkFinite(v)
			}
			if err != nil {
				err = fmt.Errorf("%s(%d,%d): %w", opPopulate, i, j, err)
				o.sink().WithFields(log.Fields{
					"op":     opPopulate,
					"matrix": describe(m),
				}).WithError(err).Debug("matrix: population aborted")
				return err
			}
			staged[i*cols+j] = v
		}
	}

	// Stage 3: Commit
	if gridBacked {
		copy(rm.buffer(), staged)
		return nil
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := m.Set(i, j, staged[i*cols+j]); err != nil {
				return matrixErrorf(opPopulate, err)
			}
		}
	}

	return nil
}

// Equal reports whether a and b have the same shape and identical elements.
// Variants are not compared. Two nil matrices are equal.
func Equal[T Element](a, b Matrix[T]) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	rows, cols := a.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}
