// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every kernel returns one of these sentinels, wrapped with an operation tag
// via matrixErrorf; callers match them with errors.Is. No kernel panics on a
// user-triggered error condition.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Wrap at the outer boundary with fmt.Errorf("ctx: %w", ErrX) when context
// is needed; errors.Is keeps working.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a row literal is ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a non-square input to Inverse.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when no usable pivot (|p| > eps) exists during
	// factorization or inversion.
	ErrSingular = errors.New("matrix: singular matrix")
)
