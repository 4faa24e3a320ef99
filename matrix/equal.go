// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether a and b hold the same value: identical shape and
// every corresponding element equal under ==.
//
// Behavior highlights:
//   - Shapes that differ are never equal.
//   - Two nil matrices are equal; nil and non-nil are not.
//   - NaN != NaN, exactly like the scalar comparison.
//   - Out-of-range reads on a misbehaving implementation compare unequal.
//
// Complexity:
//   - Time O(r*c), Space O(1). Short-circuits on the first difference.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast path: compare flat buffers.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for k := range da.data {
				if da.data[k] != db.data[k] {
					return false
				}
			}

			return true
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// EqualApprox is Equal with an absolute per-element tolerance:
// |a[i,j] - b[i,j]| <= tol for every cell.
// A negative tol is treated as zero.
func EqualApprox(a, b Matrix, tol float64) bool {
	if tol < 0 {
		tol = 0
	}
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if !(math.Abs(av-bv) <= tol) {
				return false
			}
		}
	}

	return true
}
