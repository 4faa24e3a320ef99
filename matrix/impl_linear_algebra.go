// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels behind the cache:
// LU factorization with partial pivoting, inversion and multiplication.
// All functions validate fail-fast and return wrapped sentinels.
//
// Purpose:
//   - Keep every kernel on the same validation → allocation → flat-loop shape.
//   - Define operation tags and shared constants for error reporting.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opInverse = "Inverse"
	opLU      = "LU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a × b into a fresh Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Pass *Dense operands to take the i-k-j flat-slice path.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Generic i-j-k through the interface.
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// flatten copies a square matrix into a row-major slice.
func flatten(m Matrix, n int) ([]float64, error) {
	buf := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return buf, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			buf[i*n+j] = v
		}
	}

	return buf, nil
}

// LU computes P·A = L·U with partial (row) pivoting.
// L is unit lower triangular, U upper triangular, and perm describes P:
// row i of P·A is row perm[i] of A.
//
// Implementation:
//   - Stage 1: validate (NotNil → Square → Finite per policy); copy A into a work buffer
//     and derive the pivot tolerance (n·eps·max|a_ij| by default, eps after WithEpsilon).
//   - Stage 2: for each column k pick the row with the largest |a[i,k]| (i ≥ k; first wins on ties),
//     fail with ErrSingular when that magnitude is <= the tolerance, swap, eliminate below.
//   - Stage 3: split the work buffer into L and U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Determinism:
//   - Fixed k→i→j order; ties in pivot selection resolve to the lowest row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (Matrix, Matrix, []int, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(m); err != nil {
			return nil, nil, nil, matrixErrorf(opLU, err)
		}
	}

	n := m.Rows()
	a, err := flatten(m, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	var maxAbs float64
	for _, v := range a {
		if v = math.Abs(v); v > maxAbs {
			maxAbs = v
		}
	}
	tol := o.pivotTolerance(n, maxAbs)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p    int
		best, abs, lk float64
	)
	for k = 0; k < n; k++ {
		// Pivot search down column k.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if abs = math.Abs(a[i*n+k]); abs > best {
				p, best = i, abs
			}
		}
		if best <= tol {
			return nil, nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		// Eliminate; multipliers are stored in place below the diagonal.
		for i = k + 1; i < n; i++ {
			lk = a[i*n+k] / a[k*n+k]
			a[i*n+k] = lk
			if lk == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= lk * a[k*n+j]
			}
		}
	}

	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse computes A^{-1} from the pivoted LU factorization.
// The input is never mutated; the result is a fresh *Dense.
//
// Implementation:
//   - Stage 1: P·A = L·U via LU(m, opts...), which runs the NotNil → Square → Finite guards.
//   - Stage 2: for each column e_col solve L·y = P·e_col (top-down) then U·x = y (bottom-up)
//     and write x into column col.
//
// Inputs:
//   - m: square matrix.
//   - opts: numeric policy forwarded to LU (pivot tolerance, NaN/Inf policy).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf, ErrSingular,
//     all reported as "Inverse: LU: ...".
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - If only A^{-1}·b is needed, solve with LU directly instead of forming A^{-1}.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	Lmat, Umat, perm, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	Ld, Ud := Lmat.(*Dense), Umat.(*Dense)

	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += Ld.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = ZeroSum - sum // avoids -0 in untouched cells
			}
		}
		// U*x = y; LU already rejected small pivots.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += Ud.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / Ud.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
