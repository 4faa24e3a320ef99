// Package matrix is the small dense linear-algebra layer used by the cache.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over a 2-D float64 array, and Dense,
//     its row-major implementation.
//   - Equal / EqualApprox for value comparison (shape first, then elements).
//   - LU with partial pivoting, Inverse and Mul.
//   - A numeric policy (pivot tolerance, NaN/Inf rejection) configured with
//     functional options that callers may forward untouched.
//
// Errors are package sentinels (ErrSingular, ErrDimensionMismatch, ...)
// wrapped with an operation tag; match them with errors.Is.
package matrix
