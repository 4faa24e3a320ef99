// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/subrotod/cachematrix/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense FILLS an r×c *Dense with U(-1,1) values from seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, rng.Float64()*2-1)
		}
	}

	return d
}

// DiagDominant RETURNS a random n×n matrix with n added on the diagonal,
// which keeps it comfortably invertible.
func DiagDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	d := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, d, i, i, MustAt(t, d, i, i)+float64(n))
	}

	return d
}

// MustSet WRITES m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// AssertIdentity CHECKS that m ≈ I within tol.
func AssertIdentity(t *testing.T, m matrix.Matrix, tol float64) {
	t.Helper()
	if m.Rows() != m.Cols() {
		t.Fatalf("identity check: %dx%d is not square", m.Rows(), m.Cols())
	}
	id, err := matrix.NewIdentity(m.Rows())
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", m.Rows(), err)
	}
	if !matrix.EqualApprox(m, id, tol) {
		t.Fatalf("want identity within %.1e, got:\n%v", tol, m)
	}
}
