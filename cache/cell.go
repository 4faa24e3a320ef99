// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"

	"github.com/subrotod/cachematrix/matrix"
)

// Cell holds a matrix and an optional cached inverse.
//
// Invariant: when inv is non-nil it is the inverse of m. Set keeps it by
// clearing inv whenever m is replaced by a different value.
type Cell struct {
	m   matrix.Matrix // owned copy of the caller's matrix
	inv matrix.Matrix // nil while unset
}

// New returns a Cell holding a copy of m with no cached inverse.
// m is not validated; Solve reports non-square or singular input.
func New(m matrix.Matrix) *Cell {
	return &Cell{m: own(m)}
}

// own clones m so later caller mutations cannot desynchronise the cache.
func own(m matrix.Matrix) matrix.Matrix {
	if matrix.ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// Set replaces the stored matrix. When m differs from the current value
// (shape or any element) the cached inverse is cleared. An equal value,
// even a distinct object, leaves the cell untouched.
func (c *Cell) Set(m matrix.Matrix) {
	if matrix.Equal(c.m, m) {
		return
	}
	c.m = own(m)
	c.inv = nil
}

// Get returns the current matrix. The result is shared with the cell and
// must not be mutated.
func (c *Cell) Get() matrix.Matrix {
	return c.m
}

// SetInverse stores inv as the cached inverse without any checks.
func (c *Cell) SetInverse(inv matrix.Matrix) {
	c.inv = inv
}

// Inverse returns the cached inverse and true, or nil and false when unset.
// A typed-nil matrix passed to SetInverse counts as unset. The result is
// shared with the cell and every later cache hit, so it must not be mutated.
func (c *Cell) Inverse() (matrix.Matrix, bool) {
	if !c.Cached() {
		return nil, false
	}

	return c.inv, true
}

// Cached reports whether a usable inverse is cached.
func (c *Cell) Cached() bool {
	return matrix.ValidateNotNil(c.inv) == nil
}

// Reset drops the cached inverse and keeps the matrix.
func (c *Cell) Reset() {
	c.inv = nil
}

// String renders the cell for diagnostics, e.g. "Cell{2x2, cached=true}".
func (c *Cell) String() string {
	if matrix.ValidateNotNil(c.m) != nil {
		return fmt.Sprintf("Cell{nil, cached=%t}", c.Cached())
	}

	return fmt.Sprintf("Cell{%dx%d, cached=%t}", c.m.Rows(), c.m.Cols(), c.Cached())
}
