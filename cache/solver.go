// SPDX-License-Identifier: MIT

package cache

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/subrotod/cachematrix/matrix"
)

// ErrNilCell is returned by Solve when the cell is nil.
var ErrNilCell = errors.New("cache: nil cell")

const opSolve = "cache: Solve"

// InvertFunc is the inversion primitive a Solver calls on a cache miss.
// matrix.Inverse is the default.
type InvertFunc func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// Solver returns cached inverses and computes missing ones.
// Its configuration is immutable, so one Solver can serve many cells.
type Solver struct {
	invert InvertFunc
	logger *log.Logger
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithLogger routes the hit/miss trace to l. A nil l keeps the default.
func WithLogger(l *log.Logger) SolverOption {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInverter replaces the inversion primitive. A nil f keeps the default.
func WithInverter(f InvertFunc) SolverOption {
	return func(s *Solver) {
		if f != nil {
			s.invert = f
		}
	}
}

// NewSolver builds a Solver around matrix.Inverse. Without WithLogger it
// logs through whatever log.Default() is at call time.
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{invert: matrix.Inverse}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Solver) log() *log.Logger {
	if s.logger != nil {
		return s.logger
	}

	return log.Default()
}

// Solve returns the inverse of the matrix held by c.
//
// On a hit the cached inverse is returned as is and nothing is computed.
// On a miss the matrix is inverted with opts forwarded verbatim, the result
// is stored in c and returned. When inversion fails the error is returned
// wrapped (errors.Is still matches the matrix sentinels) and c stays unset.
//
// The returned matrix is the cell's cached inverse, shared by every later
// hit: treat it as read-only and Clone it before modifying.
func (s *Solver) Solve(c *Cell, opts ...matrix.Option) (matrix.Matrix, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrNilCell)
	}
	if inv, ok := c.Inverse(); ok {
		s.log().Info("getting cached data", "rows", inv.Rows(), "cols", inv.Cols())
		return inv, nil
	}

	m := c.Get()
	s.log().Debug("computing inverse", "cell", c)
	inv, err := s.invert(m, opts...)
	if err != nil {
		s.log().Debug("inverse failed", "err", err)
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	c.SetInverse(inv)

	return inv, nil
}

var defaultSolver = NewSolver()

// Solve is Solver.Solve on a package-level Solver that uses matrix.Inverse
// and log.Default(). The result is shared with c and must not be mutated.
func Solve(c *Cell, opts ...matrix.Option) (matrix.Matrix, error) {
	return defaultSolver.Solve(c, opts...)
}
