// Package cache memoizes matrix inversion.
//
// A Cell bundles a matrix with a single slot for its inverse. Replacing the
// matrix with a different value (compared element by element, not by
// pointer) empties the slot; replacing it with an equal value keeps it.
// Solve returns the cached inverse when the slot is filled and otherwise
// computes it with matrix.Inverse, stores it and returns it.
//
//	c := cache.New(m)
//	inv, err := cache.Solve(c)                          // miss: computes
//	inv, err = cache.Solve(c)                           // hit: cached
//	c.Set(other)                                        // invalidates if other != m
//	inv, err = cache.Solve(c, matrix.WithEpsilon(1e-12)) // options reach Inverse
//
// A Cell is not safe for concurrent use. Callers sharing one across
// goroutines must hold their own lock around Solve; without it two misses
// may both compute the (identical) inverse.
package cache
