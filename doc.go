// Package cachematrix memoizes matrix inversion.
//
// Two packages do the work:
//
//	matrix/ — Dense storage, value equality, pivoted LU, Inverse, Mul and the
//	          numeric policy options (pivot tolerance, NaN/Inf rejection)
//	cache/  — Cell, a matrix plus one slot for its inverse, and Solve, which
//	          fills the slot on a miss and returns it on a hit
//
// Replacing a cell's matrix with a different value empties the slot;
// replacing it with an equal value keeps it, so the inverse is computed once
// per distinct matrix.
//
//	c := cache.New(m)
//	inv, err := cache.Solve(c)
//
//	go get github.com/subrotod/cachematrix
package cachematrix
