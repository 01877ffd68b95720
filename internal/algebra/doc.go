// Package algebra provides a small dense-matrix type and an unpivoted LU solver.
//
//   - [Size]: immutable (rows, cols) pair
//   - [Matrix]: row-major float64 matrix that either owns or borrows its buffer
//   - [Matrix.LUDecompose], [Matrix.LTSolve], [Matrix.UTSolve], [Matrix.Solve]
//
// # Ownership
//
// [New] allocates a buffer the matrix owns. [NewView] wraps a caller-supplied
// slice without copying, so writes through either side are visible to the other.
// [Matrix.Copy] always returns an owning matrix.
//
// # Pivoting
//
// LU factorization does not pivot. A zero or tiny pivot is not detected: the
// division produces Inf or NaN and those values flow into L, U and any solution
// built from them. Use [CheckFinite] on the factorization when the input may be
// singular or badly scaled.
package algebra
