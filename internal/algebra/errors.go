package algebra

import "errors"

var (
	// ErrDimensionMismatch indicates operand shapes that disagree for Add,
	// Subtract or Multiply.
	ErrDimensionMismatch = errors.New("algebra: dimension mismatch")

	// ErrShape indicates an operation that needs a square matrix, a single-column
	// right-hand side or a buffer of the right length got something else.
	ErrShape = errors.New("algebra: invalid shape")

	// ErrSingular is reported by CheckFinite when a factorization produced
	// non-finite entries. LUDecompose and Solve never return it.
	ErrSingular = errors.New("algebra: singular matrix (non-finite LU entries)")
)
