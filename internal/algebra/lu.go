package algebra

import (
	"fmt"
	"math"
)

func (m *Matrix) requireSquare(op string) error {
	if m.size.N != m.size.M {
		return fmt.Errorf("%s: %v matrix must be square: %w", op, m.size, ErrShape)
	}
	return nil
}

// requireRHS checks the preconditions shared by the triangular solves and Solve.
func (m *Matrix) requireRHS(op string, b *Matrix) error {
	if err := m.requireSquare(op); err != nil {
		return err
	}
	if m.size.M != b.size.N {
		return fmt.Errorf("%s: %v system with %v right-hand side: %w", op, m.size, b.size, ErrShape)
	}
	// Right-hand sides are single columns. Lifting this check, with column
	// loops in the solves, would let Solve(Identity) produce the inverse.
	if b.size.M != 1 {
		return fmt.Errorf("%s: right-hand side must have one column, got %d: %w", op, b.size.M, ErrShape)
	}
	return nil
}

// LUDecompose returns the Doolittle factorization of m packed in one matrix:
// the unit lower factor L sits strictly below the diagonal (its ones are
// implicit) and U occupies the diagonal and above. m is left untouched.
//
// No pivoting is done. A zero pivot yields Inf/NaN entries instead of an error.
func (m *Matrix) LUDecompose() (*Matrix, error) {
	if err := m.requireSquare("LUDecompose"); err != nil {
		return nil, err
	}
	lu := m.Copy()
	n := m.size.N
	a := lu.data
	for k := 0; k < n-1; k++ {
		pivot := a[n*k+k]
		for l := k + 1; l < n; l++ {
			mult := a[n*l+k] / pivot
			for c := k + 1; c < n; c++ {
				a[n*l+c] -= mult * a[n*k+c]
			}
			a[n*l+k] = mult
		}
	}
	return lu, nil
}

// GrabL extracts the unit lower-triangular factor from a packed LU matrix.
func (m *Matrix) GrabL() (*Matrix, error) {
	if err := m.requireSquare("GrabL"); err != nil {
		return nil, err
	}
	l := m.Copy()
	n := m.size.N
	for i := 0; i < n; i++ {
		l.data[n*i+i] = 1
		for j := i + 1; j < n; j++ {
			l.data[n*i+j] = 0
		}
	}
	return l, nil
}

// GrabU extracts the upper-triangular factor from a packed LU matrix.
func (m *Matrix) GrabU() (*Matrix, error) {
	if err := m.requireSquare("GrabU"); err != nil {
		return nil, err
	}
	u := m.Copy()
	n := m.size.N
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			u.data[n*i+j] = 0
		}
	}
	return u, nil
}

// LTSolve solves L·x = b by forward substitution. Only the strictly lower part
// of m is read and the diagonal is taken to be one, so a packed LU matrix can
// be passed directly.
func (m *Matrix) LTSolve(b *Matrix) (*Matrix, error) {
	if err := m.requireRHS("LTSolve", b); err != nil {
		return nil, err
	}
	n := m.size.N
	x := New(b.size)
	for i := 0; i < n; i++ {
		v := b.data[i]
		for j := 0; j < i; j++ {
			v -= m.data[n*i+j] * x.data[j]
		}
		x.data[i] = v
	}
	return x, nil
}

// UTSolve solves U·x = b by back substitution. Entries below the diagonal are
// ignored, so a packed LU matrix can be passed directly.
func (m *Matrix) UTSolve(b *Matrix) (*Matrix, error) {
	if err := m.requireRHS("UTSolve", b); err != nil {
		return nil, err
	}
	n := m.size.N
	x := New(b.size)
	for i := n - 1; i >= 0; i-- {
		v := b.data[i]
		for j := n - 1; j > i; j-- {
			v -= m.data[n*i+j] * x.data[j]
		}
		x.data[i] = v / m.data[n*i+i]
	}
	return x, nil
}

// Solve returns x with m·x = b using LUDecompose, LTSolve and UTSolve.
func (m *Matrix) Solve(b *Matrix) (*Matrix, error) {
	if err := m.requireRHS("Solve", b); err != nil {
		return nil, err
	}
	lu, err := m.LUDecompose()
	if err != nil {
		return nil, err
	}
	y, err := lu.LTSolve(b)
	if err != nil {
		return nil, err
	}
	return lu.UTSolve(y)
}

// CheckFinite returns ErrSingular if any entry of m is NaN or infinite.
func CheckFinite(m *Matrix) error {
	for i, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("entry (%d,%d) = %v: %w", i/max(m.size.M, 1), i%max(m.size.M, 1), v, ErrSingular)
		}
	}
	return nil
}
