package algebra

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Size is a (rows, cols) pair. It is a value type; copying a Matrix's Size never
// aliases the matrix.
type Size struct {
	N, M int
}

// Square returns the n×n size.
func Square(n int) Size { return Size{N: n, M: n} }

func (s Size) Len() int { return s.N * s.M }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.N, s.M) }

// Uniform is a source of uniform variates in [0,1). *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// Matrix is a dense row-major matrix. Element (i,j) lives at data[i*M+j] and
// len(data) == N*M always holds.
type Matrix struct {
	size  Size
	data  []float64
	owned bool
}

// New returns a zero-filled matrix that owns its buffer.
func New(size Size) *Matrix {
	if size.N < 0 || size.M < 0 {
		panic(fmt.Sprintf("algebra: negative dimension %v", size))
	}
	return &Matrix{size: size, data: make([]float64, size.Len()), owned: true}
}

// NewView wraps buf without copying it. The caller keeps ownership of buf.
func NewView(size Size, buf []float64) (*Matrix, error) {
	if size.N < 0 || size.M < 0 || len(buf) != size.Len() {
		return nil, fmt.Errorf("NewView: %v with buffer of %d: %w", size, len(buf), ErrShape)
	}
	return &Matrix{size: size, data: buf}, nil
}

// FromRows builds an owned matrix from a rectangular slice of rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return New(Size{}), nil
	}
	m := New(Size{N: len(rows), M: len(rows[0])})
	for i, row := range rows {
		if len(row) != m.size.M {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), m.size.M, ErrShape)
		}
		copy(m.data[i*m.size.M:], row)
	}
	return m, nil
}

// Vector returns an owned column vector holding vals.
func Vector(vals ...float64) *Matrix {
	m := New(Size{N: len(vals), M: 1})
	copy(m.data, vals)
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix { return IdentityOf(Square(n)) }

// IdentityOf returns a zero matrix of the given shape with ones at (i,i) for
// i < min(N, M).
func IdentityOf(size Size) *Matrix {
	r := New(size)
	for i := 0; i < min(size.N, size.M); i++ {
		r.data[size.M*i+i] = 1
	}
	return r
}

// Random returns a matrix with entries drawn independently from [0,1) by rng.
// It panics if rng is nil.
func Random(size Size, rng Uniform) *Matrix {
	if rng == nil {
		panic("algebra: Random with nil Uniform")
	}
	r := New(size)
	for i := range r.data {
		r.data[i] = rng.Float64()
	}
	return r
}

func (m *Matrix) Size() Size { return m.size }
func (m *Matrix) Rows() int  { return m.size.N }
func (m *Matrix) Cols() int  { return m.size.M }

// Owned reports whether m owns its backing buffer.
func (m *Matrix) Owned() bool { return m.owned }

// Data returns the backing row-major buffer.
func (m *Matrix) Data() []float64 { return m.data }

func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.size.M+j]
}

func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.size.M+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.size.N || j < 0 || j >= m.size.M {
		panic(fmt.Sprintf("algebra: index (%d,%d) out of range for %v", i, j, m.size))
	}
}

// Copy returns an owned deep copy, whatever the ownership of m.
func (m *Matrix) Copy() *Matrix {
	c := New(m.size)
	copy(c.data, m.data)
	return c
}

func (m *Matrix) sameSize(op string, o *Matrix) error {
	if m.size != o.size {
		return fmt.Errorf("%s: %v and %v: %w", op, m.size, o.size, ErrDimensionMismatch)
	}
	return nil
}

// Add returns m + o as a new owned matrix.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if err := m.sameSize("Add", o); err != nil {
		return nil, err
	}
	r := New(m.size)
	floats.AddTo(r.data, m.data, o.data)
	return r, nil
}

// Subtract returns m - o as a new owned matrix.
func (m *Matrix) Subtract(o *Matrix) (*Matrix, error) {
	if err := m.sameSize("Subtract", o); err != nil {
		return nil, err
	}
	r := New(m.size)
	floats.SubTo(r.data, m.data, o.data)
	return r, nil
}

// IAdd adds o into m and returns m itself, not a copy.
func (m *Matrix) IAdd(o *Matrix) (*Matrix, error) {
	if err := m.sameSize("IAdd", o); err != nil {
		return nil, err
	}
	floats.Add(m.data, o.data)
	return m, nil
}

// ISubtract subtracts o from m and returns m itself, not a copy.
func (m *Matrix) ISubtract(o *Matrix) (*Matrix, error) {
	if err := m.sameSize("ISubtract", o); err != nil {
		return nil, err
	}
	floats.Sub(m.data, o.data)
	return m, nil
}

// Multiply returns the product m·o. m.Cols() must equal o.Rows().
func (m *Matrix) Multiply(o *Matrix) (*Matrix, error) {
	if m.size.M != o.size.N {
		return nil, fmt.Errorf("Multiply: %v by %v: %w", m.size, o.size, ErrDimensionMismatch)
	}
	r := New(Size{N: m.size.N, M: o.size.M})
	n, k, p := m.size.N, m.size.M, o.size.M
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			sum := 0.0
			for l := 0; l < k; l++ {
				sum += m.data[k*i+l] * o.data[p*l+j]
			}
			r.data[p*i+j] = sum
		}
	}
	return r, nil
}

// Transpose returns a new owned matrix with (i,j) moved to (j,i).
func (m *Matrix) Transpose() *Matrix {
	r := New(Size{N: m.size.M, M: m.size.N})
	for i := 0; i < m.size.N; i++ {
		for j := 0; j < m.size.M; j++ {
			r.data[m.size.N*j+i] = m.data[m.size.M*i+j]
		}
	}
	return r
}

// Equal reports whether m and o have the same shape and identical entries.
// Ownership is not compared.
func (m *Matrix) Equal(o *Matrix) bool {
	return m.size == o.size && floats.Equal(m.data, o.data)
}

// EqualApprox is Equal with an absolute-or-relative tolerance per entry.
func (m *Matrix) EqualApprox(o *Matrix, tol float64) bool {
	return m.size == o.size && floats.EqualApprox(m.data, o.data, tol)
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.size.N; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.size.M; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.size.M+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
