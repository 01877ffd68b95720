package dynamo

import "fmt"

type Point struct {
	X, Y float64
}

// Solution is the output of every integrator. Dimension k of the trajectory is
// stored contiguously in Result[k*N : (k+1)*N], and T[i] = i*dt.
type Solution struct {
	T      []float64
	Result []float64
	N      int
}

func NewSolution(t, result []float64, n int) (*Solution, error) {
	if n <= 0 || len(t) != n || len(result)%n != 0 {
		return nil, fmt.Errorf("solution with %d times, %d values, N=%d: %w", len(t), len(result), n, ErrDimensionMismatch)
	}
	return &Solution{T: t, Result: result, N: n}, nil
}

// Dims returns the state dimension d.
func (s *Solution) Dims() int {
	if s.N == 0 {
		return 0
	}
	return len(s.Result) / s.N
}

// Dimension returns the trajectory of component k. The slice shares the
// solution's buffer and must not be modified.
func (s *Solution) Dimension(k int) ([]float64, error) {
	if k < 0 || k >= s.Dims() {
		return nil, fmt.Errorf("dimension %d of %d: %w", k, s.Dims(), ErrDimensionOutOfRange)
	}
	return s.Result[k*s.N : (k+1)*s.N : (k+1)*s.N], nil
}

// Trail pairs each time with component k.
func (s *Solution) Trail(k int) ([]Point, error) {
	x, err := s.Dimension(k)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, s.N)
	for i := range pts {
		pts[i] = Point{X: s.T[i], Y: x[i]}
	}
	return pts, nil
}

// Phase pairs component k1 with component k2 at each time.
func (s *Solution) Phase(k1, k2 int) ([]Point, error) {
	x, err := s.Dimension(k1)
	if err != nil {
		return nil, err
	}
	y, err := s.Dimension(k2)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, s.N)
	for i := range pts {
		pts[i] = Point{X: x[i], Y: y[i]}
	}
	return pts, nil
}

// At returns the state at time index i.
func (s *Solution) At(i int) State {
	d := s.Dims()
	x := make(State, d)
	for k := 0; k < d; k++ {
		x[k] = s.Result[k*s.N+i]
	}
	return x
}

// States regroups the packed buffer into one State per time.
func (s *Solution) States() []State {
	out := make([]State, s.N)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

func (s *Solution) Final() State { return s.At(s.N - 1) }

// Trajectory fills a Solution in its packed layout while an integrator runs.
type Trajectory struct {
	sol *Solution
}

// NewTrajectory allocates storage for grid and records initial at index 0.
func NewTrajectory(g Grid, initial State) *Trajectory {
	t := make([]float64, g.N)
	for i := range t {
		t[i] = g.At(i)
	}
	tr := &Trajectory{sol: &Solution{T: t, Result: make([]float64, g.N*len(initial)), N: g.N}}
	tr.Record(0, initial)
	return tr
}

func (tr *Trajectory) Record(i int, x State) {
	n := tr.sol.N
	for k, v := range x {
		tr.sol.Result[k*n+i] = v
	}
}

func (tr *Trajectory) Solution() *Solution { return tr.sol }
