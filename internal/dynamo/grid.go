package dynamo

import (
	"fmt"
	"math"
)

// Grid is the fixed time grid t_i = i*dt, i < N, with N = floor(tFinal/dt).
type Grid struct {
	Dt float64
	N  int
}

func NewGrid(dt, tFinal float64) (Grid, error) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return Grid{}, fmt.Errorf("dt=%v: %w", dt, ErrInvalidStep)
	}
	if math.IsNaN(tFinal) || math.IsInf(tFinal, 0) {
		return Grid{}, fmt.Errorf("t_final=%v: %w", tFinal, ErrInvalidStep)
	}
	n := math.Floor(tFinal / dt)
	if n < 1 {
		return Grid{}, fmt.Errorf("t_final=%v dt=%v: %w", tFinal, dt, ErrEmptyGrid)
	}
	if n > math.MaxInt32 {
		return Grid{}, fmt.Errorf("t_final/dt=%v steps: %w", n, ErrInvalidStep)
	}
	return Grid{Dt: dt, N: int(n)}, nil
}

func (g Grid) At(i int) float64 { return float64(i) * g.Dt }

// Prepare validates the arguments every integrator shares and returns the grid.
func Prepare(initial State, dt, tFinal float64, fns ...Func) (Grid, error) {
	for _, f := range fns {
		if f == nil {
			return Grid{}, ErrNilFunc
		}
	}
	if len(initial) == 0 {
		return Grid{}, ErrInvalidState
	}
	return NewGrid(dt, tFinal)
}
