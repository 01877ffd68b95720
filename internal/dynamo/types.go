package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// Func is a right-hand side f(x, t, p). Parameters travel as a plain vector so
// models index them directly instead of looking up named fields.
type Func func(x State, t float64, p []float64) State

// Integrator advances a deterministic system over a fixed time grid.
type Integrator interface {
	Integrate(f Func, initial State, dt, tFinal float64, params []float64) (*Solution, error)
}
