package stochastic

import "github.com/san-kum/nants/internal/dynamo"

// System bundles the functions and parameter vectors of one Langevin equation.
// DiffusionDeriv is only read by Milstein.
type System struct {
	Drift           dynamo.Func
	Diffusion       dynamo.Func
	DiffusionDeriv  dynamo.Func
	DriftParams     []float64
	DiffusionParams []float64
}

// Integrator is the common shape of the stochastic integrators.
type Integrator interface {
	Run(sys System, initial dynamo.State, dt, tFinal float64) (*dynamo.Solution, error)
}

// evalDim evaluates fn and checks the returned length.
func evalDim(fn dynamo.Func, i int, x dynamo.State, t float64, p []float64) (dynamo.State, error) {
	dx := fn(x, t, p)
	if err := dynamo.CheckDim(i, t, x, dx); err != nil {
		return nil, err
	}
	return dx, nil
}
