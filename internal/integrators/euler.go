package integrators

import "github.com/san-kum/nants/internal/dynamo"

// Euler is the explicit forward Euler method, x_{i+1} = x_i + dt*f(x_i, t_i).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Integrate(f dynamo.Func, initial dynamo.State, dt, tFinal float64, p []float64) (*dynamo.Solution, error) {
	g, err := dynamo.Prepare(initial, dt, tFinal, f)
	if err != nil {
		return nil, err
	}
	tr := dynamo.NewTrajectory(g, initial)

	x := initial.Clone()
	for i := 0; i < g.N-1; i++ {
		t := g.At(i)
		dx := f(x, t, p)
		if err := dynamo.CheckDim(i, t, x, dx); err != nil {
			return nil, err
		}
		for j := range x {
			x[j] += dt * dx[j]
		}
		tr.Record(i+1, x)
	}
	return tr.Solution(), nil
}

// eulerBootstrap performs the forward Euler step 0 -> 1 the two-step methods
// start from. It returns x_1 and f(x_0, 0).
func eulerBootstrap(f dynamo.Func, x0 dynamo.State, dt float64, p []float64) (dynamo.State, dynamo.State, error) {
	dx := f(x0, 0, p)
	if err := dynamo.CheckDim(0, 0, x0, dx); err != nil {
		return nil, nil, err
	}
	x1 := make(dynamo.State, len(x0))
	for j := range x0 {
		x1[j] = x0[j] + dt*dx[j]
	}
	return x1, dx.Clone(), nil
}
