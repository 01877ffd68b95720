package integrators

import "github.com/san-kum/nants/internal/dynamo"

// AB2 is the two-step Adams-Bashforth method
// x_{i+1} = x_i + dt*(3*f_i - f_{i-1})/2, bootstrapped with one Euler step.
// The previous derivative is carried forward, so each step evaluates f once.
type AB2 struct{}

func NewAB2() *AB2 {
	return &AB2{}
}

func (a *AB2) Integrate(f dynamo.Func, initial dynamo.State, dt, tFinal float64, p []float64) (*dynamo.Solution, error) {
	g, err := dynamo.Prepare(initial, dt, tFinal, f)
	if err != nil {
		return nil, err
	}
	tr := dynamo.NewTrajectory(g, initial)
	if g.N < 2 {
		return tr.Solution(), nil
	}

	x, dxOld, err := eulerBootstrap(f, initial, dt, p)
	if err != nil {
		return nil, err
	}
	tr.Record(1, x)

	for i := 1; i < g.N-1; i++ {
		t := g.At(i)
		dx := f(x, t, p)
		if err := dynamo.CheckDim(i, t, x, dx); err != nil {
			return nil, err
		}
		for j := range x {
			x[j] += dt * (3*dx[j] - dxOld[j]) / 2
			dxOld[j] = dx[j]
		}
		tr.Record(i+1, x)
	}
	return tr.Solution(), nil
}
