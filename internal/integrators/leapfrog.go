package integrators

import "github.com/san-kum/nants/internal/dynamo"

// Leapfrog is the two-step central-difference method
// x_{i+1} = x_{i-1} + 2*dt*f(x_i, t_i), bootstrapped with one Euler step.
type Leapfrog struct{}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Integrate(f dynamo.Func, initial dynamo.State, dt, tFinal float64, p []float64) (*dynamo.Solution, error) {
	g, err := dynamo.Prepare(initial, dt, tFinal, f)
	if err != nil {
		return nil, err
	}
	tr := dynamo.NewTrajectory(g, initial)
	if g.N < 2 {
		return tr.Solution(), nil
	}

	xOld := initial.Clone()
	xCur, _, err := eulerBootstrap(f, xOld, dt, p)
	if err != nil {
		return nil, err
	}
	tr.Record(1, xCur)

	xNew := make(dynamo.State, len(initial))
	for i := 1; i < g.N-1; i++ {
		t := g.At(i)
		dx := f(xCur, t, p)
		if err := dynamo.CheckDim(i, t, xCur, dx); err != nil {
			return nil, err
		}
		for j := range xNew {
			xNew[j] = xOld[j] + 2*dt*dx[j]
		}
		tr.Record(i+1, xNew)
		xOld, xCur, xNew = xCur, xNew, xOld
	}
	return tr.Solution(), nil
}
