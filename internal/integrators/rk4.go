package integrators

import "github.com/san-kum/nants/internal/dynamo"

// RK4 is the classical fourth-order Runge-Kutta method on the same fixed grid
// as the other integrators. It is the reference the low-order methods are
// compared against.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Integrate(f dynamo.Func, initial dynamo.State, dt, tFinal float64, p []float64) (*dynamo.Solution, error) {
	g, err := dynamo.Prepare(initial, dt, tFinal, f)
	if err != nil {
		return nil, err
	}
	tr := dynamo.NewTrajectory(g, initial)

	n := len(initial)
	x := initial.Clone()
	k1 := make(dynamo.State, n)
	k2 := make(dynamo.State, n)
	k3 := make(dynamo.State, n)
	scratch := make(dynamo.State, n)

	eval := func(i int, dst, at dynamo.State, t float64) error {
		dx := f(at, t, p)
		if err := dynamo.CheckDim(i, t, at, dx); err != nil {
			return err
		}
		copy(dst, dx)
		return nil
	}

	dt6 := dt / 6.0
	for i := 0; i < g.N-1; i++ {
		t := g.At(i)
		if err := eval(i, k1, x, t); err != nil {
			return nil, err
		}

		for j := 0; j < n; j++ {
			scratch[j] = x[j] + dt*0.5*k1[j]
		}
		if err := eval(i, k2, scratch, t+dt*0.5); err != nil {
			return nil, err
		}

		for j := 0; j < n; j++ {
			scratch[j] = x[j] + dt*0.5*k2[j]
		}
		if err := eval(i, k3, scratch, t+dt*0.5); err != nil {
			return nil, err
		}

		for j := 0; j < n; j++ {
			scratch[j] = x[j] + dt*k3[j]
		}
		k4 := f(scratch, t+dt, p)
		if err := dynamo.CheckDim(i, t+dt, scratch, k4); err != nil {
			return nil, err
		}

		for j := 0; j < n; j++ {
			x[j] += dt6 * (k1[j] + 2*k2[j] + 2*k3[j] + k4[j])
		}
		tr.Record(i+1, x)
	}
	return tr.Solution(), nil
}
