package integrators

import "github.com/san-kum/nants/internal/dynamo"

// Heun is the explicit trapezoidal predictor-corrector:
//
//	x* = x_i + dt*f(x_i, t_i)
//	x_{i+1} = x_i + dt*(f(x_i, t_i) + f(x*, t_{i+1}))/2
type Heun struct{}

func NewHeun() *Heun {
	return &Heun{}
}

func (h *Heun) Integrate(f dynamo.Func, initial dynamo.State, dt, tFinal float64, p []float64) (*dynamo.Solution, error) {
	g, err := dynamo.Prepare(initial, dt, tFinal, f)
	if err != nil {
		return nil, err
	}
	tr := dynamo.NewTrajectory(g, initial)

	x := initial.Clone()
	pred := make(dynamo.State, len(x))
	for i := 0; i < g.N-1; i++ {
		t, tNext := g.At(i), g.At(i+1)
		k1 := f(x, t, p)
		if err := dynamo.CheckDim(i, t, x, k1); err != nil {
			return nil, err
		}
		for j := range x {
			pred[j] = x[j] + dt*k1[j]
		}
		k2 := f(pred, tNext, p)
		if err := dynamo.CheckDim(i, tNext, pred, k2); err != nil {
			return nil, err
		}
		for j := range x {
			x[j] += dt * (k1[j] + k2[j]) / 2
		}
		tr.Record(i+1, x)
	}
	return tr.Solution(), nil
}
