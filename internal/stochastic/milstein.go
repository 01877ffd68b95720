package stochastic

import (
	"math"

	"github.com/san-kum/nants/internal/dynamo"
)

// Milstein advances
//
//	x_{i+1} = x_i + dt*A + n*D*sqrt(dt) - dt/2*D*D_y*(1 - n2^2)
//
// where (n, n2) come from one Sample2 call and D_y is the derivative of the
// diffusion term with respect to the state, evaluated with the diffusion
// parameters.
type Milstein struct {
	Source *GaussianSource
}

func NewMilstein(src *GaussianSource) *Milstein {
	return &Milstein{Source: src}
}

func (m *Milstein) Integrate(drift, diffusion, diffusionDeriv dynamo.Func, initial dynamo.State, dt, tFinal float64, pA, pD []float64) (*dynamo.Solution, error) {
	if m.Source == nil {
		return nil, ErrNilSource
	}
	g, err := dynamo.Prepare(initial, dt, tFinal, drift, diffusion, diffusionDeriv)
	if err != nil {
		return nil, err
	}
	tr := dynamo.NewTrajectory(g, initial)

	sdt := math.Sqrt(dt)
	x := initial.Clone()
	for i := 0; i < g.N-1; i++ {
		t := g.At(i)
		a, err := evalDim(drift, i, x, t, pA)
		if err != nil {
			return nil, err
		}
		d, err := evalDim(diffusion, i, x, t, pD)
		if err != nil {
			return nil, err
		}
		dy, err := evalDim(diffusionDeriv, i, x, t, pD)
		if err != nil {
			return nil, err
		}

		n, n2 := m.Source.Sample2()
		for j := range x {
			x[j] = x[j] + dt*a[j] + n*d[j]*sdt - dt/2*d[j]*dy[j]*(1-n2*n2)
		}
		tr.Record(i+1, x)
	}
	return tr.Solution(), nil
}

func (m *Milstein) Run(sys System, initial dynamo.State, dt, tFinal float64) (*dynamo.Solution, error) {
	return m.Integrate(sys.Drift, sys.Diffusion, sys.DiffusionDeriv, initial, dt, tFinal, sys.DriftParams, sys.DiffusionParams)
}
