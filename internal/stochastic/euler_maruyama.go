package stochastic

import (
	"math"

	"github.com/san-kum/nants/internal/dynamo"
)

// NoiseMode selects how Euler-Maruyama spreads its Gaussian draws over the
// state components.
type NoiseMode int

const (
	// SharedNoise draws one variate per step and applies it to every component.
	SharedNoise NoiseMode = iota
	// IndependentNoise draws one variate per component per step.
	IndependentNoise
)

func (m NoiseMode) String() string {
	if m == IndependentNoise {
		return "independent"
	}
	return "shared"
}

// EulerMaruyama advances
//
//	x_{i+1} = x_i + dt*A(x_i, t_i) + n*sqrt(D(x_i, t_i)*dt)
//
// D is the noise intensity, so negative values produce NaN.
type EulerMaruyama struct {
	Source *GaussianSource
	Noise  NoiseMode
}

func NewEulerMaruyama(src *GaussianSource) *EulerMaruyama {
	return &EulerMaruyama{Source: src}
}

func (e *EulerMaruyama) Integrate(drift, diffusion dynamo.Func, initial dynamo.State, dt, tFinal float64, pA, pD []float64) (*dynamo.Solution, error) {
	if e.Source == nil {
		return nil, ErrNilSource
	}
	g, err := dynamo.Prepare(initial, dt, tFinal, drift, diffusion)
	if err != nil {
		return nil, err
	}
	tr := dynamo.NewTrajectory(g, initial)

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

		var n float64
		if e.Noise == SharedNoise {
			n = e.Source.Sample()
		}
		for j := range x {
			if e.Noise == IndependentNoise {
				n = e.Source.Sample()
			}
			x[j] = x[j] + dt*a[j] + n*math.Sqrt(d[j]*dt)
		}
		tr.Record(i+1, x)
	}
	return tr.Solution(), nil
}

func (e *EulerMaruyama) Run(sys System, initial dynamo.State, dt, tFinal float64) (*dynamo.Solution, error) {
	return e.Integrate(sys.Drift, sys.Diffusion, initial, dt, tFinal, sys.DriftParams, sys.DiffusionParams)
}
