package stochastic

import (
	"fmt"
	"math"

	"github.com/san-kum/nants/internal/dynamo"
)

// OrnsteinUhlenbeck returns n samples of exponentially correlated noise with
// stationary standard deviation sigma and correlation time tau, starting at 0:
//
//	noise_{i+1} = noise_i*rho + n_i*sigma*sqrt(1 - rho^2),  rho = exp(-dt/tau)
func OrnsteinUhlenbeck(src *GaussianSource, sigma, tau, dt float64, n int) ([]float64, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if !(tau > 0) || !(sigma >= 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("sigma=%v tau=%v: %w", sigma, tau, dynamo.ErrParameterBounds)
	}
	rho := math.Exp(-dt / tau)
	rhoc := sigma * math.Sqrt(1-rho*rho)

	noise := make([]float64, n)
	for i := 0; i < n-1; i++ {
		noise[i+1] = noise[i]*rho + src.Sample()*rhoc
	}
	return noise, nil
}

// ColouredNoise integrates the Langevin equation with Ornstein-Uhlenbeck noise
// of standard deviation Sigma and correlation time Tau. The equation is
// differentiable, so each step is a Heun predictor-corrector; the predictor
// uses noise_i and the corrector noise_{i+1}. Both stages evaluate A and D at
// t_i.
type ColouredNoise struct {
	Source *GaussianSource
	Sigma  float64
	Tau    float64
}

func NewColouredNoise(src *GaussianSource, sigma, tau float64) *ColouredNoise {
	return &ColouredNoise{Source: src, Sigma: sigma, Tau: tau}
}

func (c *ColouredNoise) Integrate(drift, diffusion dynamo.Func, initial dynamo.State, dt, tFinal float64, pA, pD []float64) (*dynamo.Solution, error) {
	if c.Source == nil {
		return nil, ErrNilSource
	}
	g, err := dynamo.Prepare(initial, dt, tFinal, drift, diffusion)
	if err != nil {
		return nil, err
	}
	noise, err := OrnsteinUhlenbeck(c.Source, c.Sigma, c.Tau, dt, g.N)
	if err != nil {
		return nil, err
	}
	tr := dynamo.NewTrajectory(g, initial)

	d := len(initial)
	x := initial.Clone()
	k1 := make(dynamo.State, d)
	pred := make(dynamo.State, d)
	for i := 0; i < g.N-1; i++ {
		t := g.At(i)
		a, err := evalDim(drift, i, x, t, pA)
		if err != nil {
			return nil, err
		}
		dd, err := evalDim(diffusion, i, x, t, pD)
		if err != nil {
			return nil, err
		}
		for j := range x {
			k1[j] = a[j] + dd[j]*noise[i]
			pred[j] = x[j] + dt*k1[j]
		}

		aNext, err := evalDim(drift, i, pred, t, pA)
		if err != nil {
			return nil, err
		}
		dNext, err := evalDim(diffusion, i, pred, t, pD)
		if err != nil {
			return nil, err
		}
		for j := range x {
			k2 := aNext[j] + dNext[j]*noise[i+1]
			x[j] = x[j] + dt/2*(k1[j]+k2)
		}
		tr.Record(i+1, x)
	}
	return tr.Solution(), nil
}

func (c *ColouredNoise) Run(sys System, initial dynamo.State, dt, tFinal float64) (*dynamo.Solution, error) {
	return c.Integrate(sys.Drift, sys.Diffusion, initial, dt, tFinal, sys.DriftParams, sys.DiffusionParams)
}
