package stochastic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/nants/internal/dynamo"
)

func oscillator(x dynamo.State, _ float64, p []float64) dynamo.State {
	return dynamo.State{x[1], -p[0] * x[0]}
}

func zero(x dynamo.State, _ float64, _ []float64) dynamo.State {
	return make(dynamo.State, len(x))
}

func additive(x dynamo.State, _ float64, p []float64) dynamo.State {
	return dynamo.State{0, p[0]}
}

func multiplicative(x dynamo.State, _ float64, p []float64) dynamo.State {
	out := make(dynamo.State, len(x))
	for i := range x {
		out[i] = p[0] * x[i]
	}
	return out
}

func multiplicativeDeriv(x dynamo.State, _ float64, p []float64) dynamo.State {
	out := make(dynamo.State, len(x))
	for i := range out {
		out[i] = p[0]
	}
	return out
}

// euler reproduces the deterministic Euler trajectory.
func euler(t *testing.T, f dynamo.Func, x0 dynamo.State, dt float64, n int, p []float64) []dynamo.State {
	t.Helper()
	out := []dynamo.State{x0.Clone()}
	x := x0.Clone()
	for i := 0; i < n-1; i++ {
		dx := f(x, float64(i)*dt, p)
		for j := range x {
			x[j] += dt * dx[j]
		}
		out = append(out, x.Clone())
	}
	return out
}

func TestZeroDiffusionIsEuler(t *testing.T) {
	x0 := dynamo.State{1, 0}
	p := []float64{4}
	want := euler(t, oscillator, x0, 0.01, 300, p)

	sys := System{
		Drift:           oscillator,
		Diffusion:       zero,
		DiffusionDeriv:  zero,
		DriftParams:     p,
		DiffusionParams: []float64{0},
	}
	for name, in := range map[string]Integrator{
		"euler-maruyama": NewEulerMaruyama(NewGaussianSource(1)),
		"independent":    &EulerMaruyama{Source: NewGaussianSource(1), Noise: IndependentNoise},
		"milstein":       NewMilstein(NewGaussianSource(1)),
	} {
		t.Run(name, func(t *testing.T) {
			sol, err := in.Run(sys, x0, 0.01, 3)
			require.NoError(t, err)
			require.Equal(t, 300, sol.N)
			for i, x := range sol.States() {
				require.Equal(t, want[i], x, "step %d", i)
			}
		})
	}
}

func TestSameSeedSameTrajectory(t *testing.T) {
	sys := System{
		Drift:           oscillator,
		Diffusion:       multiplicative,
		DiffusionDeriv:  multiplicativeDeriv,
		DriftParams:     []float64{1},
		DiffusionParams: []float64{0.3},
	}
	build := map[string]func(seed int64) Integrator{
		"euler-maruyama": func(s int64) Integrator { return NewEulerMaruyama(NewGaussianSource(s)) },
		"milstein":       func(s int64) Integrator { return NewMilstein(NewGaussianSource(s)) },
		"coloured":       func(s int64) Integrator { return NewColouredNoise(NewGaussianSource(s), 0.5, 0.2) },
	}
	for name, mk := range build {
		t.Run(name, func(t *testing.T) {
			x0 := dynamo.State{1, 0}
			a, err := mk(11).Run(sys, x0, 0.01, 2)
			require.NoError(t, err)
			b, err := mk(11).Run(sys, x0, 0.01, 2)
			require.NoError(t, err)
			c, err := mk(12).Run(sys, x0, 0.01, 2)
			require.NoError(t, err)

			assert.Equal(t, a.Result, b.Result)
			assert.NotEqual(t, a.Result, c.Result)
			assert.Equal(t, dynamo.State{1, 0}, x0)
		})
	}
}

func TestEulerMaruyamaSharedNoise(t *testing.T) {
	// Shared noise with equal diffusion keeps the difference between two
	// components purely deterministic.
	flat := func(x dynamo.State, _ float64, _ []float64) dynamo.State {
		return dynamo.State{0, 0}
	}
	unit := func(x dynamo.State, _ float64, _ []float64) dynamo.State {
		return dynamo.State{1, 1}
	}
	em := NewEulerMaruyama(NewGaussianSource(3))
	sol, err := em.Integrate(flat, unit, dynamo.State{0, 2}, 0.1, 5, nil, nil)
	require.NoError(t, err)
	for _, x := range sol.States() {
		assert.InDelta(t, 2, x[1]-x[0], 1e-9)
	}

	em = &EulerMaruyama{Source: NewGaussianSource(3), Noise: IndependentNoise}
	sol, err = em.Integrate(flat, unit, dynamo.State{0, 2}, 0.1, 5, nil, nil)
	require.NoError(t, err)
	final := sol.Final()
	assert.NotEqual(t, 2.0, final[1]-final[0])
}

func TestEulerMaruyamaBrownianVariance(t *testing.T) {
	// Pure diffusion with intensity D gives Var[x(T)] = D*T.
	flat := func(x dynamo.State, _ float64, _ []float64) dynamo.State { return dynamo.State{0} }
	intensity := func(x dynamo.State, _ float64, p []float64) dynamo.State { return dynamo.State{p[0]} }

	src := NewGaussianSource(99)
	em := NewEulerMaruyama(src)
	finals := make([]float64, 2000)
	for i := range finals {
		sol, err := em.Integrate(flat, intensity, dynamo.State{0}, 0.01, 1.01, nil, []float64{0.5})
		require.NoError(t, err)
		finals[i] = sol.Final()[0]
	}
	mean, variance := stat.MeanVariance(finals, nil)
	assert.InDelta(t, 0, mean, 0.06)
	assert.InDelta(t, 0.5, variance, 0.06)
}

func TestMilsteinSingleStep(t *testing.T) {
	u := &scripted{vals: []float64{0.75, 0.25}}
	m := NewMilstein(NewGaussianSourceFrom(u))
	dt := 0.04
	sol, err := m.Integrate(zero, multiplicative, multiplicativeDeriv, dynamo.State{2}, dt, 2*dt, nil, []float64{0.5})
	require.NoError(t, err)
	require.Equal(t, 2, sol.N)

	f := math.Sqrt(-2 * math.Log(0.5) / 0.5)
	n, n2 := 0.5*f, -0.5*f
	d, dy := 0.5*2.0, 0.5
	want := 2 + n*d*math.Sqrt(dt) - dt/2*d*dy*(1-n2*n2)
	assert.InDelta(t, want, sol.Final()[0], 1e-12)
}

func TestColouredZeroSigmaIsHeun(t *testing.T) {
	p := []float64{2}
	c := NewColouredNoise(NewGaussianSource(5), 0, 0.1)
	sol, err := c.Integrate(oscillator, additive, dynamo.State{1, 0}, 0.01, 2, p, []float64{0.7})
	require.NoError(t, err)

	dt := 0.01
	x := dynamo.State{1, 0}
	for i, got := range sol.States() {
		for j := range x {
			require.InDelta(t, x[j], got[j], 1e-12, "step %d", i)
		}
		k1 := oscillator(x, 0, p)
		pred := dynamo.State{x[0] + dt*k1[0], x[1] + dt*k1[1]}
		k2 := oscillator(pred, 0, p)
		x = dynamo.State{x[0] + dt*(k1[0]+k2[0])/2, x[1] + dt*(k1[1]+k2[1])/2}
	}
}

func TestOrnsteinUhlenbeckStatistics(t *testing.T) {
	const (
		sigma = 2.0
		tau   = 0.1
		dt    = 0.01
	)
	noise, err := OrnsteinUhlenbeck(NewGaussianSource(17), sigma, tau, dt, 200000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, noise[0])

	tail := noise[1000:]
	_, variance := stat.MeanVariance(tail, nil)
	assert.InDelta(t, sigma*sigma, variance, 0.3)

	lag := stat.Correlation(tail[:len(tail)-1], tail[1:], nil)
	assert.InDelta(t, math.Exp(-dt/tau), lag, 0.02)
}

func TestParameterBounds(t *testing.T) {
	src := NewGaussianSource(1)
	for _, tc := range []struct {
		name       string
		sigma, tau float64
	}{
		{"zero tau", 1, 0},
		{"negative tau", 1, -1},
		{"nan tau", 1, math.NaN()},
		{"negative sigma", -0.1, 1},
		{"nan sigma", math.NaN(), 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := NewColouredNoise(src, tc.sigma, tc.tau)
			_, err := c.Integrate(oscillator, additive, dynamo.State{1, 0}, 0.1, 1, []float64{1}, []float64{1})
			assert.ErrorIs(t, err, dynamo.ErrParameterBounds)
		})
	}
}

func TestPreconditions(t *testing.T) {
	sys := System{Drift: oscillator, Diffusion: additive, DiffusionDeriv: zero, DriftParams: []float64{1}, DiffusionParams: []float64{1}}

	t.Run("nil source", func(t *testing.T) {
		for _, in := range []Integrator{&EulerMaruyama{}, &Milstein{}, &ColouredNoise{Sigma: 1, Tau: 1}} {
			_, err := in.Run(sys, dynamo.State{1, 0}, 0.1, 1)
			assert.ErrorIs(t, err, ErrNilSource)
		}
	})

	t.Run("nil derivative", func(t *testing.T) {
		m := NewMilstein(NewGaussianSource(1))
		bad := sys
		bad.DiffusionDeriv = nil
		_, err := m.Run(bad, dynamo.State{1, 0}, 0.1, 1)
		assert.ErrorIs(t, err, dynamo.ErrNilFunc)
	})

	t.Run("empty grid", func(t *testing.T) {
		em := NewEulerMaruyama(NewGaussianSource(1))
		_, err := em.Run(sys, dynamo.State{1, 0}, 1, 0.5)
		assert.ErrorIs(t, err, dynamo.ErrEmptyGrid)
	})

	t.Run("diffusion dimension", func(t *testing.T) {
		short := func(x dynamo.State, _ float64, _ []float64) dynamo.State { return dynamo.State{1} }
		em := NewEulerMaruyama(NewGaussianSource(1))
		_, err := em.Integrate(oscillator, short, dynamo.State{1, 0}, 0.1, 1, []float64{1}, nil)
		assert.ErrorIs(t, err, dynamo.ErrDimensionMismatch)

		var simErr *dynamo.SimulationError
		assert.True(t, errors.As(err, &simErr))
	})
}

func TestNoiseModeString(t *testing.T) {
	assert.Equal(t, "shared", SharedNoise.String())
	assert.Equal(t, "independent", IndependentNoise.String())
}
