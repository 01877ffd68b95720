package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/nants/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method. Each segment continues the clock of the
// previous one, so time-forced systems see their forcing in phase:
//
//  1. Run two trajectories perturbation apart
//  2. Measure their divergence after each unit of time
//  3. Renormalise the separation and sum log(|dx(t)|/|dx(0)|)
func LyapunovExponent(in dynamo.Integrator, f dynamo.Func, x0 dynamo.State, p []float64, dt, duration, perturbation float64) (float64, error) {
	if !(perturbation > 0) {
		return 0, fmt.Errorf("perturbation=%v: %w", perturbation, dynamo.ErrParameterBounds)
	}
	const segment = 1.0
	segments := int(duration / segment)
	if segments < 1 {
		return 0, fmt.Errorf("duration=%v: %w", duration, ErrTooShort)
	}
	// The last sample of each integration lands on t = segment.
	tEnd := segment + 1.5*dt

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += perturbation

	sumLog, elapsed := 0.0, 0.0
	for s := 0; s < segments; s++ {
		offset := elapsed
		fs := func(x dynamo.State, t float64, p []float64) dynamo.State { return f(x, t+offset, p) }
		a, err := in.Integrate(fs, x, dt, tEnd, p)
		if err != nil {
			return 0, err
		}
		b, err := in.Integrate(fs, xp, dt, tEnd, p)
		if err != nil {
			return 0, err
		}
		x, xp = a.Final(), b.Final()
		elapsed += a.T[a.N-1]

		sep := xp.Sub(x).Norm()
		if !(sep > 0) || math.IsInf(sep, 0) {
			return 0, fmt.Errorf("segment %d: separation %v: %w", s, sep, dynamo.ErrInvalidState)
		}
		sumLog += math.Log(sep / perturbation)

		scale := perturbation / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}
	return sumLog / elapsed, nil
}
