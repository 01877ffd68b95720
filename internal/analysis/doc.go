// Package analysis inspects finished runs.
//
//   - [PowerSpectrum], [DominantFrequency]: spectral content of one trail
//   - [EnsembleStats]: per-sample mean and variance across seeded runs
//   - [PoincareSection]: upward crossings of a threshold
//   - [LyapunovExponent]: largest exponent via trajectory separation
//   - [BifurcationDiagram]: parameter sweep of the long-run extrema
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda, err := analysis.LyapunovExponent(integrators.NewRK4(), models.Lorenz, x0, p, 0.01, 50, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
