// Package stochastic provides fixed-step integrators for the Langevin equation
//
//	dy/dt = A(y, t) + D(y, t)*noise(t)
//
// interpreted in the Ito sense, and the Gaussian source that drives them.
//
//   - [GaussianSource]: polar Box-Muller variates from an injectable uniform stream
//   - [EulerMaruyama]: strong order 1/2 method for white noise
//   - [Milstein]: adds the D*dD/dy correction term
//   - [ColouredNoise]: Heun steps driven by Ornstein-Uhlenbeck noise
//
// Every integrator draws from the GaussianSource it holds. A source is not safe
// for concurrent use: give each goroutine its own, seeded independently, and
// runs stay reproducible.
package stochastic
