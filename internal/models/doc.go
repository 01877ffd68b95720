// Package models provides reference systems for the integrators.
//
// Every model is a plain [dynamo.Func] over a parameter vector, so the same
// function drives deterministic and stochastic runs:
//
//   - [Harmonic]: damped harmonic oscillator, c = [k, damping]
//   - [VanDerPol]: relaxation oscillator, p = [mu]
//   - [DoubleWell]: damped particle in a bistable potential, p = [a, b, damping]
//   - [Lorenz]: butterfly attractor, p = [sigma, rho, beta]
//   - [Rossler]: single-scroll attractor, p = [a, b, c]
//   - [Duffing]: cosine-forced cubic oscillator, p = [alpha, beta, delta, gamma, omega]
//   - [Pendulum]: damped rigid pendulum, p = [mass, length, damping, gravity]
//
// The diffusion terms in diffusion.go pair with these for the Langevin
// integrators. [Lookup] resolves a model by name together with its default
// initial state and parameters.
package models
