// Package integrators provides fixed-step ODE integrators.
//
//   - [Euler]: forward Euler
//   - [Leapfrog]: two-step central difference with an Euler bootstrap
//   - [AB2]: two-step Adams-Bashforth with an Euler bootstrap
//   - [Heun]: trapezoidal predictor-corrector
//   - [RK4]: classical Runge-Kutta, kept as an accuracy reference
//
// All of them implement [dynamo.Integrator]. N = floor(t_final/dt) samples are
// produced and the first one is the initial state. There is no step-size
// control; stability is the caller's responsibility. Integrators hold no state
// between calls and may be shared between goroutines.
package integrators
