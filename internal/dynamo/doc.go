// Package dynamo provides the primitives shared by the ODE and SDE integrators.
//
//   - [State]: state vector
//   - [Func]: right-hand side f(x, t, params)
//   - [Grid]: fixed time grid with N = floor(t_final/dt) points
//   - [Solution]: packed per-dimension trajectory returned by every integrator
//   - [Trajectory]: writer integrators use to fill a Solution
//
// # Example
//
//	sol, err := integrators.NewHeun().Integrate(models.VanDerPol, x0, 0.01, 20, []float64{1})
//	trail, _ := sol.Trail(0)
//	phase, _ := sol.Phase(0, 1)
//
// # Thread Safety
//
// A Solution is immutable once returned and may be read concurrently.
package dynamo
