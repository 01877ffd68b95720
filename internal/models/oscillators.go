package models

import (
	"math"

	"github.com/san-kum/nants/internal/dynamo"
)

// Harmonic is the damped oscillator x'' = -k*x - damping*x'.
// State: [x, v], c = [k, damping].
func Harmonic(x dynamo.State, _ float64, c []float64) dynamo.State {
	return dynamo.State{x[1], -c[1]*x[1] - c[0]*x[0]}
}

// HarmonicEnergy is the mechanical energy of a unit mass.
func HarmonicEnergy(x dynamo.State, c []float64) float64 {
	return 0.5*x[1]*x[1] + 0.5*c[0]*x[0]*x[0]
}

// VanDerPol implements
//
//	dx/dt = y
//	dy/dt = mu(1 - x^2)y - x
func VanDerPol(x dynamo.State, _ float64, p []float64) dynamo.State {
	return dynamo.State{x[1], p[0]*(1-x[0]*x[0])*x[1] - x[0]}
}

// DoubleWell moves a unit mass in the potential a*(x^2 - b)^2.
func DoubleWell(x dynamo.State, _ float64, p []float64) dynamo.State {
	a, b, damping := p[0], p[1], p[2]
	return dynamo.State{x[1], -4*a*x[0]*(x[0]*x[0]-b) - damping*x[1]}
}

func DoubleWellEnergy(x dynamo.State, p []float64) float64 {
	return 0.5*x[1]*x[1] + p[0]*math.Pow(x[0]*x[0]-p[1], 2)
}

func Lorenz(s dynamo.State, _ float64, p []float64) dynamo.State {
	sigma, rho, beta := p[0], p[1], p[2]
	return dynamo.State{sigma * (s[1] - s[0]), s[0]*(rho-s[2]) - s[1], s[0]*s[1] - beta*s[2]}
}

// Duffing is the forced oscillator
//
//	x'' = -delta*x' - alpha*x - beta*x^3 + gamma*cos(omega*t)
//
// driven through time rather than a phase component.
func Duffing(x dynamo.State, t float64, p []float64) dynamo.State {
	alpha, beta, delta, gamma, omega := p[0], p[1], p[2], p[3], p[4]
	return dynamo.State{x[1], -delta*x[1] - alpha*x[0] - beta*x[0]*x[0]*x[0] + gamma*math.Cos(omega*t)}
}

// DuffingEnergy excludes the forcing term.
func DuffingEnergy(x dynamo.State, p []float64) float64 {
	return 0.5*x[1]*x[1] + 0.5*p[0]*x[0]*x[0] + 0.25*p[1]*math.Pow(x[0], 4)
}

func Rossler(s dynamo.State, _ float64, p []float64) dynamo.State {
	a, b, c := p[0], p[1], p[2]
	return dynamo.State{-s[1] - s[2], s[0] + a*s[1], b + s[2]*(s[0]-c)}
}

// Pendulum is a damped rigid pendulum. State: [theta, omega],
// p = [mass, length, damping, gravity].
func Pendulum(x dynamo.State, _ float64, p []float64) dynamo.State {
	m, l, damping, g := p[0], p[1], p[2], p[3]
	return dynamo.State{x[1], (-damping*x[1] - m*g*l*math.Sin(x[0])) / (m * l * l)}
}

func PendulumEnergy(x dynamo.State, p []float64) float64 {
	m, l, g := p[0], p[1], p[3]
	v := l * x[1]
	return 0.5*m*v*v + m*g*l*(1-math.Cos(x[0]))
}
