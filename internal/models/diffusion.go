package models

import "github.com/san-kum/nants/internal/dynamo"

// AdditiveVelocity puts noise of intensity p[0] on the last state component,
// the velocity of an [x, v] state.
func AdditiveVelocity(x dynamo.State, _ float64, p []float64) dynamo.State {
	out := make(dynamo.State, len(x))
	out[len(out)-1] = p[0]
	return out
}

// AdditiveVelocityDeriv is the state derivative of AdditiveVelocity.
func AdditiveVelocityDeriv(x dynamo.State, _ float64, _ []float64) dynamo.State {
	return make(dynamo.State, len(x))
}

// Multiplicative scales the noise with the state: D = p[0]*x.
func Multiplicative(x dynamo.State, _ float64, p []float64) dynamo.State {
	out := make(dynamo.State, len(x))
	for i := range x {
		out[i] = p[0] * x[i]
	}
	return out
}

func MultiplicativeDeriv(x dynamo.State, _ float64, p []float64) dynamo.State {
	out := make(dynamo.State, len(x))
	for i := range out {
		out[i] = p[0]
	}
	return out
}

func ZeroDiffusion(x dynamo.State, _ float64, _ []float64) dynamo.State {
	return make(dynamo.State, len(x))
}
