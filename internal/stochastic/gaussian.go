package stochastic

import (
	"errors"
	"math"
	"math/rand"
)

var ErrNilSource = errors.New("stochastic: nil gaussian source")

// Uniform is a stream of uniform variates in [0,1). *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// GaussianSource produces standard-normal variates with the polar Box-Muller
// method.
type GaussianSource struct {
	rng Uniform
}

// NewGaussianSource returns a source with its own generator seeded by seed.
func NewGaussianSource(seed int64) *GaussianSource {
	return &GaussianSource{rng: rand.New(rand.NewSource(seed))}
}

// NewGaussianSourceFrom wraps an existing uniform stream.
func NewGaussianSourceFrom(u Uniform) *GaussianSource {
	return &GaussianSource{rng: u}
}

// polar draws a point uniformly inside the unit disc, excluding the origin.
func (g *GaussianSource) polar() (v1, v2, s float64) {
	for {
		v1 = 2*g.rng.Float64() - 1
		v2 = 2*g.rng.Float64() - 1
		s = v1*v1 + v2*v2
		if s <= 1 && s != 0 {
			return v1, v2, s
		}
	}
}

// Sample returns one standard-normal variate.
func (g *GaussianSource) Sample() float64 {
	v1, _, s := g.polar()
	return v1 * math.Sqrt(-2*math.Log(s)/s)
}

// Sample2 returns both variates of one polar draw. Each is standard normal.
func (g *GaussianSource) Sample2() (float64, float64) {
	v1, v2, s := g.polar()
	f := math.Sqrt(-2 * math.Log(s) / s)
	return v1 * f, v2 * f
}
