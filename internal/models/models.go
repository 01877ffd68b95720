package models

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/nants/internal/dynamo"
)

var (
	ErrUnknownModel     = errors.New("models: unknown model")
	ErrUnknownDiffusion = errors.New("models: unknown diffusion term")
)

// Model describes a named system together with the defaults a run starts from.
type Model struct {
	Name       string
	Derive     dynamo.Func
	Initial    dynamo.State
	Params     []float64
	ParamNames []string
	Labels     []string
	Energy     func(x dynamo.State, p []float64) float64
}

// Dim is the state dimension.
func (m Model) Dim() int { return len(m.Initial) }

// Label names state component k, falling back to x<k>.
func (m Model) Label(k int) string {
	if k >= 0 && k < len(m.Labels) {
		return m.Labels[k]
	}
	return fmt.Sprintf("x%d", k)
}

// Diffusion pairs a diffusion term with its state derivative.
type Diffusion struct {
	Name   string
	Term   dynamo.Func
	Deriv  dynamo.Func
	Params []float64
}

var registry = map[string]Model{
	"harmonic": {
		Name:       "harmonic",
		Derive:     Harmonic,
		Initial:    dynamo.State{1, 0},
		Params:     []float64{1, 0.1},
		ParamNames: []string{"k", "damping"},
		Labels:     []string{"x", "v"},
		Energy:     HarmonicEnergy,
	},
	"vanderpol": {
		Name:       "vanderpol",
		Derive:     VanDerPol,
		Initial:    dynamo.State{2, 0},
		Params:     []float64{1},
		ParamNames: []string{"mu"},
		Labels:     []string{"x", "y"},
	},
	"doublewell": {
		Name:       "doublewell",
		Derive:     DoubleWell,
		Initial:    dynamo.State{1.1, 0},
		Params:     []float64{1, 1, 0.1},
		ParamNames: []string{"a", "b", "damping"},
		Labels:     []string{"x", "v"},
		Energy:     DoubleWellEnergy,
	},
	"lorenz": {
		Name:       "lorenz",
		Derive:     Lorenz,
		Initial:    dynamo.State{1, 1, 1},
		Params:     []float64{10, 28, 8.0 / 3.0},
		ParamNames: []string{"sigma", "rho", "beta"},
		Labels:     []string{"x", "y", "z"},
	},
	"duffing": {
		Name:       "duffing",
		Derive:     Duffing,
		Initial:    dynamo.State{1, 0},
		Params:     []float64{-1, 1, 0.3, 0.5, 1.2},
		ParamNames: []string{"alpha", "beta", "delta", "gamma", "omega"},
		Labels:     []string{"x", "v"},
		Energy:     DuffingEnergy,
	},
	"rossler": {
		Name:       "rossler",
		Derive:     Rossler,
		Initial:    dynamo.State{1, 1, 1},
		Params:     []float64{0.2, 0.2, 5.7},
		ParamNames: []string{"a", "b", "c"},
		Labels:     []string{"x", "y", "z"},
	},
	"pendulum": {
		Name:       "pendulum",
		Derive:     Pendulum,
		Initial:    dynamo.State{1, 0},
		Params:     []float64{1, 1, 0.1, 9.81},
		ParamNames: []string{"mass", "length", "damping", "gravity"},
		Labels:     []string{"theta", "omega"},
		Energy:     PendulumEnergy,
	},
}

var diffusions = map[string]Diffusion{
	"additive":       {Name: "additive", Term: AdditiveVelocity, Deriv: AdditiveVelocityDeriv, Params: []float64{0.2}},
	"multiplicative": {Name: "multiplicative", Term: Multiplicative, Deriv: MultiplicativeDeriv, Params: []float64{0.1}},
	"zero":           {Name: "zero", Term: ZeroDiffusion, Deriv: ZeroDiffusion, Params: []float64{0}},
}

// Lookup returns a copy of the named model so callers may edit its defaults.
func Lookup(name string) (Model, error) {
	m, ok := registry[name]
	if !ok {
		return Model{}, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	m.Initial = m.Initial.Clone()
	m.Params = append([]float64(nil), m.Params...)
	return m, nil
}

func LookupDiffusion(name string) (Diffusion, error) {
	d, ok := diffusions[name]
	if !ok {
		return Diffusion{}, fmt.Errorf("%w: %q", ErrUnknownDiffusion, name)
	}
	d.Params = append([]float64(nil), d.Params...)
	return d, nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func DiffusionNames() []string {
	names := make([]string, 0, len(diffusions))
	for n := range diffusions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
