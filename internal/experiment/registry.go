package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/nants/internal/config"
	"github.com/san-kum/nants/internal/dynamo"
	"github.com/san-kum/nants/internal/integrators"
	"github.com/san-kum/nants/internal/models"
	"github.com/san-kum/nants/internal/stochastic"
)

var ErrUnknownMethod = errors.New("experiment: unknown method")

// StochasticFactory builds a Langevin integrator around its own source.
type StochasticFactory func(src *stochastic.GaussianSource, noise config.NoiseConfig) stochastic.Integrator

type Registry struct {
	integrators map[string]func() dynamo.Integrator
	stochastic  map[string]StochasticFactory
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() dynamo.Integrator),
		stochastic:  make(map[string]StochasticFactory),
	}

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["leapfrog"] = func() dynamo.Integrator { return integrators.NewLeapfrog() }
	r.integrators["ab2"] = func() dynamo.Integrator { return integrators.NewAB2() }
	r.integrators["heun"] = func() dynamo.Integrator { return integrators.NewHeun() }
	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }

	r.stochastic["euler-maruyama"] = func(src *stochastic.GaussianSource, n config.NoiseConfig) stochastic.Integrator {
		em := stochastic.NewEulerMaruyama(src)
		if n.Mode == "independent" {
			em.Noise = stochastic.IndependentNoise
		}
		return em
	}
	r.stochastic["milstein"] = func(src *stochastic.GaussianSource, _ config.NoiseConfig) stochastic.Integrator {
		return stochastic.NewMilstein(src)
	}
	r.stochastic["coloured"] = func(src *stochastic.GaussianSource, n config.NoiseConfig) stochastic.Integrator {
		return stochastic.NewColouredNoise(src, n.Sigma, n.Tau)
	}

	return r
}

func (r *Registry) GetModel(name string) (models.Model, error) {
	return models.Lookup(name)
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	return fn(), nil
}

func (r *Registry) GetStochastic(name string, src *stochastic.GaussianSource, noise config.NoiseConfig) (stochastic.Integrator, error) {
	fn, ok := r.stochastic[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	return fn(src, noise), nil
}

func (r *Registry) IsStochastic(method string) bool {
	_, ok := r.stochastic[method]
	return ok
}

func (r *Registry) ListModels() []string {
	return models.Names()
}

func (r *Registry) ListMethods() []string {
	names := make([]string, 0, len(r.integrators)+len(r.stochastic))
	for name := range r.integrators {
		names = append(names, name)
	}
	for name := range r.stochastic {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
