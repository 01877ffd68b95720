package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/nants/internal/config"
	"github.com/san-kum/nants/internal/dynamo"
	"github.com/san-kum/nants/internal/metrics"
	"github.com/san-kum/nants/internal/models"
	"github.com/san-kum/nants/internal/stochastic"
	"github.com/san-kum/nants/internal/storage"
)

// StabilityBound is the magnitude past which a sample counts as diverged.
const StabilityBound = 1e6

type Result struct {
	Solution *dynamo.Solution
	Model    models.Model
	Meta     storage.RunMetadata
	Elapsed  time.Duration
}

type Experiment struct {
	registry *Registry
	logger   dynamo.Logger
}

func New(registry *Registry, logger dynamo.Logger) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = dynamo.NopLogger{}
	}
	return &Experiment{registry: registry, logger: logger}
}

// Run validates cfg, integrates it and evaluates the run metrics.
func Run(ctx context.Context, cfg *config.Config, logger dynamo.Logger) (*Result, error) {
	return New(nil, logger).Run(ctx, cfg)
}

func (e *Experiment) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	return e.run(ctx, cfg, cfg.Seed)
}

func (e *Experiment) run(ctx context.Context, cfg *config.Config, seed int64) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model, err := e.registry.GetModel(cfg.Model)
	if err != nil {
		return nil, err
	}
	initial := dynamo.State(cfg.InitialState(model))
	params := cfg.ModelParams(model)

	meta := storage.RunMetadata{
		Model:    cfg.Model,
		Method:   cfg.Method,
		Seed:     seed,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Labels:   model.Labels,
		Initial:  initial.Clone(),
		Params:   params,
	}

	e.logger.Debugf("run %s/%s: dt=%g duration=%g steps=%d", cfg.Model, cfg.Method, cfg.Dt, cfg.Duration, cfg.Steps())
	start := time.Now()

	var sol *dynamo.Solution
	if e.registry.IsStochastic(cfg.Method) {
		diff, err := models.LookupDiffusion(cfg.Noise.Diffusion)
		if err != nil {
			return nil, err
		}
		dparams := diff.Params
		if len(cfg.Noise.Params) > 0 {
			dparams = append([]float64(nil), cfg.Noise.Params...)
		}
		meta.Noise = &storage.NoiseMetadata{
			Diffusion: diff.Name,
			Params:    dparams,
			Mode:      cfg.Noise.Mode,
		}
		if cfg.Method == "coloured" {
			meta.Noise.Sigma, meta.Noise.Tau = cfg.Noise.Sigma, cfg.Noise.Tau
		}

		in, err := e.registry.GetStochastic(cfg.Method, stochastic.NewGaussianSource(seed), cfg.Noise)
		if err != nil {
			return nil, err
		}
		sys := stochastic.System{
			Drift:           model.Derive,
			Diffusion:       diff.Term,
			DiffusionDeriv:  diff.Deriv,
			DriftParams:     params,
			DiffusionParams: dparams,
		}
		sol, err = in.Run(sys, initial, cfg.Dt, cfg.Duration)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", cfg.Model, cfg.Method, err)
		}
	} else {
		in, err := e.registry.GetIntegrator(cfg.Method)
		if err != nil {
			return nil, err
		}
		sol, err = in.Integrate(model.Derive, initial, cfg.Dt, cfg.Duration, params)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", cfg.Model, cfg.Method, err)
		}
	}
	elapsed := time.Since(start)

	meta.Metrics = metrics.Evaluate(sol, runMetrics(model, params)...)
	if meta.Metrics["stability"] < 1 {
		e.logger.Warnf("run %s/%s: |x| > %g on %.1f%% of samples", cfg.Model, cfg.Method, StabilityBound, 100*(1-meta.Metrics["stability"]))
	}
	e.logger.Infof("run %s/%s: %d samples in %s", cfg.Model, cfg.Method, sol.N, elapsed)

	return &Result{Solution: sol, Model: model, Meta: meta, Elapsed: elapsed}, nil
}

func runMetrics(m models.Model, params []float64) []metrics.Metric {
	ms := []metrics.Metric{metrics.NewStability(StabilityBound), metrics.NewPeak(0)}
	if m.Energy != nil {
		ms = append(ms, metrics.NewEnergyDrift(m.Energy, params), metrics.NewFinalEnergy(m.Energy, params))
	}
	return ms
}
