package experiment

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/nants/internal/config"
)

var ErrNotStochastic = errors.New("experiment: ensemble needs a stochastic method")

// Ensemble repeats a stochastic run with seeds SeedStart, SeedStart+1, ...
// Workers bounds the number of concurrent runs; zero means unbounded.
type Ensemble struct {
	Runs      int
	SeedStart int64
	Workers   int
}

func (en Ensemble) Run(ctx context.Context, e *Experiment, cfg *config.Config) ([]*Result, error) {
	if !e.registry.IsStochastic(cfg.Method) {
		return nil, fmt.Errorf("%w: %s", ErrNotStochastic, cfg.Method)
	}
	if en.Runs <= 0 {
		return nil, fmt.Errorf("ensemble of %d runs: %w", en.Runs, config.ErrInvalid)
	}

	results := make([]*Result, en.Runs)
	g, ctx := errgroup.WithContext(ctx)
	if en.Workers > 0 {
		g.SetLimit(en.Workers)
	}
	for i := 0; i < en.Runs; i++ {
		g.Go(func() error {
			res, err := e.run(ctx, cfg, en.SeedStart+int64(i))
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.logger.Infof("ensemble %s/%s: %d runs from seed %d", cfg.Model, cfg.Method, en.Runs, en.SeedStart)
	return results, nil
}
