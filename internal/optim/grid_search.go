package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/nants/internal/config"
	"github.com/san-kum/nants/internal/experiment"
	"github.com/san-kum/nants/internal/models"
)

var (
	ErrEmptyGrid      = errors.New("optim: empty search grid")
	ErrNoCandidate    = errors.New("optim: no grid point produced the metric")
	ErrParameterIndex = errors.New("optim: parameter index out of range")
)

// GridSearch scans every combination of Values[j] assigned to model
// parameter Indices[j] and keeps the one minimising a run metric.
type GridSearch struct {
	Indices []int
	Values  [][]float64
}

func NewGridSearch(indices []int, values [][]float64) (*GridSearch, error) {
	if len(indices) == 0 || len(indices) != len(values) {
		return nil, fmt.Errorf("%d indices, %d value lists: %w", len(indices), len(values), ErrEmptyGrid)
	}
	for j, v := range values {
		if len(v) == 0 {
			return nil, fmt.Errorf("parameter %d has no values: %w", indices[j], ErrEmptyGrid)
		}
	}
	return &GridSearch{Indices: indices, Values: values}, nil
}

// Search returns the full parameter vector with the lowest value of metric.
// Grid points whose run fails or lacks the metric are skipped.
func (g *GridSearch) Search(ctx context.Context, e *experiment.Experiment, cfg *config.Config, metric string) ([]float64, float64, error) {
	m, err := models.Lookup(cfg.Model)
	if err != nil {
		return nil, 0, err
	}
	base := cfg.ModelParams(m)
	for _, idx := range g.Indices {
		if idx < 0 || idx >= len(base) {
			return nil, 0, fmt.Errorf("index %d of %d params: %w", idx, len(base), ErrParameterIndex)
		}
	}

	s := &search{ctx: ctx, e: e, cfg: cfg, metric: metric, best: math.Inf(1)}
	if err := s.walk(g, 0, append([]float64(nil), base...)); err != nil {
		return nil, 0, err
	}
	if s.bestParams == nil {
		return nil, 0, fmt.Errorf("%s on %s: %w", metric, cfg.Model, ErrNoCandidate)
	}
	return s.bestParams, s.best, nil
}

type search struct {
	ctx        context.Context
	e          *experiment.Experiment
	cfg        *config.Config
	metric     string
	best       float64
	bestParams []float64
}

func (s *search) walk(g *GridSearch, depth int, current []float64) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.Indices) {
		run := *s.cfg
		run.Params = current
		res, err := s.e.Run(s.ctx, &run)
		if err != nil {
			if s.ctx.Err() != nil {
				return s.ctx.Err()
			}
			return nil
		}
		val, ok := res.Meta.Metrics[s.metric]
		if ok && !math.IsNaN(val) && val < s.best {
			s.best = val
			s.bestParams = append([]float64(nil), current...)
		}
		return nil
	}

	for _, v := range g.Values[depth] {
		next := append([]float64(nil), current...)
		next[g.Indices[depth]] = v
		if err := s.walk(g, depth+1, next); err != nil {
			return err
		}
	}
	return nil
}
