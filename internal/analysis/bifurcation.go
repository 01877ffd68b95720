package analysis

import (
	"fmt"

	"github.com/san-kum/nants/internal/dynamo"
)

// BifurcationPoint holds the distinct long-run local maxima of one component
// for a given parameter value.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

// Sweep describes a linear scan of params[Index] over [Min, Max].
type Sweep struct {
	Index    int
	Min, Max float64
	Steps    int
}

// BifurcationDiagram integrates f for every swept parameter value, discards
// the transient, and records the distinct local maxima of x[stateIndex]
// quantised to 1e-3.
func BifurcationDiagram(in dynamo.Integrator, f dynamo.Func, x0 dynamo.State, params []float64, sw Sweep, stateIndex int, dt, transient, record float64) ([]BifurcationPoint, error) {
	if sw.Index < 0 || sw.Index >= len(params) {
		return nil, fmt.Errorf("sweep index %d of %d params: %w", sw.Index, len(params), dynamo.ErrParameterBounds)
	}
	steps := sw.Steps
	if steps <= 1 {
		steps = 2
	}
	paramStep := (sw.Max - sw.Min) / float64(steps-1)
	skip := int(transient / dt)

	p := append([]float64(nil), params...)
	results := make([]BifurcationPoint, 0, steps)
	for i := 0; i < steps; i++ {
		p[sw.Index] = sw.Min + float64(i)*paramStep

		sol, err := in.Integrate(f, x0, dt, transient+record, p)
		if err != nil {
			return nil, fmt.Errorf("param %g: %w", p[sw.Index], err)
		}
		xs, err := sol.Dimension(stateIndex)
		if err != nil {
			return nil, err
		}

		values := make([]float64, 0)
		seen := make(map[int]bool)
		for j := max(skip, 1); j < len(xs)-1; j++ {
			if xs[j] > xs[j-1] && xs[j] >= xs[j+1] {
				key := int(xs[j] * 1000)
				if !seen[key] {
					seen[key] = true
					values = append(values, xs[j])
				}
			}
		}
		results = append(results, BifurcationPoint{Param: p[sw.Index], Values: values})
	}
	return results, nil
}
