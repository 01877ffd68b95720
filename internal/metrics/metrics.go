package metrics

import "github.com/san-kum/nants/internal/dynamo"

// Metric accumulates a scalar over the samples of a run.
type Metric interface {
	Name() string
	Observe(x dynamo.State, t float64)
	Value() float64
	Reset()
}

// Evaluate feeds every sample of sol to each metric and collects the values
// by name.
func Evaluate(sol *dynamo.Solution, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
	}
	for i := 0; i < sol.N; i++ {
		x := sol.At(i)
		for _, m := range ms {
			m.Observe(x, sol.T[i])
		}
	}
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
