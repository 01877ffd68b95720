package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/nants/internal/dynamo"
)

// Moments holds one statistic per sample index.
type Moments struct {
	T        []float64
	Mean     []float64
	Variance []float64
}

// EnsembleStats computes the mean and unbiased variance of component k across
// runs at every sample. All runs must share one grid.
func EnsembleStats(sols []*dynamo.Solution, k int) (*Moments, error) {
	if len(sols) < 2 {
		return nil, fmt.Errorf("ensemble of %d runs: %w", len(sols), ErrTooShort)
	}
	n := sols[0].N
	trails := make([][]float64, len(sols))
	for r, sol := range sols {
		if sol.N != n {
			return nil, fmt.Errorf("run %d has %d samples, want %d: %w", r, sol.N, n, dynamo.ErrDimensionMismatch)
		}
		xs, err := sol.Dimension(k)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", r, err)
		}
		trails[r] = xs
	}

	m := &Moments{
		T:        append([]float64(nil), sols[0].T...),
		Mean:     make([]float64, n),
		Variance: make([]float64, n),
	}
	column := make([]float64, len(sols))
	for i := 0; i < n; i++ {
		for r := range trails {
			column[r] = trails[r][i]
		}
		m.Mean[i], m.Variance[i] = stat.MeanVariance(column, nil)
	}
	return m, nil
}
