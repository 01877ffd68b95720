package metrics

import (
	"math"

	"github.com/san-kum/nants/internal/dynamo"
)

// Stability is the fraction of samples whose components all stay finite and
// within threshold.
type Stability struct {
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{threshold: threshold}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(x dynamo.State, _ float64) {
	s.samples++
	if !x.IsValid() {
		s.violations++
		return
	}
	for _, val := range x {
		if math.Abs(val) > s.threshold {
			s.violations++
			return
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// Peak is the largest absolute value reached by one state component. NaN
// samples are skipped, so a run that overflows reports +Inf.
type Peak struct {
	dim  int
	peak float64
}

func NewPeak(dim int) *Peak { return &Peak{dim: dim} }

func (p *Peak) Name() string { return "peak" }

func (p *Peak) Observe(x dynamo.State, _ float64) {
	if p.dim < len(x) {
		if v := math.Abs(x[p.dim]); v > p.peak {
			p.peak = v
		}
	}
}

func (p *Peak) Value() float64 { return p.peak }
func (p *Peak) Reset()         { p.peak = 0 }
