package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

var ErrTooShort = errors.New("analysis: series too short")

// PowerSpectrum returns |X_k| for k < n/2, where X is the DFT of data
// zero-padded to the next power of two n.
func PowerSpectrum(data []float64) []float64 {
	n := nextPow2(len(data))
	padded := make([]float64, n)
	copy(padded, data)

	coeffs := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// DominantFrequency returns the frequency, in cycles per unit time, of the
// largest non-constant spectral peak of a series sampled every dt.
func DominantFrequency(data []float64, dt float64) (float64, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("%d samples: %w", len(data), ErrTooShort)
	}
	mean := floats.Sum(data) / float64(len(data))
	centred := make([]float64, len(data))
	copy(centred, data)
	floats.AddConst(-mean, centred)

	ps := PowerSpectrum(centred)
	k := floats.MaxIdx(ps[1:]) + 1
	return float64(k) / (float64(2*len(ps)) * dt), nil
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
