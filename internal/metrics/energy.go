package metrics

import (
	"math"

	"github.com/san-kum/nants/internal/dynamo"
)

// EnergyFunc evaluates a conserved quantity of the model.
type EnergyFunc func(x dynamo.State, p []float64) float64

// EnergyDrift is the largest relative deviation from the first observed energy.
type EnergyDrift struct {
	energy        EnergyFunc
	params        []float64
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift(energy EnergyFunc, params []float64) *EnergyDrift {
	return &EnergyDrift{energy: energy, params: params}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(x dynamo.State, _ float64) {
	energy := e.energy(x, e.params)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}

// FinalEnergy reports the energy of the last observed sample.
type FinalEnergy struct {
	energy EnergyFunc
	params []float64
	last   float64
}

func NewFinalEnergy(energy EnergyFunc, params []float64) *FinalEnergy {
	return &FinalEnergy{energy: energy, params: params}
}

func (f *FinalEnergy) Name() string                      { return "final_energy" }
func (f *FinalEnergy) Observe(x dynamo.State, _ float64) { f.last = f.energy(x, f.params) }
func (f *FinalEnergy) Value() float64                    { return f.last }
func (f *FinalEnergy) Reset()                            { f.last = 0 }
