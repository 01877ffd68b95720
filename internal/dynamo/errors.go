package dynamo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates an empty initial state.
	ErrInvalidState = errors.New("dynamo: invalid state (empty)")

	// ErrInvalidStep indicates a non-positive or non-finite dt, or a non-finite horizon.
	ErrInvalidStep = errors.New("dynamo: invalid time step")

	// ErrEmptyGrid indicates floor(tFinal/dt) < 1, so there is no sample to return.
	ErrEmptyGrid = errors.New("dynamo: time grid has no points")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrDimensionMismatch indicates a right-hand side whose length differs from the state.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrDimensionOutOfRange indicates a Solution accessor asked for a missing dimension.
	ErrDimensionOutOfRange = errors.New("dynamo: dimension out of range")

	// ErrNilFunc indicates a nil drift, diffusion or derivative function.
	ErrNilFunc = errors.New("dynamo: nil function")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

// CheckDim returns a *SimulationError when a function evaluated at step i
// returned a vector of the wrong length.
func CheckDim(i int, t float64, x, dx State) error {
	if len(dx) != len(x) {
		return &SimulationError{
			Step:    i,
			Time:    t,
			State:   x.Clone(),
			Wrapped: fmt.Errorf("%w: got %d components, want %d", ErrDimensionMismatch, len(dx), len(x)),
		}
	}
	return nil
}
