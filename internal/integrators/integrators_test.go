package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/nants/internal/dynamo"
)

func decay(x dynamo.State, _ float64, _ []float64) dynamo.State {
	return dynamo.State{-x[0]}
}

func oscillator(x dynamo.State, _ float64, _ []float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func zero(x dynamo.State, _ float64, _ []float64) dynamo.State {
	return make(dynamo.State, len(x))
}

var all = map[string]dynamo.Integrator{
	"euler":    NewEuler(),
	"leapfrog": NewLeapfrog(),
	"ab2":      NewAB2(),
	"heun":     NewHeun(),
	"rk4":      NewRK4(),
}

func TestZeroDerivativeKeepsInitialState(t *testing.T) {
	x0 := dynamo.State{1.5, -2, 0.25}
	for name, integ := range all {
		t.Run(name, func(t *testing.T) {
			sol, err := integ.Integrate(zero, x0, 0.01, 1.0, nil)
			if err != nil {
				t.Fatal(err)
			}
			if sol.N != 100 {
				t.Fatalf("N = %d, want 100", sol.N)
			}
			for k := range x0 {
				xs, _ := sol.Dimension(k)
				for i, v := range xs {
					if v != x0[k] {
						t.Fatalf("dim %d step %d = %v, want %v", k, i, v, x0[k])
					}
				}
			}
		})
	}
}

func TestTimeGridAndInitialColumn(t *testing.T) {
	x0 := dynamo.State{1.0, 0.0}
	for name, integ := range all {
		t.Run(name, func(t *testing.T) {
			sol, err := integ.Integrate(oscillator, x0, 0.25, 2.0, nil)
			if err != nil {
				t.Fatal(err)
			}
			if sol.N != 8 || len(sol.T) != 8 || len(sol.Result) != 16 {
				t.Fatalf("N=%d len(T)=%d len(Result)=%d", sol.N, len(sol.T), len(sol.Result))
			}
			for i, tv := range sol.T {
				if tv != float64(i)*0.25 {
					t.Errorf("T[%d] = %v", i, tv)
				}
			}
			if got := sol.At(0); got[0] != 1 || got[1] != 0 {
				t.Errorf("first sample = %v, want initial", got)
			}
		})
	}
}

func TestInitialNotMutated(t *testing.T) {
	for name, integ := range all {
		x0 := dynamo.State{1.0, 0.0}
		if _, err := integ.Integrate(oscillator, x0, 0.1, 1.0, nil); err != nil {
			t.Fatal(err)
		}
		if x0[0] != 1 || x0[1] != 0 {
			t.Errorf("%s mutated initial state: %v", name, x0)
		}
	}
}

func TestKnownSteps(t *testing.T) {
	tests := []struct {
		name  string
		integ dynamo.Integrator
		want  []float64
	}{
		{"euler", NewEuler(), []float64{1, 0.9, 0.81, 0.729}},
		{"leapfrog", NewLeapfrog(), []float64{1, 0.9, 0.82, 0.736}},
		{"ab2", NewAB2(), []float64{1, 0.9, 0.815, 0.73775}},
		{"heun", NewHeun(), []float64{1, 0.905, 0.905 * 0.905, 0.905 * 0.905 * 0.905}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := tt.integ.Integrate(decay, dynamo.State{1}, 0.1, 0.4, nil)
			if err != nil {
				t.Fatal(err)
			}
			xs, _ := sol.Dimension(0)
			if len(xs) != len(tt.want) {
				t.Fatalf("got %d samples, want %d", len(xs), len(tt.want))
			}
			for i, w := range tt.want {
				if math.Abs(xs[i]-w) > 1e-12 {
					t.Errorf("x[%d] = %.12f, want %.12f", i, xs[i], w)
				}
			}
		})
	}
}

func TestEulerMatchesClosedForm(t *testing.T) {
	sol, err := NewEuler().Integrate(decay, dynamo.State{1}, 0.1, 1.0, nil)
	if err != nil {
		t.Fatal(err)
	}
	final := sol.Final()[0]
	if math.Abs(final-math.Pow(0.9, 9)) > 1e-12 {
		t.Errorf("final = %v, want 0.9^9", final)
	}
}

func TestOrderOfAccuracy(t *testing.T) {
	const dt, tf = 0.01, 5.0
	errFor := func(integ dynamo.Integrator) float64 {
		sol, err := integ.Integrate(oscillator, dynamo.State{1, 0}, dt, tf, nil)
		if err != nil {
			t.Fatal(err)
		}
		tEnd := sol.T[sol.N-1]
		x := sol.Final()
		return math.Hypot(x[0]-math.Cos(tEnd), x[1]+math.Sin(tEnd))
	}

	euler := errFor(NewEuler())
	for _, name := range []string{"leapfrog", "ab2", "heun", "rk4"} {
		if e := errFor(all[name]); e >= euler {
			t.Errorf("%s error %.3e not below euler %.3e", name, e, euler)
		}
	}
	if e := errFor(NewRK4()); e > 1e-8 {
		t.Errorf("rk4 error %.3e too large", e)
	}
}

func TestSingleSampleGrid(t *testing.T) {
	for name, integ := range all {
		sol, err := integ.Integrate(decay, dynamo.State{2}, 1.0, 1.5, nil)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if sol.N != 1 || sol.Result[0] != 2 {
			t.Errorf("%s: got N=%d result=%v", name, sol.N, sol.Result)
		}
	}
}

func TestPreconditions(t *testing.T) {
	bad := func(x dynamo.State, _ float64, _ []float64) dynamo.State { return dynamo.State{1} }

	for name, integ := range all {
		t.Run(name, func(t *testing.T) {
			if _, err := integ.Integrate(decay, dynamo.State{1}, 0, 1, nil); !errors.Is(err, dynamo.ErrInvalidStep) {
				t.Errorf("zero dt: err = %v", err)
			}
			if _, err := integ.Integrate(decay, dynamo.State{1}, 0.5, 0.1, nil); !errors.Is(err, dynamo.ErrEmptyGrid) {
				t.Errorf("short horizon: err = %v", err)
			}
			if _, err := integ.Integrate(decay, nil, 0.1, 1, nil); !errors.Is(err, dynamo.ErrInvalidState) {
				t.Errorf("empty state: err = %v", err)
			}
			if _, err := integ.Integrate(nil, dynamo.State{1}, 0.1, 1, nil); !errors.Is(err, dynamo.ErrNilFunc) {
				t.Errorf("nil func: err = %v", err)
			}
			if _, err := integ.Integrate(bad, dynamo.State{1, 2}, 0.1, 1, nil); !errors.Is(err, dynamo.ErrDimensionMismatch) {
				t.Errorf("wrong derivative length: err = %v", err)
			}
		})
	}
}

func TestParametersReachDerivative(t *testing.T) {
	scaled := func(x dynamo.State, _ float64, p []float64) dynamo.State {
		return dynamo.State{p[0]}
	}
	sol, err := NewEuler().Integrate(scaled, dynamo.State{0}, 0.5, 2.0, []float64{3})
	if err != nil {
		t.Fatal(err)
	}
	if got := sol.Final()[0]; math.Abs(got-4.5) > 1e-12 {
		t.Errorf("final = %v, want 4.5", got)
	}
}
