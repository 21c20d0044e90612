package integrate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mstolbov/attractor/internal/chaos"
)

// Method selects the numerical scheme used to advance the state.
type Method string

const (
	Euler      Method = "euler"
	RungeKutta Method = "runge-kutta"
)

// Stepper advances a state by one fixed time step under the given
// derivative function.
type Stepper interface {
	Step(derive chaos.DeriveFunc, s chaos.State, p chaos.Params, dt float64) chaos.State
}

var steppers = map[Method]func() Stepper{
	Euler:      func() Stepper { return NewEulerStepper() },
	RungeKutta: func() Stepper { return NewRK4Stepper() },
}

// NewStepper resolves a method name to a fresh stepper.
func NewStepper(m Method) (Stepper, error) {
	fn, ok := steppers[m]
	if !ok {
		return nil, fmt.Errorf("%w: unknown method %q (want one of %s)",
			chaos.ErrConfiguration, string(m), methodNames())
	}
	return fn(), nil
}

func methodNames() string {
	names := make([]string, 0, len(steppers))
	for m := range steppers {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
