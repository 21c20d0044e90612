package integrate

import "github.com/mstolbov/attractor/internal/chaos"

// EulerStepper is the explicit first-order scheme: one derivative
// evaluation per step.
type EulerStepper struct{}

func NewEulerStepper() *EulerStepper {
	return &EulerStepper{}
}

func (e *EulerStepper) Step(derive chaos.DeriveFunc, s chaos.State, p chaos.Params, dt float64) chaos.State {
	d := derive(s, p)
	return chaos.State{
		s[0] + dt*d[0],
		s[1] + dt*d[1],
		s[2] + dt*d[2],
	}
}
