package integrate

import "github.com/mstolbov/attractor/internal/chaos"

// RK4Stepper is the classic explicit 4th-order Runge-Kutta scheme: four
// staged derivative evaluations per step.
type RK4Stepper struct{}

func NewRK4Stepper() *RK4Stepper {
	return &RK4Stepper{}
}

func (r *RK4Stepper) Step(derive chaos.DeriveFunc, s chaos.State, p chaos.Params, dt float64) chaos.State {
	k1 := derive(s, p)

	var mid chaos.State
	for i := range s {
		mid[i] = s[i] + dt*0.5*k1[i]
	}
	k2 := derive(mid, p)

	for i := range s {
		mid[i] = s[i] + dt*0.5*k2[i]
	}
	k3 := derive(mid, p)

	for i := range s {
		mid[i] = s[i] + dt*k3[i]
	}
	k4 := derive(mid, p)

	var next chaos.State
	dt6 := dt / 6.0
	for i := range s {
		next[i] = s[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return next
}
