package analysis

import (
	"github.com/mstolbov/attractor/internal/chaos"
	"github.com/mstolbov/attractor/internal/integrate"
)

// MethodDivergence integrates the same configuration with Euler and RK4 and
// returns the per-row Euclidean distance between the two trajectories. On a
// chaotic system the distance stays near zero for small steps and short
// horizons and grows with either.
func MethodDivergence(family chaos.Family, p chaos.Params, initial chaos.State, step float64, iterations int) ([]float64, error) {
	euler, err := integrate.New(integrate.Config{
		Family:     family,
		Method:     integrate.Euler,
		Step:       step,
		Iterations: iterations,
		Initial:    initial,
	})
	if err != nil {
		return nil, err
	}
	rk4, err := integrate.New(integrate.Config{
		Family:     family,
		Method:     integrate.RungeKutta,
		Step:       step,
		Iterations: iterations,
		Initial:    initial,
	})
	if err != nil {
		return nil, err
	}

	te, err := euler.Compute(p)
	if err != nil {
		return nil, err
	}
	tr, err := rk4.Compute(p)
	if err != nil {
		return nil, err
	}

	dist := make([]float64, len(te))
	for i := range te {
		dist[i] = te[i].Sub(tr[i]).Norm()
	}
	return dist, nil
}
