package integrate

import (
	"testing"

	"github.com/mstolbov/attractor/internal/chaos"
)

func BenchmarkEulerStep(b *testing.B) {
	stepper := NewEulerStepper()
	derive := chaos.Lorenz.DeriveFunc()
	p := chaos.Params{10, 28, 8.0 / 3.0}
	s := chaos.State{1, 1, 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = stepper.Step(derive, s, p, 0.01)
	}
}

func BenchmarkRK4Step(b *testing.B) {
	stepper := NewRK4Stepper()
	derive := chaos.Lorenz.DeriveFunc()
	p := chaos.Params{10, 28, 8.0 / 3.0}
	s := chaos.State{1, 1, 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = stepper.Step(derive, s, p, 0.01)
	}
}

func BenchmarkComputeLorenz10k(b *testing.B) {
	in, err := New(Config{
		Family:     chaos.Lorenz,
		Method:     RungeKutta,
		Step:       0.01,
		Iterations: 10000,
		Initial:    chaos.State{1, 1, 1},
	})
	if err != nil {
		b.Fatal(err)
	}
	p := chaos.Params{10, 28, 8.0 / 3.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := in.Compute(p); err != nil {
			b.Fatal(err)
		}
	}
}
