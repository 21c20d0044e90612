package analysis

import (
	"math"
	"testing"

	"github.com/mstolbov/attractor/internal/chaos"
)

func TestPowerSpectrumSinusoid(t *testing.T) {
	// 8 full cycles over 256 samples: the dominant bin must be 8.
	n := 256
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)

	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}
	if idx := DominantIndex(ps); idx != 8 {
		t.Errorf("dominant bin: got %d, want 8", idx)
	}
}

func TestPowerSpectrumPadsToPowerOfTwo(t *testing.T) {
	// 300 samples pad to 512; half-spectrum has 256 bins.
	ps := PowerSpectrum(make([]float64, 300))
	if len(ps) != 256 {
		t.Errorf("expected 256 bins, got %d", len(ps))
	}
}

func TestDominantIndexSkipsDC(t *testing.T) {
	// Large constant offset must not win over the oscillating component.
	n := 128
	data := make([]float64, n)
	for i := range data {
		data[i] = 100 + math.Sin(2*math.Pi*4*float64(i)/float64(n))
	}

	if idx := DominantIndex(PowerSpectrum(data)); idx != 4 {
		t.Errorf("dominant bin: got %d, want 4", idx)
	}
}

func TestMethodDivergence(t *testing.T) {
	p := chaos.Params{10, 28, 8.0 / 3.0}
	initial := chaos.State{1, 1, 1}

	short, err := MethodDivergence(chaos.Lorenz, p, initial, 1e-4, 10)
	if err != nil {
		t.Fatalf("MethodDivergence failed: %v", err)
	}
	if short[0] != 0 {
		t.Errorf("row 0 must coincide, got %e", short[0])
	}
	if short[len(short)-1] > 1e-3 {
		t.Errorf("small-step divergence too large: %e", short[len(short)-1])
	}

	long, err := MethodDivergence(chaos.Lorenz, p, initial, 0.02, 2000)
	if err != nil {
		t.Fatalf("MethodDivergence failed: %v", err)
	}
	if long[len(long)-1] < short[len(short)-1] {
		t.Error("divergence should grow with step size and horizon")
	}
}

func TestMethodDivergenceBadConfig(t *testing.T) {
	_, err := MethodDivergence(chaos.Lorenz, chaos.Params{10, 28, 8.0 / 3.0}, chaos.State{1, 1, 1}, -1, 10)
	if err == nil {
		t.Error("expected error for negative step")
	}
}
