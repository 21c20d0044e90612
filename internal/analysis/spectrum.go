// Package analysis provides offline diagnostics for computed trajectories.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of a coordinate series.
// The input is zero-padded to the next power of two; only the first half of
// the spectrum (up to Nyquist) is returned.
func PowerSpectrum(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	out := fft.FFTReal(padded)

	ps := make([]float64, len(out)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(out[i])
	}
	return ps
}

// DominantIndex returns the bin with the largest magnitude, skipping the DC
// component. Returns 0 for spectra too short to have one.
func DominantIndex(ps []float64) int {
	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	return maxIdx
}
