package audio

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X(k)|^2/n for the first half of the spectrum. The
// input is zero-padded to a power of two.
func PowerSpectrum(samples []float64) []float64 {
	if len(samples) == 0 {
		return nil
	}
	n := 1
	for n < len(samples) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, samples)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		mag := cmplx.Abs(spectrum[i])
		ps[i] = mag * mag / float64(n)
	}
	return ps
}

// DominantFrequency is the strongest non-DC bin of samples, in Hz.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	ps := PowerSpectrum(samples)
	if len(ps) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return float64(best) * float64(sampleRate) / float64(2*len(ps))
}
