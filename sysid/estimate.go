// Package sysid estimates the frequency response of an unknown system from
// measured input and output signals. The estimate is the elementwise ratio
// of output to input spectra; the correlation method first replaces the raw
// signals with the input auto-correlation and the output/input
// cross-correlations, which suppresses output noise that is uncorrelated
// with the input.
package sysid

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/conv"
	"github.com/mjibson/go-dsp/fft"

	"github.com/hammal/lti"
)

// Method selects the spectral pre-processing of EstimateResponse.
type Method int

const (
	// Correlation uses the auto-correlation of the input as the spectral
	// reference and the cross-correlation of each output channel with the
	// input as the measured spectrum.
	Correlation Method = iota
	// Direct uses the raw input and output samples.
	Direct
)

// ParseMethod maps the flags "correlation" and "direct" onto a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "correlation":
		return Correlation, nil
	case "direct":
		return Direct, nil
	}
	return 0, fmt.Errorf("%w: unknown estimation method %q", lti.ErrConstruction, s)
}

// EstimateResponse estimates the channel-wise frequency response of the
// system that produced the output channels y from the reference input u,
// both sampled at rate fs. Every channel must have exactly len(u) samples.
//
// It returns one complex response per channel over the positive-frequency
// half of the FFT bins, together with the shared frequency axis in Hz.
// Bins where the input spectrum is exactly zero carry no information about
// the system; their estimated response is forced to zero rather than left
// undefined.
func EstimateResponse(y [][]float64, u []float64, fs float64, method Method) ([][]complex128, []float64, error) {
	n := len(u)
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: empty input signal", lti.ErrDimension)
	}
	if len(y) == 0 {
		return nil, nil, fmt.Errorf("%w: no output channels", lti.ErrDimension)
	}
	if fs <= 0 {
		return nil, nil, fmt.Errorf("%w: sample rate must be positive, got %v", lti.ErrConstruction, fs)
	}
	for k, ch := range y {
		if len(ch) != n {
			return nil, nil, fmt.Errorf("%w: output channel %d has %d samples, want %d", lti.ErrDimension, k, len(ch), n)
		}
	}

	half := n / 2
	fr := fftfreq(n, 1/fs)[:half]

	a := u
	if method == Correlation {
		var err error
		if a, err = conv.CorrelateMode(u, u, conv.ModeSame); err != nil {
			return nil, nil, fmt.Errorf("auto-correlation: %w", err)
		}
	}
	A := fft.FFTReal(a)

	// bins with zero reference spectrum are forced to an estimate of zero
	zero := make([]bool, n)
	denom := make([]complex128, n)
	for i, v := range A {
		if v == 0 {
			zero[i] = true
			denom[i] = 1
		} else {
			denom[i] = v
		}
	}

	H := make([][]complex128, len(y))
	for k, ch := range y {
		c := ch
		if method == Correlation {
			var err error
			if c, err = conv.CorrelateMode(ch, u, conv.ModeSame); err != nil {
				return nil, nil, fmt.Errorf("cross-correlation of channel %d: %w", k, err)
			}
		}
		C := fft.FFTReal(c)
		Hk := make([]complex128, half)
		for i := 0; i < half; i++ {
			if zero[i] {
				continue
			}
			Hk[i] = C[i] / denom[i]
		}
		H[k] = Hk
	}
	return H, fr, nil
}

// EstimateResponse1 is EstimateResponse for a single output channel.
func EstimateResponse1(y, u []float64, fs float64, method Method) ([]complex128, []float64, error) {
	H, fr, err := EstimateResponse([][]float64{y}, u, fs, method)
	if err != nil {
		return nil, nil, err
	}
	return H[0], fr, nil
}

// fftfreq returns the FFT sample frequencies for n samples spaced d apart,
// in the layout numpy uses: non-negative frequencies first, then the
// negative half.
func fftfreq(n int, d float64) []float64 {
	f := make([]float64, n)
	scale := 1 / (d * float64(n))
	split := (n + 1) / 2
	for i := 0; i < split; i++ {
		f[i] = float64(i) * scale
	}
	for i := split; i < n; i++ {
		f[i] = float64(i-n) * scale
	}
	return f
}
