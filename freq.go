package lti

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FrequencyResponse evaluates the continuous transfer function at the
// angular frequencies w (rad/s) and returns the frequency axis together
// with the complex response H(jw). When w is nil a log-spaced range is
// derived from the pole and zero magnitudes of the system.
func (tf *TransferFunction) FrequencyResponse(w []float64) ([]float64, []complex128) {
	if w == nil {
		w = tf.defaultFrequencyRange()
	}
	H := make([]complex128, len(w))
	for i, wi := range w {
		s := complex(0, wi)
		H[i] = polyvalc(tf.Num, s) / polyvalc(tf.Den, s)
	}
	return w, H
}

// Bode returns the Bode presentation of the frequency response: amplitude
// in decibels against angular frequency in rad/s, with the phase unwrapped
// to a continuous curve in degrees.
func (tf *TransferFunction) Bode(w []float64) (wOut, magDB, phaseDeg []float64) {
	wOut, H := tf.FrequencyResponse(w)
	magDB = make([]float64, len(H))
	for i, m := range spectrum.Magnitude(H) {
		magDB[i] = 20 * math.Log10(m)
	}
	return wOut, magDB, unwrappedDegrees(H)
}

// MagnitudeResponse returns the linear presentation of the frequency
// response: magnitude against frequency in Hz, with the phase unwrapped to
// a continuous curve in degrees.
func (tf *TransferFunction) MagnitudeResponse(w []float64) (fHz, mag, phaseDeg []float64) {
	wOut, H := tf.FrequencyResponse(w)
	fHz = make([]float64, len(wOut))
	for i, wi := range wOut {
		fHz[i] = wi / (2 * math.Pi)
	}
	return fHz, spectrum.Magnitude(H), unwrappedDegrees(H)
}

func unwrappedDegrees(H []complex128) []float64 {
	phase := spectrum.UnwrapPhase(spectrum.Phase(H))
	for i := range phase {
		phase[i] *= 180 / math.Pi
	}
	return phase
}

// defaultFrequencyRange spans two decades beyond the smallest and largest
// non-zero pole or zero magnitudes, 200 points log spaced.
func (tf *TransferFunction) defaultFrequencyRange() []float64 {
	var mags []float64
	for _, r := range append(roots(tf.Den), roots(tf.Num)...) {
		if m := math.Hypot(real(r), imag(r)); m > 0 {
			mags = append(mags, m)
		}
	}
	lo, hi := 0.1, 100.0
	if len(mags) > 0 {
		lo = math.Pow(10, math.Floor(math.Log10(floats.Min(mags)))-1)
		hi = math.Pow(10, math.Ceil(math.Log10(floats.Max(mags)))+1)
	}
	return floats.LogSpan(make([]float64, 200), lo, hi)
}

// roots returns the roots of the polynomial (highest degree first) as the
// eigenvalues of its companion matrix.
func roots(coeffs []float64) []complex128 {
	coeffs = trimLeadingZeros(coeffs)
	n := len(coeffs) - 1
	if n < 1 {
		return nil
	}
	comp := mat.NewDense(n, n, nil)
	for col := 0; col < n; col++ {
		comp.Set(0, col, -coeffs[col+1]/coeffs[0])
	}
	for row := 1; row < n; row++ {
		comp.Set(row, row-1, 1)
	}
	var eig mat.Eigen
	if !eig.Factorize(comp, mat.EigenNone) {
		return nil
	}
	return eig.Values(nil)
}

// polyvalc evaluates the polynomial (highest degree first) at the complex
// point s by Horner's method.
func polyvalc(coeffs []float64, s complex128) complex128 {
	var acc complex128
	for _, c := range coeffs {
		acc = acc*s + complex(c, 0)
	}
	return acc
}
