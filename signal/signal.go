// Package signal provides the input abstractions used to drive linear
// systems: vector valued input functions for continuous-time simulation and
// a handful of discrete test-signal generators.
package signal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Input is a vector valued input function decomposed as a scalar function
// U(t) -> Reals and a constant vector B, so that in the state space model
//
//	x'(t) = A x(t) + B U(t)
//
// the input contribution at time t is Value(t) = B U(t).
type Input struct {
	U func(float64) float64
	B mat.Vector
}

// NewInput returns an Input initialised with u(t) and B.
func NewInput(u func(float64) float64, B mat.Vector) Input {
	return Input{u, B}
}

// Value returns B U(t).
func (in Input) Value(t float64) mat.Vector {
	var res mat.VecDense
	res.CloneFromVec(in.B)
	res.ScaleVec(in.U(t), &res)
	return &res
}

// Unit returns n samples of the unit step.
func Unit(n int) []float64 {
	u := make([]float64, n)
	for i := range u {
		u[i] = 1
	}
	return u
}

// ImpulseTrain returns n samples with a unit impulse every period samples,
// starting at sample zero.
func ImpulseTrain(n, period int) []float64 {
	u := make([]float64, n)
	for i := 0; i < n; i += period {
		u[i] = 1
	}
	return u
}

// Sine returns n samples of a unit amplitude sinusoid at frequency f
// sampled at rate fs.
func Sine(n int, f, fs float64) []float64 {
	u := make([]float64, n)
	for i := range u {
		u[i] = math.Sin(2 * math.Pi * f * float64(i) / fs)
	}
	return u
}

// FIR filters u with the finite impulse response h in direct form,
//
//	y[n] = sum_k h[k] u[n-k]
//
// returning len(u) samples.
func FIR(u, h []float64) []float64 {
	y := make([]float64, len(u))
	for n := range u {
		var acc float64
		for k, hv := range h {
			if n-k < 0 {
				break
			}
			acc += hv * u[n-k]
		}
		y[n] = acc
	}
	return y
}
