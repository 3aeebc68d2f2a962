package ode

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRK4ExponentialDecay(t *testing.T) {
	// x' = -x, x(0) = 1 has the solution e^(-t)
	f := func(t float64, x mat.Vector) mat.Vector {
		res := mat.NewVecDense(1, nil)
		res.ScaleVec(-1, x)
		return res
	}
	x0 := mat.NewVecDense(1, []float64{1})
	x, err := NewRK4().Integrate(f, 0, 1, 100, x0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := x.AtVec(0), math.Exp(-1); math.Abs(got-want) > 1e-8 {
		t.Fatalf("x(1) = %v, want %v", got, want)
	}
}

func TestRK4HarmonicOscillator(t *testing.T) {
	// x'' = -x written as a first order system; x(t) = cos(t)
	A := mat.NewDense(2, 2, []float64{0, 1, -1, 0})
	f := func(t float64, x mat.Vector) mat.Vector {
		res := mat.NewVecDense(2, nil)
		res.MulVec(A, x)
		return res
	}
	x0 := mat.NewVecDense(2, []float64{1, 0})
	x, err := NewRK4().Integrate(f, 0, math.Pi, 200, x0)
	if err != nil {
		t.Fatal(err)
	}
	if got := x.AtVec(0); math.Abs(got-(-1)) > 1e-6 {
		t.Fatalf("x(pi) = %v, want -1", got)
	}
}

func TestEulerConvergesSlower(t *testing.T) {
	f := func(t float64, x mat.Vector) mat.Vector {
		res := mat.NewVecDense(1, nil)
		res.ScaleVec(-1, x)
		return res
	}
	coarse, err := NewEuler().Integrate(f, 0, 1, 10, mat.NewVecDense(1, []float64{1}))
	if err != nil {
		t.Fatal(err)
	}
	fine, err := NewEuler().Integrate(f, 0, 1, 10000, mat.NewVecDense(1, []float64{1}))
	if err != nil {
		t.Fatal(err)
	}
	want := math.Exp(-1)
	if math.Abs(fine.AtVec(0)-want) > math.Abs(coarse.AtVec(0)-want) {
		t.Fatal("refining the Euler step did not reduce the error")
	}
	if math.Abs(fine.AtVec(0)-want) > 1e-4 {
		t.Fatalf("Euler with 10000 steps off by %v", math.Abs(fine.AtVec(0)-want))
	}
}

func TestIntegrateRejectsZeroSteps(t *testing.T) {
	f := func(t float64, x mat.Vector) mat.Vector { return x }
	if _, err := NewRK4().Integrate(f, 0, 1, 0, mat.NewVecDense(1, nil)); err == nil {
		t.Fatal("expected an error for n = 0")
	}
}
