// Package ode integrates ordinary differential equations x'(t) = f(t, x)
// with explicit Runge-Kutta methods described by their butcher tableau, see
// https://en.wikipedia.org/wiki/Runge–Kutta_methods. It provides the
// continuous-time reference simulation that discrete-time stepping is
// checked against.
package ode

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Derivative is the right hand side of the differential equation
// x'(t) = f(t, x).
type Derivative func(t float64, x mat.Vector) mat.Vector

// butcherTableau describes an explicit Runge-Kutta method.
type butcherTableau struct {
	stages           int
	nodes            []float64
	weights          []float64
	rungeKuttaMatrix [][]float64
}

// RungeKutta holds the butcherTableau which describes the Runge-Kutta method.
type RungeKutta struct {
	description butcherTableau
}

// NewRK4 returns the classic fourth order Runge-Kutta method.
func NewRK4() *RungeKutta {
	var temp butcherTableau
	temp.stages = 4
	temp.nodes = []float64{0, 1. / 2., 1. / 2., 1}
	temp.weights = []float64{1. / 6., 1. / 3., 1. / 3., 1. / 6.}
	temp.rungeKuttaMatrix = [][]float64{
		nil,
		{1. / 2.},
		{0, 1. / 2.},
		{0, 0, 1.},
	}
	return &RungeKutta{temp}
}

// NewEuler returns the forward Euler method.
func NewEuler() *RungeKutta {
	var temp butcherTableau
	temp.stages = 1
	temp.nodes = []float64{0}
	temp.weights = []float64{1}
	return &RungeKutta{temp}
}

// Step advances the state x from t0 to t1 in a single Runge-Kutta step and
// returns the new state.
func (rk RungeKutta) Step(f Derivative, t0, t1 float64, x mat.Vector) mat.Vector {
	m, _ := x.Dims()
	h := t1 - t0

	K := make([]mat.Vector, rk.description.stages)
	var stage mat.VecDense
	for index := range K {
		stage.CloneFromVec(x)
		// combine previously computed derivative points according to the tableau
		if index < len(rk.description.rungeKuttaMatrix) {
			for index2, a := range rk.description.rungeKuttaMatrix[index] {
				if a != 0 {
					stage.AddScaledVec(&stage, h*a, K[index2])
				}
			}
		}
		K[index] = f(t0+h*rk.description.nodes[index], &stage)
	}

	res := mat.NewVecDense(m, nil)
	res.CloneFromVec(x)
	for index, k := range K {
		res.AddScaledVec(res, h*rk.description.weights[index], k)
	}
	return res
}

// Integrate advances x from t0 to t1 in n equally sized steps.
func (rk RungeKutta) Integrate(f Derivative, t0, t1 float64, n int, x mat.Vector) (mat.Vector, error) {
	if n < 1 {
		return nil, errors.New("ode: need at least one step")
	}
	h := (t1 - t0) / float64(n)
	state := x
	for i := 0; i < n; i++ {
		from := t0 + float64(i)*h
		state = rk.Step(f, from, from+h, state)
	}
	return state, nil
}
