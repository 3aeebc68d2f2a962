package lti

import (
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/hammal/lti/gonumExtensions"
)

// ApplyStep advances the discretized system by one sample period. u holds
// one sample per input channel and x the caller-owned simulation state of
// length Order() * len(u); the channels share the transfer function's
// dynamics but do not interact (the realization is replicated
// block-diagonally over the channels). It returns the output sample per
// channel and the next state.
//
// The receiver holds no simulation state: the caller threads x through
// successive calls, which keeps a single TransferFunction reentrant across
// independent channel sets and callers. ApplyStep performs no locking, so a
// given x must not be shared between concurrent simulation streams.
//
// A system without dynamics short-circuits to the static gain and returns x
// unchanged.
func (tf *TransferFunction) ApplyStep(u, x []float64, Ts float64) (y, xNext []float64, err error) {
	if len(u) == 0 {
		return nil, nil, fmt.Errorf("%w: no input channels", ErrDimension)
	}

	if gain, ok := tf.Gain(); ok {
		y = make([]float64, len(u))
		for i, v := range u {
			y[i] = gain * v
		}
		return y, append([]float64(nil), x...), nil
	}

	ss, err := tf.Realize()
	if err != nil {
		return nil, nil, err
	}
	d, err := ss.DiscretizeBilinear(Ts)
	if err != nil {
		return nil, nil, err
	}

	n := d.Order()
	channels := len(u)
	if len(x) != n*channels {
		return nil, nil, fmt.Errorf("%w: state has %d entries, want order %d x %d channels = %d",
			ErrDimension, len(x), n, channels, n*channels)
	}

	A, B, C, D := mat.Matrix(d.A), mat.Matrix(d.B), mat.Matrix(d.C), mat.Matrix(d.D)
	if channels > 1 {
		eye := gonumExtensions.Eye(channels, channels, 0)
		A = gonumExtensions.Kron(eye, A)
		B = gonumExtensions.Kron(eye, B)
		C = gonumExtensions.Kron(eye, C)
		D = gonumExtensions.Kron(eye, D)
	}

	xVec := mat.NewVecDense(len(x), append([]float64(nil), x...))
	uVec := mat.NewVecDense(channels, append([]float64(nil), u...))

	x1 := mat.NewVecDense(len(x), nil)
	x1.MulVec(A, xVec)
	var bu mat.VecDense
	bu.MulVec(B, uVec)
	x1.AddVec(x1, &bu)

	yVec := mat.NewVecDense(channels, nil)
	yVec.MulVec(C, xVec)
	var du mat.VecDense
	du.MulVec(D, uVec)
	yVec.AddVec(yVec, &du)

	if gonumExtensions.HasNaNOrInf(d.A) || gonumExtensions.HasNaNOrInf(d.B) ||
		gonumExtensions.HasNaNOrInf(x1) || gonumExtensions.HasNaNOrInf(yVec) {
		// ill-conditioned realization; report and keep going with what we have
		log.Printf("lti: ill-conditioned discretization at Ts = %v: y = %v", Ts, mat.Formatted(yVec.T()))
	}

	y = make([]float64, channels)
	for i := range y {
		y[i] = yVec.AtVec(i)
	}
	xNext = make([]float64, len(x))
	for i := range xNext {
		xNext[i] = x1.AtVec(i)
	}
	return y, xNext, nil
}

// ApplyStepScalar is ApplyStep for a single channel passed as a scalar.
func (tf *TransferFunction) ApplyStepScalar(u float64, x []float64, Ts float64) (float64, []float64, error) {
	y, xNext, err := tf.ApplyStep([]float64{u}, x, Ts)
	if err != nil {
		return 0, nil, err
	}
	return y[0], xNext, nil
}
