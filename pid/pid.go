// Package pid builds PID controllers as transfer functions. The controller
//
//	C(s) = P + I/s + D s / ((D/8) s + 1)
//
// is the sum of a pure gain, a pure integrator and a low-pass filtered
// derivative. The D/8 time constant keeps the derivative term proper, so
// the controller stays realizable and high frequency noise amplification
// stays bounded.
package pid

import (
	"fmt"

	"github.com/hammal/lti"
)

// PID is a transfer function with the three gains retained for the
// closed-form error-buffer update. Immutable after construction, like any
// transfer function.
type PID struct {
	*lti.TransferFunction

	KP float64
	KI float64
	KD float64
}

// New composes the controller transfer function from the three gains. The
// integrator and derivative terms are only included when their gains are
// non-zero, so New(p, 0, 0) is exactly the static gain p.
func New(p, i, d float64) (*PID, error) {
	tf, err := lti.New([]float64{p}, []float64{1})
	if err != nil {
		return nil, err
	}
	if i != 0 {
		integ, err := lti.New([]float64{i}, []float64{1, 0})
		if err != nil {
			return nil, err
		}
		if tf, err = tf.Add(integ); err != nil {
			return nil, err
		}
	}
	if d != 0 {
		deriv, err := lti.New([]float64{d, 0}, []float64{d / 8, 1})
		if err != nil {
			return nil, err
		}
		if tf, err = tf.Add(deriv); err != nil {
			return nil, err
		}
	}
	return &PID{TransferFunction: tf, KP: p, KI: i, KD: d}, nil
}

// ApplyErrors computes the controller output directly from the history of
// control errors, one row per channel with the most recent sample last:
//
//	out = kP e[last] + kI Ts sum(e) + kD (e[last] - e[last-1]) / Ts
//
// The closed form assumes the history is sampled at the uniform period Ts.
// It needs at least one sample per channel, and two when the derivative
// gain is non-zero. Callers that want the generic state-space update use
// the embedded ApplyStep instead.
func (c *PID) ApplyErrors(e [][]float64, Ts float64) ([]float64, error) {
	if Ts <= 0 {
		return nil, fmt.Errorf("%w: sample period must be positive, got %v", lti.ErrConstruction, Ts)
	}
	if len(e) == 0 {
		return nil, fmt.Errorf("%w: empty error history", lti.ErrDimension)
	}
	out := make([]float64, len(e))
	for k, ch := range e {
		if len(ch) == 0 {
			return nil, fmt.Errorf("%w: channel %d has no samples", lti.ErrDimension, k)
		}
		if c.KD != 0 && len(ch) < 2 {
			return nil, fmt.Errorf("%w: channel %d needs two samples for the derivative term", lti.ErrDimension, k)
		}
		last := ch[len(ch)-1]
		var sum float64
		for _, v := range ch {
			sum += v
		}
		out[k] = c.KP*last + c.KI*Ts*sum
		if c.KD != 0 {
			out[k] += c.KD * (last - ch[len(ch)-2]) / Ts
		}
	}
	return out, nil
}
