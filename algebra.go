package lti

import (
	"fmt"

	"github.com/hammal/lti/symbolic"
)

// The algebraic operators all follow the same route: convert both operands
// to symbolic rational form, combine, and extract the canonical (num, den)
// pair again. The round trip through simplification cancels common
// pole-zero factors, so the order of the result can be lower than either
// operand. That canonicalization is intended.

// Neg returns -H.
func (tf *TransferFunction) Neg() *TransferFunction {
	num := make([]float64, len(tf.Num))
	for i, v := range tf.Num {
		num[i] = -v
	}
	out, _ := New(num, tf.Den)
	return out
}

// Add returns H + G. Addition is commutative: tf.Add(o) and o.Add(tf)
// produce identical coefficients.
func (tf *TransferFunction) Add(o *TransferFunction) (*TransferFunction, error) {
	a, b, err := tf.operands(o)
	if err != nil {
		return nil, err
	}
	return fromRatio(a.Add(b))
}

// Sub returns H - G.
func (tf *TransferFunction) Sub(o *TransferFunction) (*TransferFunction, error) {
	a, b, err := tf.operands(o)
	if err != nil {
		return nil, err
	}
	return fromRatio(a.Sub(b))
}

// Mul returns H * G. Multiplication is commutative.
func (tf *TransferFunction) Mul(o *TransferFunction) (*TransferFunction, error) {
	a, b, err := tf.operands(o)
	if err != nil {
		return nil, err
	}
	return fromRatio(a.Mul(b))
}

// Div returns H / G. Dividing by the zero transfer function fails with
// ErrSymbolic.
func (tf *TransferFunction) Div(o *TransferFunction) (*TransferFunction, error) {
	a, b, err := tf.operands(o)
	if err != nil {
		return nil, err
	}
	q, err := a.Div(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymbolic, err)
	}
	return fromRatio(q)
}

// AddScalar returns H + v.
func (tf *TransferFunction) AddScalar(v float64) (*TransferFunction, error) {
	a, err := tf.toRatio()
	if err != nil {
		return nil, err
	}
	return fromRatio(a.AddScalar(v))
}

// SubScalar returns H - v.
func (tf *TransferFunction) SubScalar(v float64) (*TransferFunction, error) {
	return tf.AddScalar(-v)
}

// SubFromScalar returns v - H, the right-hand subtraction of the original
// operator set.
func (tf *TransferFunction) SubFromScalar(v float64) (*TransferFunction, error) {
	a, err := tf.toRatio()
	if err != nil {
		return nil, err
	}
	return fromRatio(a.Neg().AddScalar(v))
}

// MulScalar returns v * H.
func (tf *TransferFunction) MulScalar(v float64) (*TransferFunction, error) {
	a, err := tf.toRatio()
	if err != nil {
		return nil, err
	}
	return fromRatio(a.MulScalar(v))
}

// DivScalar returns H / v.
func (tf *TransferFunction) DivScalar(v float64) (*TransferFunction, error) {
	if v == 0 {
		return nil, fmt.Errorf("%w: division by zero scalar", ErrSymbolic)
	}
	return tf.MulScalar(1 / v)
}

// DivIntoScalar returns v / H, the right-hand division of the original
// operator set.
func (tf *TransferFunction) DivIntoScalar(v float64) (*TransferFunction, error) {
	a, err := tf.toRatio()
	if err != nil {
		return nil, err
	}
	q, err := symbolic.FromScalar(v, "s").Div(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymbolic, err)
	}
	return fromRatio(q)
}

func (tf *TransferFunction) operands(o *TransferFunction) (a, b symbolic.Ratio, err error) {
	if a, err = tf.toRatio(); err != nil {
		return
	}
	b, err = o.toRatio()
	return
}
