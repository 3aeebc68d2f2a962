package lti

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hammal/lti/ode"
)

// StateSpace is the quadruple (A, B, C, D) of a single-input single-output
// realization:
//
//	x'(t) = A x(t) + B u(t)
//	y(t)  = C x(t) + D u(t)
//
// A is n by n, B is n by 1, C is 1 by n and D is 1 by 1.
type StateSpace struct {
	A *mat.Dense
	B *mat.Dense
	C *mat.Dense
	D *mat.Dense
}

// Order returns the state dimension n.
func (ss *StateSpace) Order() int {
	n, _ := ss.A.Dims()
	return n
}

// Realize converts the transfer function to controllable canonical form.
// The transfer function must be proper (numerator degree not above the
// denominator degree) and must have dynamics; a pure gain has no state to
// realize.
func (tf *TransferFunction) Realize() (*StateSpace, error) {
	den := tf.Den
	num := tf.Num
	if len(num) > len(den) {
		return nil, fmt.Errorf("%w: improper transfer function, numerator degree %d above denominator degree %d",
			ErrConstruction, len(num)-1, len(den)-1)
	}
	n := len(den) - 1
	if n == 0 {
		return nil, fmt.Errorf("%w: static system has no state-space realization", ErrConstruction)
	}

	// normalize to a monic denominator and pad the numerator to full length
	a := make([]float64, n+1)
	for i, v := range den {
		a[i] = v / den[0]
	}
	b := make([]float64, n+1)
	offset := n + 1 - len(num)
	for i, v := range num {
		b[offset+i] = v / den[0]
	}

	A := mat.NewDense(n, n, nil)
	for col := 0; col < n; col++ {
		A.Set(0, col, -a[col+1])
	}
	for row := 1; row < n; row++ {
		A.Set(row, row-1, 1)
	}
	B := mat.NewDense(n, 1, nil)
	B.Set(0, 0, 1)
	C := mat.NewDense(1, n, nil)
	for col := 0; col < n; col++ {
		C.Set(0, col, b[col+1]-b[0]*a[col+1])
	}
	D := mat.NewDense(1, 1, []float64{b[0]})

	return &StateSpace{A: A, B: B, C: C, D: D}, nil
}

// DiscretizeBilinear converts the continuous-time realization to discrete
// time at sample period Ts with the bilinear (Tustin) transform:
//
//	Ad = (I - Ts/2 A)^-1 (I + Ts/2 A)
//	Bd = (I - Ts/2 A)^-1 Ts B
//	Cd = C (I - Ts/2 A)^-1
//	Dd = D + 1/2 C Bd
func (ss *StateSpace) DiscretizeBilinear(Ts float64) (*StateSpace, error) {
	if Ts <= 0 {
		return nil, fmt.Errorf("%w: sample period must be positive, got %v", ErrConstruction, Ts)
	}
	n := ss.Order()

	var ima mat.Dense
	ima.Scale(-Ts/2, ss.A)
	for i := 0; i < n; i++ {
		ima.Set(i, i, ima.At(i, i)+1)
	}
	var inv mat.Dense
	if err := inv.Inverse(&ima); err != nil {
		return nil, fmt.Errorf("%w: bilinear transform is singular at Ts = %v: %v", ErrConstruction, Ts, err)
	}

	var ipa mat.Dense
	ipa.Scale(Ts/2, ss.A)
	for i := 0; i < n; i++ {
		ipa.Set(i, i, ipa.At(i, i)+1)
	}

	Ad := mat.NewDense(n, n, nil)
	Ad.Mul(&inv, &ipa)

	Bd := mat.NewDense(n, 1, nil)
	Bd.Mul(&inv, ss.B)
	Bd.Scale(Ts, Bd)

	Cd := mat.NewDense(1, n, nil)
	Cd.Mul(ss.C, &inv)

	var cb mat.Dense
	cb.Mul(ss.C, Bd)
	Dd := mat.NewDense(1, 1, []float64{ss.D.At(0, 0) + cb.At(0, 0)/2})

	return &StateSpace{A: Ad, B: Bd, C: Cd, D: Dd}, nil
}

// Derivative returns the continuous-time right hand side
// x'(t) = A x(t) + B u(t) for use with the ode package.
func (ss *StateSpace) Derivative(u func(float64) float64) ode.Derivative {
	return func(t float64, x mat.Vector) mat.Vector {
		n := ss.Order()
		res := mat.NewVecDense(n, nil)
		res.MulVec(ss.A, x)
		for i := 0; i < n; i++ {
			res.SetVec(i, res.AtVec(i)+ss.B.At(i, 0)*u(t))
		}
		return res
	}
}
