package lti

import (
	"fmt"

	"github.com/hammal/lti/symbolic"
)

// ToDiscrete returns the discrete-time transfer function in the variable z
// obtained with the bilinear (Tustin) transform at sample period Ts. The
// substitution
//
//	s -> (2/Ts) (z - 1) / (z + 1)
//
// is carried out exactly in the symbolic bridge: both polynomials are
// multiplied through by (z+1)^n, expanded and reduced to lowest terms.
func (tf *TransferFunction) ToDiscrete(Ts float64) (symbolic.Ratio, error) {
	if Ts <= 0 {
		return symbolic.Ratio{}, fmt.Errorf("%w: sample period must be positive, got %v", ErrConstruction, Ts)
	}

	dn := len(tf.Num) - 1
	dd := len(tf.Den) - 1
	n := dn
	if dd > n {
		n = dd
	}

	k := 2 / Ts
	zm1 := symbolic.NewPoly([]float64{1, -1}) // z - 1
	zp1 := symbolic.NewPoly([]float64{1, 1})  // z + 1

	numZ := substituteBilinear(tf.Num, dn, n, k, zm1, zp1)
	denZ := substituteBilinear(tf.Den, dd, n, k, zm1, zp1)

	r, err := symbolic.NewRatio(numZ, denZ, "z", true)
	if err != nil {
		return symbolic.Ratio{}, fmt.Errorf("%w: %v", ErrSymbolic, err)
	}
	return r, nil
}

// substituteBilinear expands sum_i c_i s^(d-i) with s = k (z-1)/(z+1), the
// whole expression scaled by (z+1)^n.
func substituteBilinear(coeffs []float64, d, n int, k float64, zm1, zp1 symbolic.Poly) symbolic.Poly {
	var acc symbolic.Poly
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		e := d - i // power of s this coefficient multiplies
		term := symbolic.Constant(c * pow(k, e))
		term = term.Mul(polyPow(zm1, e))
		term = term.Mul(polyPow(zp1, n-e))
		acc = acc.Add(term)
	}
	return acc
}

func polyPow(p symbolic.Poly, e int) symbolic.Poly {
	res := symbolic.Constant(1)
	for i := 0; i < e; i++ {
		res = res.Mul(p)
	}
	return res
}

func pow(base float64, e int) float64 {
	res := 1.0
	for i := 0; i < e; i++ {
		res *= base
	}
	return res
}
