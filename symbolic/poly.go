// Package symbolic implements the small computer-algebra kernel backing the
// transfer function algebra: univariate polynomials with exact rational
// coefficients and rational functions reduced to a canonical lowest-terms
// form. Exact arithmetic (math/big.Rat) keeps repeated algebraic operations
// from accumulating floating point drift before the coefficients are handed
// back as float64 slices.
package symbolic

import (
	"fmt"
	"math/big"
	"strings"
)

// Poly is a univariate polynomial with exact rational coefficients. The zero
// value is the zero polynomial. Poly values are immutable; every operation
// returns a new polynomial.
type Poly struct {
	// coefficients in ascending degree order, trailing zeros trimmed
	c []*big.Rat
}

// NewPoly builds a polynomial from float64 coefficients ordered highest
// degree first, the convention used throughout the module. Coefficients must
// be finite; NaN and infinities have no rational representation and panic.
func NewPoly(coeffs []float64) Poly {
	n := len(coeffs)
	c := make([]*big.Rat, n)
	for i, v := range coeffs {
		r := new(big.Rat).SetFloat64(v)
		if r == nil {
			panic(fmt.Sprintf("symbolic: non-finite coefficient %v at degree %d", v, n-1-i))
		}
		c[n-1-i] = r
	}
	return polyFromRats(c)
}

// Constant returns the degree zero polynomial with value v.
func Constant(v float64) Poly {
	return NewPoly([]float64{v})
}

// polyFromRats assumes ascending order and takes ownership of the slice.
func polyFromRats(c []*big.Rat) Poly {
	n := len(c)
	for n > 0 && (c[n-1] == nil || c[n-1].Sign() == 0) {
		n--
	}
	return Poly{c: c[:n]}
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.c) == 0
}

// Degree returns the degree of p. The zero polynomial and constants both
// have degree zero.
func (p Poly) Degree() int {
	if len(p.c) == 0 {
		return 0
	}
	return len(p.c) - 1
}

func (p Poly) coeff(deg int) *big.Rat {
	if deg < 0 || deg >= len(p.c) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.c[deg])
}

func (p Poly) lead() *big.Rat {
	if len(p.c) == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.c[len(p.c)-1])
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat).Add(p.coeff(i), q.coeff(i))
	}
	return polyFromRats(c)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Neg(v)
	}
	return polyFromRats(c)
}

// Mul returns the product p * q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	c := make([]*big.Rat, len(p.c)+len(q.c)-1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	var tmp big.Rat
	for i, a := range p.c {
		for j, b := range q.c {
			tmp.Mul(a, b)
			c[i+j].Add(c[i+j], &tmp)
		}
	}
	return polyFromRats(c)
}

// Scale returns p multiplied by the rational scalar k.
func (p Poly) Scale(k *big.Rat) Poly {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Mul(v, k)
	}
	return polyFromRats(c)
}

// DivMod performs Euclidean division and returns quotient and remainder such
// that p = quo*q + rem with rem.Degree() < q.Degree(). The divisor must not
// be the zero polynomial.
func (p Poly) DivMod(q Poly) (quo, rem Poly, err error) {
	if q.IsZero() {
		return Poly{}, Poly{}, ErrZeroDenominator
	}
	rc := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		rc[i] = new(big.Rat).Set(v)
	}
	dq := len(q.c) - 1
	lead := q.c[dq]
	if len(rc) <= dq {
		return Poly{}, polyFromRats(rc), nil
	}
	qc := make([]*big.Rat, len(rc)-dq)
	var tmp big.Rat
	for i := len(rc) - 1; i >= dq; i-- {
		f := new(big.Rat).Quo(rc[i], lead)
		qc[i-dq] = f
		if f.Sign() == 0 {
			continue
		}
		for j := 0; j <= dq; j++ {
			tmp.Mul(f, q.c[j])
			rc[i-dq+j].Sub(rc[i-dq+j], &tmp)
		}
	}
	return polyFromRats(qc), polyFromRats(rc[:dq]), nil
}

// GCD returns the monic greatest common divisor of a and b via the Euclidean
// algorithm. GCD(0, 0) is the zero polynomial.
func GCD(a, b Poly) Poly {
	for !b.IsZero() {
		_, rem, _ := a.DivMod(b)
		a, b = b, rem
	}
	return a.monic()
}

// monic scales p so its leading coefficient is one.
func (p Poly) monic() Poly {
	if p.IsZero() {
		return p
	}
	inv := new(big.Rat).Inv(p.lead())
	return p.Scale(inv)
}

// Coeffs returns the coefficients ordered highest degree first, evaluated to
// float64. The zero polynomial yields [0].
func (p Poly) Coeffs() []float64 {
	if p.IsZero() {
		return []float64{0}
	}
	out := make([]float64, len(p.c))
	for i, v := range p.c {
		out[len(p.c)-1-i], _ = v.Float64()
	}
	return out
}

// Eval evaluates the polynomial at x using Horner's method.
func (p Poly) Eval(x float64) float64 {
	var acc float64
	for i := len(p.c) - 1; i >= 0; i-- {
		v, _ := p.c[i].Float64()
		acc = acc*x + v
	}
	return acc
}

// EvalComplex evaluates the polynomial at the complex point x.
func (p Poly) EvalComplex(x complex128) complex128 {
	var acc complex128
	for i := len(p.c) - 1; i >= 0; i-- {
		v, _ := p.c[i].Float64()
		acc = acc*x + complex(v, 0)
	}
	return acc
}

// String renders the polynomial in the given variable, highest degree first.
func (p Poly) String(variable string) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for i := len(p.c) - 1; i >= 0; i-- {
		v, _ := p.c[i].Float64()
		if v == 0 {
			continue
		}
		if first {
			if v < 0 {
				b.WriteString("-")
			}
		} else {
			if v < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		first = false
		av := v
		if av < 0 {
			av = -av
		}
		switch {
		case i == 0:
			fmt.Fprintf(&b, "%g", av)
		case av == 1:
			b.WriteString(term(variable, i))
		default:
			fmt.Fprintf(&b, "%g*%s", av, term(variable, i))
		}
	}
	if first {
		return "0"
	}
	return b.String()
}

func term(variable string, deg int) string {
	if deg == 1 {
		return variable
	}
	return fmt.Sprintf("%s^%d", variable, deg)
}
