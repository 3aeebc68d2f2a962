package symbolic

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator is returned when an operation would produce, or was
// given, a rational function whose denominator is the zero polynomial.
var ErrZeroDenominator = errors.New("symbolic: denominator is the zero polynomial")

// Ratio is a rational function Num/Den in a single variable. Every
// constructor and operation returns the canonical form: common polynomial
// factors cancelled and the denominator scaled monic, so two Ratio values
// describing the same function have identical coefficients up to float64
// rounding. Ratio values are immutable.
type Ratio struct {
	Num Poly
	Den Poly
	Var string
}

// FromCoeffs builds the rational function Poly(num)/Poly(den) in the given
// variable from float64 coefficients ordered highest degree first, and
// reduces it to canonical form.
func FromCoeffs(num, den []float64, variable string) (Ratio, error) {
	return NewRatio(NewPoly(num), NewPoly(den), variable, true)
}

// NewRatio builds num/den in the given variable. When simplify is false the
// operands are kept as provided; canonicalization then happens lazily on the
// first operation or coefficient extraction.
func NewRatio(num, den Poly, variable string, simplify bool) (Ratio, error) {
	if den.IsZero() {
		return Ratio{}, ErrZeroDenominator
	}
	r := Ratio{Num: num, Den: den, Var: variable}
	if simplify {
		return r.reduce()
	}
	return r, nil
}

// FromScalar returns the constant rational function v/1.
func FromScalar(v float64, variable string) Ratio {
	return Ratio{Num: Constant(v), Den: Constant(1), Var: variable}
}

// reduce cancels the polynomial GCD and normalizes the denominator monic.
func (r Ratio) reduce() (Ratio, error) {
	if r.Den.IsZero() {
		return Ratio{}, ErrZeroDenominator
	}
	num, den := r.Num, r.Den
	if num.IsZero() {
		return Ratio{Num: Poly{}, Den: Constant(1), Var: r.Var}, nil
	}
	g := GCD(num, den)
	if !g.IsZero() && g.Degree() > 0 {
		num, _, _ = num.DivMod(g)
		den, _, _ = den.DivMod(g)
	}
	// monic denominator fixes the common scalar factor
	lead := den.lead()
	if lead.Sign() == 0 {
		return Ratio{}, ErrZeroDenominator
	}
	inv := lead.Inv(lead)
	return Ratio{Num: num.Scale(inv), Den: den.Scale(inv), Var: r.Var}, nil
}

// Coefficients extracts the canonical numerator and denominator coefficients
// (highest degree first) as float64 values. It fails if the denominator has
// collapsed to the zero polynomial.
func (r Ratio) Coefficients() (num, den []float64, err error) {
	c, err := r.reduce()
	if err != nil {
		return nil, nil, err
	}
	return c.Num.Coeffs(), c.Den.Coeffs(), nil
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	out, _ := NewRatio(r.Num.Neg(), r.Den, r.Var, true)
	return out
}

// Add returns r + o.
func (r Ratio) Add(o Ratio) Ratio {
	num := r.Num.Mul(o.Den).Add(o.Num.Mul(r.Den))
	out, _ := NewRatio(num, r.Den.Mul(o.Den), r.Var, true)
	return out
}

// Sub returns r - o.
func (r Ratio) Sub(o Ratio) Ratio {
	return r.Add(o.Neg())
}

// Mul returns r * o.
func (r Ratio) Mul(o Ratio) Ratio {
	out, _ := NewRatio(r.Num.Mul(o.Num), r.Den.Mul(o.Den), r.Var, true)
	return out
}

// Div returns r / o. Dividing by the zero rational function fails with
// ErrZeroDenominator.
func (r Ratio) Div(o Ratio) (Ratio, error) {
	if o.Num.IsZero() {
		return Ratio{}, fmt.Errorf("dividing by zero rational function: %w", ErrZeroDenominator)
	}
	return NewRatio(r.Num.Mul(o.Den), r.Den.Mul(o.Num), r.Var, true)
}

// AddScalar returns r + v.
func (r Ratio) AddScalar(v float64) Ratio {
	return r.Add(FromScalar(v, r.Var))
}

// MulScalar returns r * v.
func (r Ratio) MulScalar(v float64) Ratio {
	return r.Mul(FromScalar(v, r.Var))
}

// Eval evaluates the rational function at the complex point s.
func (r Ratio) Eval(s complex128) complex128 {
	return r.Num.EvalComplex(s) / r.Den.EvalComplex(s)
}

// String renders the canonical form as "(num)/(den)" in the variable of r.
func (r Ratio) String() string {
	c, err := r.reduce()
	if err != nil {
		return "(" + r.Num.String(r.Var) + ")/(0)"
	}
	if d := c.Den.Coeffs(); len(d) == 1 && d[0] == 1 {
		return c.Num.String(c.Var)
	}
	return "(" + c.Num.String(c.Var) + ")/(" + c.Den.String(c.Var) + ")"
}
