// Package lti models linear time-invariant systems as rational transfer
// functions
//
//	H(s) = num(s) / den(s)
//
// with coefficient slices ordered highest degree first. Transfer functions
// are immutable: algebraic operations, realization and discretization all
// return new values, so a single instance can safely be shared between
// concurrent readers. Simulation state is owned by the caller and threaded
// explicitly through ApplyStep.
package lti

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hammal/lti/symbolic"
)

// TransferFunction is an LTI system in rational polynomial form. Num and Den
// hold the coefficients highest degree first. Treat instances as immutable;
// the constructors copy their arguments and the operators never mutate their
// operands.
type TransferFunction struct {
	Num []float64
	Den []float64
}

// New builds a transfer function from numerator and denominator
// coefficients, highest degree first. The denominator must contain at least
// one non-zero coefficient.
func New(num, den []float64) (*TransferFunction, error) {
	den = trimLeadingZeros(den)
	if len(den) == 0 {
		return nil, fmt.Errorf("%w: denominator is empty or identically zero", ErrConstruction)
	}
	num = trimLeadingZeros(num)
	if len(num) == 0 {
		num = []float64{0}
	}
	tf := TransferFunction{
		Num: append([]float64(nil), num...),
		Den: append([]float64(nil), den...),
	}
	return &tf, nil
}

// NewFromStateSpace realizes the transfer function of the single-input
// single-output state-space quadruple (A, B, C, D):
//
//	den = charpoly(A)
//	num = charpoly(A - B C) + (D - 1) den
//
// with both characteristic polynomials computed by the Faddeev-LeVerrier
// recursion.
func NewFromStateSpace(A, B, C, D mat.Matrix) (*TransferFunction, error) {
	n, nc := A.Dims()
	if n != nc {
		return nil, fmt.Errorf("%w: A is %dx%d, want square", ErrConstruction, n, nc)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty state transition matrix", ErrConstruction)
	}
	if mB, nB := B.Dims(); mB != n || nB != 1 {
		return nil, fmt.Errorf("%w: B is %dx%d, want %dx1", ErrConstruction, mB, nB, n)
	}
	if mC, nCC := C.Dims(); mC != 1 || nCC != n {
		return nil, fmt.Errorf("%w: C is %dx%d, want 1x%d", ErrConstruction, mC, nCC, n)
	}
	if mD, nD := D.Dims(); mD != 1 || nD != 1 {
		return nil, fmt.Errorf("%w: D is %dx%d, want 1x1", ErrConstruction, mD, nD)
	}

	den := charPoly(A)

	// A - B C
	var bc, abc mat.Dense
	bc.Mul(B, C)
	abc.Sub(A, &bc)
	num := charPoly(&abc)

	d := D.At(0, 0)
	for i := range num {
		num[i] += (d - 1) * den[i]
	}
	return New(num, den)
}

// charPoly returns the monic characteristic polynomial coefficients of the
// square matrix A, highest degree first, via Faddeev-LeVerrier.
func charPoly(A mat.Matrix) []float64 {
	n, _ := A.Dims()
	coeffs := make([]float64, n+1)
	coeffs[0] = 1

	M := mat.NewDense(n, n, nil)
	var work mat.Dense
	for k := 1; k <= n; k++ {
		// M_k = A (M_{k-1} + c_{k-1} I)
		work.CloneFrom(M)
		for i := 0; i < n; i++ {
			work.Set(i, i, work.At(i, i)+coeffs[k-1])
		}
		M.Mul(A, &work)
		coeffs[k] = -mat.Trace(M) / float64(k)
	}
	return coeffs
}

// toRatio converts the transfer function to its symbolic rational form in s.
func (tf *TransferFunction) toRatio() (symbolic.Ratio, error) {
	r, err := symbolic.FromCoeffs(tf.Num, tf.Den, "s")
	if err != nil {
		return symbolic.Ratio{}, fmt.Errorf("%w: %v", ErrSymbolic, err)
	}
	return r, nil
}

// fromRatio extracts a transfer function back out of a symbolic rational.
func fromRatio(r symbolic.Ratio) (*TransferFunction, error) {
	num, den, err := r.Coefficients()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymbolic, err)
	}
	return New(num, den)
}

// static reports whether the system has no dynamics, i.e. both polynomials
// are scalars.
func (tf *TransferFunction) static() bool {
	return len(tf.Num) == 1 && len(tf.Den) == 1
}

// Gain returns the static gain num[0]/den[0] of a dynamics-free system and
// false for anything with dynamics.
func (tf *TransferFunction) Gain() (float64, bool) {
	if !tf.static() {
		return 0, false
	}
	return tf.Num[0] / tf.Den[0], true
}

// Order returns the realized state order, the denominator degree.
func (tf *TransferFunction) Order() int {
	return len(tf.Den) - 1
}

func (tf *TransferFunction) String() string {
	r, err := tf.toRatio()
	if err != nil {
		return fmt.Sprintf("TransferFunction(%v, %v)", tf.Num, tf.Den)
	}
	return r.String()
}

func trimLeadingZeros(c []float64) []float64 {
	i := 0
	for i < len(c) && c[i] == 0 {
		i++
	}
	return c[i:]
}
