package lti

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func mustTF(t *testing.T, num, den []float64) *TransferFunction {
	t.Helper()
	tf, err := New(num, den)
	if err != nil {
		t.Fatal(err)
	}
	return tf
}

func equalTF(a, b *TransferFunction, tol float64) bool {
	return floats.EqualApprox(a.Num, b.Num, tol) && floats.EqualApprox(a.Den, b.Den, tol)
}

func TestAddCommutes(t *testing.T) {
	f := mustTF(t, []float64{1}, []float64{1, 0})
	g := mustTF(t, []float64{1}, []float64{1, 1})

	fg, err := f.Add(g)
	if err != nil {
		t.Fatal(err)
	}
	gf, err := g.Add(f)
	if err != nil {
		t.Fatal(err)
	}
	if !equalTF(fg, gf, 1e-12) {
		t.Fatalf("f+g = (%v, %v), g+f = (%v, %v)", fg.Num, fg.Den, gf.Num, gf.Den)
	}
	// 1/s + 1/(s+1) = (2s+1)/(s^2+s)
	if !floats.EqualApprox(fg.Num, []float64{2, 1}, 1e-12) || !floats.EqualApprox(fg.Den, []float64{1, 1, 0}, 1e-12) {
		t.Fatalf("f+g = (%v, %v)", fg.Num, fg.Den)
	}
}

func TestMulCommutesAndCancels(t *testing.T) {
	f := mustTF(t, []float64{1, 1}, []float64{1, 2})
	g := mustTF(t, []float64{1, 2}, []float64{1, 3})

	fg, err := f.Mul(g)
	if err != nil {
		t.Fatal(err)
	}
	gf, err := g.Mul(f)
	if err != nil {
		t.Fatal(err)
	}
	if !equalTF(fg, gf, 1e-12) {
		t.Fatal("multiplication is not commutative")
	}
	// the (s+2) pole-zero pair cancels; order drops by one
	if !floats.EqualApprox(fg.Num, []float64{1, 1}, 1e-12) || !floats.EqualApprox(fg.Den, []float64{1, 3}, 1e-12) {
		t.Fatalf("f*g = (%v, %v), want ([1 1], [1 3])", fg.Num, fg.Den)
	}
}

func TestSubAntiSymmetry(t *testing.T) {
	f := mustTF(t, []float64{1}, []float64{1, 0})
	g := mustTF(t, []float64{3}, []float64{1, 1})

	fg, err := f.Sub(g)
	if err != nil {
		t.Fatal(err)
	}
	gf, err := g.Sub(f)
	if err != nil {
		t.Fatal(err)
	}
	if !equalTF(fg, gf.Neg(), 1e-12) {
		t.Fatalf("f-g = (%v, %v), -(g-f) = (%v, %v)", fg.Num, fg.Den, gf.Neg().Num, gf.Neg().Den)
	}
}

func TestDivThenMulRecovers(t *testing.T) {
	f := mustTF(t, []float64{1, 1}, []float64{1, 5, 6})
	g := mustTF(t, []float64{2}, []float64{1, 4})

	q, err := f.Div(g)
	if err != nil {
		t.Fatal(err)
	}
	back, err := q.Mul(g)
	if err != nil {
		t.Fatal(err)
	}
	if !equalTF(back, f, 1e-9) {
		t.Fatalf("(f/g)*g = (%v, %v), want (%v, %v)", back.Num, back.Den, f.Num, f.Den)
	}
}

func TestDivByZeroTransferFunction(t *testing.T) {
	f := mustTF(t, []float64{1}, []float64{1, 0})
	zero := mustTF(t, []float64{0}, []float64{1})
	if _, err := f.Div(zero); !errors.Is(err, ErrSymbolic) {
		t.Fatalf("dividing by zero TF: err = %v", err)
	}
}

func TestScalarOperators(t *testing.T) {
	f := mustTF(t, []float64{1}, []float64{1, 0}) // 1/s

	sum, err := f.AddScalar(2)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(sum.Num, []float64{2, 1}, 1e-12) || !floats.EqualApprox(sum.Den, []float64{1, 0}, 1e-12) {
		t.Fatalf("1/s + 2 = (%v, %v)", sum.Num, sum.Den)
	}

	// 3 - 1/s = (3s-1)/s
	rsub, err := f.SubFromScalar(3)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(rsub.Num, []float64{3, -1}, 1e-12) {
		t.Fatalf("3 - 1/s = (%v, %v)", rsub.Num, rsub.Den)
	}

	// 2 / (1/s) = 2s
	rdiv, err := f.DivIntoScalar(2)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(rdiv.Num, []float64{2, 0}, 1e-12) || !floats.EqualApprox(rdiv.Den, []float64{1}, 1e-12) {
		t.Fatalf("2/(1/s) = (%v, %v)", rdiv.Num, rdiv.Den)
	}

	scaled, err := f.MulScalar(4)
	if err != nil {
		t.Fatal(err)
	}
	half, err := scaled.DivScalar(8)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualApprox(half.Num, []float64{0.5}, 1e-12) {
		t.Fatalf("(4/s)/8 = (%v, %v)", half.Num, half.Den)
	}

	if _, err := f.DivScalar(0); !errors.Is(err, ErrSymbolic) {
		t.Fatalf("division by zero scalar: err = %v", err)
	}
}

func TestNegDoesNotMutate(t *testing.T) {
	f := mustTF(t, []float64{1, -2}, []float64{1, 0})
	n := f.Neg()
	if !floats.Equal(n.Num, []float64{-1, 2}) {
		t.Fatalf("Neg().Num = %v", n.Num)
	}
	if !floats.Equal(f.Num, []float64{1, -2}) {
		t.Fatal("operand was mutated")
	}
}
