package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCoeffsRoundTrip(t *testing.T) {
	// num and den are coprime, so the canonical form is the input itself
	r, err := FromCoeffs([]float64{1, 2}, []float64{1, 3, 1}, "s")
	require.NoError(t, err)
	num, den, err := r.Coefficients()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, num)
	assert.Equal(t, []float64{1, 3, 1}, den)
}

func TestReduceCancelsCommonFactor(t *testing.T) {
	// (s+1)(s+2) / (s+1)(s+3) -> (s+2)/(s+3)
	r, err := FromCoeffs([]float64{1, 3, 2}, []float64{1, 4, 3}, "s")
	require.NoError(t, err)
	num, den, err := r.Coefficients()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, num)
	assert.Equal(t, []float64{1, 3}, den)
}

func TestReduceNormalizesDenominatorMonic(t *testing.T) {
	r, err := FromCoeffs([]float64{2}, []float64{4, 8}, "s")
	require.NoError(t, err)
	num, den, err := r.Coefficients()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, num)
	assert.Equal(t, []float64{1, 2}, den)
}

func TestZeroDenominatorRejected(t *testing.T) {
	_, err := FromCoeffs([]float64{1}, []float64{0}, "s")
	assert.ErrorIs(t, err, ErrZeroDenominator)

	_, err = FromCoeffs([]float64{1}, nil, "s")
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestRatioAlgebra(t *testing.T) {
	f, err := FromCoeffs([]float64{1}, []float64{1, 0}, "s") // 1/s
	require.NoError(t, err)
	g, err := FromCoeffs([]float64{1}, []float64{1, 1}, "s") // 1/(s+1)
	require.NoError(t, err)

	// 1/s + 1/(s+1) = (2s+1)/(s^2+s)
	num, den, err := f.Add(g).Coefficients()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, num)
	assert.Equal(t, []float64{1, 1, 0}, den)

	// commutativity
	num2, den2, err := g.Add(f).Coefficients()
	require.NoError(t, err)
	assert.Equal(t, num, num2)
	assert.Equal(t, den, den2)

	// (f*g)/g recovers f
	q, err := f.Mul(g).Div(g)
	require.NoError(t, err)
	num, den, err = q.Coefficients()
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, num)
	assert.Equal(t, []float64{1, 0}, den)

	// f - g == -(g - f)
	d1 := f.Sub(g)
	d2 := g.Sub(f).Neg()
	n1, dd1, _ := d1.Coefficients()
	n2, dd2, _ := d2.Coefficients()
	assert.Equal(t, n1, n2)
	assert.Equal(t, dd1, dd2)
}

func TestDivByZeroRatio(t *testing.T) {
	f, _ := FromCoeffs([]float64{1}, []float64{1, 0}, "s")
	zero, err := FromCoeffs([]float64{0}, []float64{1}, "s")
	require.NoError(t, err)
	_, err = f.Div(zero)
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestScalarOperands(t *testing.T) {
	f, _ := FromCoeffs([]float64{1}, []float64{1, 0}, "s")
	num, den, err := f.AddScalar(2).Coefficients()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, num)
	assert.Equal(t, []float64{1, 0}, den)

	num, den, err = f.MulScalar(3).Coefficients()
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, num)
	assert.Equal(t, []float64{1, 0}, den)
}

func TestRatioEvalAndString(t *testing.T) {
	f, _ := FromCoeffs([]float64{1}, []float64{1, 1}, "s") // 1/(s+1)
	got := f.Eval(complex(0, 1))
	assert.InDelta(t, 0.5, real(got), 1e-15)
	assert.InDelta(t, -0.5, imag(got), 1e-15)

	assert.Equal(t, "(1)/(s + 1)", f.String())

	c := FromScalar(2, "z")
	assert.Equal(t, "2", c.String())
}
