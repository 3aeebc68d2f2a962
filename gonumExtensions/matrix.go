// Package gonumExtensions collects small matrix constructors and checks that
// gonum/mat does not provide directly.
package gonumExtensions

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Ones returns a (m by n) matrix filled with ones
func Ones(m, n int) mat.Matrix {
	return Full(m, n, 1.)
}

// Full returns a (m by n) matrix filled with value
func Full(m, n int, value float64) mat.Matrix {
	data := make([]float64, m*n)
	for index := range data {
		data[index] = value
	}
	return mat.NewDense(m, n, data)
}

// Eye returns a (m by n) matrix with ones on the k:th diagonal. k = 0 is the
// main diagonal, positive k moves above it and negative k below.
func Eye(m, n, k int) mat.Matrix {
	res := mat.NewDense(m, n, nil)
	for row := 0; row < m; row++ {
		col := row + k
		if col >= 0 && col < n {
			res.Set(row, col, 1)
		}
	}
	return res
}

// Kron returns the Kronecker product of a and b. For a of size (m by n) and
// b of size (p by q) the result has size (m*p by n*q). Block-diagonal
// replication of a system matrix over independent channels is
// Kron(Eye(c, c, 0), matrix).
func Kron(a, b mat.Matrix) *mat.Dense {
	ma, na := a.Dims()
	mb, nb := b.Dims()
	res := mat.NewDense(ma*mb, na*nb, nil)
	for i := 0; i < ma; i++ {
		for j := 0; j < na; j++ {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			for p := 0; p < mb; p++ {
				for q := 0; q < nb; q++ {
					res.Set(i*mb+p, j*nb+q, v*b.At(p, q))
				}
			}
		}
	}
	return res
}

// HasNaNOrInf reports whether any entry of matrix is NaN or infinite.
func HasNaNOrInf(matrix mat.Matrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			if math.IsNaN(matrix.At(row, col)) || math.IsInf(matrix.At(row, col), 0) {
				return true
			}
		}
	}
	return false
}
