package models

import (
	"gonum.org/v1/gonum/mat"

	"github.com/quantrisk/portfolio-stress/simtypes"
)

const choleskyJitter = 1e-6

// lowerCholesky factorizes cov (row-major, symmetric) into its lower
// Cholesky factor. If cov is not positive definite, it retries once
// after adding choleskyJitter to the diagonal (spec.md §4.1.2 / §4.1.3).
// If the retry also fails, it returns a NumericalFailureError carrying
// the smallest eigenvalue of the original matrix for diagnosis
// (spec.md §7).
func lowerCholesky(op string, cov [][]float64) ([][]float64, error) {
	n := len(cov)
	if n == 0 {
		return nil, nil
	}

	L, ok := tryCholesky(cov)
	if !ok {
		jittered := make([][]float64, n)
		for i := range cov {
			jittered[i] = append([]float64(nil), cov[i]...)
			jittered[i][i] += choleskyJitter
		}
		L, ok = tryCholesky(jittered)
	}
	if !ok {
		return nil, &simtypes.NumericalFailureError{
			Op:                 op,
			SmallestEigenvalue: smallestEigenvalue(cov),
		}
	}
	return L, nil
}

func tryCholesky(cov [][]float64) ([][]float64, bool) {
	n := len(cov)
	data := make([]float64, n*n)
	for i, row := range cov {
		copy(data[i*n:(i+1)*n], row)
	}
	sym := mat.NewSymDense(n, data)

	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, false
	}

	var lt mat.TriDense
	chol.LTo(&lt)

	L := make([][]float64, n)
	for i := 0; i < n; i++ {
		L[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			L[i][j] = lt.At(i, j)
		}
	}
	return L, true
}

func smallestEigenvalue(cov [][]float64) float64 {
	n := len(cov)
	data := make([]float64, n*n)
	for i, row := range cov {
		copy(data[i*n:(i+1)*n], row)
	}
	sym := mat.NewSymDense(n, data)

	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return 0
	}
	values := eig.Values(nil)
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// matVec computes L . z for a lower-triangular L and vector z.
func matVec(L [][]float64, z []float64) []float64 {
	n := len(L)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j <= i; j++ {
			sum += L[i][j] * z[j]
		}
		out[i] = sum
	}
	return out
}
