// Package dct implements the separable 8x8 DCT-II used by the golden model and
// its inverse.
//
// The 1D forward transform is the unnormalized DCT-II (scipy dct, type 2,
// norm=None):
//
//	X[k] = 2 * sum_{n=0}^{7} x[n] * cos(pi/8 * k * (n + 1/2))
//
// and the 1D inverse is the matching unnormalized DCT-III (scipy idct, type 2,
// norm=None):
//
//	x[n] = X[0] + 2 * sum_{k=1}^{7} X[k] * cos(pi/8 * k * (n + 1/2))
//
// Each 1D pair scales by 2N = 16, so a 2D forward followed by the 2D inverse
// scales by 256. Inverse2D divides that back out.
package dct

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kpfaulkner/dct-golden/block"
	"github.com/kpfaulkner/dct-golden/util"
)

const N = block.Size

// RoundTripScale is the factor Inverse2D(Forward2D(x)) would carry without the
// final division: (2N)^2.
const RoundTripScale = 4 * N * N

// cosTable[k][n] = cos(pi/N * k * (n + 0.5))
var cosTable = func() [N][N]float64 {
	var t [N][N]float64
	piOverN := math.Pi / float64(N)
	for k := range t {
		for n := range t[k] {
			t[k][n] = math.Cos(piOverN * float64(k) * (float64(n) + 0.5))
		}
	}
	return t
}()

func forward1D(x [N]float64) [N]float64 {
	var out [N]float64
	for k := 0; k < N; k++ {
		sum := 0.0
		for n := 0; n < N; n++ {
			sum += x[n] * cosTable[k][n]
		}
		out[k] = 2 * sum
	}
	return out
}

func inverse1D(X [N]float64) [N]float64 {
	var out [N]float64
	for n := 0; n < N; n++ {
		sum := 0.0
		for k := 1; k < N; k++ {
			sum += X[k] * cosTable[k][n]
		}
		out[n] = X[0] + 2*sum
	}
	return out
}

// Forward2D applies the 1D DCT-II to every row, then to every column of the
// row-transformed block. The input is not modified.
func Forward2D(b [][]float64) ([][]float64, error) {
	if err := block.CheckShape(b); err != nil {
		return nil, fmt.Errorf("forward dct: %w", err)
	}

	var rowOut [N][N]float64
	for y := 0; y < N; y++ {
		var row [N]float64
		copy(row[:], b[y])
		rowOut[y] = forward1D(row)
	}

	out := util.MakeMatrix2D[float64](N, N)
	for x := 0; x < N; x++ {
		var col [N]float64
		for y := 0; y < N; y++ {
			col[y] = rowOut[y][x]
		}
		transCol := forward1D(col)
		for y := 0; y < N; y++ {
			out[y][x] = transCol[y]
		}
	}
	return out, nil
}

// Inverse2D applies the 1D DCT-III to every column, then to every row, and
// divides by RoundTripScale so that Inverse2D(Forward2D(x)) == x.
func Inverse2D(coeffs [][]float64) ([][]float64, error) {
	if err := block.CheckShape(coeffs); err != nil {
		return nil, fmt.Errorf("inverse dct: %w", err)
	}

	var colOut [N][N]float64
	for x := 0; x < N; x++ {
		var col [N]float64
		for y := 0; y < N; y++ {
			col[y] = coeffs[y][x]
		}
		invCol := inverse1D(col)
		for y := 0; y < N; y++ {
			colOut[y][x] = invCol[y]
		}
	}

	out := util.MakeMatrix2D[float64](N, N)
	for y := 0; y < N; y++ {
		invRow := inverse1D(colOut[y])
		for x := 0; x < N; x++ {
			out[y][x] = invRow[x] / RoundTripScale
		}
	}
	return out, nil
}

// BasisMatrix returns the forward transform as an 8x8 matrix C with
// C[k][n] = 2*cos(pi/8 * k * (n + 1/2)), so that Forward2D(X) = C X C^T.
func BasisMatrix() *mat.Dense {
	c := mat.NewDense(N, N, nil)
	for k := 0; k < N; k++ {
		for n := 0; n < N; n++ {
			c.Set(k, n, 2*cosTable[k][n])
		}
	}
	return c
}

// Forward2DMatrix computes the same transform as Forward2D as the matrix
// product C X C^T. It takes a different summation order, which makes it useful
// for checking the separable implementation.
func Forward2DMatrix(b [][]float64) ([][]float64, error) {
	if err := block.CheckShape(b); err != nil {
		return nil, fmt.Errorf("forward dct: %w", err)
	}

	data := make([]float64, 0, N*N)
	for _, row := range b {
		data = append(data, row...)
	}
	x := mat.NewDense(N, N, data)
	c := BasisMatrix()

	var tmp, result mat.Dense
	tmp.Mul(c, x)
	result.Mul(&tmp, c.T())

	out := util.MakeMatrix2D[float64](N, N)
	for y := 0; y < N; y++ {
		mat.Row(out[y], y, &result)
	}
	return out, nil
}
