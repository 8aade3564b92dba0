package dct

import (
	"fmt"

	"github.com/kpfaulkner/dct-golden/block"
	"github.com/kpfaulkner/dct-golden/util"
)

// weight is the Parseval weight of frequency index k for this DCT convention.
func weight(k int) float64 {
	return util.IfThenElse(k == 0, 0.5, 1.0)
}

// WeightedEnergy returns sum w(k) w(l) X[k][l]^2 / RoundTripScale with
// w(0) = 1/2 and w(k) = 1 otherwise. For coefficients produced by Forward2D this
// equals the energy (sum of squares) of the spatial block.
func WeightedEnergy(coeffs [][]float64) (float64, error) {
	return cornerEnergy(coeffs, N)
}

// EnergyCompaction returns the share of the weighted energy held by the
// top-left n x n low-frequency corner. n = 1 gives the DC share. An all-zero
// block has no energy to distribute and reports 0.
func EnergyCompaction(coeffs [][]float64, n int) (float64, error) {
	if n < 1 || n > N {
		return 0, fmt.Errorf("energy compaction: corner size %d out of range 1..%d", n, N)
	}
	total, err := cornerEnergy(coeffs, N)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	corner, err := cornerEnergy(coeffs, n)
	if err != nil {
		return 0, err
	}
	return corner / total, nil
}

func cornerEnergy(coeffs [][]float64, n int) (float64, error) {
	if err := block.CheckShape(coeffs); err != nil {
		return 0, fmt.Errorf("energy: %w", err)
	}
	sum := 0.0
	for k := 0; k < n; k++ {
		for l := 0; l < n; l++ {
			v := coeffs[k][l]
			sum += weight(k) * weight(l) * v * v
		}
	}
	return sum / RoundTripScale, nil
}
