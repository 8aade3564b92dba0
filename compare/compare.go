// Package compare checks a hardware-produced coefficient block against the
// golden one.
package compare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kpfaulkner/dct-golden/block"
)

// DefaultTolerance is the largest per-coefficient error, in LSBs, a 16 bit
// engine is expected to stay within.
const DefaultTolerance = 100

// Mismatch is a single coefficient whose error exceeds the tolerance.
type Mismatch struct {
	Row, Col int
	Hardware int32
	Golden   int32
	Error    float64
}

// Report holds the error statistics of one comparison. A failed comparison is
// Passed == false, never an error.
type Report struct {
	Passed   bool
	MaxError float64
	MSE      float64
	RMSE     float64

	Mismatches []Mismatch
}

func (r Report) String() string {
	verdict := "PASSED"
	if !r.Passed {
		verdict = "FAILED"
	}
	return fmt.Sprintf("%s max_error=%g mse=%g rmse=%g mismatches=%d", verdict, r.MaxError, r.MSE, r.RMSE, len(r.Mismatches))
}

// Compare computes the elementwise error between hardware and golden.
func Compare(hardware, golden block.CoefficientBlock, tolerance float64) Report {
	hw := toFloats(hardware.Flatten())
	gold := toFloats(golden.Flatten())

	maxErr := floats.Distance(hw, gold, math.Inf(1))
	l2 := floats.Distance(hw, gold, 2)
	mse := l2 * l2 / float64(len(hw))

	r := Report{
		Passed:   maxErr <= tolerance,
		MaxError: maxErr,
		MSE:      mse,
		RMSE:     math.Sqrt(mse),
	}
	for y := 0; y < block.Size; y++ {
		for x := 0; x < block.Size; x++ {
			e := math.Abs(float64(hardware[y][x]) - float64(golden[y][x]))
			if e > tolerance {
				r.Mismatches = append(r.Mismatches, Mismatch{
					Row:      y,
					Col:      x,
					Hardware: hardware[y][x],
					Golden:   golden[y][x],
					Error:    e,
				})
			}
		}
	}
	return r
}

// CompareRows is Compare for blocks held as [][]int32, e.g. decoded from a
// result file. Anything other than 8x8 is a block.ErrShape error.
func CompareRows(hardware, golden [][]int32, tolerance float64) (Report, error) {
	hw, err := block.CoefficientBlockFromRows(hardware)
	if err != nil {
		return Report{}, fmt.Errorf("hardware: %w", err)
	}
	gold, err := block.CoefficientBlockFromRows(golden)
	if err != nil {
		return Report{}, fmt.Errorf("golden: %w", err)
	}
	return Compare(hw, gold, tolerance), nil
}

func toFloats(v []int32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
