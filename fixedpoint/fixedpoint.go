// Package fixedpoint converts real values into the saturating fixed-point
// integers a hardware datapath produces.
package fixedpoint

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/kpfaulkner/dct-golden/block"
	"github.com/kpfaulkner/dct-golden/util"
)

// maxWidth keeps every representable value exact in both int64 and float64
// comparisons.
const maxWidth = 62

var ErrFormat = errors.New("fixedpoint: invalid format")

// Format describes a fixed-point representation with IntegerBits integer bits
// (including the sign bit when Signed) and FractionBits fractional bits.
type Format struct {
	IntegerBits  int
	FractionBits int
	Signed       bool
}

var (
	// Q1_14 is the cosine coefficient format of the hardware datapath.
	Q1_14 = Format{IntegerBits: 1, FractionBits: 14, Signed: true}
	// Coefficient16 is the plain signed 16 bit integer the engine emits per
	// coefficient.
	Coefficient16 = Format{IntegerBits: 16, FractionBits: 0, Signed: true}
)

func (f Format) Width() int {
	return f.IntegerBits + f.FractionBits
}

func (f Format) Validate() error {
	if f.IntegerBits < 0 || f.FractionBits < 0 {
		return fmt.Errorf("%w: negative bit count in %s", ErrFormat, f)
	}
	if w := f.Width(); w < 1 || w > maxWidth {
		return fmt.Errorf("%w: width %d outside 1..%d", ErrFormat, w, maxWidth)
	}
	return nil
}

// Min is the lowest representable raw integer.
func (f Format) Min() int64 {
	if !f.Signed {
		return 0
	}
	return -(int64(1) << (f.Width() - 1))
}

// Max is the highest representable raw integer.
func (f Format) Max() int64 {
	if !f.Signed {
		return int64(1)<<f.Width() - 1
	}
	return int64(1)<<(f.Width()-1) - 1
}

func (f Format) String() string {
	if f.Signed {
		return fmt.Sprintf("Q%d.%d", f.IntegerBits, f.FractionBits)
	}
	return fmt.Sprintf("UQ%d.%d", f.IntegerBits, f.FractionBits)
}

// Quantize scales v by 2^FractionBits, rounds half away from zero and
// saturates to [f.Min(), f.Max()]. Saturation is silent. NaN maps to 0.
func Quantize[T constraints.Float](v T, f Format) int64 {
	x := float64(v)
	if math.IsNaN(x) {
		return 0
	}
	lo, hi := f.Min(), f.Max()
	// float64(hi) may round up past hi for wide formats, so clamp again as int64.
	r := util.Clamp(util.RoundHalfAwayFromZero(math.Ldexp(x, f.FractionBits)), float64(lo), float64(hi))
	return util.Clamp(int64(r), lo, hi)
}

// Dequantize converts a raw integer back into the value it represents.
func Dequantize[T constraints.Float](q int64, f Format) T {
	return T(math.Ldexp(float64(q), -f.FractionBits))
}

// QuantizeBlock quantizes each element of an 8x8 block. The format must fit the
// 32 bit storage of a CoefficientBlock.
func QuantizeBlock(coeffs [][]float64, f Format) (block.CoefficientBlock, error) {
	var out block.CoefficientBlock
	if err := f.Validate(); err != nil {
		return out, err
	}
	if f.Width() > 32 || (!f.Signed && f.Width() > 31) {
		return out, fmt.Errorf("%w: %s does not fit a 32 bit coefficient", ErrFormat, f)
	}
	if err := block.CheckShape(coeffs); err != nil {
		return out, fmt.Errorf("quantize: %w", err)
	}
	for y := range out {
		for x := range out[y] {
			out[y][x] = int32(Quantize(coeffs[y][x], f))
		}
	}
	return out, nil
}
