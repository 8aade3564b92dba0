// Package block holds the 8x8 sample grids shared by the transform, the golden
// model, the comparator and the exporters.
package block

import (
	"errors"
	"fmt"

	"github.com/kpfaulkner/dct-golden/util"
)

// Size is the row and column count of every block. Nothing in this module is
// generic over block size.
const Size = 8

// ErrShape is returned whenever a matrix that should be 8x8 is not.
var ErrShape = errors.New("block: shape must be 8x8")

// PixelBlock is an 8x8 grid of input pixels, row major. Pixels are nominally
// 0..255; int32 leaves room for centering.
type PixelBlock [Size][Size]int32

// CoefficientBlock is an 8x8 grid of DCT coefficients after quantization,
// nominally within a signed 16 bit range.
type CoefficientBlock [Size][Size]int32

// ShapeError wraps ErrShape with the shape actually received.
func ShapeError[T any](m [][]T) error {
	if len(m) != Size {
		return fmt.Errorf("%w: got %d rows", ErrShape, len(m))
	}
	for i, r := range m {
		if len(r) != Size {
			return fmt.Errorf("%w: row %d has %d columns", ErrShape, i, len(r))
		}
	}
	return nil
}

// CheckShape returns nil if m is exactly 8x8 and a wrapped ErrShape otherwise.
func CheckShape[T any](m [][]T) error {
	if util.IsRectangular(m, Size, Size) {
		return nil
	}
	return ShapeError(m)
}

func PixelBlockFromRows(rows [][]int32) (PixelBlock, error) {
	var b PixelBlock
	if err := CheckShape(rows); err != nil {
		return b, err
	}
	for y := range b {
		copy(b[y][:], rows[y])
	}
	return b, nil
}

func CoefficientBlockFromRows(rows [][]int32) (CoefficientBlock, error) {
	var b CoefficientBlock
	if err := CheckShape(rows); err != nil {
		return b, err
	}
	for y := range b {
		copy(b[y][:], rows[y])
	}
	return b, nil
}

// Rows copies the block into a freshly allocated [][]int32.
func (b PixelBlock) Rows() [][]int32 {
	return rows(b)
}

func (b PixelBlock) Flatten() []int32 {
	return flatten(b)
}

// Centered returns the block with offset subtracted from every sample, as
// floats ready for the transform.
func (b PixelBlock) Centered(offset float64) [][]float64 {
	out := util.MakeMatrix2D[float64](Size, Size)
	for y := range b {
		for x, v := range b[y] {
			out[y][x] = float64(v) - offset
		}
	}
	return out
}

func (b CoefficientBlock) Rows() [][]int32 {
	return rows(b)
}

func (b CoefficientBlock) Flatten() []int32 {
	return flatten(b)
}

// Float returns the coefficients as a [][]float64.
func (b CoefficientBlock) Float() [][]float64 {
	out := util.MakeMatrix2D[float64](Size, Size)
	for y := range b {
		for x, v := range b[y] {
			out[y][x] = float64(v)
		}
	}
	return out
}

// DC is the (0,0) coefficient.
func (b CoefficientBlock) DC() int32 {
	return b[0][0]
}

func (b CoefficientBlock) Min() int32 {
	return util.Min(flatten(b)...)
}

func (b CoefficientBlock) Max() int32 {
	return util.Max(flatten(b)...)
}

func rows(b [Size][Size]int32) [][]int32 {
	out := util.MakeMatrix2D[int32](Size, Size)
	for y := range b {
		copy(out[y], b[y][:])
	}
	return out
}

func flatten(b [Size][Size]int32) []int32 {
	out := make([]int32, 0, Size*Size)
	for y := range b {
		out = append(out, b[y][:]...)
	}
	return out
}
