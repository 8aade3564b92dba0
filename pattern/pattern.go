// Package pattern builds the fixed catalogue of named 8x8 input blocks used to
// exercise a DCT engine.
//
// Catalogue order is part of the exported contract: test vector files index
// cases by position, so entries are never reordered, only appended.
//
// The two random patterns come from math/rand/v2's PCG (PCG-DXSM with 128 bits
// of state) created as rand.NewPCG(seed, seed). Each sample is the top 8 bits
// of one Uint64 draw, filled row major; random_1 takes draws 0..63 and
// random_2 draws 64..127. The default seed is 42.
package pattern

import (
	"fmt"
	"math/rand/v2"

	"github.com/kpfaulkner/dct-golden/block"
)

const DefaultSeed uint64 = 42

const (
	DC128        = "dc_128"
	DC0          = "dc_0"
	DC255        = "dc_255"
	Impulse      = "impulse"
	Checkerboard = "checkerboard"
	GradientH    = "gradient_h"
	GradientV    = "gradient_v"
	Diagonal     = "diagonal"
	Ramp         = "ramp"
	Random1      = "random_1"
	Random2      = "random_2"
	AllZeros     = "all_zeros"
	AllMax       = "all_max"
)

var names = []string{
	DC128, DC0, DC255, Impulse, Checkerboard, GradientH, GradientV,
	Diagonal, Ramp, Random1, Random2, AllZeros, AllMax,
}

// NamedPattern is one catalogue entry; Name is its identity.
type NamedPattern struct {
	Name  string
	Block block.PixelBlock
}

// Catalogue produces the named patterns. It holds only the seed, so every call
// to Patterns builds identical blocks.
type Catalogue struct {
	seed uint64
}

func NewCatalogue(seed uint64) *Catalogue {
	return &Catalogue{seed: seed}
}

func (c *Catalogue) Seed() uint64 {
	return c.seed
}

// Names lists the pattern names in catalogue order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Patterns returns every pattern in catalogue order.
func (c *Catalogue) Patterns() []NamedPattern {
	rng := rand.NewPCG(c.seed, c.seed)
	random1 := randomBlock(rng)
	random2 := randomBlock(rng)

	byName := map[string]block.PixelBlock{
		DC128:        constant(128),
		DC0:          constant(0),
		DC255:        constant(255),
		Impulse:      impulse(),
		Checkerboard: checkerboard(),
		GradientH:    gradientH(),
		GradientV:    gradientV(),
		Diagonal:     diagonal(),
		Ramp:         ramp(),
		Random1:      random1,
		Random2:      random2,
		AllZeros:     constant(0),
		AllMax:       constant(255),
	}

	out := make([]NamedPattern, 0, len(names))
	for _, n := range names {
		out = append(out, NamedPattern{Name: n, Block: byName[n]})
	}
	return out
}

// Lookup returns the pattern with the given name.
func (c *Catalogue) Lookup(name string) (NamedPattern, error) {
	for _, p := range c.Patterns() {
		if p.Name == name {
			return p, nil
		}
	}
	return NamedPattern{}, fmt.Errorf("pattern: unknown pattern %q", name)
}

func constant(v int32) block.PixelBlock {
	var b block.PixelBlock
	for y := range b {
		for x := range b[y] {
			b[y][x] = v
		}
	}
	return b
}

func impulse() block.PixelBlock {
	var b block.PixelBlock
	b[0][0] = 255
	return b
}

func checkerboard() block.PixelBlock {
	var b block.PixelBlock
	for y := range b {
		for x := range b[y] {
			if (x+y)%2 == 0 {
				b[y][x] = 255
			}
		}
	}
	return b
}

// gradientH ramps 0, 32, ..., 224 along each row.
func gradientH() block.PixelBlock {
	var b block.PixelBlock
	for y := range b {
		for x := range b[y] {
			b[y][x] = int32(32 * x)
		}
	}
	return b
}

func gradientV() block.PixelBlock {
	var b block.PixelBlock
	for y := range b {
		for x := range b[y] {
			b[y][x] = int32(32 * y)
		}
	}
	return b
}

func diagonal() block.PixelBlock {
	var b block.PixelBlock
	for i := range b {
		b[i][i] = 255
	}
	return b
}

// ramp is 4*i for i in 0..63, row major.
func ramp() block.PixelBlock {
	var b block.PixelBlock
	for y := range b {
		for x := range b[y] {
			b[y][x] = int32(4 * (y*block.Size + x))
		}
	}
	return b
}

func randomBlock(rng *rand.PCG) block.PixelBlock {
	var b block.PixelBlock
	for y := range b {
		for x := range b[y] {
			b[y][x] = int32(rng.Uint64() >> 56)
		}
	}
	return b
}
