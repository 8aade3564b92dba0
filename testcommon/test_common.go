package testcommon

import (
	"bytes"
	"math/rand"
	"os"
	"testing"

	"github.com/kpfaulkner/dct-golden/block"
	"github.com/kpfaulkner/dct-golden/util"
)

// RandomFloatBlock returns an 8x8 block of values in [-256, 256) drawn from a
// generator seeded with seed.
func RandomFloatBlock(seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	b := util.MakeMatrix2D[float64](block.Size, block.Size)
	for y := range b {
		for x := range b[y] {
			b[y][x] = rng.Float64()*512.0 - 256.0
		}
	}
	return b
}

// ConstantFloatBlock returns an 8x8 block with every element set to v.
func ConstantFloatBlock(v float64) [][]float64 {
	b := util.MakeMatrix2D[float64](block.Size, block.Size)
	for y := range b {
		for x := range b[y] {
			b[y][x] = v
		}
	}
	return b
}

// ReadFile reads a file the test needs, failing the test if it can't.
func ReadFile(t *testing.T, filepath string) *bytes.Reader {
	t.Helper()
	data, err := os.ReadFile(filepath)
	if err != nil {
		t.Fatalf("error reading test file %s : %v", filepath, err)
		return nil
	}
	return bytes.NewReader(data)
}
