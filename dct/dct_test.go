package dct

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/dct-golden/block"
	"github.com/kpfaulkner/dct-golden/testcommon"
	"github.com/kpfaulkner/dct-golden/util"
)

const roundTripEpsilon = 1e-6

func TestForward1DMatchesFormula(t *testing.T) {
	x := [N]float64{1, 2, 3, 4, 5, 6, 7, 8}
	got := forward1D(x)

	for k := 0; k < N; k++ {
		want := 0.0
		for n := 0; n < N; n++ {
			want += x[n] * math.Cos(math.Pi*float64(k)*float64(2*n+1)/16.0)
		}
		want *= 2
		assert.InDelta(t, want, got[k], 1e-9, "X[%d]", k)
	}
	// DC of the unnormalized transform is twice the sum.
	assert.InDelta(t, 72.0, got[0], 1e-9)
}

func TestInverse1DScale(t *testing.T) {
	x := [N]float64{-3, 17, 0.5, 250, -128, 64, 1, 9}
	got := inverse1D(forward1D(x))
	for n := range x {
		assert.InDelta(t, 2*N*x[n], got[n], 1e-9)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 42, 1337, 99999} {
		b := testcommon.RandomFloatBlock(seed)

		coeffs, err := Forward2D(b)
		require.NoError(t, err)
		rec, err := Inverse2D(coeffs)
		require.NoError(t, err)

		if d := util.MaxAbsDiff(b, rec); d > roundTripEpsilon {
			t.Errorf("seed %d: round-trip max diff = %e, want < %e", seed, d, roundTripEpsilon)
		}
	}
}

func TestForwardDoesNotModifyInput(t *testing.T) {
	b := testcommon.RandomFloatBlock(7)
	orig := testcommon.RandomFloatBlock(7)

	_, err := Forward2D(b)
	require.NoError(t, err)
	assert.Equal(t, orig, b)
}

func TestDCIsolation(t *testing.T) {
	for _, c := range []float64{0, 128, 255, 37} {
		centered := testcommon.ConstantFloatBlock(c - 128)

		out, err := Forward2D(centered)
		require.NoError(t, err)

		assert.InDelta(t, 256*(c-128), out[0][0], 1e-9, "DC for constant %v", c)
		for y := 0; y < N; y++ {
			for x := 0; x < N; x++ {
				if y == 0 && x == 0 {
					continue
				}
				if math.Abs(out[y][x]) > 1e-9 {
					t.Errorf("constant %v: out[%d][%d] = %v, want ~0", c, y, x, out[y][x])
				}
			}
		}
	}
}

func TestEnergyConservation(t *testing.T) {
	for _, seed := range []int64{3, 11, 2024} {
		b := testcommon.RandomFloatBlock(seed)
		spatial := 0.0
		for _, row := range b {
			for _, v := range row {
				spatial += v * v
			}
		}

		coeffs, err := Forward2D(b)
		require.NoError(t, err)
		energy, err := WeightedEnergy(coeffs)
		require.NoError(t, err)

		assert.InEpsilon(t, spatial, energy, 1e-9)
	}
}

func TestEnergyCompaction(t *testing.T) {
	coeffs, err := Forward2D(testcommon.ConstantFloatBlock(50))
	require.NoError(t, err)

	dc, err := EnergyCompaction(coeffs, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dc, 1e-12)

	zero, err := EnergyCompaction(util.MakeMatrix2D[float64](N, N), 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)

	_, err = EnergyCompaction(coeffs, 0)
	assert.Error(t, err)
	_, err = EnergyCompaction(coeffs, 9)
	assert.Error(t, err)
}

func TestCheckerboardPeaksAtHighestFrequency(t *testing.T) {
	b := util.MakeMatrix2D[float64](N, N)
	for y := 0; y < N; y++ {
		for x := 0; x < N; x++ {
			b[y][x] = util.IfThenElse((x+y)%2 == 0, 255.0, 0.0) - 128
		}
	}

	out, err := Forward2D(b)
	require.NoError(t, err)

	maxY, maxX := 0, 0
	for y := 0; y < N; y++ {
		for x := 0; x < N; x++ {
			if math.Abs(out[y][x]) > math.Abs(out[maxY][maxX]) {
				maxY, maxX = y, x
			}
		}
	}
	assert.Equal(t, 7, maxY)
	assert.Equal(t, 7, maxX)
	assert.InDelta(t, -128.0, out[0][0], 1e-9)
}

func TestMatrixFormAgrees(t *testing.T) {
	b := testcommon.RandomFloatBlock(5)

	separable, err := Forward2D(b)
	require.NoError(t, err)
	matrix, err := Forward2DMatrix(b)
	require.NoError(t, err)

	assert.Less(t, util.MaxAbsDiff(separable, matrix), 1e-9)
}

func TestShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
	}{
		{"nil", nil},
		{"4x4", util.MakeMatrix2D[float64](4, 4)},
		{"8x7", util.MakeMatrix2D[float64](8, 7)},
		{"9x8", util.MakeMatrix2D[float64](9, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Forward2D(tt.in)
			assert.ErrorIs(t, err, block.ErrShape)
			_, err = Inverse2D(tt.in)
			assert.ErrorIs(t, err, block.ErrShape)
			_, err = Forward2DMatrix(tt.in)
			assert.ErrorIs(t, err, block.ErrShape)
			_, err = WeightedEnergy(tt.in)
			assert.ErrorIs(t, err, block.ErrShape)
		})
	}
}

func BenchmarkForwardDCT8x8(b *testing.B) {
	src := testcommon.RandomFloatBlock(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Forward2D(src)
	}
}

func BenchmarkInverseDCT8x8(b *testing.B) {
	src, _ := Forward2D(testcommon.RandomFloatBlock(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Inverse2D(src)
	}
}
