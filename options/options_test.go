package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/dct-golden/compare"
	"github.com/kpfaulkner/dct-golden/core"
	"github.com/kpfaulkner/dct-golden/pattern"
)

func seed(v uint64) *uint64 {
	return &v
}

func TestNewGeneratorOptionsDefaults(t *testing.T) {
	opt := NewGeneratorOptions(nil)

	assert.Equal(t, "testbench", opt.OutputDir)
	assert.Equal(t, "tb_vectors.vh", opt.VerilogFilename)
	assert.Equal(t, "test_vectors.json", opt.JSONFilename)
	require.NotNil(t, opt.Seed)
	assert.Equal(t, pattern.DefaultSeed, *opt.Seed)
	assert.Zero(t, opt.Workers)
	assert.False(t, opt.Debug)
}

func TestNewGeneratorOptionsOverrides(t *testing.T) {
	opt := NewGeneratorOptions(&GeneratorOptions{
		OutputDir: "out",
		Seed:      seed(7),
		Workers:   2,
		Debug:     true,
	})

	assert.Equal(t, "out", opt.OutputDir)
	assert.Equal(t, "tb_vectors.vh", opt.VerilogFilename)
	assert.Equal(t, uint64(7), *opt.Seed)
	assert.Equal(t, 2, opt.Workers)
	assert.True(t, opt.Debug)
}

func TestNewGeneratorOptionsSeed(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   *GeneratorOptions
		want uint64
	}{
		{name: "partial struct keeps default", in: &GeneratorOptions{OutputDir: "out"}, want: pattern.DefaultSeed},
		{name: "explicit zero", in: &GeneratorOptions{Seed: seed(0)}, want: 0},
		{name: "explicit value", in: &GeneratorOptions{Seed: seed(1337)}, want: 1337},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opt := NewGeneratorOptions(tc.in)
			require.NotNil(t, opt.Seed)
			assert.Equal(t, tc.want, *opt.Seed)
		})
	}
}

func TestNewGeneratorOptionsCopiesSeed(t *testing.T) {
	in := seed(5)
	opt := NewGeneratorOptions(&GeneratorOptions{Seed: in})
	*in = 6
	assert.Equal(t, uint64(5), *opt.Seed)
}

func TestGoldenModelOptions(t *testing.T) {
	opt := NewGeneratorOptions(&GeneratorOptions{Seed: seed(9), Workers: 3})
	assert.Len(t, opt.GoldenModelOptions(), 2)
	assert.Len(t, NewGeneratorOptions(nil).GoldenModelOptions(), 1)

	g, err := core.NewGoldenModel(opt.GoldenModelOptions()...)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), g.Seed())

	g, err = core.NewGoldenModel(NewGeneratorOptions(&GeneratorOptions{OutputDir: "out"}).GoldenModelOptions()...)
	require.NoError(t, err)
	assert.Equal(t, pattern.DefaultSeed, g.Seed())

	assert.Len(t, opt.ExportOptions(), 2)
}

func TestNewVerifyOptions(t *testing.T) {
	def := NewVerifyOptions(nil)
	assert.Equal(t, float64(compare.DefaultTolerance), def.Tolerance)
	assert.Equal(t, pattern.DefaultSeed, *def.Seed)

	opt := NewVerifyOptions(&VerifyOptions{HardwareFile: "hw.json", Tolerance: 0, Seed: seed(0)})
	assert.Equal(t, "hw.json", opt.HardwareFile)
	assert.Zero(t, opt.Tolerance)
	assert.Equal(t, uint64(0), *opt.Seed)

	partial := NewVerifyOptions(&VerifyOptions{HardwareFile: "hw.json"})
	assert.Equal(t, pattern.DefaultSeed, *partial.Seed)

	neg := NewVerifyOptions(&VerifyOptions{Tolerance: -1})
	assert.Equal(t, float64(compare.DefaultTolerance), neg.Tolerance)
}
