package options

import (
	"github.com/kpfaulkner/dct-golden/compare"
	"github.com/kpfaulkner/dct-golden/core"
	"github.com/kpfaulkner/dct-golden/pattern"
	"github.com/kpfaulkner/dct-golden/vectorformats"
)

// GeneratorOptions configures a dctgen run.
type GeneratorOptions struct {
	Debug bool

	// OutputDir receives both vector files.
	OutputDir       string
	VerilogFilename string
	JSONFilename    string

	// Seed for the random patterns. nil means pattern.DefaultSeed; an explicit
	// 0 is a valid seed.
	Seed *uint64

	// Workers bounds concurrent golden case computation. 0 means GOMAXPROCS.
	Workers int

	// CPUProfile writes a CPU profile into the working directory.
	CPUProfile bool
}

// NewGeneratorOptions fills in defaults for anything options leaves empty. A
// nil options gives the defaults. The returned Seed is never nil.
func NewGeneratorOptions(options *GeneratorOptions) *GeneratorOptions {
	opt := &GeneratorOptions{
		OutputDir:       "testbench",
		VerilogFilename: vectorformats.DefaultVerilogFilename,
		JSONFilename:    vectorformats.DefaultJSONFilename,
		Seed:            defaultSeed(),
	}
	if options == nil {
		return opt
	}

	opt.Debug = options.Debug
	opt.Workers = options.Workers
	opt.CPUProfile = options.CPUProfile
	if options.Seed != nil {
		opt.Seed = copySeed(*options.Seed)
	}
	if options.OutputDir != "" {
		opt.OutputDir = options.OutputDir
	}
	if options.VerilogFilename != "" {
		opt.VerilogFilename = options.VerilogFilename
	}
	if options.JSONFilename != "" {
		opt.JSONFilename = options.JSONFilename
	}
	return opt
}

func (o *GeneratorOptions) GoldenModelOptions() []core.GoldenModelOption {
	opts := []core.GoldenModelOption{core.WithSeed(*o.Seed)}
	if o.Workers > 0 {
		opts = append(opts, core.WithWorkers(o.Workers))
	}
	return opts
}

func (o *GeneratorOptions) ExportOptions() []vectorformats.ExportOption {
	return []vectorformats.ExportOption{
		vectorformats.WithVerilogFilename(o.VerilogFilename),
		vectorformats.WithJSONFilename(o.JSONFilename),
	}
}

// VerifyOptions configures a dctverify run.
type VerifyOptions struct {
	Debug bool

	// GoldenFile is a test vector JSON file. Empty means regenerate the
	// golden cases in memory with Seed.
	GoldenFile   string
	HardwareFile string

	// Seed is only used when regenerating. nil means pattern.DefaultSeed.
	Seed *uint64

	// Tolerance below 0 means compare.DefaultTolerance.
	Tolerance float64
}

// NewVerifyOptions fills in defaults like NewGeneratorOptions. The returned
// Seed is never nil.
func NewVerifyOptions(options *VerifyOptions) *VerifyOptions {
	opt := &VerifyOptions{
		Seed:      defaultSeed(),
		Tolerance: compare.DefaultTolerance,
	}
	if options == nil {
		return opt
	}

	opt.Debug = options.Debug
	opt.GoldenFile = options.GoldenFile
	opt.HardwareFile = options.HardwareFile
	if options.Seed != nil {
		opt.Seed = copySeed(*options.Seed)
	}
	if options.Tolerance >= 0 {
		opt.Tolerance = options.Tolerance
	}
	return opt
}

func defaultSeed() *uint64 {
	return copySeed(pattern.DefaultSeed)
}

func copySeed(seed uint64) *uint64 {
	return &seed
}
