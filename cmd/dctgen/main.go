// dctgen regenerates the DCT 2D golden test vectors: a SystemVerilog include
// file and a JSON file with the same cases in the same order.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/dct-golden/core"
	"github.com/kpfaulkner/dct-golden/options"
	"github.com/kpfaulkner/dct-golden/pattern"
	"github.com/kpfaulkner/dct-golden/vectorformats"
)

var (
	outFlag        = flag.String("out", "", "directory in which to write the vector files (default \"testbench\")")
	seedFlag       = flag.Uint64("seed", pattern.DefaultSeed, "seed for the random_1 and random_2 patterns")
	workersFlag    = flag.Int("workers", 0, "number of patterns to transform concurrently, 0 for GOMAXPROCS")
	debugFlag      = flag.Bool("debug", false, "log every golden case")
	cpuProfileFlag = flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
)

func main() {
	flag.Parse()

	opts := options.NewGeneratorOptions(&options.GeneratorOptions{
		Debug:      *debugFlag,
		OutputDir:  *outFlag,
		Seed:       seedFlag,
		Workers:    *workersFlag,
		CPUProfile: *cpuProfileFlag,
	})
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatalf("dctgen: %v", err)
	}
}

func run(ctx context.Context, opts *options.GeneratorOptions) error {
	if opts.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	g, err := core.NewGoldenModel(append(opts.GoldenModelOptions(), core.WithLogger(log.StandardLogger()))...)
	if err != nil {
		return err
	}

	cases, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	log.Infof("generated %d test patterns (seed %d)", len(cases), g.Seed())
	for _, c := range cases {
		log.WithFields(log.Fields{
			"dc":  c.Expected.DC(),
			"min": c.Expected.Min(),
			"max": c.Expected.Max(),
		}).Infof("%-14s", c.Name)
	}

	if err := vectorformats.Export(opts.OutputDir, cases, opts.ExportOptions()...); err != nil {
		return err
	}
	log.Infof("wrote %s", filepath.Join(opts.OutputDir, opts.VerilogFilename))
	log.Infof("wrote %s", filepath.Join(opts.OutputDir, opts.JSONFilename))
	return nil
}
