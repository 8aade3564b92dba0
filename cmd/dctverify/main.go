// dctverify compares DCT results captured from the hardware against the golden
// vectors and exits non-zero if any case is out of tolerance.
//
// The hardware file uses the test_vectors.json layout with the engine's output
// in expected_output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/dct-golden/compare"
	"github.com/kpfaulkner/dct-golden/core"
	"github.com/kpfaulkner/dct-golden/options"
	"github.com/kpfaulkner/dct-golden/pattern"
	"github.com/kpfaulkner/dct-golden/vectorformats"
)

const (
	exitPassed = 0
	exitFailed = 1
	exitError  = 2
)

var (
	goldenFlag    = flag.String("golden", "", "golden test_vectors.json; leave empty to regenerate the golden cases")
	hardwareFlag  = flag.String("hardware", "", "hardware results `file` (required)")
	toleranceFlag = flag.Float64("tolerance", compare.DefaultTolerance, "largest allowed absolute error per coefficient")
	seedFlag      = flag.Uint64("seed", pattern.DefaultSeed, "seed used when regenerating the golden cases")
	debugFlag     = flag.Bool("debug", false, "list every mismatching coefficient")
)

func main() {
	flag.Parse()

	opts := options.NewVerifyOptions(&options.VerifyOptions{
		Debug:        *debugFlag,
		GoldenFile:   *goldenFlag,
		HardwareFile: *hardwareFlag,
		Seed:         seedFlag,
		Tolerance:    *toleranceFlag,
	})
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if opts.HardwareFile == "" {
		fmt.Fprintln(os.Stderr, "dctverify: -hardware is required")
		flag.Usage()
		os.Exit(exitError)
	}

	os.Exit(run(context.Background(), opts))
}

// run verifies and maps the outcome to the process exit code.
func run(ctx context.Context, opts *options.VerifyOptions) int {
	result, err := verify(ctx, opts)
	if err != nil {
		log.Errorf("dctverify: %v", err)
		return exitError
	}

	log.Infof("passed %d/%d", result.Passed, result.Passed+result.Failed)
	if !result.AllPassed() {
		return exitFailed
	}
	return exitPassed
}

func verify(ctx context.Context, opts *options.VerifyOptions) (compare.SuiteResult, error) {
	golden, err := loadGolden(ctx, opts)
	if err != nil {
		return compare.SuiteResult{}, err
	}
	hardware, err := readCases(opts.HardwareFile)
	if err != nil {
		return compare.SuiteResult{}, err
	}

	result, err := compare.CompareCases(hardware, golden, opts.Tolerance)
	if err != nil {
		return compare.SuiteResult{}, err
	}

	for _, c := range result.Cases {
		entry := log.WithFields(log.Fields{
			"max_error": c.Report.MaxError,
			"mse":       c.Report.MSE,
			"rmse":      c.Report.RMSE,
		})
		if c.Report.Passed {
			entry.Infof("test %d %s: PASSED", c.Index, c.Name)
			continue
		}
		entry.Warnf("test %d %s: FAILED", c.Index, c.Name)
		for _, m := range c.Report.Mismatches {
			log.Debugf("  mismatch at [%d][%d]: HW=%d SW=%d error=%g", m.Row, m.Col, m.Hardware, m.Golden, m.Error)
		}
	}
	return result, nil
}

func loadGolden(ctx context.Context, opts *options.VerifyOptions) ([]core.GoldenCase, error) {
	if opts.GoldenFile != "" {
		return readCases(opts.GoldenFile)
	}
	g, err := core.NewGoldenModel(core.WithSeed(*opts.Seed))
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx)
}

func readCases(path string) ([]core.GoldenCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cases, err := vectorformats.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}
