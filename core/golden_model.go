package core

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kpfaulkner/dct-golden/block"
	"github.com/kpfaulkner/dct-golden/dct"
	"github.com/kpfaulkner/dct-golden/fixedpoint"
	"github.com/kpfaulkner/dct-golden/pattern"
	"github.com/kpfaulkner/dct-golden/util"
)

// CenterOffset is subtracted from every pixel before the transform, matching
// the engine's signed input stage.
const CenterOffset = 128.0

// selfCheckTolerance bounds both the reconstruction error and the disagreement
// between the separable and matrix forms of the transform.
const selfCheckTolerance = 1e-6

var ErrSelfCheck = errors.New("core: transform self-check failed")

// GoldenCase is one input block and the coefficients the engine must produce
// for it.
type GoldenCase struct {
	Name     string
	Input    block.PixelBlock
	Expected block.CoefficientBlock
}

type GoldenModelOption func(g *GoldenModel) error

func WithSeed(seed uint64) GoldenModelOption {
	return func(g *GoldenModel) error {
		g.seed = seed
		return nil
	}
}

// WithOutputFormat sets the fixed-point format expected coefficients are
// saturated into. The default is fixedpoint.Coefficient16.
func WithOutputFormat(f fixedpoint.Format) GoldenModelOption {
	return func(g *GoldenModel) error {
		if err := f.Validate(); err != nil {
			return err
		}
		g.format = f
		return nil
	}
}

func WithWorkers(n int) GoldenModelOption {
	return func(g *GoldenModel) error {
		if n < 1 {
			return fmt.Errorf("core: workers must be at least 1, got %d", n)
		}
		g.workers = n
		return nil
	}
}

func WithLogger(l *log.Logger) GoldenModelOption {
	return func(g *GoldenModel) error {
		g.logger = l
		return nil
	}
}

// GoldenModel turns the pattern catalogue into golden cases: center, forward
// DCT, round and saturate.
type GoldenModel struct {
	seed    uint64
	format  fixedpoint.Format
	workers int
	logger  *log.Logger

	catalogue *pattern.Catalogue
}

func NewGoldenModel(opts ...GoldenModelOption) (*GoldenModel, error) {
	g := &GoldenModel{
		seed:    pattern.DefaultSeed,
		format:  fixedpoint.Coefficient16,
		workers: runtime.GOMAXPROCS(0),
		logger:  log.StandardLogger(),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.catalogue = pattern.NewCatalogue(g.seed)
	return g, nil
}

func (g *GoldenModel) Seed() uint64 {
	return g.seed
}

func (g *GoldenModel) Format() fixedpoint.Format {
	return g.format
}

// Generate builds a golden case for every catalogue pattern, in catalogue
// order. Cases are independent and computed concurrently.
func (g *GoldenModel) Generate(ctx context.Context) ([]GoldenCase, error) {
	patterns := g.catalogue.Patterns()
	cases := make([]GoldenCase, len(patterns))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, p := range patterns {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := g.GoldenCase(p)
			if err != nil {
				return err
			}
			cases[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g.logger.Debugf("generated %d golden cases (seed %d, output %s)", len(cases), g.seed, g.format)
	return cases, nil
}

// GoldenCase computes the golden case for a single pattern.
func (g *GoldenModel) GoldenCase(p pattern.NamedPattern) (GoldenCase, error) {
	centered := p.Block.Centered(CenterOffset)
	coeffs, err := dct.Forward2D(centered)
	if err != nil {
		return GoldenCase{}, fmt.Errorf("pattern %s: %w", p.Name, err)
	}

	if err := g.selfCheck(p.Name, centered, coeffs); err != nil {
		return GoldenCase{}, err
	}

	expected, err := fixedpoint.QuantizeBlock(coeffs, g.format)
	if err != nil {
		return GoldenCase{}, fmt.Errorf("pattern %s: %w", p.Name, err)
	}

	dcShare, err := dct.EnergyCompaction(coeffs, 1)
	if err != nil {
		return GoldenCase{}, fmt.Errorf("pattern %s: %w", p.Name, err)
	}
	g.logger.WithFields(log.Fields{
		"pattern":   p.Name,
		"dc":        expected.DC(),
		"min":       expected.Min(),
		"max":       expected.Max(),
		"dc_energy": fmt.Sprintf("%.1f%%", 100*dcShare),
	}).Debug("golden case")

	return GoldenCase{
		Name:     p.Name,
		Input:    p.Block,
		Expected: expected,
	}, nil
}

// selfCheck reconstructs the centered block from the unrounded coefficients
// and recomputes the forward transform in matrix form. A disagreement means
// the transform itself is broken and no vectors should be produced from it.
func (g *GoldenModel) selfCheck(name string, centered, coeffs [][]float64) error {
	rec, err := dct.Inverse2D(coeffs)
	if err != nil {
		return fmt.Errorf("pattern %s: %w", name, err)
	}
	d := util.MaxAbsDiff(centered, rec)
	g.logger.WithField("pattern", name).Debugf("reconstruction error %g", d)
	if d > selfCheckTolerance {
		return fmt.Errorf("%w: pattern %s reconstruction error %g", ErrSelfCheck, name, d)
	}

	matrix, err := dct.Forward2DMatrix(centered)
	if err != nil {
		return fmt.Errorf("pattern %s: %w", name, err)
	}
	if d := util.MaxAbsDiff(coeffs, matrix); d > selfCheckTolerance {
		return fmt.Errorf("%w: pattern %s separable and matrix forms differ by %g", ErrSelfCheck, name, d)
	}
	return nil
}
