// Package convert drives a whole save through the brick assembler.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/blsconv/internal/assemble"
	"github.com/Faultbox/blsconv/internal/brick"
	"github.com/Faultbox/blsconv/internal/metrics"
	"github.com/Faultbox/blsconv/internal/scene"
	"github.com/Faultbox/blsconv/internal/special"
)

// Counts tallies bricks by how they were converted.
type Counts struct {
	Regular    int
	Ramp       int
	RampCorner int
	Special    int
	Unknown    int
}

// Result is the outcome of a conversion run.
type Result struct {
	Nodes   []*scene.Node // Top-level nodes in save order
	Unknown []string      // Distinct unconvertible brick names, sorted
	Bricks  int           // Records read
	Counts  Counts
}

// Options configures a Converter.
type Options struct {
	Scale   float32
	Workers int // Values above 1 assemble bricks concurrently
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	Cache   *special.Cache
}

// Converter turns a stream of records into scene nodes.
type Converter struct {
	builder *assemble.Builder
	cache   *special.Cache
	workers int
	log     *zap.Logger
	metrics *metrics.Metrics
}

// New creates a converter for a save with the given palette.
func New(palette brick.Palette, opts Options) *Converter {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Cache == nil {
		opts.Cache = special.NewCache()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Converter{
		builder: assemble.NewBuilder(opts.Scale, palette, opts.Cache),
		cache:   opts.Cache,
		workers: opts.Workers,
		log:     opts.Logger,
		metrics: opts.Metrics,
	}
}

// brickResult is the assembly of one record.
type brickResult struct {
	name string
	out  assemble.Output
	err  error
}

// Run converts every record of src. Unknown bricks are collected in the
// result; malformed bricks and read errors abort the run.
func (c *Converter) Run(ctx context.Context, src Source) (*Result, error) {
	start := time.Now()
	before := c.cache.Stats()

	var (
		res *Result
		err error
	)
	if c.workers > 1 {
		res, err = c.runParallel(ctx, src)
	} else {
		res, err = c.runSequential(ctx, src)
	}
	if err != nil {
		return nil, err
	}

	after := c.cache.Stats()
	c.metrics.Cache(after.Hits-before.Hits, after.Misses-before.Misses)
	c.metrics.Observe(time.Since(start))

	c.log.Info("conversion finished",
		zap.Int("bricks", res.Bricks),
		zap.Int("nodes", len(res.Nodes)),
		zap.Int("unknown_types", len(res.Unknown)),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func (c *Converter) runSequential(ctx context.Context, src Source) (*Result, error) {
	acc := newAccumulator(c, sizeOf(src))
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading brick %d: %w", i+1, err)
		}
		if err := acc.add(c.assemble(r)); err != nil {
			return nil, err
		}
	}
	return acc.result(), nil
}

func (c *Converter) runParallel(ctx context.Context, src Source) (*Result, error) {
	var records []brick.Record
	for {
		r, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading brick %d: %w", len(records)+1, err)
		}
		records = append(records, r)
	}

	results := make([]brickResult, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := range records {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.assemble(records[i])
			if err := results[i].err; errors.Is(err, brick.ErrMalformedBrick) {
				c.metrics.Brick(metrics.OutcomeMalformed, 0)
				return fmt.Errorf("brick %d: %w", i+1, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acc := newAccumulator(c, len(records))
	for _, br := range results {
		if err := acc.add(br); err != nil {
			return nil, err
		}
	}
	return acc.result(), nil
}

func (c *Converter) assemble(r brick.Record) brickResult {
	out, err := c.builder.Assemble(r)
	return brickResult{name: r.Name, out: out, err: err}
}

func sizeOf(src Source) int {
	if s, ok := src.(Sizer); ok {
		return s.Len()
	}
	return 0
}

// accumulator gathers per-brick results in order.
type accumulator struct {
	c       *Converter
	res     *Result
	unknown map[string]struct{}
	total   int
	decile  int
}

func newAccumulator(c *Converter, total int) *accumulator {
	return &accumulator{
		c:       c,
		res:     &Result{},
		unknown: make(map[string]struct{}),
		total:   total,
	}
}

func (a *accumulator) add(br brickResult) error {
	a.res.Bricks++
	switch {
	case errors.Is(br.err, assemble.ErrUnknownBrick):
		a.res.Counts.Unknown++
		a.unknown[br.name] = struct{}{}
		a.c.metrics.Brick(metrics.OutcomeUnknown, 0)
		a.c.log.Debug("unknown brick type", zap.String("name", br.name))
	case br.err != nil:
		a.c.metrics.Brick(metrics.OutcomeMalformed, 0)
		return fmt.Errorf("brick %d: %w", a.res.Bricks, br.err)
	default:
		a.count(br.out)
		a.res.Nodes = append(a.res.Nodes, br.out.Nodes...)
	}
	a.progress()
	return nil
}

func (a *accumulator) count(out assemble.Output) {
	outcome := metrics.OutcomeConverted
	switch {
	case out.Special != 0:
		a.res.Counts.Special++
		outcome = metrics.OutcomeSpecial
	case out.Kind == brick.Regular:
		a.res.Counts.Regular++
	case out.Kind == brick.Ramp:
		a.res.Counts.Ramp++
	case out.Kind == brick.RampCorner:
		a.res.Counts.RampCorner++
	}
	a.c.metrics.Brick(outcome, len(out.Nodes))
}

// progress logs each time another tenth of the declared count is done.
func (a *accumulator) progress() {
	if a.total <= 0 {
		return
	}
	decile := a.res.Bricks * 10 / a.total
	if decile <= a.decile || decile > 10 {
		return
	}
	a.decile = decile
	a.c.log.Info("bricks processed",
		zap.Int("count", a.res.Bricks),
		zap.Int("percent", decile*10))
}

func (a *accumulator) result() *Result {
	for name := range a.unknown {
		a.res.Unknown = append(a.res.Unknown, name)
	}
	sort.Strings(a.res.Unknown)
	return a.res
}
