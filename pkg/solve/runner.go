// Package solve runs searches over problem definitions with caching.
//
// The search package is generic over state, action and cost types; solve
// erases those types so the CLI and the HTTP API can work with any
// [definition.Definition] and get back a uniform [Report].
//
// # Usage
//
//	runner := solve.NewRunner(cache, nil, logger)
//	report, cached, err := runner.Solve(ctx, def, solve.Options{Strategy: "astar"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report)
//
// Compare runs every strategy on the same definition:
//
//	reports, err := runner.Compare(ctx, def, solve.Options{})
//
// # Errors
//
// A search that runs to completion without reaching a goal is not an error;
// the report has Found set to false. Errors are returned for invalid options,
// for searches stopped by a deadline (code TIMEOUT) or cancellation (code
// CANCELLED), and for problems that break the search contract (code
// INTERNAL_ERROR).
package solve

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wayfinder/pkg/cache"
	"github.com/matzehuels/wayfinder/pkg/definition"
	"github.com/matzehuels/wayfinder/pkg/errors"
	"github.com/matzehuels/wayfinder/pkg/observability"
	"github.com/matzehuels/wayfinder/pkg/search"
)

var tracer = otel.Tracer("wayfinder/solve")

// Runner executes solves with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner; every solve builds its own
// explorer.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL of cached reports; zero means cache.ReportTTL.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The cache is wrapped so that lookups emit observability hooks.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  cache.Instrument(c),
		Keyer:  keyer,
		Logger: logger,
	}
}

// Solve searches def with opts. The boolean reports whether the report came
// from the cache.
func (r *Runner) Solve(ctx context.Context, def *definition.Definition, opts Options) (*Report, bool, error) {
	if def == nil {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "definition is required")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, false, err
	}

	ctx, span := tracer.Start(ctx, "solve.Solve", trace.WithAttributes(
		attribute.String("problem.name", def.Name),
		attribute.String("problem.kind", string(def.Kind)),
		attribute.String("search.strategy", opts.Strategy),
		attribute.String("search.mode", opts.Mode().String()),
	))
	defer span.End()

	start := time.Now()
	observability.Solve().OnSolveStart(ctx, def.Name, opts.Strategy)

	rep, hit, err := r.solve(ctx, def, &opts)

	found := rep != nil && rep.Found
	observability.Solve().OnSolveComplete(ctx, def.Name, opts.Strategy, found, time.Since(start), err)
	span.SetAttributes(attribute.Bool("search.found", found), attribute.Bool("cache.hit", hit))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, errors.UserMessage(err))
		return nil, false, err
	}
	span.SetAttributes(
		attribute.Int("search.iterations", rep.Iterations),
		attribute.Int("search.generated", rep.Generated),
	)
	return rep, hit, nil
}

func (r *Runner) solve(ctx context.Context, def *definition.Definition, opts *Options) (*Report, bool, error) {
	key := r.Keyer.ReportKey(def.Hash(), opts.ReportKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var rep Report
			if err := json.Unmarshal(data, &rep); err == nil {
				rep.Problem = def.Name
				rep.Cached = true
				opts.Logger.Debug("report from cache", "problem", def.Name, "strategy", opts.Strategy)
				return &rep, true, nil
			}
			// Undecodable entry, fall through and recompute
		}
	}

	inst, err := newInstance(def)
	if err != nil {
		return nil, false, err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	rep, err := run(ctx, inst, opts)
	if err != nil {
		return nil, false, err
	}
	rep.Problem = def.Name
	rep.Kind = string(def.Kind)

	if rep.Truncated && ctx.Err() != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, false, &errors.TimeoutError{Limit: opts.Timeout, Iterations: rep.Iterations}
		}
		return nil, false, errors.Wrap(errors.ErrCodeCancelled, ctx.Err(), "search cancelled after %d iterations", rep.Iterations)
	}

	opts.Logger.Info("solved",
		"problem", def.Name,
		"strategy", rep.Strategy,
		"found", rep.Found,
		"cost", rep.Cost,
		"iterations", rep.Iterations,
		"duration", rep.Elapsed)

	if data, err := json.Marshal(rep); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.reportTTL()); err != nil {
			opts.Logger.Warn("cache write failed", "error", err)
		}
	}
	return &rep, false, nil
}

// run executes inst and turns a contract violation raised by a misbehaving
// problem into an INTERNAL_ERROR. Any other panic is re-raised.
func run(ctx context.Context, inst runnable, opts *Options) (rep Report, err error) {
	defer func() {
		if p := recover(); p != nil {
			ce, ok := p.(*search.ContractError)
			if !ok {
				panic(p)
			}
			err = errors.Wrap(errors.ErrCodeInternal, ce, "search aborted")
		}
	}()
	return inst.run(ctx, opts), nil
}

// Compare solves def once per strategy, in parallel, and returns the
// reports in [search.Strategies] order. opts.Strategy is ignored.
func (r *Runner) Compare(ctx context.Context, def *definition.Definition, opts Options) ([]*Report, error) {
	strategies := search.Strategies()
	reports := make([]*Report, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range strategies {
		o := opts
		o.Strategy = s.String()
		o.validated = false
		g.Go(func() error {
			rep, _, err := r.Solve(gctx, def, o)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) reportTTL() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.ReportTTL
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
