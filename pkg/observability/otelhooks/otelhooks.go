// Package otelhooks implements the observability hooks with OpenTelemetry
// metric instruments.
//
// Instruments are registered lazily against the global meter provider, so
// the process that installs a provider (otel.SetMeterProvider) before the
// first event decides where the measurements go. Without one, the global
// no-op provider discards them.
//
//	h := otelhooks.New()
//	observability.SetSearchHooks(h)
//	observability.SetCacheHooks(h)
package otelhooks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/matzehuels/wayfinder/pkg/observability"
)

const instrumentationName = "wayfinder"

var meter = otel.Meter(instrumentationName)

var (
	episodeTotal    metric.Int64Counter
	episodeDuration metric.Float64Histogram
	episodeExpanded metric.Int64Histogram
	frontierPeak    metric.Int64Histogram
	solveTotal      metric.Int64Counter
	solveDuration   metric.Float64Histogram
	cacheEvents     metric.Int64Counter
	cacheBytes      metric.Int64Counter
	httpTotal       metric.Int64Counter
	httpDuration    metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error
		set := func(e error) bool {
			if e != nil && metricsErr == nil {
				metricsErr = e
			}
			return metricsErr == nil
		}

		episodeTotal, err = meter.Int64Counter("search_episodes_total",
			metric.WithDescription("Search episodes run, by outcome"))
		if !set(err) {
			return
		}
		episodeDuration, err = meter.Float64Histogram("search_episode_duration_seconds",
			metric.WithDescription("Duration of search episodes"),
			metric.WithUnit("s"))
		if !set(err) {
			return
		}
		episodeExpanded, err = meter.Int64Histogram("search_episode_iterations",
			metric.WithDescription("Nodes dequeued per search episode"))
		if !set(err) {
			return
		}
		frontierPeak, err = meter.Int64Histogram("search_frontier_peak",
			metric.WithDescription("Largest frontier size reached per episode"))
		if !set(err) {
			return
		}
		solveTotal, err = meter.Int64Counter("solve_requests_total",
			metric.WithDescription("Solve requests, by outcome"))
		if !set(err) {
			return
		}
		solveDuration, err = meter.Float64Histogram("solve_duration_seconds",
			metric.WithDescription("Duration of solve requests"),
			metric.WithUnit("s"))
		if !set(err) {
			return
		}
		cacheEvents, err = meter.Int64Counter("cache_operations_total",
			metric.WithDescription("Cache lookups and writes"))
		if !set(err) {
			return
		}
		cacheBytes, err = meter.Int64Counter("cache_written_bytes_total",
			metric.WithDescription("Bytes written to the cache"),
			metric.WithUnit("By"))
		if !set(err) {
			return
		}
		httpTotal, err = meter.Int64Counter("http_requests_total",
			metric.WithDescription("HTTP requests served"))
		if !set(err) {
			return
		}
		httpDuration, err = meter.Float64Histogram("http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests"),
			metric.WithUnit("s"))
		set(err)
	})
	return metricsErr
}

// Hooks records every observability event as OpenTelemetry metrics. It
// implements SearchHooks, SolveHooks, CacheHooks and HTTPHooks.
type Hooks struct{}

var (
	_ observability.SearchHooks = Hooks{}
	_ observability.SolveHooks  = Hooks{}
	_ observability.CacheHooks  = Hooks{}
	_ observability.HTTPHooks   = Hooks{}
)

// New returns hooks bound to the global meter provider.
func New() Hooks { return Hooks{} }

// Register installs h as every hook category in the global registry.
func Register() error {
	if err := initMetrics(); err != nil {
		return err
	}
	h := New()
	observability.SetSearchHooks(h)
	observability.SetSolveHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
	return nil
}

func (Hooks) OnEpisodeStart(context.Context, string, string, int) {}

func (Hooks) OnEpisodeComplete(ctx context.Context, strategy, mode string, stats observability.EpisodeStats) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("mode", mode),
		attribute.String("outcome", episodeOutcome(stats)),
	)
	episodeTotal.Add(ctx, 1, attrs)
	episodeDuration.Record(ctx, stats.Duration.Seconds(), attrs)
	episodeExpanded.Record(ctx, int64(stats.Iterations), attrs)
	frontierPeak.Record(ctx, int64(stats.MaxFrontier), attrs)
}

func (Hooks) OnSolveStart(context.Context, string, string) {}

func (Hooks) OnSolveComplete(ctx context.Context, problem, strategy string, found bool, d time.Duration, err error) {
	if initMetrics() != nil {
		return
	}
	outcome := "not_found"
	switch {
	case err != nil:
		outcome = "error"
	case found:
		outcome = "found"
	}
	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("outcome", outcome),
	)
	solveTotal.Add(ctx, 1, attrs)
	solveDuration.Record(ctx, d.Seconds(), attrs)
}

func (Hooks) OnCacheHit(ctx context.Context, keyType string) {
	recordCache(ctx, keyType, "hit")
}

func (Hooks) OnCacheMiss(ctx context.Context, keyType string) {
	recordCache(ctx, keyType, "miss")
}

func (Hooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	recordCache(ctx, keyType, "set")
	if initMetrics() != nil {
		return
	}
	cacheBytes.Add(ctx, int64(size), metric.WithAttributes(attribute.String("key_type", keyType)))
}

func (Hooks) OnRequest(context.Context, string, string) {}

func (Hooks) OnResponse(ctx context.Context, method, route string, status int, d time.Duration) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.String("status", strconv.Itoa(status)),
	)
	httpTotal.Add(ctx, 1, attrs)
	httpDuration.Record(ctx, d.Seconds(), attrs)
}

func recordCache(ctx context.Context, keyType, op string) {
	if initMetrics() != nil {
		return
	}
	cacheEvents.Add(ctx, 1, metric.WithAttributes(
		attribute.String("key_type", keyType),
		attribute.String("op", op),
	))
}

func episodeOutcome(s observability.EpisodeStats) string {
	switch {
	case s.Found:
		return "found"
	case s.Truncated:
		return "truncated"
	}
	return "not_found"
}
