// Package promhooks implements the observability hooks with Prometheus
// collectors.
//
// Collectors are registered on the registerer passed to [New]; the server
// exposes them through [Handler].
//
//	reg := prometheus.NewRegistry()
//	h := promhooks.New(reg)
//	h.Register()
//	mux.Handle("/metrics", promhooks.Handler(reg))
package promhooks

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/wayfinder/pkg/observability"
)

const namespace = "wayfinder"

// Hooks records observability events as Prometheus metrics. It implements
// SearchHooks, SolveHooks, CacheHooks and HTTPHooks.
type Hooks struct {
	episodes        *prometheus.CounterVec
	episodeDuration *prometheus.HistogramVec
	iterations      *prometheus.HistogramVec
	frontier        *prometheus.HistogramVec
	activeEpisodes  prometheus.Gauge

	solves        *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec

	cacheOps   *prometheus.CounterVec
	cacheBytes *prometheus.CounterVec

	inflight     prometheus.Gauge
	requests     *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

var (
	_ observability.SearchHooks = (*Hooks)(nil)
	_ observability.SolveHooks  = (*Hooks)(nil)
	_ observability.CacheHooks  = (*Hooks)(nil)
	_ observability.HTTPHooks   = (*Hooks)(nil)
)

// New creates the collectors and registers them on reg. A nil reg uses
// prometheus.DefaultRegisterer. Calling New twice with the same registerer
// panics, as registering duplicate collectors does.
func New(reg prometheus.Registerer) *Hooks {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	countBuckets := prometheus.ExponentialBuckets(1, 4, 12)

	return &Hooks{
		episodes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_episodes_total",
			Help:      "Search episodes run, by strategy, mode and outcome",
		}, []string{"strategy", "mode", "outcome"}),
		episodeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_episode_duration_seconds",
			Help:      "Duration of search episodes",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy", "mode"}),
		iterations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_episode_iterations",
			Help:      "Nodes dequeued per search episode",
			Buckets:   countBuckets,
		}, []string{"strategy"}),
		frontier: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_frontier_peak",
			Help:      "Largest frontier size reached per episode",
			Buckets:   countBuckets,
		}, []string{"strategy"}),
		activeEpisodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "search_episodes_active",
			Help:      "Search episodes currently running",
		}),
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solve_requests_total",
			Help:      "Solve requests, by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		solveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Duration of solve requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
		cacheOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Cache lookups and writes, by key type and operation",
		}, []string{"key_type", "op"}),
		cacheBytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the cache",
		}, []string{"key_type"}),
		inflight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Register installs h as every hook category in the global registry.
func (h *Hooks) Register() {
	observability.SetSearchHooks(h)
	observability.SetSolveHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

// Handler serves the metrics gathered by g in the Prometheus text format.
// A nil g uses prometheus.DefaultGatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func (h *Hooks) OnEpisodeStart(context.Context, string, string, int) {
	h.activeEpisodes.Inc()
}

func (h *Hooks) OnEpisodeComplete(_ context.Context, strategy, mode string, stats observability.EpisodeStats) {
	h.activeEpisodes.Dec()
	outcome := "not_found"
	switch {
	case stats.Found:
		outcome = "found"
	case stats.Truncated:
		outcome = "truncated"
	}
	h.episodes.WithLabelValues(strategy, mode, outcome).Inc()
	h.episodeDuration.WithLabelValues(strategy, mode).Observe(stats.Duration.Seconds())
	h.iterations.WithLabelValues(strategy).Observe(float64(stats.Iterations))
	h.frontier.WithLabelValues(strategy).Observe(float64(stats.MaxFrontier))
}

func (h *Hooks) OnSolveStart(context.Context, string, string) {}

func (h *Hooks) OnSolveComplete(_ context.Context, _, strategy string, found bool, d time.Duration, err error) {
	outcome := "not_found"
	switch {
	case err != nil:
		outcome = "error"
	case found:
		outcome = "found"
	}
	h.solves.WithLabelValues(strategy, outcome).Inc()
	h.solveDuration.WithLabelValues(strategy).Observe(d.Seconds())
}

func (h *Hooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (h *Hooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (h *Hooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheOps.WithLabelValues(keyType, "set").Inc()
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (h *Hooks) OnRequest(context.Context, string, string) {
	h.inflight.Inc()
}

func (h *Hooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.inflight.Dec()
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	h.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
