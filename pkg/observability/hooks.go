// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional and backend-agnostic. The search engine, the
// solve runner, the cache and the HTTP server emit events through the hook
// interfaces below; main registers concrete implementations at startup.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Ready-made implementations live in the otelhooks (OpenTelemetry metrics)
// and promhooks (Prometheus collectors) subpackages.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSearchHooks(promhooks.NewSearch(prometheus.DefaultRegisterer))
//	    observability.SetCacheHooks(otelhooks.Cache{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnEpisodeStart(ctx, "astar", "graph", -1)
//	// ... run the episode ...
//	observability.Search().OnEpisodeComplete(ctx, "astar", "graph", stats)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Search Hooks
// =============================================================================

// EpisodeStats summarizes one search episode.
type EpisodeStats struct {
	Found       bool
	Truncated   bool
	Iterations  int
	MaxFrontier int
	Generated   int
	DepthLimit  int // -1 when unbounded
	Duration    time.Duration
}

// SearchHooks receives events from the search engine, once per episode.
// An iterative-deepening search emits one pair per depth limit tried.
type SearchHooks interface {
	OnEpisodeStart(ctx context.Context, strategy, mode string, depthLimit int)
	OnEpisodeComplete(ctx context.Context, strategy, mode string, stats EpisodeStats)
}

// =============================================================================
// Solve Hooks
// =============================================================================

// SolveHooks receives events from the solve runner.
type SolveHooks interface {
	// OnSolveStart records the start of a solve request.
	OnSolveStart(ctx context.Context, problem, strategy string)

	// OnSolveComplete records the outcome of a solve request. err is nil
	// when the search ran to completion, whether or not it found a goal.
	OnSolveComplete(ctx context.Context, problem, strategy string, found bool, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request. route is the raw path, since
	// routing has not happened yet.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse records the response sent for a request. route is the
	// matched pattern, such as /v1/runs/{id}.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnEpisodeStart(context.Context, string, string, int)             {}
func (NoopSearchHooks) OnEpisodeComplete(context.Context, string, string, EpisodeStats) {}

// NoopSolveHooks is a no-op implementation of SolveHooks.
type NoopSolveHooks struct{}

func (NoopSolveHooks) OnSolveStart(context.Context, string, string) {}
func (NoopSolveHooks) OnSolveComplete(context.Context, string, string, bool, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	solveHooks  SolveHooks  = NoopSolveHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup before any search runs.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetSolveHooks registers custom solve hooks.
func SetSolveHooks(h SolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solveHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Solve returns the registered solve hooks.
func Solve() SolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solveHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	solveHooks = NoopSolveHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
