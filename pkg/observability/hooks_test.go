package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Search hooks
	s := NoopSearchHooks{}
	s.OnEpisodeStart(ctx, "astar", "graph", -1)
	s.OnEpisodeComplete(ctx, "astar", "graph", EpisodeStats{Found: true, Iterations: 12, Duration: time.Millisecond})

	// Solve hooks
	v := NoopSolveHooks{}
	v.OnSolveStart(ctx, "vacuum", "bfs")
	v.OnSolveComplete(ctx, "vacuum", "bfs", true, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "report")
	c.OnCacheMiss(ctx, "report")
	c.OnCacheSet(ctx, "report", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/solve")
	h.OnResponse(ctx, "POST", "/v1/solve", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Search() should return NoopSearchHooks by default")
	}
	if _, ok := Solve().(NoopSolveHooks); !ok {
		t.Error("Solve() should return NoopSolveHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customSearch := &testSearchHooks{}
	SetSearchHooks(customSearch)
	if Search() != customSearch {
		t.Error("SetSearchHooks should set custom hooks")
	}

	customSolve := &testSolveHooks{}
	SetSolveHooks(customSolve)
	if Solve() != customSolve {
		t.Error("SetSolveHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Reset() should restore NoopSearchHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSearchHooks{}
	SetSearchHooks(custom)

	// Setting nil should be ignored
	SetSearchHooks(nil)

	if Search() != custom {
		t.Error("SetSearchHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSearchHooks struct{ NoopSearchHooks }
type testSolveHooks struct{ NoopSolveHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
