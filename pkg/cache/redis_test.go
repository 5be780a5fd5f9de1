package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func newTestRedis(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("WAYFINDER_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("WAYFINDER_TEST_REDIS_ADDR not set")
	}
	c, err := NewRedisCache(context.Background(), RedisConfig{Addr: addr, Prefix: "wayfinder-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	t.Cleanup(func() {
		_, _ = c.Clear(context.Background())
		_ = c.Close()
	})
	return c
}

func TestRedisCache(t *testing.T) {
	c := newTestRedis(t)
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "report:missing"); err != nil || hit {
		t.Fatalf("Get missing = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "report:x", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "report:x")
	if err != nil || !hit || string(data) != "payload" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "report:x"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "report:x"); hit {
		t.Error("entry should be gone after Delete")
	}
}

func TestRedisCacheClear(t *testing.T) {
	c := newTestRedis(t)
	ctx := context.Background()
	for _, k := range []string{"a", "b"} {
		_ = c.Set(ctx, k, []byte(k), time.Minute)
	}
	n, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear removed %d keys, want 2", n)
	}
}
