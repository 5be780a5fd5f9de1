package cache

import (
	"context"
	"time"

	"github.com/matzehuels/wayfinder/pkg/observability"
)

// instrumented reports hits, misses and writes to the registered cache hooks.
type instrumented struct {
	Cache
}

// Instrument wraps c so that every Get and Set emits observability cache
// hooks, labelled with the key type.
func Instrument(c Cache) Cache {
	if c == nil {
		return nil
	}
	if _, ok := c.(*instrumented); ok {
		return c
	}
	return &instrumented{Cache: c}
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.Cache.Get(ctx, key)
	if err != nil {
		return data, ok, err
	}
	if ok {
		observability.Cache().OnCacheHit(ctx, KeyType(key))
	} else {
		observability.Cache().OnCacheMiss(ctx, KeyType(key))
	}
	return data, ok, nil
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	return nil
}
