// Package cache is a short-TTL read cache over redis. It exists to
// reduce read traffic, not to guarantee consistency: writers invalidate
// by key prefix and readers may briefly see stale data.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/platform/logging"
)

// DefaultTTL matches the original one-minute read cache.
const DefaultTTL = time.Minute

// Cache wraps a redis client. A nil *Cache is valid and simply always
// fetches, so callers need no cache-enabled branching.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logging.Logger
}

// New builds a cache with the given TTL; zero means DefaultTTL.
func New(rdb *redis.Client, ttl time.Duration, log *logging.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Cache{rdb: rdb, ttl: ttl, log: log}
}

// GetOrPopulate returns the cached payload for key, calling fetch and
// storing the result on a miss. Redis failures degrade to a plain
// fetch; they never fail the read.
func (c *Cache) GetOrPopulate(ctx context.Context, key string, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return fetch(ctx)
	}
	cached, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		c.log.Debugw("cache hit", "key", key)
		return cached, nil
	}
	if err != redis.Nil {
		c.log.Warnw("cache read failed", "key", key, "error", err)
	}
	fresh, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.rdb.Set(ctx, key, fresh, c.ttl).Err(); err != nil {
		c.log.Warnw("cache write failed", "key", key, "error", err)
	}
	return fresh, nil
}

// Invalidate removes every key under the given prefix. Called on writes
// so the next read repopulates.
func (c *Cache) Invalidate(ctx context.Context, prefix string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	c.log.Debugw("cache invalidate", "prefix", prefix, "keys", len(keys))
	return c.rdb.Del(ctx, keys...).Err()
}

// InvalidateAll clears the whole cache database.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.FlushDB(ctx).Err()
}
