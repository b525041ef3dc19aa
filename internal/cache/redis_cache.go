package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const generationPrefix = "gen:"

// RedisCache stores JSON values in Redis with a per-key TTL.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache wraps an already connected client.
func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

var _ Cache = (*RedisCache)(nil)

// GetJSON decodes key into dst and reports whether it was present.
func (c *RedisCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	s, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		// corrupt entry: treat as miss
		_ = c.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

// SetJSON encodes val and stores it under key for ttl.
func (c *RedisCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// Del removes keys; missing keys are ignored.
func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Generation returns the current generation of namespace, 0 if never bumped.
func (c *RedisCache) Generation(ctx context.Context, namespace string) (int64, error) {
	n, err := c.rdb.Get(ctx, generationPrefix+namespace).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Bump advances the generation of namespace.
func (c *RedisCache) Bump(ctx context.Context, namespace string) error {
	return c.rdb.Incr(ctx, generationPrefix+namespace).Err()
}
