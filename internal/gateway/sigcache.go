package gateway

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sigKeyPrefix = "ragflow:table:sig:"

// RedisSignatureCache memoizes table content signatures by storage
// locator. Assets are immutable after ingestion, so a cached signature
// only ever expires, never invalidates.
type RedisSignatureCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSignatureCache connects to Redis and verifies the connection.
func NewRedisSignatureCache(ctx context.Context, addr, password string, ttl time.Duration) (*RedisSignatureCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSignatureCache{rdb: rdb, ttl: ttl}, nil
}

// GetSignature looks up a cached signature. Any Redis error reads as a
// cache miss; the resolver recomputes.
func (c *RedisSignatureCache) GetSignature(ctx context.Context, path string) (string, bool) {
	sig, err := c.rdb.Get(ctx, sigKeyPrefix+path).Result()
	if err != nil {
		return "", false
	}
	return sig, true
}

// SetSignature stores a signature, best effort.
func (c *RedisSignatureCache) SetSignature(ctx context.Context, path, signature string) {
	c.rdb.Set(ctx, sigKeyPrefix+path, signature, c.ttl)
}

// Close releases the Redis connection.
func (c *RedisSignatureCache) Close() error {
	return c.rdb.Close()
}
