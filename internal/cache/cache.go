package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrMiss is returned when a key is absent from the cache.
var ErrMiss = errors.New("cache miss")

// Cache is a Redis-backed read cache for inventory lookups. Invalidation is
// versioned: list keys embed a per-entity version counter that writers bump,
// so stale pages simply stop being addressable and age out via TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New builds a cache around an existing Redis client. A nil client yields a
// disabled cache where every read is a miss.
func New(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// GetJSON loads the value at key into dest. Returns ErrMiss when the key is
// absent or the cache is unavailable; cache failures never surface as
// request errors.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if c == nil || c.client == nil {
		return ErrMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return ErrMiss
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return ErrMiss
	}
	return nil
}

// SetJSON stores value at key with the configured TTL. Failures are logged
// and swallowed.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes the given keys.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("cache delete failed", zap.Error(err))
	}
}

// Version returns the current version counter for an entity namespace.
func (c *Cache) Version(ctx context.Context, entity string) int64 {
	if c == nil || c.client == nil {
		return 0
	}
	v, err := c.client.Get(ctx, versionKey(entity)).Int64()
	if err != nil {
		return 0
	}
	return v
}

// BumpVersion advances the version counter, invalidating all list pages for
// the entity at once.
func (c *Cache) BumpVersion(ctx context.Context, entity string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, versionKey(entity)).Err(); err != nil {
		c.logger.Debug("cache version bump failed", zap.String("entity", entity), zap.Error(err))
	}
}

// PageKey builds a versioned list-page key.
func (c *Cache) PageKey(ctx context.Context, entity string, page, pageSize int) string {
	return fmt.Sprintf("%s:v%d:page:%d:%d", entity, c.Version(ctx, entity), page, pageSize)
}

// IDKey builds a by-ID key.
func IDKey(entity string, id int64) string {
	return fmt.Sprintf("%s:id:%d", entity, id)
}

func versionKey(entity string) string {
	return entity + ":version"
}
