package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Manaswita10/Finergize-sub000/internal/domain/model"
	"github.com/Manaswita10/Finergize-sub000/internal/domain/port"
)

// RedisDecisionCache caches prediction decisions in Redis, keyed by
// feature-vector hash. It implements port.DecisionCache.
type RedisDecisionCache struct {
	client *redis.Client
	logger *slog.Logger
}

var _ port.DecisionCache = (*RedisDecisionCache)(nil)

// NewRedisDecisionCache creates a cache backed by the Redis server at addr.
func NewRedisDecisionCache(addr string, logger *slog.Logger) *RedisDecisionCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisDecisionCache{client: rdb, logger: logger}
}

// Get returns the cached decision for key, if any. Redis errors are logged
// and reported as a miss: the caller falls through to the model service.
func (c *RedisDecisionCache) Get(ctx context.Context, key string) (model.Decision, bool) {
	val, err := c.client.Get(ctx, cacheKey(key)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "decision cache read failed", "error", err)
		}
		return model.Decision{}, false
	}

	var decision model.Decision
	if err := json.Unmarshal([]byte(val), &decision); err != nil {
		c.logger.WarnContext(ctx, "decision cache entry corrupt", "key", key, "error", err)
		return model.Decision{}, false
	}
	return decision, true
}

// Set stores a decision under key with the given TTL.
func (c *RedisDecisionCache) Set(ctx context.Context, key string, decision model.Decision, ttl time.Duration) error {
	payload, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("marshal decision: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(key), payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache decision: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (c *RedisDecisionCache) Close() error {
	return c.client.Close()
}

func cacheKey(key string) string {
	return "risk:decision:" + key
}
