package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisVerdictCache memoizes suitability verdicts in Redis so repeated
// recommendation requests skip classifier calls for pairs already seen.
type RedisVerdictCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisVerdictCache wraps a connected Redis client. A 24h TTL keeps the
// keyspace bounded even though verdicts themselves never go stale.
func NewRedisVerdictCache(client *redis.Client) *RedisVerdictCache {
	return &RedisVerdictCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func verdictKey(food, condition string) string {
	return fmt.Sprintf("suitability:%s|%s", food, condition)
}

// Get returns the cached verdict for a pair, if present. Lookup errors are
// treated as misses.
func (c *RedisVerdictCache) Get(ctx context.Context, food, condition string) (bool, bool) {
	value, err := c.client.Get(ctx, verdictKey(food, condition)).Result()
	if err != nil {
		return false, false
	}
	return value == "1", true
}

// Set stores a verdict, ignoring write failures: the cache is an
// optimization, not a source of truth.
func (c *RedisVerdictCache) Set(ctx context.Context, food, condition string, verdict bool) {
	value := "0"
	if verdict {
		value = "1"
	}
	c.client.Set(ctx, verdictKey(food, condition), value, c.ttl)
}
