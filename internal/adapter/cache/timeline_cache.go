package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

const (
	// genKey holds the current cache generation. Entries are keyed by the
	// generation they were aggregated under, so bumping it retires them all.
	genKey = "timeline:gen"
	// indexKey is a set of every timeline key written, so Invalidate can drop
	// retired entries without scanning the keyspace.
	indexKey = "timeline:keys"
)

type RedisTimelineCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTimelineCache(client *redis.Client, ttl time.Duration) *RedisTimelineCache {
	return &RedisTimelineCache{client: client, ttl: ttl}
}

func (c *RedisTimelineCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", genKey, err)
	}
	return gen, nil
}

func (c *RedisTimelineCache) Get(ctx context.Context, key string) (*domain.TimelineGrid, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}

	var grid domain.TimelineGrid
	if err := json.Unmarshal([]byte(val), &grid); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}

	return &grid, true, nil
}

func (c *RedisTimelineCache) Set(ctx context.Context, key string, grid *domain.TimelineGrid) error {
	payload, err := json.Marshal(grid)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, string(payload), c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	if err := c.client.SAdd(ctx, indexKey, key).Err(); err != nil {
		return fmt.Errorf("index %s: %w", key, err)
	}

	return nil
}

func (c *RedisTimelineCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, genKey).Err(); err != nil {
		return fmt.Errorf("bump %s: %w", genKey, err)
	}

	// Retired entries are unreachable once the generation moves; dropping
	// them only frees memory ahead of their TTL.
	keys, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("list timeline keys: %w", err)
	}

	keys = append(keys, indexKey)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("drop timeline keys: %w", err)
	}

	return nil
}
