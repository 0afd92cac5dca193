package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/api-sage/currency-converter/internal/domain"
)

const rateTableKey = "currency-converter:rates"

var _ RateCache = (*RedisCache)(nil)

// RedisCache shares the normalized table across server instances.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr, password string, db int) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *RedisCache) Get(ctx context.Context) (domain.RateTable, bool, error) {
	val, err := c.client.Get(ctx, rateTableKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var table domain.RateTable
	if err := json.Unmarshal([]byte(val), &table); err != nil {
		return nil, false, err
	}

	return table, true, nil
}

func (c *RedisCache) Set(ctx context.Context, table domain.RateTable, ttl time.Duration) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, rateTableKey, data, ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
