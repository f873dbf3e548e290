package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the two dashboard reads. Every write path invalidates both.
const (
	KeyStatistics = "stats:overview"
	KeyChanges    = "stats:changes"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("Connected to Redis at %s", redisURL)
	return &RedisCache{client: client, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, key).Bytes()
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Invalidate drops both stats keys; called after any row append or reset.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, KeyStatistics, KeyChanges).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
