package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStoreOperations is the cache contract consumed by the settings
// repository.
type RedisStoreOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type RedisStoreAdapter struct {
	client *redis.Client
}

func NewRedisStoreAdapter(client *redis.Client) *RedisStoreAdapter {
	return &RedisStoreAdapter{client: client}
}

// Implements RedisStoreOperations
func (a *RedisStoreAdapter) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return a.client.Set(ctx, key, value, expiration).Err()
}

func (a *RedisStoreAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	return a.client.Get(ctx, key).Bytes()
}

func (a *RedisStoreAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

func (a *RedisStoreAdapter) Exists(ctx context.Context, key string) (bool, error) {
	val, err := a.client.Exists(ctx, key).Result()
	return val > 0, err
}
