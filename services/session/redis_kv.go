package session

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisKV adapts a redis client to the KV interface. Records carry no TTL:
// like the browser store they stand in for, they live until cleared.
type RedisKV struct {
	Client *redis.Client
}

// NewRedisKV wraps the given redis client.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{Client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value string) error {
	return r.Client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}
