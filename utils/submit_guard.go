package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const submitGuardPrefix = "submitting:"

// submitGuardTTL bounds how long a crashed submission can hold its latch.
const submitGuardTTL = 30 * time.Second

// RedisSubmitGuard is a SETNX-based single-shot latch keyed per submission.
// It backs the re-entrancy guard of the booking and provider flows.
type RedisSubmitGuard struct {
	Client *redis.Client
}

func NewRedisSubmitGuard(client *redis.Client) *RedisSubmitGuard {
	return &RedisSubmitGuard{Client: client}
}

func (g *RedisSubmitGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.Client.SetNX(ctx, submitGuardPrefix+key, "1", submitGuardTTL).Result()
}

func (g *RedisSubmitGuard) Release(ctx context.Context, key string) {
	g.Client.Del(ctx, submitGuardPrefix+key)
}
