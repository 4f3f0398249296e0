// File: services/view/tracker.go
package view

import (
	"context"
	"time"

	"servecure/services/session"
	"servecure/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const viewStatePrefix = "viewstate:"

// viewStateTTL keeps tracked route positions from outliving their client.
const viewStateTTL = 12 * time.Hour

// Entry is the outcome of a route-controller transition: the resolved view
// and the fetch cycle (if any) that entering it triggers.
type Entry struct {
	View     View    `json:"view"`
	Changed  bool    `json:"changed"`
	SignedIn bool    `json:"signed_in"`
	Fetches  []Fetch `json:"fetches"`
}

// Service is the route controller: fragment in, active view plus triggered
// fetches out.
type Service interface {
	Enter(ctx context.Context, sid string, fragment string) Entry
}

// StateKV is the minimal expiring key-value surface the tracker needs. The
// redis adapter implements it in production; tests supply a map-backed one.
type StateKV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// RedisStateKV adapts a redis client to the StateKV interface.
type RedisStateKV struct {
	Client *redis.Client
}

// NewRedisStateKV wraps the given redis client.
func NewRedisStateKV(client *redis.Client) *RedisStateKV {
	return &RedisStateKV{Client: client}
}

func (r *RedisStateKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisStateKV) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// DefaultViewService tracks each session's current view so that re-entering
// the same view without a fragment change fires no fetch cycle.
type DefaultViewService struct {
	Sessions session.Store
	State    StateKV
}

func (s *DefaultViewService) Enter(ctx context.Context, sid string, fragment string) Entry {
	logger := utils.GetLogger()

	next := Resolve(fragment)
	signedIn := s.Sessions.Load(ctx, sid).SignedIn()

	key := viewStatePrefix + sid
	prev, _, err := s.State.Get(ctx, key)
	if err != nil {
		logger.Warn("Failed to read view state", zap.String("sid", sid), zap.Error(err))
	}

	changed := prev != string(next)
	if changed {
		if err := s.State.Set(ctx, key, string(next), viewStateTTL); err != nil {
			logger.Warn("Failed to record view state", zap.String("sid", sid), zap.Error(err))
		}
	}

	entry := Entry{View: next, Changed: changed, SignedIn: signedIn}
	if changed {
		entry.Fetches = FetchesFor(next, signedIn)
	}
	return entry
}
