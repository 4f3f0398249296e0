// File: services/session/store.go
package session

import (
	"context"
	"encoding/json"

	"servecure/models"
	"servecure/utils"

	"go.uber.org/zap"
)

const sessionPrefix = "session:"

// DefaultStore persists session records as single JSON blobs in a KV store.
type DefaultStore struct {
	KV KV
}

// NewDefaultStore returns a Store backed by the given KV.
func NewDefaultStore(kv KV) *DefaultStore {
	return &DefaultStore{KV: kv}
}

func (s *DefaultStore) Load(ctx context.Context, sid string) models.Session {
	logger := utils.GetLogger()
	data, ok, err := s.KV.Get(ctx, sessionPrefix+sid)
	if err != nil {
		logger.Warn("Failed to load session, treating as logged out", zap.String("sid", sid), zap.Error(err))
		return models.Session{}
	}
	if !ok {
		return models.Session{}
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		// A corrupt record reads as logged out rather than failing the caller.
		logger.Warn("Corrupt session record", zap.String("sid", sid), zap.Error(err))
		return models.Session{}
	}
	return sess
}

func (s *DefaultStore) Save(ctx context.Context, sid string, identityToken string, profile models.Profile, apiToken string) error {
	sess := models.Session{
		IdentityToken: identityToken,
		Profile:       profile,
		APIToken:      apiToken,
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	// One SET for the whole record keeps the write atomic from the caller's
	// perspective.
	return s.KV.Set(ctx, sessionPrefix+sid, string(data))
}

func (s *DefaultStore) Clear(ctx context.Context, sid string) error {
	return s.KV.Del(ctx, sessionPrefix+sid)
}

func (s *DefaultStore) CurrentAPIToken(ctx context.Context, sid string) string {
	return s.Load(ctx, sid).BearerToken()
}
