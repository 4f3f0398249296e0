package session

import (
	"context"

	"servecure/models"
)

// Store is the persisted per-client session store. It stands in for the
// browser's persistent key-value storage: one record per client session ID,
// written whole and cleared whole.
type Store interface {
	// Load returns the persisted session for sid, or the empty session when
	// none exists. Storage failures degrade to the empty session.
	Load(ctx context.Context, sid string) models.Session

	// Save writes identity token, profile and API token as one record.
	// Callers never observe a partial write.
	Save(ctx context.Context, sid string, identityToken string, profile models.Profile, apiToken string) error

	// Clear removes the whole record unconditionally.
	Clear(ctx context.Context, sid string) error

	// CurrentAPIToken returns the persisted API token if present, else the
	// identity token, else "".
	CurrentAPIToken(ctx context.Context, sid string) string
}

// KV is the minimal key-value surface the store needs. The redis adapter
// implements it in production; tests supply a map-backed one.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, key string) error
}
