package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// IPResolver fetches the caller's public IP from a lookup service. The
// result is cached for the life of the process; every failure mode yields
// an empty string, which the exchange accepts.
type IPResolver struct {
	URL        string
	HTTPClient *http.Client

	mu       sync.Mutex
	resolved bool
	ip       string
}

// NewIPResolver builds a resolver against the given lookup URL.
func NewIPResolver(url string) *IPResolver {
	return &IPResolver{
		URL:        url,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup returns the cached public IP, fetching it on first use.
func (r *IPResolver) Lookup(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		return r.ip
	}

	r.ip = r.fetch(ctx)
	r.resolved = true
	return r.ip
}

func (r *IPResolver) fetch(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return ""
	}
	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	return body.IP
}
