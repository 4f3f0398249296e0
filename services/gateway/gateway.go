// File: services/gateway/gateway.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"servecure/utils"

	"go.uber.org/zap"
)

// Define a package-level HTTP client for marketplace API calls.
var apiHTTPClient = &http.Client{Timeout: 10 * time.Second}

// Client centralizes bearer-token attachment and response handling for
// the remote marketplace endpoints. It holds no state and caches nothing;
// every call re-fetches.
type Client struct {
	HTTPClient *http.Client
}

// NewClient returns a gateway client over the shared HTTP client.
func NewClient() *Client {
	return &Client{HTTPClient: apiHTTPClient}
}

// AuthedGet performs a bearer-authenticated GET and decodes the response
// into out.
func (c *Client) AuthedGet(ctx context.Context, url string, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.do(req, out)
}

// AuthedPost performs a bearer-authenticated POST with a JSON body and
// decodes the response into out.
func (c *Client) AuthedPost(ctx context.Context, url string, token string, body any, out any) error {
	req, err := c.jsonRequest(ctx, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return c.do(req, out)
}

// Post performs an unauthenticated POST with a JSON body. Used for the
// create-user exchange, which carries its credential in the body.
func (c *Client) Post(ctx context.Context, url string, body any, out any) error {
	req, err := c.jsonRequest(ctx, url, body)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) jsonRequest(ctx context.Context, url string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	logger := utils.GetLogger()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Warn("Marketplace call failed", zap.String("url", req.URL.String()), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		raw = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Marketplace call returned non-OK status",
			zap.String("url", req.URL.String()), zap.Int("status", resp.StatusCode))
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	// A body that fails to parse reads as empty rather than failing the
	// caller; the dependent view renders its empty state.
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			logger.Warn("Malformed marketplace response body, treating as empty",
				zap.String("url", req.URL.String()), zap.Error(err))
		}
	}
	return nil
}
