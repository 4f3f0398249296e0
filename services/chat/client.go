// File: services/chat/client.go
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"servecure/models"
	"servecure/utils"

	"go.uber.org/zap"
)

// fallbackReply is shown when the chat backend cannot be reached; the
// widget stays usable and the user can retry.
const fallbackReply = "I apologize, but I'm having trouble connecting to my backend right now. " +
	"Please try asking your question again in a moment."

// Define a package-level HTTP client for chat backend calls.
var chatHTTPClient = &http.Client{Timeout: 15 * time.Second}

// Client talks to the external conversational backend.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient builds a chat client against the configured backend URL.
func NewClient(url string) *Client {
	return &Client{URL: url, HTTPClient: chatHTTPClient}
}

// Send posts the user's message and returns the structured reply. Transport
// or status failures degrade to a canned apology with intent "error"; the
// second return reports whether the backend actually answered.
func (c *Client) Send(ctx context.Context, req models.ChatRequest) (models.ChatReply, bool) {
	logger := utils.GetLogger()

	reply, err := c.send(ctx, req)
	if err != nil {
		logger.Warn("Chat backend unavailable", zap.Error(err))
		return models.ChatReply{Response: fallbackReply, Intent: "error"}, false
	}
	return reply, true
}

func (c *Client) send(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return models.ChatReply{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payload))
	if err != nil {
		return models.ChatReply{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return models.ChatReply{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ChatReply{}, fmt.Errorf("chat backend returned HTTP %d", resp.StatusCode)
	}

	var reply models.ChatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return models.ChatReply{}, fmt.Errorf("failed to decode chat reply: %w", err)
	}
	return reply, nil
}

// RouteSuggestedAction maps a suggested action's wording to a navigation
// hint for the client: a route fragment or an in-page anchor. Unrecognized
// actions return "".
func RouteSuggestedAction(action string) string {
	a := strings.ToLower(action)
	switch {
	case strings.Contains(a, "job") || strings.Contains(a, "career"):
		return "#/careers"
	case strings.Contains(a, "service"):
		return "#services"
	case strings.Contains(a, "contact") || strings.Contains(a, "support"):
		return "#footer"
	default:
		return ""
	}
}
