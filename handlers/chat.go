package handlers

import (
	"net/http"

	"servecure/middleware"
	"servecure/models"
	"servecure/services/chat"
	"servecure/services/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChatHandler proxies assistant conversations to the chat backend.
type ChatHandler struct {
	Sessions session.Store
	Client   *chat.Client
}

func NewChatHandler(sessions session.Store, client *chat.Client) *ChatHandler {
	return &ChatHandler{Sessions: sessions, Client: client}
}

type chatInput struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type suggestedAction struct {
	Label  string `json:"label"`
	Target string `json:"target,omitempty"`
}

// SendMessageHandler handles POST /api/chat. Signed-in users are
// identified to the backend by email, everyone else as "anonymous".
// Backend failures still produce a 200 with a canned reply so the
// widget never breaks the page.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var input chatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	userID := "anonymous"
	sess := h.Sessions.Load(c.Request.Context(), middleware.SessionID(c))
	if sess.SignedIn() && sess.Profile.Email != "" {
		userID = sess.Profile.Email
	}

	chatSessionID := input.SessionID
	if chatSessionID == "" {
		chatSessionID = uuid.NewString()
	}

	reply, ok := h.Client.Send(c.Request.Context(), models.ChatRequest{
		Message:   input.Message,
		UserID:    userID,
		SessionID: chatSessionID,
	})

	actions := make([]suggestedAction, 0, len(reply.SuggestedActions))
	for _, a := range reply.SuggestedActions {
		actions = append(actions, suggestedAction{
			Label:  a,
			Target: chat.RouteSuggestedAction(a),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"response":          reply.Response,
		"intent":            reply.Intent,
		"sources":           reply.Sources,
		"suggested_actions": actions,
		"session_id":        chatSessionID,
		"degraded":          !ok,
	})
}
