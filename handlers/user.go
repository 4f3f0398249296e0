package handlers

import (
	"net/http"

	"servecure/config"
	"servecure/middleware"
	"servecure/models"
	"servecure/services/gateway"
	"servecure/services/session"
	"servecure/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler reads the signed-in user's remote profile record.
type UserHandler struct {
	Sessions session.Store
	Gateway  *gateway.Client
}

func NewUserHandler(sessions session.Store, gw *gateway.Client) *UserHandler {
	return &UserHandler{Sessions: sessions, Gateway: gw}
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	logger := utils.GetLogger()

	sid := middleware.SessionID(c)
	sess := h.Sessions.Load(c.Request.Context(), sid)
	if !sess.SignedIn() {
		respondSignInRequired(c)
		return
	}

	var details models.UserDetails
	if err := h.Gateway.AuthedGet(c.Request.Context(), config.AppConfig.FetchUserURL, sess.BearerToken(), &details); err != nil {
		logger.Warn("Failed to fetch user details", zap.String("sid", sid), zap.Error(err))
		respondRemoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}
