// File: handlers/auth.go
package handlers

import (
	"net/http"

	"servecure/config"
	"servecure/middleware"
	"servecure/services/identity"
	"servecure/services/session"
	"servecure/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the sign-in/sign-out surface backed by the identity
// bridge.
type AuthHandler struct {
	Bridge   identity.Bridge
	Sessions session.Store
}

func NewAuthHandler(bridge identity.Bridge, sessions session.Store) *AuthHandler {
	return &AuthHandler{Bridge: bridge, Sessions: sessions}
}

// GoogleSignInHandler handles POST /api/auth/google: the widget's callback
// hands over its credential, the bridge persists and exchanges it. Sign-in
// never fails on a backend error; the response reports the degraded mode.
func (h *AuthHandler) GoogleSignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Credential string `json:"credential" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid sign-in request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !identity.CheckAudience(req.Credential, config.AppConfig.GoogleClientID) {
		logger.Warn("Credential audience mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credential"})
		return
	}

	sid := middleware.SessionID(c)
	sess := h.Bridge.SignIn(c.Request.Context(), sid, req.Credential, middleware.ClientIP(c))

	c.JSON(http.StatusOK, gin.H{
		"signed_in":     true,
		"profile":       sess.Profile,
		"identity_only": sess.APIToken == "",
	})
}

// SignOutHandler handles POST /api/auth/signout. Always succeeds locally;
// the flag tells the widget to forget its auto-select preference.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	sid := middleware.SessionID(c)
	disableAutoSelect := h.Bridge.SignOut(c.Request.Context(), sid)

	c.JSON(http.StatusOK, gin.H{
		"signed_in":           false,
		"disable_auto_select": disableAutoSelect,
	})
}

// SessionHandler handles GET /api/auth/session: the current session
// snapshot. Tokens stay server-side; only profile and state flags go out.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	sid := middleware.SessionID(c)
	sess := h.Sessions.Load(c.Request.Context(), sid)

	c.JSON(http.StatusOK, gin.H{
		"signed_in":     sess.SignedIn(),
		"profile":       sess.Profile,
		"identity_only": sess.SignedIn() && sess.APIToken == "",
	})
}
