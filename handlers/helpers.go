package handlers

import (
	"errors"
	"net/http"

	"servecure/services/gateway"

	"github.com/gin-gonic/gin"
)

// respondRemoteError converts a gateway failure into the inline error shape
// the requesting view binds to. Remote statuses pass through; transport
// failures read as a bad gateway.
func respondRemoteError(c *gin.Context, err error) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

// respondSignInRequired tells the client to open the sign-in surface and
// abort whatever it was doing.
func respondSignInRequired(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":            "Sign in required",
		"sign_in_required": true,
	})
}
