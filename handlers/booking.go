// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"servecure/middleware"
	"servecure/models"
	"servecure/services/booking"
	"servecure/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler submits service bookings.
type BookingHandler struct {
	Service booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// SubmitBookingHandler handles POST /api/bookings. Single-shot: a second
// submission while one is in flight for the session is rejected; the form
// stays populated client-side on any failure.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := middleware.SessionID(c)
	err := h.Service.Submit(c.Request.Context(), sid, input)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Your service request has been submitted."})
	case errors.Is(err, booking.ErrSignInRequired):
		respondSignInRequired(c)
	case errors.Is(err, booking.ErrSubmitInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Warn("Booking submission failed", zap.String("sid", sid), zap.Error(err))
		respondRemoteError(c, err)
	}
}
