package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExpertHandler acknowledges expert registrations. There is no remote
// onboarding endpoint yet, so submissions are accepted and confirmed
// locally.
type ExpertHandler struct{}

func NewExpertHandler() *ExpertHandler {
	return &ExpertHandler{}
}

type expertRegistrationInput struct {
	FullName        string `json:"full_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email"`
	ServiceCategory string `json:"service_category" binding:"required"`
	Experience      string `json:"experience"`
	Address         string `json:"address"`
	IDProof         string `json:"id_proof"`
	IDNumber        string `json:"id_number"`
	Availability    string `json:"availability"`
	HourlyRate      string `json:"hourly_rate"`
}

// RegisterExpertHandler handles POST /api/experts/register.
func (h *ExpertHandler) RegisterExpertHandler(c *gin.Context) {
	var input expertRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Full name, phone and service category are required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf(
			"Expert registration submitted for %s! We'll contact you at %s within 24 hours to verify your documents and complete the onboarding process.",
			input.FullName, input.Phone,
		),
	})
}
