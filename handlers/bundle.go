// File: servecure/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	GoogleSignInHandler gin.HandlerFunc
	SignOutHandler      gin.HandlerFunc
	SessionHandler      gin.HandlerFunc

	// User endpoints
	GetMeHandler gin.HandlerFunc

	// View endpoints
	EnterViewHandler gin.HandlerFunc

	// Provider endpoints
	ProviderStatusHandler gin.HandlerFunc
	ProviderSubmitHandler gin.HandlerFunc

	// Booking endpoints
	SubmitBookingHandler  gin.HandlerFunc
	ListMyServicesHandler gin.HandlerFunc

	// Content endpoints
	HomeContentHandler gin.HandlerFunc
	ListJobsHandler    gin.HandlerFunc
	GetJobHandler      gin.HandlerFunc

	// Expert endpoints
	RegisterExpertHandler gin.HandlerFunc

	// Chat endpoints
	SendMessageHandler gin.HandlerFunc
}
