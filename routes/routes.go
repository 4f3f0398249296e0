package routes

import (
	"net/http"
	"time"

	"servecure/handlers"
	"servecure/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers sign-in, sign-out and session inspection.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.Use(middleware.SessionMiddleware(true))
		api.POST("/google", hb.GoogleSignInHandler)
		api.POST("/signout", hb.SignOutHandler)
		api.GET("/session", hb.SessionHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.SessionMiddleware(true))
		api.GET("/me", hb.GetMeHandler)
	}
}

// RegisterViewRoutes registers the route-controller entry point.
func RegisterViewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/view")
	{
		api.Use(middleware.SessionMiddleware(true))
		api.GET("", hb.EnterViewHandler)
	}
}

// RegisterProviderRoutes registers service-provider onboarding endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/provider")
	{
		api.Use(middleware.SessionMiddleware(true))
		api.GET("/request", hb.ProviderStatusHandler)
		api.POST("/request", hb.ProviderSubmitHandler)
	}
}

// RegisterBookingRoutes registers booking submission and history.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.SessionMiddleware(true))
		api.POST("/bookings", hb.SubmitBookingHandler)
		api.GET("/my-services", hb.ListMyServicesHandler)
	}
}

// RegisterContentRoutes registers the public marketing endpoints. No
// session header is required here so crawlers and fresh clients work.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.SessionMiddleware(false))
		api.GET("/content/home", hb.HomeContentHandler)
		api.GET("/careers", hb.ListJobsHandler)
		api.GET("/careers/:id", hb.GetJobHandler)
		api.POST("/experts/register", hb.RegisterExpertHandler)
		api.POST("/chat", hb.SendMessageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Servecure"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterViewRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterHealthRoute(r)
}
