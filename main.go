// File: servecure/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servecure/config"
	"servecure/handlers"
	"servecure/middleware"
	"servecure/routes"
	"servecure/services/booking"
	"servecure/services/chat"
	"servecure/services/content"
	"servecure/services/gateway"
	"servecure/services/identity"
	"servecure/services/myservices"
	"servecure/services/provider"
	"servecure/services/session"
	"servecure/services/view"
	"servecure/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionStore()
	utils.InitCache()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// shared infrastructure.
	sessionStore := session.NewDefaultStore(session.NewRedisKV(utils.GetSessionClient()))
	gw := gateway.NewClient()
	guard := utils.NewRedisSubmitGuard(utils.GetCacheClient())
	contentService := content.NewDefaultContentService(config.AppConfig.ContentDir)

	// services.
	bridge := &identity.DefaultBridge{
		Sessions:      sessionStore,
		Gateway:       gw,
		CreateUserURL: config.AppConfig.CreateUserURL,
		IP:            identity.NewIPResolver(config.AppConfig.IPLookupURL),
	}

	bookingService := &booking.DefaultBookingService{
		Sessions: sessionStore,
		Gateway:  gw,
		Content:  contentService,
		Guard:    guard,
		URL:      config.AppConfig.BookingURL,
	}

	providerService := &provider.DefaultProviderService{
		Sessions: sessionStore,
		Gateway:  gw,
		Guard:    guard,
		URL:      config.AppConfig.ServiceProviderURL,
	}

	myServicesService := &myservices.DefaultMyServicesService{
		Sessions: sessionStore,
		Gateway:  gw,
		URL:      config.AppConfig.MyServicesURL,
	}

	viewService := &view.DefaultViewService{
		Sessions: sessionStore,
		State:    view.NewRedisStateKV(utils.GetCacheClient()),
	}

	var docStore provider.DocumentStore = provider.InlineDocumentStore{}
	if cld != nil {
		docStore = &provider.CloudinaryDocumentStore{Cld: cld, Folder: "provider-documents"}
	}

	authHandler := handlers.NewAuthHandler(bridge, sessionStore)
	userHandler := handlers.NewUserHandler(sessionStore, gw)
	viewHandler := handlers.NewViewHandler(viewService)
	providerHandler := handlers.NewProviderHandler(providerService, docStore)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	myServicesHandler := handlers.NewMyServicesHandler(myServicesService)
	contentHandler := handlers.NewContentHandler(contentService)
	careersHandler := handlers.NewCareersHandler(contentService)
	expertHandler := handlers.NewExpertHandler()
	chatHandler := handlers.NewChatHandler(sessionStore, chat.NewClient(config.AppConfig.ChatURL))

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		GoogleSignInHandler: authHandler.GoogleSignInHandler,
		SignOutHandler:      authHandler.SignOutHandler,
		SessionHandler:      authHandler.SessionHandler,

		// User endpoints.
		GetMeHandler: userHandler.GetMeHandler,

		// View endpoints.
		EnterViewHandler: viewHandler.EnterViewHandler,

		// Provider endpoints.
		ProviderStatusHandler: providerHandler.GetStatusHandler,
		ProviderSubmitHandler: providerHandler.SubmitRequestHandler,

		// Booking endpoints.
		SubmitBookingHandler:  bookingHandler.SubmitBookingHandler,
		ListMyServicesHandler: myServicesHandler.ListHandler,

		// Content endpoints.
		HomeContentHandler: contentHandler.HomeContentHandler,
		ListJobsHandler:    careersHandler.ListJobsHandler,
		GetJobHandler:      careersHandler.GetJobHandler,

		// Expert endpoints.
		RegisterExpertHandler: expertHandler.RegisterExpertHandler,

		// Chat endpoints.
		SendMessageHandler: chatHandler.SendMessageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
