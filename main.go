// File: mindhaven/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"mindhaven/config"
	"mindhaven/database"
	sessionRepo "mindhaven/database/repository/session"
	slotRepo "mindhaven/database/repository/slot"
	"mindhaven/handlers"
	"mindhaven/middleware"
	"mindhaven/routes"
	authsvc "mindhaven/services/auth"
	"mindhaven/services/availability"
	"mindhaven/services/notification"
	"mindhaven/services/payment"
	"mindhaven/services/session"
	"mindhaven/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitResetTokenCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	sessRepo := sessionRepo.NewMongoSessionRepo()
	slotsRepo := slotRepo.NewMongoSlotRepo()

	indexCtx, cancelIdx := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIdx()
	if err := sessRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure session indexes: %v", err)
	}
	if err := slotsRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure slot indexes: %v", err)
	}

	// services.
	notifier := &notification.LogNotifier{Logger: logger}

	sessionService := &session.DefaultSessionService{
		Repo:     sessRepo,
		Notifier: notifier,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:  slotsRepo,
		Cache: utils.GetCacheClient(),
	}
	paymentService := &payment.DefaultPaymentService{
		Sessions:     sessionService,
		Gateway:      &payment.StripeGateway{PublicBaseURL: config.AppConfig.PublicBaseURL},
		DashboardURL: config.AppConfig.ClientBaseURL + "/dashboard",
	}
	resetService := &authsvc.DefaultResetService{
		Store:    utils.NewResetTokenStore(utils.GetResetTokenCacheClient(), 15*time.Minute),
		Notifier: notifier,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Session:      handlers.NewSessionHandler(sessionService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Payment:      handlers.NewPaymentHandler(paymentService),
		Auth:         handlers.NewAuthHandler(resetService),
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
