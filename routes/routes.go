package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mindhaven/database"
	"mindhaven/handlers"
	"mindhaven/middleware"
	"mindhaven/services/payment"
	"mindhaven/utils"
)

// RegisterSessionRoutes registers the session lifecycle endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.JWTAuthMiddleware())

		attendee := api.Group("")
		attendee.Use(middleware.RequireRole(middleware.RoleAttendee))
		attendee.POST("/request", hb.Session.RequestSession)
		attendee.GET("/attendee", hb.Session.ListAttendeeSessions)

		professional := api.Group("")
		professional.Use(middleware.RequireRole(middleware.RoleProfessional))
		professional.GET("/professional", hb.Session.ListProfessionalSessions)
		professional.POST("/id/:id/decide", hb.Session.DecideSession)
		professional.POST("/id/:id/complete", hb.Session.CompleteSession)
		professional.POST("/id/:id/recommendations", hb.Session.AttachRecommendation)

		// Either party.
		api.GET("/id/:id", hb.Session.GetSession)
		api.GET("/id/:id/join", hb.Session.JoinAccess)
	}
}

// RegisterAvailabilityRoutes registers slot publishing and booking.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/publish", middleware.RequireRole(middleware.RoleProfessional), hb.Availability.PublishSlots)
		api.GET("/open/:professional", hb.Availability.ListOpenSlots)
		api.POST("/book/:slotID", middleware.RequireRole(middleware.RoleAttendee), hb.Availability.BookSlot)
	}
}

// RegisterPaymentRoutes registers checkout initiation and gateway callbacks.
// The callbacks are browser redirects from the gateway and carry no bearer
// token, so they stay outside the auth middleware.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/initiate", middleware.JWTAuthMiddleware(), middleware.RequireRole(middleware.RoleAttendee), hb.Payment.InitiatePayment)
		api.GET("/callback/:sessionID/success", hb.Payment.PaymentCallback(payment.OutcomeSuccess))
		api.GET("/callback/:sessionID/fail", hb.Payment.PaymentCallback(payment.OutcomeFail))
		api.GET("/callback/:sessionID/cancel", hb.Payment.PaymentCallback(payment.OutcomeCancel))
	}
}

// RegisterAuthRoutes registers the password-reset token endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/password-reset/initiate", hb.Auth.InitiatePasswordReset)
		api.POST("/password-reset/verify", hb.Auth.VerifyPasswordReset)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		if database.MongoClient != nil {
			if err := utils.HealthCheck(database.MongoClient); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
