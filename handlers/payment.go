package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindhaven/models"
	"mindhaven/services/payment"
	"mindhaven/utils"
)

// PaymentHandler exposes gateway checkout initiation and the callback
// endpoints the gateway redirects through.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// InitiatePayment handles POST /api/payments/initiate (attendee).
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req models.PaymentInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	redirectURL, err := h.Service.Initiate(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Failed to initiate payment",
			zap.String("sessionID", req.SessionID), zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to initiate payment", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirectUrl": redirectURL})
}

// PaymentCallback handles GET /api/payments/callback/:sessionID/success|fail|cancel.
// The gateway drives the user's browser here, so every outcome ends in a
// redirect to the client dashboard.
func (h *PaymentHandler) PaymentCallback(outcome payment.CallbackOutcome) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")

		dashboardURL, err := h.Service.HandleCallback(c.Request.Context(), sessionID, outcome)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": "Payment callback failed", "message": err.Error()})
			return
		}
		c.Redirect(http.StatusFound, dashboardURL)
	}
}
