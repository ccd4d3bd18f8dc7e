package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindhaven/models"
	"mindhaven/services/auth"
)

// AuthHandler exposes the password-reset token flow. Login and credential
// storage live in the external auth service.
type AuthHandler struct {
	Reset auth.ResetService
}

func NewAuthHandler(reset auth.ResetService) *AuthHandler {
	return &AuthHandler{Reset: reset}
}

// InitiatePasswordReset handles POST /api/auth/password-reset/initiate.
// Always answers 200 so callers cannot probe which accounts exist.
func (h *AuthHandler) InitiatePasswordReset(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Reset.InitiateReset(c.Request.Context(), models.UserRef(req.Email)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset token has been sent"})
}

// VerifyPasswordReset handles POST /api/auth/password-reset/verify. The
// returned proof token is single-use evidence for the auth service.
func (h *AuthHandler) VerifyPasswordReset(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	proof, err := h.Reset.VerifyReset(c.Request.Context(), models.UserRef(req.Email), req.Token)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Reset verification failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"proofToken": proof})
}
