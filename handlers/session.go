package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindhaven/middleware"
	"mindhaven/models"
	"mindhaven/services/session"
	"mindhaven/utils"
)

// SessionHandler exposes the session lifecycle over HTTP.
type SessionHandler struct {
	Service session.SessionService
}

func NewSessionHandler(svc session.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

// RequestSession handles POST /api/sessions/request (attendee).
func (h *SessionHandler) RequestSession(c *gin.Context) {
	attendee, ok := middleware.CallerRef(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Attendee not authenticated"})
		return
	}

	var req struct {
		Professional string `json:"professional" binding:"required"`
		SessionType  string `json:"sessionType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sess, err := h.Service.Request(c.Request.Context(), session.RequestInput{
		Attendee:     attendee,
		Professional: models.UserRef(req.Professional),
		SessionType:  req.SessionType,
	})
	if err != nil {
		utils.GetLogger().Error("Failed to request session", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to request session", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": sess})
}

// DecideSession handles POST /api/sessions/id/:id/decide (professional).
func (h *SessionHandler) DecideSession(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status        string     `json:"status" binding:"required"`
		ScheduledDate *time.Time `json:"scheduledDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sess, err := h.Service.Decide(c.Request.Context(), id, session.Decision{
		Status:        req.Status,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to decide session", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// CompleteSession handles POST /api/sessions/id/:id/complete (professional).
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	sess, err := h.Service.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to complete session", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// AttachRecommendation handles POST /api/sessions/id/:id/recommendations.
func (h *SessionHandler) AttachRecommendation(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	sess, err := h.Service.AttachRecommendation(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to attach recommendation", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// GetSession handles GET /api/sessions/id/:id, scoped to the two parties.
func (h *SessionHandler) GetSession(c *gin.Context) {
	caller, ok := middleware.CallerRef(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	sess, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to fetch session", "message": err.Error()})
		return
	}
	if sess.AttendeeRef != caller && sess.ProfessionalRef != caller {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a party to this session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// ListAttendeeSessions handles GET /api/sessions/attendee.
func (h *SessionHandler) ListAttendeeSessions(c *gin.Context) {
	caller, ok := middleware.CallerRef(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	sessions, err := h.Service.ListByAttendee(c.Request.Context(), caller)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to list sessions", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// ListProfessionalSessions handles GET /api/sessions/professional.
func (h *SessionHandler) ListProfessionalSessions(c *gin.Context) {
	caller, ok := middleware.CallerRef(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	sessions, err := h.Service.ListByProfessional(c.Request.Context(), caller)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to list sessions", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// JoinAccess handles GET /api/sessions/id/:id/join. Recomputed per request.
func (h *SessionHandler) JoinAccess(c *gin.Context) {
	caller, ok := middleware.CallerRef(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	sess, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to fetch session", "message": err.Error()})
		return
	}
	if sess.AttendeeRef != caller && sess.ProfessionalRef != caller {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a party to this session"})
		return
	}

	verdict, err := h.Service.JoinAccess(c.Request.Context(), sess.ID, time.Now())
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to evaluate join access", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, verdict)
}
