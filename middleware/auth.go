// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mindhaven/models"
	"mindhaven/utils"
)

// Role claim values issued by the auth service.
const (
	RoleAttendee     = "attendee"
	RoleProfessional = "professional"
)

// Context keys set for downstream handlers.
const (
	CtxUserRef = "userRef"
	CtxRole    = "role"
)

// JWTAuthMiddleware validates the bearer token issued by the auth service and
// places the caller's reference and role in the gin context. Token issuance
// and revocation are not handled here.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(CtxUserRef, models.UserRef(claims.Subject))
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group to one role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

// CallerRef returns the authenticated caller's reference.
func CallerRef(c *gin.Context) (models.UserRef, bool) {
	v, ok := c.Get(CtxUserRef)
	if !ok {
		return "", false
	}
	ref, ok := v.(models.UserRef)
	return ref, ok && ref != ""
}
