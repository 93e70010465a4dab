package middleware

import (
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// roleKey is the key used to store the authenticated user's role.
	roleKey = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetRoleFromContext retrieves the authenticated user's role from the request context.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	role, ok := c.Request.Context().Value(roleKey).(domain.Role)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
