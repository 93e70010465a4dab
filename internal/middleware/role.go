package middleware

import (
	"net/http"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests whose token does not carry the admin role.
// It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if role != domain.RoleAdmin {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin role required", "role", string(role))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator role required"})
			return
		}
		c.Next()
	}
}
