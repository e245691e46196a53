package middleware

import (
	"net/http"

	"skilledup-backend/internal/delivery/http/response"
	"skilledup-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRole aborts unless the authenticated user carries one of the
// given roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyUserRole))
		if !allowed[role] {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
