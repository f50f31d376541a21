package middleware

import (
	"net/http"

	"go-ems/internal/authz"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Require gates a route on the capability table. It assumes Auth already
// resolved the caller; a role outside the table's rule ends the request
// with 403.
func Require(capability authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Authentication is required", nil)
			c.Abort()
			return
		}

		roleStr, _ := role.(string)
		if !authz.Allowed(capability, roleStr) {
			response.Error(c, http.StatusForbidden, "You do not have permission to perform this action", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
