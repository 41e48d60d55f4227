package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

// RequireRoles enforces that the authenticated role is one of the given
// roles. ADMIN is always admitted; every role-scoped surface of the portal
// is a subset of what ADMIN can reach.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles)+1)
	allowed[models.RoleAdmin] = true
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		value, exists := c.Get("role")
		role, ok := value.(models.Role)
		if !exists || !ok || !allowed[role] {
			helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to access this resource.")
			c.Abort()
			return
		}
		c.Next()
	}
}
