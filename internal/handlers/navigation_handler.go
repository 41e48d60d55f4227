package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-portal/internal/access"
	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

// GetNavigation returns everything a client needs to render the shell for
// the caller's role: the dashboard variant, the sidebar menu and the set
// of portal paths the role may open.
func GetNavigation(c *gin.Context) {
	value, exists := c.Get("role")
	role, ok := value.(models.Role)
	if !exists || !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Role not found in token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dashboard":    access.DashboardFor(&role),
		"menu":         access.MenuFor(role),
		"allowedPaths": access.AllowedPaths(role),
	})
}
