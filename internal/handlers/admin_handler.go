package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finance-portal/internal/finance"
	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

// GetAdminStats aggregates the portal-wide counters for the admin
// dashboard.
func GetAdminStats(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var totalUsers, totalEvents, pendingEvents, approvedEvents int64
	gormDB.Model(&models.User{}).Count(&totalUsers)
	gormDB.Model(&models.Event{}).Count(&totalEvents)
	gormDB.Model(&models.Event{}).Where("status = ?", models.StatusPending).Count(&pendingEvents)
	gormDB.Model(&models.Event{}).Where("status = ?", models.StatusApproved).Count(&approvedEvents)

	var budgets []models.Budget
	if err := gormDB.Find(&budgets).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving budgets.")
		return
	}
	var expenses []models.Expense
	if err := gormDB.Find(&expenses).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving expenses.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":     totalUsers,
		"totalEvents":    totalEvents,
		"pendingEvents":  pendingEvents,
		"approvedEvents": approvedEvents,
		"totalBudget":    finance.TotalApproved(budgets),
		"totalExpenses":  finance.TotalExpenses(expenses),
	})
}

// ListActivityLogs pages through the audit trail, optionally filtered by
// entity kind or acting user.
func ListActivityLogs(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page, limit, err := helpers.Pagination(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	query := gormDB.Model(&models.ActivityLog{})
	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}
	if userID := c.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var totalCount int64
	query.Count(&totalCount)

	var logs []models.ActivityLog
	offset := (page - 1) * limit
	if err := query.Preload("User").Offset(offset).Limit(limit).Order("created_at DESC").Find(&logs).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving logs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs": logs,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": totalCount,
			"pages": (totalCount + int64(limit) - 1) / int64(limit),
		},
	})
}
