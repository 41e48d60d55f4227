package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

type CreateNotificationRequest struct {
	Title      string `json:"title" binding:"required"`
	Message    string `json:"message" binding:"required"`
	Type       string `json:"type" binding:"required"`
	TargetRole string `json:"targetRole"`
	SendToAll  bool   `json:"sendToAll"`
}

// ListNotifications pages through the caller's notifications and always
// reports the total unread count alongside.
func ListNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

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

	query := gormDB.Model(&models.Notification{}).Where("user_id = ?", userID)
	if c.Query("unreadOnly") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var totalCount int64
	query.Count(&totalCount)

	var notifications []models.Notification
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&notifications).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving notifications.")
		return
	}

	var unreadCount int64
	gormDB.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&unreadCount)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": totalCount,
			"pages": (totalCount + int64(limit) - 1) / int64(limit),
		},
		"unreadCount": unreadCount,
	})
}

// CreateNotification fans a message out to a role, to everyone, or stays
// admin-only noise if neither target is given.
func CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !models.NotificationType(req.Type).Valid() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid notification type.")
		return
	}
	if req.TargetRole != "" && !models.Role(req.TargetRole).Valid() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid target role.")
		return
	}
	if req.TargetRole == "" && !req.SendToAll {
		helpers.RespondWithError(c, http.StatusBadRequest, "Either targetRole or sendToAll is required.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Model(&models.User{}).Where("is_active = ?", true)
	if !req.SendToAll {
		query = query.Where("role = ?", req.TargetRole)
	}

	var recipients []models.User
	if err := query.Find(&recipients).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving recipients.")
		return
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		for _, recipient := range recipients {
			notification := models.Notification{
				UserID:  recipient.ID,
				Title:   req.Title,
				Message: req.Message,
				Type:    models.NotificationType(req.Type),
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create notifications.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Notification sent successfully.",
		"recipients": len(recipients),
	})
}

func MarkNotificationRead(c *gin.Context) {
	notificationID := c.Param("id")

	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var notification models.Notification
	if err := gormDB.Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Notification not found.")
		return
	}

	notification.IsRead = true
	if err := gormDB.Save(&notification).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification.")
		return
	}

	c.JSON(http.StatusOK, notification)
}

func MarkAllNotificationsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	err := gormDB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update notifications.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read."})
}
