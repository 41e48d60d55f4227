package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"finance-portal/internal/models"
)

// recordActivity appends an admin audit-trail entry. Failures are logged
// and swallowed; the audit trail never fails the request that produced it.
func recordActivity(c *gin.Context, db *gorm.DB, action, entity string, entityID *uuid.UUID, oldValues, newValues interface{}) {
	entry := models.ActivityLog{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if value, exists := c.Get("user_id"); exists {
		if id, err := uuid.Parse(value.(string)); err == nil {
			entry.UserID = &id
		}
	}
	if oldValues != nil {
		if data, err := json.Marshal(oldValues); err == nil {
			entry.OldValues = string(data)
		}
	}
	if newValues != nil {
		if data, err := json.Marshal(newValues); err == nil {
			entry.NewValues = string(data)
		}
	}

	if err := db.Create(&entry).Error; err != nil {
		logrus.WithError(err).Warn("failed to record activity log entry")
	}
}

// notifyUser drops an in-portal notification for one user.
func notifyUser(db *gorm.DB, userID uuid.UUID, title, message string, notificationType models.NotificationType) {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
	}
	if err := db.Create(&notification).Error; err != nil {
		logrus.WithError(err).Warn("failed to create notification")
	}
}

// currentUserID parses the authenticated user id from the request context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// currentRole reads the authenticated role from the request context.
func currentRole(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get("role")
	if !exists {
		return "", false
	}
	role, ok := value.(models.Role)
	return role, ok
}
