package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

type EventRequest struct {
	Title                string     `json:"title" binding:"required,min=3"`
	Description          string     `json:"description"`
	Type                 string     `json:"type" binding:"required"`
	Venue                string     `json:"venue"`
	DateTime             *time.Time `json:"dateTime"`
	ExpectedParticipants *int       `json:"expectedParticipants"`
	CoordinatorID        *uuid.UUID `json:"coordinatorId"`
}

func CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !models.EventType(req.Type).Valid() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event type.")
		return
	}

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

	if req.CoordinatorID != nil {
		var coordinator models.User
		if err := gormDB.Where("id = ?", req.CoordinatorID).First(&coordinator).Error; err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Coordinator not found.")
			return
		}
	}

	event := models.Event{
		Title:                req.Title,
		Description:          req.Description,
		Type:                 models.EventType(req.Type),
		Status:               models.StatusPending,
		Venue:                req.Venue,
		DateTime:             req.DateTime,
		ExpectedParticipants: req.ExpectedParticipants,
		CreatorID:            userID,
		CoordinatorID:        req.CoordinatorID,
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	recordActivity(c, gormDB, "CREATE", "Event", &event.ID, nil, event)

	c.JSON(http.StatusCreated, event)
}

// ListEvents scopes the result to what the caller's role works with:
// leads see what they created, coordinators what they coordinate,
// facilities only approved events; finance and admin see everything.
func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	role, _ := currentRole(c)

	query := gormDB.Model(&models.Event{})
	switch role {
	case models.RoleEventTeamLead, models.RoleWorkshopTeamLead:
		query = query.Where("creator_id = ?", userID)
	case models.RoleEventCoordinator, models.RoleWorkshopCoordinator:
		query = query.Where("coordinator_id = ?", userID)
	case models.RoleFacilitiesTeam:
		query = query.Where("status = ?", models.StatusApproved)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if eventType := c.Query("type"); eventType != "" {
		query = query.Where("type = ?", eventType)
	}

	var events []models.Event
	err := query.Preload("Creator").Preload("Coordinator").Preload("Budgets").
		Order("created_at DESC").Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, events)
}

func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	err := gormDB.Preload("Creator").Preload("Coordinator").
		Preload("Budgets.Category").Preload("Expenses.Category").
		Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

type UpdateEventRequest struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Type                 string     `json:"type"`
	Venue                string     `json:"venue"`
	DateTime             *time.Time `json:"dateTime"`
	ExpectedParticipants *int       `json:"expectedParticipants"`
	CoordinatorID        *uuid.UUID `json:"coordinatorId"`
	Status               string     `json:"status"`
}

func UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	role, _ := currentRole(c)

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if role != models.RoleAdmin && event.CreatorID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to update this event.")
		return
	}

	previous := event

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Type != "" {
		if !models.EventType(req.Type).Valid() {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event type.")
			return
		}
		event.Type = models.EventType(req.Type)
	}
	if req.Venue != "" {
		event.Venue = req.Venue
	}
	if req.DateTime != nil {
		event.DateTime = req.DateTime
	}
	if req.ExpectedParticipants != nil {
		event.ExpectedParticipants = req.ExpectedParticipants
	}
	if req.CoordinatorID != nil {
		event.CoordinatorID = req.CoordinatorID
	}

	// Status is an administrative edit: the only legal change here is
	// APPROVED -> COMPLETED. Approval decisions go through the budget
	// approval endpoint and nothing ever returns to PENDING.
	if req.Status != "" && models.EventStatus(req.Status) != event.Status {
		if models.EventStatus(req.Status) != models.StatusCompleted || event.Status != models.StatusApproved {
			helpers.RespondWithError(c, http.StatusConflict, "Only approved events can be marked completed.")
			return
		}
		event.Status = models.StatusCompleted
	}

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	recordActivity(c, gormDB, "UPDATE", "Event", &event.ID, previous, event)

	c.JSON(http.StatusOK, event)
}

func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")

	userID, ok := currentUserID(c)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	role, _ := currentRole(c)

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	if role != models.RoleAdmin && event.CreatorID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to delete this event.")
		return
	}

	var expenseCount int64
	gormDB.Model(&models.Expense{}).Where("event_id = ?", event.ID).Count(&expenseCount)
	if expenseCount > 0 {
		helpers.RespondWithError(c, http.StatusConflict, "Events with recorded expenses cannot be deleted.")
		return
	}

	if err := gormDB.Delete(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	recordActivity(c, gormDB, "DELETE", "Event", &event.ID, event, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}
