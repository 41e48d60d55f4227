package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

type VenueRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity"`
	Location    string `json:"location"`
	Facilities  string `json:"facilities"`
}

type UpdateVenueRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    *int   `json:"capacity"`
	Location    string `json:"location"`
	Facilities  string `json:"facilities"`
	IsActive    *bool  `json:"isActive"`
}

func CreateVenue(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	venue := models.Venue{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		Location:    req.Location,
		Facilities:  req.Facilities,
		IsActive:    true,
	}

	if err := gormDB.Create(&venue).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create venue.")
		return
	}

	c.JSON(http.StatusCreated, venue)
}

func ListVenues(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Model(&models.Venue{})
	if c.Query("activeOnly") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var venues []models.Venue
	if err := query.Order("name ASC").Find(&venues).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving venues.")
		return
	}

	c.JSON(http.StatusOK, venues)
}

func UpdateVenue(c *gin.Context) {
	venueID := c.Param("id")

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var venue models.Venue
	if err := gormDB.Where("id = ?", venueID).First(&venue).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding venue.")
		return
	}

	if req.Name != "" {
		venue.Name = req.Name
	}
	if req.Description != "" {
		venue.Description = req.Description
	}
	if req.Capacity != nil {
		venue.Capacity = req.Capacity
	}
	if req.Location != "" {
		venue.Location = req.Location
	}
	if req.Facilities != "" {
		venue.Facilities = req.Facilities
	}
	if req.IsActive != nil {
		venue.IsActive = *req.IsActive
	}

	if err := gormDB.Save(&venue).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update venue.")
		return
	}

	c.JSON(http.StatusOK, venue)
}

func DeleteVenue(c *gin.Context) {
	venueID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Model(&models.Venue{}).Where("id = ?", venueID).Update("is_active", false)
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate venue.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Venue deactivated successfully."})
}

// AssignVenue points an approved event at a venue. Pending events keep
// their requested venue text until approval settles where they run.
func AssignVenue(c *gin.Context) {
	venueID := c.Param("id")
	eventID := c.Param("eventId")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var venue models.Venue
	if err := gormDB.Where("id = ? AND is_active = ?", venueID, true).First(&venue).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Venue not found or inactive.")
		return
	}

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	if event.Status != models.StatusApproved {
		helpers.RespondWithError(c, http.StatusConflict, "Venues can only be assigned to approved events.")
		return
	}

	event.Venue = venue.Name
	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to assign venue.")
		return
	}

	recordActivity(c, gormDB, "ASSIGN_VENUE", "Event", &event.ID, nil, gin.H{"venue": venue.Name})

	if event.CoordinatorID != nil {
		notifyUser(gormDB, *event.CoordinatorID, "Venue assigned",
			"Venue "+venue.Name+" was assigned to "+event.Title+".", models.NotificationInfo)
	}

	c.JSON(http.StatusOK, event)
}

// ListEventsForAssignment lists approved events still without a venue.
func ListEventsForAssignment(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var events []models.Event
	err := gormDB.Where("status = ? AND (venue IS NULL OR venue = '')", models.StatusApproved).
		Order("date_time ASC").Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, events)
}
