package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"finance-portal/internal/finance"
	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

type BudgetLineRequest struct {
	CategoryID          uuid.UUID `json:"categoryId" binding:"required"`
	Amount              float64   `json:"amount"`
	SponsorContribution float64   `json:"sponsorContribution"`
	Remarks             string    `json:"remarks"`
}

type SubmitBudgetsRequest struct {
	Budgets []BudgetLineRequest `json:"budgets" binding:"required,min=1"`
}

type BudgetAdjustmentRequest struct {
	CategoryID     uuid.UUID `json:"categoryId" binding:"required"`
	ApprovedAmount float64   `json:"approvedAmount"`
}

type ApproveBudgetsRequest struct {
	Status            string                    `json:"status" binding:"required"`
	Remarks           string                    `json:"remarks" binding:"required"`
	BudgetAdjustments []BudgetAdjustmentRequest `json:"budgetAdjustments"`
}

func ListEventBudgets(c *gin.Context) {
	eventID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	var budgets []models.Budget
	err := gormDB.Preload("Category").Where("event_id = ?", event.ID).
		Order("created_at ASC").Find(&budgets).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving budgets.")
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// SubmitEventBudgets replaces the full budget-line set of a PENDING event.
// Resubmission overwrites earlier figures, it is never additive. The
// replace runs in one transaction so a failure applies nothing.
func SubmitEventBudgets(c *gin.Context) {
	eventID := c.Param("id")

	var req SubmitBudgetsRequest
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
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to submit budgets for this event.")
		return
	}

	if !finance.CanSubmitBudgets(event) {
		helpers.RespondWithError(c, http.StatusConflict, "Budgets can only be submitted while the event is pending.")
		return
	}

	seen := make(map[uuid.UUID]bool, len(req.Budgets))
	for _, line := range req.Budgets {
		if line.Amount < 0 || line.SponsorContribution < 0 {
			helpers.RespondWithError(c, http.StatusBadRequest, "Amounts must not be negative.")
			return
		}
		if seen[line.CategoryID] {
			helpers.RespondWithError(c, http.StatusBadRequest, "Each category may appear only once.")
			return
		}
		seen[line.CategoryID] = true

		var category models.BudgetCategory
		if err := gormDB.Where("id = ? AND is_active = ?", line.CategoryID, true).First(&category).Error; err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("Unknown or inactive category: %s.", line.CategoryID))
			return
		}
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("event_id = ?", event.ID).Delete(&models.Budget{}).Error; err != nil {
			return err
		}
		for _, line := range req.Budgets {
			budget := models.Budget{
				EventID:             event.ID,
				CategoryID:          line.CategoryID,
				Amount:              line.Amount,
				SponsorContribution: line.SponsorContribution,
				Remarks:             line.Remarks,
			}
			if err := tx.Create(&budget).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save budgets.")
		return
	}

	recordActivity(c, gormDB, "SUBMIT_BUDGETS", "Event", &event.ID, nil, req.Budgets)

	// Echo the persisted rows; they are the source of truth.
	var budgets []models.Budget
	if err := gormDB.Preload("Category").Where("event_id = ?", event.ID).Order("created_at ASC").Find(&budgets).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving budgets.")
		return
	}

	c.JSON(http.StatusCreated, budgets)
}

// ApproveEventBudgets is the finance decision: it moves a PENDING event to
// APPROVED or REJECTED and fixes every line's approved amount before
// anything is returned, so no decided budget ever carries a null
// approvedAmount.
func ApproveEventBudgets(c *gin.Context) {
	eventID := c.Param("id")

	var req ApproveBudgetsRequest
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

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	decision := models.EventStatus(req.Status)
	if err := finance.ValidateDecision(event, decision, req.Remarks); err != nil {
		switch err {
		case finance.ErrEventNotPending:
			helpers.RespondWithError(c, http.StatusConflict, "Only pending events can be approved or rejected.")
		default:
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	var budgets []models.Budget
	if err := gormDB.Where("event_id = ?", event.ID).Order("created_at ASC").Find(&budgets).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving budgets.")
		return
	}

	adjustments := make(map[uuid.UUID]float64, len(req.BudgetAdjustments))
	for _, adjustment := range req.BudgetAdjustments {
		if adjustment.ApprovedAmount < 0 {
			helpers.RespondWithError(c, http.StatusBadRequest, "Approved amounts must not be negative.")
			return
		}
		adjustments[adjustment.CategoryID] = adjustment.ApprovedAmount
	}

	finance.ApplyApprovedAmounts(budgets, adjustments)

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		for i := range budgets {
			if err := tx.Model(&models.Budget{}).Where("id = ?", budgets[i].ID).
				Update("approved_amount", budgets[i].ApprovedAmount).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Event{}).Where("id = ?", event.ID).
			Update("status", decision).Error
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save the decision.")
		return
	}

	event.Status = decision
	recordActivity(c, gormDB, "BUDGET_DECISION", "Event", &event.ID, nil, gin.H{
		"status":  decision,
		"remarks": req.Remarks,
	})

	verdict := "approved"
	notificationType := models.NotificationSuccess
	if decision == models.StatusRejected {
		verdict = "rejected"
		notificationType = models.NotificationWarning
	}
	notifyUser(gormDB, event.CreatorID, fmt.Sprintf("Budget %s", verdict),
		fmt.Sprintf("The budget for %q was %s. Remarks: %s", event.Title, verdict, req.Remarks),
		notificationType)

	logrus.WithFields(logrus.Fields{
		"event":  event.ID,
		"status": decision,
	}).Info("budget decision recorded")

	var updated []models.Budget
	if err := gormDB.Preload("Category").Where("event_id = ?", event.ID).Order("created_at ASC").Find(&updated).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving budgets.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":   event,
		"budgets": updated,
	})
}
