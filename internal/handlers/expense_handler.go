package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"finance-portal/internal/finance"
	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

type CreateExpenseRequest struct {
	EventID    uuid.UUID  `json:"eventId" binding:"required"`
	CategoryID uuid.UUID  `json:"categoryId" binding:"required"`
	ItemName   string     `json:"itemName" binding:"required"`
	Quantity   int        `json:"quantity" binding:"required"`
	UnitPrice  float64    `json:"unitPrice"`
	Amount     float64    `json:"amount"`
	Remarks    string     `json:"remarks"`
	ProductID  *uuid.UUID `json:"productId"`
}

type UpdateExpenseRequest struct {
	ItemName  string   `json:"itemName"`
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice"`
	Remarks   string   `json:"remarks"`
}

func ListEventExpenses(c *gin.Context) {
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

	var expenses []models.Expense
	err := gormDB.Preload("Category").Preload("AddedBy").Preload("Product").
		Where("event_id = ?", event.ID).Order("created_at DESC").Find(&expenses).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving expenses.")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetEventExpenseSummary reports per-category budget versus spend. The
// remaining figure goes negative when a category is overspent; nothing
// here blocks that, clients render it as a warning.
func GetEventExpenseSummary(c *gin.Context) {
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
	if err := gormDB.Preload("Category").Where("event_id = ?", event.ID).Find(&budgets).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving budgets.")
		return
	}

	var expenses []models.Expense
	if err := gormDB.Where("event_id = ?", event.ID).Find(&expenses).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving expenses.")
		return
	}

	type categorySummary struct {
		Category     *models.BudgetCategory `json:"category"`
		BudgetAmount float64                `json:"budgetAmount"`
		TotalExpense float64                `json:"totalExpense"`
		Remaining    float64                `json:"remaining"`
		ExpenseCount int                    `json:"expenseCount"`
	}

	summaries := make([]categorySummary, 0, len(budgets))
	for _, budget := range budgets {
		approved := budget.Amount
		if budget.ApprovedAmount != nil {
			approved = *budget.ApprovedAmount
		}

		var spent float64
		var count int
		for _, expense := range expenses {
			if expense.CategoryID == budget.CategoryID {
				spent += expense.Amount
				count++
			}
		}

		summaries = append(summaries, categorySummary{
			Category:     budget.Category,
			BudgetAmount: approved,
			TotalExpense: spent,
			Remaining:    approved - spent,
			ExpenseCount: count,
		})
	}

	c.JSON(http.StatusOK, summaries)
}

func CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
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

	var event models.Event
	if err := gormDB.Where("id = ?", req.EventID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	if err := finance.ValidateExpense(event, req.Quantity, req.UnitPrice, req.Amount); err != nil {
		if err == finance.ErrEventNotApproved {
			helpers.RespondWithError(c, http.StatusConflict, "Expenses can only be recorded against approved events.")
			return
		}
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var category models.BudgetCategory
	if err := gormDB.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Unknown category.")
		return
	}

	if req.ProductID != nil {
		var product models.Product
		if err := gormDB.Where("id = ?", req.ProductID).First(&product).Error; err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Unknown product.")
			return
		}
	}

	expense := models.Expense{
		EventID:    event.ID,
		CategoryID: req.CategoryID,
		ItemName:   req.ItemName,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		Amount:     finance.LineAmount(req.Quantity, req.UnitPrice),
		Remarks:    req.Remarks,
		AddedByID:  userID,
		ProductID:  req.ProductID,
	}

	if err := gormDB.Create(&expense).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to record expense.")
		return
	}

	recordActivity(c, gormDB, "CREATE", "Expense", &expense.ID, nil, expense)

	c.JSON(http.StatusCreated, expense)
}

// UpdateExpense edits a line while its event is still APPROVED. Amount is
// recomputed whenever quantity or unit price changes; the untouched field
// keeps its stored value.
func UpdateExpense(c *gin.Context) {
	expenseID := c.Param("id")

	var req UpdateExpenseRequest
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

	var expense models.Expense
	if err := gormDB.Preload("Event").Where("id = ?", expenseID).First(&expense).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Expense not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding expense.")
		return
	}

	if role != models.RoleAdmin && expense.AddedByID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to update this expense.")
		return
	}

	if expense.Event != nil && expense.Event.Status != models.StatusApproved {
		helpers.RespondWithError(c, http.StatusConflict, "Expenses can only be edited while the event is approved.")
		return
	}

	previous := expense

	if req.ItemName != "" {
		expense.ItemName = req.ItemName
	}
	if req.Remarks != "" {
		expense.Remarks = req.Remarks
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			helpers.RespondWithError(c, http.StatusBadRequest, "Quantity must be greater than zero.")
			return
		}
		expense.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		if *req.UnitPrice < 0 {
			helpers.RespondWithError(c, http.StatusBadRequest, "Unit price must not be negative.")
			return
		}
		expense.UnitPrice = *req.UnitPrice
	}
	expense.Amount = finance.LineAmount(expense.Quantity, expense.UnitPrice)

	if err := gormDB.Save(&expense).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update expense.")
		return
	}

	recordActivity(c, gormDB, "UPDATE", "Expense", &expense.ID, previous, expense)

	c.JSON(http.StatusOK, expense)
}

// UploadExpenseReceipt attaches a scanned receipt to an expense line.
// Re-uploading replaces the stored file.
func UploadExpenseReceipt(c *gin.Context) {
	expenseID := c.Param("id")

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

	var expense models.Expense
	if err := gormDB.Where("id = ?", expenseID).First(&expense).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Expense not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding expense.")
		return
	}

	if role != models.RoleAdmin && expense.AddedByID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to update this expense.")
		return
	}

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Receipt file is required.")
		return
	}

	path, err := helpers.UploadFile(c, fileHeader, "receipts")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if expense.ReceiptURL != "" {
		if err := helpers.DeleteFile(expense.ReceiptURL); err != nil {
			logrus.WithError(err).Warn("failed to remove replaced receipt file")
		}
	}

	expense.ReceiptURL = path
	if err := gormDB.Save(&expense).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update expense.")
		return
	}

	c.JSON(http.StatusOK, expense)
}

func DeleteExpense(c *gin.Context) {
	expenseID := c.Param("id")

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

	var expense models.Expense
	if err := gormDB.Where("id = ?", expenseID).First(&expense).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Expense not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding expense.")
		return
	}

	if role != models.RoleAdmin && expense.AddedByID != userID {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to delete this expense.")
		return
	}

	if err := gormDB.Delete(&expense).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense.")
		return
	}

	recordActivity(c, gormDB, "DELETE", "Expense", &expense.ID, expense, nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully."})
}
