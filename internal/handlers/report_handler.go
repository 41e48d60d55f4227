package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finance-portal/internal/finance"
	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

type eventSummaryRow struct {
	Event          models.Event
	TotalRequested float64
	TotalApproved  float64
	TotalSponsor   float64
	TotalExpenses  float64
	Remaining      float64
	Usage          float64
}

func loadEventFinancials(gormDB *gorm.DB, eventID string) (*models.Event, []models.Budget, []models.Expense, error) {
	var event models.Event
	err := gormDB.Preload("Creator").Preload("Coordinator").Where("id = ?", eventID).First(&event).Error
	if err != nil {
		return nil, nil, nil, err
	}

	var budgets []models.Budget
	if err := gormDB.Preload("Category").Where("event_id = ?", event.ID).Find(&budgets).Error; err != nil {
		return nil, nil, nil, err
	}

	var expenses []models.Expense
	err = gormDB.Preload("Category").Preload("AddedBy").
		Where("event_id = ?", event.ID).Order("created_at ASC").Find(&expenses).Error
	if err != nil {
		return nil, nil, nil, err
	}

	return &event, budgets, expenses, nil
}

// GetEventFinancialReport assembles the full picture for one event:
// budget lines, expense lines and the derived totals.
func GetEventFinancialReport(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event, budgets, expenses, err := loadEventFinancials(gormDB, c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error assembling report.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event":    event,
		"budgets":  budgets,
		"expenses": expenses,
		"summary": gin.H{
			"totalBudget":              finance.TotalRequested(budgets),
			"totalApprovedBudget":      finance.TotalApproved(budgets),
			"totalExpenses":            finance.TotalExpenses(expenses),
			"totalSponsorContribution": finance.TotalSponsor(budgets),
			"netRequest":               finance.NetRequest(budgets),
			"remaining":                finance.Remaining(budgets, expenses),
			"usagePercentage":          finance.UsagePercentage(budgets, expenses),
		},
	})
}

func collectSummaryRows(gormDB *gorm.DB) ([]eventSummaryRow, error) {
	var events []models.Event
	err := gormDB.Preload("Budgets").Preload("Expenses").Order("created_at DESC").Find(&events).Error
	if err != nil {
		return nil, err
	}

	rows := make([]eventSummaryRow, 0, len(events))
	for _, event := range events {
		rows = append(rows, eventSummaryRow{
			Event:          event,
			TotalRequested: finance.TotalRequested(event.Budgets),
			TotalApproved:  finance.TotalApproved(event.Budgets),
			TotalSponsor:   finance.TotalSponsor(event.Budgets),
			TotalExpenses:  finance.TotalExpenses(event.Expenses),
			Remaining:      finance.Remaining(event.Budgets, event.Expenses),
			Usage:          finance.UsagePercentage(event.Budgets, event.Expenses),
		})
	}
	return rows, nil
}

// GetSummaryReport lists every event with its derived totals.
func GetSummaryReport(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	rows, err := collectSummaryRows(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error assembling report.")
		return
	}

	report := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		report = append(report, gin.H{
			"id":                       row.Event.ID,
			"title":                    row.Event.Title,
			"type":                     row.Event.Type,
			"status":                   row.Event.Status,
			"totalBudget":              row.TotalRequested,
			"totalApprovedBudget":      row.TotalApproved,
			"totalExpenses":            row.TotalExpenses,
			"totalSponsorContribution": row.TotalSponsor,
			"remaining":                row.Remaining,
			"usagePercentage":          row.Usage,
		})
	}

	c.JSON(http.StatusOK, report)
}

// ExportSummaryReportCSV renders the summary report as a CSV download:
// one header row, quoted text fields.
func ExportSummaryReportCSV(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	rows, err := collectSummaryRows(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error assembling report.")
		return
	}

	header := []string{"Title", "Type", "Status", "Requested", "Approved", "Sponsor", "Expenses", "Remaining", "Usage %"}
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Event.Title,
			string(row.Event.Type),
			string(row.Event.Status),
			fmt.Sprintf("%.2f", row.TotalRequested),
			fmt.Sprintf("%.2f", row.TotalApproved),
			fmt.Sprintf("%.2f", row.TotalSponsor),
			fmt.Sprintf("%.2f", row.TotalExpenses),
			fmt.Sprintf("%.2f", row.Remaining),
			fmt.Sprintf("%.1f", row.Usage),
		})
	}

	filename := fmt.Sprintf("summary-report-%s.csv", time.Now().Format("2006-01-02"))
	if err := helpers.WriteCSV(c, filename, header, records); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate CSV.")
	}
}

// ExportEventFinancialReportCSV renders one event's budget and expense
// lines as a CSV download.
func ExportEventFinancialReportCSV(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event, budgets, expenses, err := loadEventFinancials(gormDB, c.Param("id"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error assembling report.")
		return
	}

	header := []string{"Section", "Category", "Item", "Quantity", "Unit Price", "Amount", "Approved", "Sponsor"}
	records := make([][]string, 0, len(budgets)+len(expenses))
	for _, budget := range budgets {
		categoryName := ""
		if budget.Category != nil {
			categoryName = budget.Category.Name
		}
		approved := budget.Amount
		if budget.ApprovedAmount != nil {
			approved = *budget.ApprovedAmount
		}
		records = append(records, []string{
			"Budget", categoryName, "", "", "",
			fmt.Sprintf("%.2f", budget.Amount),
			fmt.Sprintf("%.2f", approved),
			fmt.Sprintf("%.2f", budget.SponsorContribution),
		})
	}
	for _, expense := range expenses {
		categoryName := ""
		if expense.Category != nil {
			categoryName = expense.Category.Name
		}
		records = append(records, []string{
			"Expense", categoryName, expense.ItemName,
			fmt.Sprintf("%d", expense.Quantity),
			fmt.Sprintf("%.2f", expense.UnitPrice),
			fmt.Sprintf("%.2f", expense.Amount),
			"", "",
		})
	}

	filename := fmt.Sprintf("financial-report-%s.csv", event.ID)
	if err := helpers.WriteCSV(c, filename, header, records); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate CSV.")
	}
}
