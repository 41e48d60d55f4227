package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-portal/internal/models"
)

type decisionResponse struct {
	Event   models.Event    `json:"event"`
	Budgets []models.Budget `json:"budgets"`
}

func (s *PortalSuite) TestBudgetApprovalFlow() {
	event := s.createEvent("Tech Symposium")
	s.Equal(models.StatusPending, event.Status)

	recorder := s.submitBudget(event.ID, s.equipment.ID, 1000, 0)
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = s.approve(event.ID, gin.H{
		"status":  "APPROVED",
		"remarks": "Approved with a reduced equipment figure.",
		"budgetAdjustments": []gin.H{
			{"categoryId": s.equipment.ID, "approvedAmount": 900},
		},
	})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var decision decisionResponse
	s.decode(recorder, &decision)
	s.Equal(models.StatusApproved, decision.Event.Status)
	s.Require().Len(decision.Budgets, 1)
	s.Require().NotNil(decision.Budgets[0].ApprovedAmount)
	s.Equal(900.0, *decision.Budgets[0].ApprovedAmount)

	// spend against the approved budget
	recorder = s.request(http.MethodPost, "/v1/expenses", s.tokenFor(s.facilities), gin.H{
		"eventId":    event.ID,
		"categoryId": s.equipment.ID,
		"itemName":   "Projector rental",
		"quantity":   2,
		"unitPrice":  300,
		"amount":     600,
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var expense models.Expense
	s.decode(recorder, &expense)
	s.Equal(600.0, expense.Amount)

	recorder = s.request(http.MethodGet,
		fmt.Sprintf("/v1/reports/event/%s/financial", event.ID), s.tokenFor(s.finance), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var report struct {
		Summary struct {
			TotalApprovedBudget float64 `json:"totalApprovedBudget"`
			TotalExpenses       float64 `json:"totalExpenses"`
			Remaining           float64 `json:"remaining"`
			UsagePercentage     float64 `json:"usagePercentage"`
		} `json:"summary"`
	}
	s.decode(recorder, &report)
	s.Equal(900.0, report.Summary.TotalApprovedBudget)
	s.Equal(600.0, report.Summary.TotalExpenses)
	s.Equal(300.0, report.Summary.Remaining)
	s.InDelta(66.7, report.Summary.UsagePercentage, 0.05)
}

func (s *PortalSuite) TestApprovalWithoutAdjustmentsFixesRequestedAmounts() {
	event := s.createEvent("Cultural Night")
	s.submitBudget(event.ID, s.refreshments.ID, 750, 0)

	recorder := s.approve(event.ID, gin.H{
		"status":  "APPROVED",
		"remarks": "Full amount granted.",
	})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var decision decisionResponse
	s.decode(recorder, &decision)
	s.Require().Len(decision.Budgets, 1)
	s.Require().NotNil(decision.Budgets[0].ApprovedAmount)
	s.Equal(750.0, *decision.Budgets[0].ApprovedAmount)
}

func (s *PortalSuite) TestApprovalRequiresRemarks() {
	event := s.createEvent("Robotics Workshop")
	s.submitBudget(event.ID, s.equipment.ID, 500, 0)

	recorder := s.approve(event.ID, gin.H{"status": "APPROVED", "remarks": "   "})
	s.Equal(http.StatusBadRequest, recorder.Code)

	var stored models.Event
	s.Require().NoError(s.db.First(&stored, "id = ?", event.ID).Error)
	s.Equal(models.StatusPending, stored.Status)
}

func (s *PortalSuite) TestDecisionIsFinal() {
	event := s.createEvent("Hackathon")
	s.submitBudget(event.ID, s.equipment.ID, 2000, 0)

	recorder := s.approve(event.ID, gin.H{"status": "REJECTED", "remarks": "No budget left this quarter."})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = s.approve(event.ID, gin.H{"status": "APPROVED", "remarks": "Changed my mind."})
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *PortalSuite) TestBudgetsLockedAfterDecision() {
	event := s.createEvent("Seminar Series")
	s.submitBudget(event.ID, s.equipment.ID, 400, 0)
	s.approve(event.ID, gin.H{"status": "APPROVED", "remarks": "Fine."})

	recorder := s.submitBudget(event.ID, s.equipment.ID, 800, 0)
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *PortalSuite) TestResubmissionReplacesBudgets() {
	event := s.createEvent("Design Sprint")

	recorder := s.request(http.MethodPost, fmt.Sprintf("/v1/events/%s/budgets", event.ID), s.tokenFor(s.lead), gin.H{
		"budgets": []gin.H{
			{"categoryId": s.equipment.ID, "amount": 300},
			{"categoryId": s.refreshments.ID, "amount": 150},
		},
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = s.submitBudget(event.ID, s.refreshments.ID, 200, 0)
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var budgets []models.Budget
	s.decode(recorder, &budgets)
	s.Require().Len(budgets, 1)
	s.Equal(s.refreshments.ID, budgets[0].CategoryID)
	s.Equal(200.0, budgets[0].Amount)
}

func (s *PortalSuite) TestDuplicateCategoryRejected() {
	event := s.createEvent("Quiz Night")

	recorder := s.request(http.MethodPost, fmt.Sprintf("/v1/events/%s/budgets", event.ID), s.tokenFor(s.lead), gin.H{
		"budgets": []gin.H{
			{"categoryId": s.equipment.ID, "amount": 100},
			{"categoryId": s.equipment.ID, "amount": 200},
		},
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *PortalSuite) TestOnlyFinanceDecides() {
	event := s.createEvent("Gaming Tournament")
	s.submitBudget(event.ID, s.equipment.ID, 600, 0)

	recorder := s.request(http.MethodPost,
		fmt.Sprintf("/v1/events/%s/budgets/approve", event.ID), s.tokenFor(s.lead),
		gin.H{"status": "APPROVED", "remarks": "Approving my own budget."})
	s.Equal(http.StatusForbidden, recorder.Code)
}

func (s *PortalSuite) TestAdminCanDecide() {
	event := s.createEvent("Open Day")
	s.submitBudget(event.ID, s.equipment.ID, 250, 0)

	recorder := s.request(http.MethodPost,
		fmt.Sprintf("/v1/events/%s/budgets/approve", event.ID), s.tokenFor(s.admin),
		gin.H{"status": "APPROVED", "remarks": "Cleared by admin."})
	s.Equal(http.StatusOK, recorder.Code, recorder.Body.String())
}

func (s *PortalSuite) TestDecisionNotifiesCreator() {
	event := s.createEvent("Alumni Meet")
	s.submitBudget(event.ID, s.equipment.ID, 900, 0)
	s.approve(event.ID, gin.H{"status": "APPROVED", "remarks": "Go ahead."})

	recorder := s.request(http.MethodGet, "/v1/notifications", s.tokenFor(s.lead), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var payload struct {
		Notifications []models.Notification `json:"notifications"`
		UnreadCount   int64                 `json:"unreadCount"`
	}
	s.decode(recorder, &payload)
	s.Require().Len(payload.Notifications, 1)
	s.Equal(int64(1), payload.UnreadCount)
	s.Contains(payload.Notifications[0].Message, "approved")
}
