package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finance-portal/internal/models"
)

// approvedEvent drives an event through submission and approval so the
// expense scenarios start from an APPROVED state.
func (s *PortalSuite) approvedEvent(title string, amount, approved float64) models.Event {
	event := s.createEvent(title)

	recorder := s.submitBudget(event.ID, s.equipment.ID, amount, 0)
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = s.approve(event.ID, gin.H{
		"status":  "APPROVED",
		"remarks": "Within limits.",
		"budgetAdjustments": []gin.H{
			{"categoryId": s.equipment.ID, "approvedAmount": approved},
		},
	})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	event.Status = models.StatusApproved
	return event
}

func (s *PortalSuite) recordExpense(eventID uuid.UUID, quantity int, unitPrice, amount float64) *httptest.ResponseRecorder {
	return s.request(http.MethodPost, "/v1/expenses", s.tokenFor(s.facilities), gin.H{
		"eventId":    eventID,
		"categoryId": s.equipment.ID,
		"itemName":   "Extension cords",
		"quantity":   quantity,
		"unitPrice":  unitPrice,
		"amount":     amount,
	})
}

func (s *PortalSuite) TestExpenseRequiresApprovedEvent() {
	event := s.createEvent("Pending Fair")
	s.submitBudget(event.ID, s.equipment.ID, 500, 0)

	recorder := s.recordExpense(event.ID, 1, 50, 50)
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *PortalSuite) TestExpenseRejectsBadArithmetic() {
	event := s.approvedEvent("Science Expo", 1000, 1000)

	recorder := s.recordExpense(event.ID, 2, 300, 500)
	s.Equal(http.StatusBadRequest, recorder.Code)

	recorder = s.recordExpense(event.ID, 0, 300, 0)
	s.Equal(http.StatusBadRequest, recorder.Code)

	recorder = s.recordExpense(event.ID, 2, -10, -20)
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *PortalSuite) TestOverspendIsRecordedNotBlocked() {
	event := s.approvedEvent("Small Meetup", 100, 100)

	recorder := s.recordExpense(event.ID, 3, 50, 150)
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = s.request(http.MethodGet,
		fmt.Sprintf("/v1/expenses/event/%s/summary", event.ID), s.tokenFor(s.finance), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var summaries []struct {
		BudgetAmount float64 `json:"budgetAmount"`
		TotalExpense float64 `json:"totalExpense"`
		Remaining    float64 `json:"remaining"`
		ExpenseCount int     `json:"expenseCount"`
	}
	s.decode(recorder, &summaries)
	s.Require().Len(summaries, 1)
	s.Equal(100.0, summaries[0].BudgetAmount)
	s.Equal(150.0, summaries[0].TotalExpense)
	s.Equal(-50.0, summaries[0].Remaining)
	s.Equal(1, summaries[0].ExpenseCount)
}

func (s *PortalSuite) TestUpdateExpenseRecomputesAmount() {
	event := s.approvedEvent("Workshop Week", 1000, 1000)

	recorder := s.recordExpense(event.ID, 3, 150, 450)
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var expense models.Expense
	s.decode(recorder, &expense)
	s.Equal(450.0, expense.Amount)

	recorder = s.request(http.MethodPut,
		fmt.Sprintf("/v1/expenses/%s", expense.ID), s.tokenFor(s.facilities),
		gin.H{"quantity": 4})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var updated models.Expense
	s.decode(recorder, &updated)
	s.Equal(4, updated.Quantity)
	s.Equal(150.0, updated.UnitPrice)
	s.Equal(600.0, updated.Amount)
}

func (s *PortalSuite) TestExpenseOwnershipEnforced() {
	event := s.approvedEvent("Guest Lecture", 500, 500)

	recorder := s.recordExpense(event.ID, 1, 75, 75)
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var expense models.Expense
	s.decode(recorder, &expense)

	// a different recorder role cannot touch someone else's line
	recorder2 := s.request(http.MethodDelete,
		fmt.Sprintf("/v1/expenses/%s", expense.ID), s.tokenFor(s.lead), nil)
	s.Equal(http.StatusForbidden, recorder2.Code)

	// admin can
	recorder2 = s.request(http.MethodDelete,
		fmt.Sprintf("/v1/expenses/%s", expense.ID), s.tokenFor(s.admin), nil)
	s.Equal(http.StatusOK, recorder2.Code)
}

func (s *PortalSuite) TestFinanceCannotRecordExpenses() {
	event := s.approvedEvent("Budget Review Day", 500, 500)

	recorder := s.request(http.MethodPost, "/v1/expenses", s.tokenFor(s.finance), gin.H{
		"eventId":    event.ID,
		"categoryId": s.equipment.ID,
		"itemName":   "Snacks",
		"quantity":   1,
		"unitPrice":  20,
		"amount":     20,
	})
	s.Equal(http.StatusForbidden, recorder.Code)
}
